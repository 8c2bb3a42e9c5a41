package model

import (
	"context"
	"time"
)

// TalentStore defines persistence operations for talent profiles.
// Email lookups are case-insensitive.
type TalentStore interface {
	GetByEmail(ctx context.Context, email string) (Talent, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByID(ctx context.Context, id int64) (Talent, error)
	Create(ctx context.Context, talent Talent) (Talent, error)
	Update(ctx context.Context, talent Talent) (Talent, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page, size int) ([]Talent, int, error)
}

// Talent represents a stored talent profile. Skills keep insertion
// order and contain no duplicates.
type Talent struct {
	ID           int64
	Firstname    string
	Lastname     string
	Email        string
	PasswordHash string
	Skills       []string
	Avatar       *string
	Banner       *string
	Location     *string
	AboutMe      *string
	Birthday     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
