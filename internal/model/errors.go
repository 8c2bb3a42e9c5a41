package model

import "errors"

var (
	ErrNotFound       = errors.New("talent not found")
	ErrTalentExists   = errors.New("talent already exists")
	ErrEmptySkills    = errors.New("skills should not be empty")
	ErrAccessDenied   = errors.New("access denied")
	ErrBadCredentials = errors.New("invalid email or password")
)
