package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/uptalent/uptalent-server/internal/model"
)

var _ model.TalentStore = (*TalentRepository)(nil)

// TalentRepository persists talent profiles and their skill sets.
type TalentRepository struct {
	db *Connection
}

func NewTalentRepository(db *Connection) *TalentRepository {
	return &TalentRepository{
		db: db,
	}
}

const talentColumns = `id, firstname, lastname, email, password_hash, avatar, banner,
			  location, about_me, birthday, created_at, updated_at`

func scanTalent(row pgx.Row) (model.Talent, error) {
	var t model.Talent
	err := row.Scan(
		&t.ID, &t.Firstname, &t.Lastname, &t.Email, &t.PasswordHash, &t.Avatar, &t.Banner,
		&t.Location, &t.AboutMe, &t.Birthday, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *TalentRepository) GetByEmail(ctx context.Context, email string) (model.Talent, error) {
	query := `SELECT ` + talentColumns + ` FROM talents WHERE lower(email) = lower($1)`

	talent, err := scanTalent(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Talent{}, model.ErrNotFound
		}
		return model.Talent{}, fmt.Errorf("failed to get talent by email: %w", err)
	}

	if err := r.loadSkills(ctx, &talent); err != nil {
		return model.Talent{}, err
	}

	return talent, nil
}

func (r *TalentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM talents WHERE lower(email) = lower($1))`

	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check talent existence: %w", err)
	}

	return exists, nil
}

func (r *TalentRepository) GetByID(ctx context.Context, id int64) (model.Talent, error) {
	query := `SELECT ` + talentColumns + ` FROM talents WHERE id = $1`

	talent, err := scanTalent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Talent{}, model.ErrNotFound
		}
		return model.Talent{}, fmt.Errorf("failed to get talent by id: %w", err)
	}

	if err := r.loadSkills(ctx, &talent); err != nil {
		return model.Talent{}, err
	}

	return talent, nil
}

func (r *TalentRepository) Create(ctx context.Context, talent model.Talent) (model.Talent, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Talent{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO talents (firstname, lastname, email, password_hash, avatar, banner,
			  location, about_me, birthday, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
			  RETURNING ` + talentColumns

	saved, err := scanTalent(tx.QueryRow(ctx, query,
		talent.Firstname, talent.Lastname, talent.Email, talent.PasswordHash,
		talent.Avatar, talent.Banner, talent.Location, talent.AboutMe, talent.Birthday,
	))
	if err != nil {
		return model.Talent{}, fmt.Errorf("failed to create talent: %w", err)
	}

	if err := replaceSkills(ctx, tx, saved.ID, talent.Skills); err != nil {
		return model.Talent{}, err
	}
	saved.Skills = talent.Skills

	if err := tx.Commit(ctx); err != nil {
		return model.Talent{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

func (r *TalentRepository) Update(ctx context.Context, talent model.Talent) (model.Talent, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Talent{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE talents
			  SET firstname = $2, lastname = $3, avatar = $4, banner = $5,
			      location = $6, about_me = $7, birthday = $8, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + talentColumns

	saved, err := scanTalent(tx.QueryRow(ctx, query,
		talent.ID, talent.Firstname, talent.Lastname, talent.Avatar, talent.Banner,
		talent.Location, talent.AboutMe, talent.Birthday,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Talent{}, model.ErrNotFound
		}
		return model.Talent{}, fmt.Errorf("failed to update talent: %w", err)
	}

	if err := replaceSkills(ctx, tx, saved.ID, talent.Skills); err != nil {
		return model.Talent{}, err
	}
	saved.Skills = talent.Skills

	if err := tx.Commit(ctx); err != nil {
		return model.Talent{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

func (r *TalentRepository) Delete(ctx context.Context, id int64) error {
	// talent_skills rows cascade
	tag, err := r.db.Exec(ctx, `DELETE FROM talents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete talent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// List returns one page of talents ordered by id descending and the
// total number of pages for the given size. Pages are zero-based.
func (r *TalentRepository) List(ctx context.Context, page, size int) ([]model.Talent, int, error) {
	if size <= 0 {
		return nil, 0, fmt.Errorf("page size must be positive, got %d", size)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM talents`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count talents: %w", err)
	}

	totalPages := (total + size - 1) / size

	query := `SELECT ` + talentColumns + ` FROM talents ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list talents: %w", err)
	}
	defer rows.Close()

	talents := make([]model.Talent, 0, size)
	for rows.Next() {
		t, err := scanTalent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan talent: %w", err)
		}
		talents = append(talents, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate talents: %w", err)
	}

	for i := range talents {
		if err := r.loadSkills(ctx, &talents[i]); err != nil {
			return nil, 0, err
		}
	}

	return talents, totalPages, nil
}

func (r *TalentRepository) loadSkills(ctx context.Context, talent *model.Talent) error {
	query := `SELECT skill FROM talent_skills WHERE talent_id = $1 ORDER BY position`

	rows, err := r.db.Query(ctx, query, talent.ID)
	if err != nil {
		return fmt.Errorf("failed to load skills: %w", err)
	}
	defer rows.Close()

	skills := []string{}
	for rows.Next() {
		var skill string
		if err := rows.Scan(&skill); err != nil {
			return fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate skills: %w", err)
	}

	talent.Skills = skills
	return nil
}

func replaceSkills(ctx context.Context, tx pgx.Tx, talentID int64, skills []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM talent_skills WHERE talent_id = $1`, talentID); err != nil {
		return fmt.Errorf("failed to clear skills: %w", err)
	}

	for i, skill := range skills {
		_, err := tx.Exec(ctx,
			`INSERT INTO talent_skills (talent_id, position, skill) VALUES ($1, $2, $3)`,
			talentID, i, skill,
		)
		if err != nil {
			return fmt.Errorf("failed to insert skill: %w", err)
		}
	}

	return nil
}
