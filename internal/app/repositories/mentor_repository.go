package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
	"github.com/yigit/mentorhub/internal/pkg/dberrors"
	"github.com/yigit/mentorhub/internal/pkg/helpers"
)

// MentorRepository handles database operations for mentors
type MentorRepository struct {
	db *pgxpool.Pool
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{
		db: db,
	}
}

// Create creates a new mentor
func (r *MentorRepository) Create(ctx context.Context, mentor *models.Mentor) error {
	query := `
		INSERT INTO mentors (name, email, phone, password, calendly_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		mentor.Name, mentor.Email, mentor.Phone, mentor.Password,
		helpers.GetContentNullString(mentor.CalendlyLink)).Scan(&mentor.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "mentors_email_key") {
			return apperrors.ErrMentorEmailExists
		}
		return fmt.Errorf("error creating mentor: %w", err)
	}

	return nil
}

// GetByID retrieves a mentor by ID
func (r *MentorRepository) GetByID(ctx context.Context, id int64) (*models.Mentor, error) {
	query := `
		SELECT id, name, email, phone, password, COALESCE(calendly_link, '')
		FROM mentors
		WHERE id = $1
	`

	var mentor models.Mentor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&mentor.ID,
		&mentor.Name,
		&mentor.Email,
		&mentor.Phone,
		&mentor.Password,
		&mentor.CalendlyLink,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}

	return &mentor, nil
}

// GetByEmail retrieves a mentor by email
func (r *MentorRepository) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	query := `
		SELECT id, name, email, phone, password, COALESCE(calendly_link, '')
		FROM mentors
		WHERE email = $1
	`

	var mentor models.Mentor
	err := r.db.QueryRow(ctx, query, email).Scan(
		&mentor.ID,
		&mentor.Name,
		&mentor.Email,
		&mentor.Phone,
		&mentor.Password,
		&mentor.CalendlyLink,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor by email: %w", err)
	}

	return &mentor, nil
}

// GetAll retrieves all mentors
func (r *MentorRepository) GetAll(ctx context.Context) ([]*models.Mentor, error) {
	query := `
		SELECT id, name, email, phone, password, COALESCE(calendly_link, '')
		FROM mentors
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mentors []*models.Mentor
	for rows.Next() {
		var mentor models.Mentor
		if err := rows.Scan(
			&mentor.ID,
			&mentor.Name,
			&mentor.Email,
			&mentor.Phone,
			&mentor.Password,
			&mentor.CalendlyLink,
		); err != nil {
			return nil, err
		}
		mentors = append(mentors, &mentor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mentors, nil
}

// Update updates an existing mentor
func (r *MentorRepository) Update(ctx context.Context, mentor *models.Mentor) error {
	query := `
		UPDATE mentors
		SET name = $1, email = $2, phone = $3, password = $4, calendly_link = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		mentor.Name, mentor.Email, mentor.Phone, mentor.Password,
		helpers.GetContentNullString(mentor.CalendlyLink), mentor.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "mentors_email_key") {
			return apperrors.ErrMentorEmailExists
		}
		return fmt.Errorf("error updating mentor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorNotFound
	}

	return nil
}

// Delete deletes a mentor by ID. Join-table rows are removed by cascade.
func (r *MentorRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM mentors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting mentor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorNotFound
	}

	return nil
}
