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
)

// SkillRepository handles database operations for skills and the
// mentor_skills join table. Each side of the many-to-many relation is
// loaded independently; there is no in-memory object graph.
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{
		db: db,
	}
}

// Create creates a new skill
func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	query := `
		INSERT INTO skills (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, skill.Name).Scan(&skill.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "skills_name_key") {
			return apperrors.ErrSkillAlreadyExists
		}
		return fmt.Errorf("error creating skill: %w", err)
	}

	return nil
}

// GetByID retrieves a skill by ID
func (r *SkillRepository) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.QueryRow(ctx, `SELECT id, name FROM skills WHERE id = $1`, id).Scan(
		&skill.ID,
		&skill.Name,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSkillNotFound
		}
		return nil, fmt.Errorf("error retrieving skill: %w", err)
	}

	return &skill, nil
}

// GetByName retrieves a skill by exact name match (case-sensitive)
func (r *SkillRepository) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.QueryRow(ctx, `SELECT id, name FROM skills WHERE name = $1`, name).Scan(
		&skill.ID,
		&skill.Name,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSkillNotFound
		}
		return nil, fmt.Errorf("error retrieving skill by name: %w", err)
	}

	return &skill, nil
}

// GetAll retrieves all skills
func (r *SkillRepository) GetAll(ctx context.Context) ([]*models.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM skills ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSkills(rows)
}

// Update updates an existing skill
func (r *SkillRepository) Update(ctx context.Context, skill *models.Skill) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE skills SET name = $1 WHERE id = $2`,
		skill.Name, skill.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "skills_name_key") {
			return apperrors.ErrSkillAlreadyExists
		}
		return fmt.Errorf("error updating skill: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSkillNotFound
	}

	return nil
}

// Delete deletes a skill by ID
func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting skill: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSkillNotFound
	}

	return nil
}

// SkillsOfMentor retrieves all skills attached to a mentor
func (r *SkillRepository) SkillsOfMentor(ctx context.Context, mentorID int64) ([]*models.Skill, error) {
	query := `
		SELECT s.id, s.name
		FROM skills s
		JOIN mentor_skills ms ON ms.skill_id = s.id
		WHERE ms.mentor_id = $1
		ORDER BY s.name
	`

	rows, err := r.db.Query(ctx, query, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSkills(rows)
}

// MentorsOfSkill retrieves the IDs of all mentors holding a skill
func (r *SkillRepository) MentorsOfSkill(ctx context.Context, skillID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT mentor_id FROM mentor_skills WHERE skill_id = $1 ORDER BY mentor_id`, skillID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mentorIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		mentorIDs = append(mentorIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mentorIDs, nil
}

// CountMentorsOfSkill returns how many mentors currently hold a skill
func (r *SkillRepository) CountMentorsOfSkill(ctx context.Context, skillID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM mentor_skills WHERE skill_id = $1`, skillID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting mentors of skill: %w", err)
	}

	return count, nil
}

// Attach inserts a mentor-skill association. Inserting an existing pair is a
// no-op thanks to the join table primary key.
func (r *SkillRepository) Attach(ctx context.Context, mentorID, skillID int64) error {
	query := `
		INSERT INTO mentor_skills (mentor_id, skill_id)
		VALUES ($1, $2)
		ON CONFLICT (mentor_id, skill_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, mentorID, skillID); err != nil {
		return fmt.Errorf("error attaching skill to mentor: %w", err)
	}

	return nil
}

// Detach removes a mentor-skill association, reporting whether a row was removed
func (r *SkillRepository) Detach(ctx context.Context, mentorID, skillID int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM mentor_skills WHERE mentor_id = $1 AND skill_id = $2`, mentorID, skillID)
	if err != nil {
		return false, fmt.Errorf("error detaching skill from mentor: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

func scanSkills(rows pgx.Rows) ([]*models.Skill, error) {
	var skills []*models.Skill
	for rows.Next() {
		var skill models.Skill
		if err := rows.Scan(&skill.ID, &skill.Name); err != nil {
			return nil, err
		}
		skills = append(skills, &skill)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return skills, nil
}
