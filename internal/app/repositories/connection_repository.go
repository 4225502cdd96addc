package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
)

const connectionColumns = `id, student_id, student_email, mentor_id, mentor_email, mentor_name, selected_skills, connection_date, status`

// ConnectionRepository handles database operations for student-mentor connections
type ConnectionRepository struct {
	db *pgxpool.Pool
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *pgxpool.Pool) *ConnectionRepository {
	return &ConnectionRepository{
		db: db,
	}
}

// Create creates a new connection
func (r *ConnectionRepository) Create(ctx context.Context, connection *models.StudentMentorConnection) error {
	query := `
		INSERT INTO student_mentor_connections
			(student_id, student_email, mentor_id, mentor_email, mentor_name, selected_skills, connection_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		connection.StudentID,
		connection.StudentEmail,
		connection.MentorID,
		connection.MentorEmail,
		connection.MentorName,
		connection.SelectedSkills,
		connection.ConnectionDate,
		connection.Status,
	).Scan(&connection.ID)
	if err != nil {
		return fmt.Errorf("error creating connection: %w", err)
	}

	return nil
}

// GetByID retrieves a connection by ID
func (r *ConnectionRepository) GetByID(ctx context.Context, id int64) (*models.StudentMentorConnection, error) {
	query := `SELECT ` + connectionColumns + ` FROM student_mentor_connections WHERE id = $1`

	var connection models.StudentMentorConnection
	err := r.db.QueryRow(ctx, query, id).Scan(
		&connection.ID,
		&connection.StudentID,
		&connection.StudentEmail,
		&connection.MentorID,
		&connection.MentorEmail,
		&connection.MentorName,
		&connection.SelectedSkills,
		&connection.ConnectionDate,
		&connection.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("error retrieving connection: %w", err)
	}

	return &connection, nil
}

// GetByStudentAndMentor retrieves the connection for a (student, mentor) pair,
// if one exists.
func (r *ConnectionRepository) GetByStudentAndMentor(ctx context.Context, studentID, mentorID int64) (*models.StudentMentorConnection, error) {
	query := `SELECT ` + connectionColumns + `
		FROM student_mentor_connections
		WHERE student_id = $1 AND mentor_id = $2`

	var connection models.StudentMentorConnection
	err := r.db.QueryRow(ctx, query, studentID, mentorID).Scan(
		&connection.ID,
		&connection.StudentID,
		&connection.StudentEmail,
		&connection.MentorID,
		&connection.MentorEmail,
		&connection.MentorName,
		&connection.SelectedSkills,
		&connection.ConnectionDate,
		&connection.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("error retrieving connection by pair: %w", err)
	}

	return &connection, nil
}

// GetAll retrieves all connections
func (r *ConnectionRepository) GetAll(ctx context.Context) ([]*models.StudentMentorConnection, error) {
	query := `SELECT ` + connectionColumns + ` FROM student_mentor_connections ORDER BY connection_date`
	return r.queryConnections(ctx, query)
}

// GetByStudentID retrieves all connections for a student
func (r *ConnectionRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.StudentMentorConnection, error) {
	query := `SELECT ` + connectionColumns + ` FROM student_mentor_connections WHERE student_id = $1 ORDER BY connection_date`
	return r.queryConnections(ctx, query, studentID)
}

// GetByMentorID retrieves all connections for a mentor
func (r *ConnectionRepository) GetByMentorID(ctx context.Context, mentorID int64) ([]*models.StudentMentorConnection, error) {
	query := `SELECT ` + connectionColumns + ` FROM student_mentor_connections WHERE mentor_id = $1 ORDER BY connection_date`
	return r.queryConnections(ctx, query, mentorID)
}

// GetByStudentEmail retrieves all connections for a student email
func (r *ConnectionRepository) GetByStudentEmail(ctx context.Context, studentEmail string) ([]*models.StudentMentorConnection, error) {
	query := `SELECT ` + connectionColumns + ` FROM student_mentor_connections WHERE student_email = $1 ORDER BY connection_date`
	return r.queryConnections(ctx, query, studentEmail)
}

// GetByMentorEmail retrieves all connections for a mentor email
func (r *ConnectionRepository) GetByMentorEmail(ctx context.Context, mentorEmail string) ([]*models.StudentMentorConnection, error) {
	query := `SELECT ` + connectionColumns + ` FROM student_mentor_connections WHERE mentor_email = $1 ORDER BY connection_date`
	return r.queryConnections(ctx, query, mentorEmail)
}

// GetByStatus retrieves all connections in a given status
func (r *ConnectionRepository) GetByStatus(ctx context.Context, status models.ConnectionStatus) ([]*models.StudentMentorConnection, error) {
	query := `SELECT ` + connectionColumns + ` FROM student_mentor_connections WHERE status = $1 ORDER BY connection_date`
	return r.queryConnections(ctx, query, status)
}

// GetByMentorIDAndStatus retrieves a mentor's connections in a given status
func (r *ConnectionRepository) GetByMentorIDAndStatus(ctx context.Context, mentorID int64, status models.ConnectionStatus) ([]*models.StudentMentorConnection, error) {
	query := `SELECT ` + connectionColumns + `
		FROM student_mentor_connections
		WHERE mentor_id = $1 AND status = $2
		ORDER BY connection_date`
	return r.queryConnections(ctx, query, mentorID, status)
}

// GetByStudentIDAndStatus retrieves a student's connections in a given status
func (r *ConnectionRepository) GetByStudentIDAndStatus(ctx context.Context, studentID int64, status models.ConnectionStatus) ([]*models.StudentMentorConnection, error) {
	query := `SELECT ` + connectionColumns + `
		FROM student_mentor_connections
		WHERE student_id = $1 AND status = $2
		ORDER BY connection_date`
	return r.queryConnections(ctx, query, studentID, status)
}

// UpdateStatus overwrites a connection's status
func (r *ConnectionRepository) UpdateStatus(ctx context.Context, id int64, status models.ConnectionStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE student_mentor_connections SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating connection status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConnectionNotFound
	}

	return nil
}

// Delete hard-deletes a connection by ID
func (r *ConnectionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM student_mentor_connections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting connection: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConnectionNotFound
	}

	return nil
}

func (r *ConnectionRepository) queryConnections(ctx context.Context, query string, args ...interface{}) ([]*models.StudentMentorConnection, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var connections []*models.StudentMentorConnection
	for rows.Next() {
		var connection models.StudentMentorConnection
		if err := rows.Scan(
			&connection.ID,
			&connection.StudentID,
			&connection.StudentEmail,
			&connection.MentorID,
			&connection.MentorEmail,
			&connection.MentorName,
			&connection.SelectedSkills,
			&connection.ConnectionDate,
			&connection.Status,
		); err != nil {
			return nil, err
		}
		connections = append(connections, &connection)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return connections, nil
}
