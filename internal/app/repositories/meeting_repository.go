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

const meetingColumns = `id, student_id, mentor_id, selected_skills, question, status, request_date, is_scheduled`

// MeetingRepository handles database operations for meetings
type MeetingRepository struct {
	db *pgxpool.Pool
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{
		db: db,
	}
}

// Create creates a new meeting request
func (r *MeetingRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	query := `
		INSERT INTO meetings (student_id, mentor_id, selected_skills, question, status, request_date, is_scheduled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		meeting.StudentID,
		meeting.MentorID,
		meeting.SelectedSkills,
		meeting.Question,
		meeting.Status,
		meeting.RequestDate,
		meeting.IsScheduled,
	).Scan(&meeting.ID)
	if err != nil {
		return fmt.Errorf("error creating meeting: %w", err)
	}

	return nil
}

// GetByID retrieves a meeting by ID
func (r *MeetingRepository) GetByID(ctx context.Context, id int64) (*models.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`

	var meeting models.Meeting
	err := r.db.QueryRow(ctx, query, id).Scan(
		&meeting.ID,
		&meeting.StudentID,
		&meeting.MentorID,
		&meeting.SelectedSkills,
		&meeting.Question,
		&meeting.Status,
		&meeting.RequestDate,
		&meeting.IsScheduled,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("error retrieving meeting: %w", err)
	}

	return &meeting, nil
}

// GetAll retrieves all meetings
func (r *MeetingRepository) GetAll(ctx context.Context) ([]*models.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings ORDER BY request_date`
	return r.queryMeetings(ctx, query)
}

// GetByStudentID retrieves all meetings requested by a student
func (r *MeetingRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE student_id = $1 ORDER BY request_date`
	return r.queryMeetings(ctx, query, studentID)
}

// GetByMentorID retrieves all meetings addressed to a mentor
func (r *MeetingRepository) GetByMentorID(ctx context.Context, mentorID int64) ([]*models.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE mentor_id = $1 ORDER BY request_date`
	return r.queryMeetings(ctx, query, mentorID)
}

// GetByStatus retrieves all meetings in a given status
func (r *MeetingRepository) GetByStatus(ctx context.Context, status models.MeetingStatus) ([]*models.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE status = $1 ORDER BY request_date`
	return r.queryMeetings(ctx, query, status)
}

// GetByMentorIDAndStatus retrieves a mentor's meetings in a given status,
// oldest request first.
func (r *MeetingRepository) GetByMentorIDAndStatus(ctx context.Context, mentorID int64, status models.MeetingStatus) ([]*models.Meeting, error) {
	query := `SELECT ` + meetingColumns + `
		FROM meetings
		WHERE mentor_id = $1 AND status = $2
		ORDER BY request_date ASC`
	return r.queryMeetings(ctx, query, mentorID, status)
}

// GetByStudentIDAndStatusIn retrieves a student's meetings in any of the given
// statuses, oldest request first.
func (r *MeetingRepository) GetByStudentIDAndStatusIn(ctx context.Context, studentID int64, statuses []models.MeetingStatus) ([]*models.Meeting, error) {
	query := `SELECT ` + meetingColumns + `
		FROM meetings
		WHERE student_id = $1 AND status = ANY($2)
		ORDER BY request_date ASC`

	raw := make([]string, len(statuses))
	for i, s := range statuses {
		raw[i] = string(s)
	}

	return r.queryMeetings(ctx, query, studentID, raw)
}

// UpdateStatus overwrites a meeting's status
func (r *MeetingRepository) UpdateStatus(ctx context.Context, id int64, status models.MeetingStatus) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE meetings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating meeting status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMeetingNotFound
	}

	return nil
}

// Delete hard-deletes a meeting by ID
func (r *MeetingRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting meeting: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMeetingNotFound
	}

	return nil
}

func (r *MeetingRepository) queryMeetings(ctx context.Context, query string, args ...interface{}) ([]*models.Meeting, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []*models.Meeting
	for rows.Next() {
		var meeting models.Meeting
		if err := rows.Scan(
			&meeting.ID,
			&meeting.StudentID,
			&meeting.MentorID,
			&meeting.SelectedSkills,
			&meeting.Question,
			&meeting.Status,
			&meeting.RequestDate,
			&meeting.IsScheduled,
		); err != nil {
			return nil, err
		}
		meetings = append(meetings, &meeting)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return meetings, nil
}
