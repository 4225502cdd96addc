package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
	"github.com/yigit/mentorhub/internal/pkg/logger"
)

// ConnectionService handles the student-mentor connection approval
// lifecycle. At most one connection may exist per (student, mentor) pair.
type ConnectionService struct {
	connectionRepo connectionStore
	studentRepo    studentStore
	mentorRepo     mentorStore
}

// NewConnectionService creates a new connection service instance
func NewConnectionService(connectionRepo connectionStore, studentRepo studentStore, mentorRepo mentorStore) *ConnectionService {
	return &ConnectionService{
		connectionRepo: connectionRepo,
		studentRepo:    studentRepo,
		mentorRepo:     mentorRepo,
	}
}

// Create records a new connection request from a student to a mentor. Party
// emails and the mentor name are denormalized onto the row; the pair must
// not already be connected in any status.
func (s *ConnectionService) Create(ctx context.Context, studentID, mentorID int64, selectedSkills string) (*models.StudentMentorConnection, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	mentor, err := s.mentorRepo.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	_, err = s.connectionRepo.GetByStudentAndMentor(ctx, studentID, mentorID)
	if err == nil {
		return nil, apperrors.ErrConnectionExists
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, fmt.Errorf("error checking existing connection: %w", err)
	}

	connection := &models.StudentMentorConnection{
		StudentID:      studentID,
		StudentEmail:   student.Email,
		MentorID:       mentorID,
		MentorEmail:    mentor.Email,
		MentorName:     mentor.Name,
		SelectedSkills: normalizeSelectedSkills(selectedSkills),
		ConnectionDate: time.Now(),
		Status:         models.ConnectionStatusPending,
	}

	if err := s.connectionRepo.Create(ctx, connection); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("connection_id", connection.ID).
		Int64("student_id", studentID).
		Int64("mentor_id", mentorID).
		Msg("Connection request created")

	return connection, nil
}

// normalizeSelectedSkills stores the selected skills as a JSON array string.
// Input already shaped like a JSON array passes through untouched; anything
// else is treated as a comma-separated list. Names are not trimmed.
func normalizeSelectedSkills(raw string) string {
	if raw == "" {
		return "[]"
	}
	if strings.HasPrefix(raw, "[") {
		return raw
	}

	parts := strings.Split(raw, ",")
	encoded, err := json.Marshal(parts)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// GetByID retrieves a connection by ID
func (s *ConnectionService) GetByID(ctx context.Context, id int64) (*models.StudentMentorConnection, error) {
	return s.connectionRepo.GetByID(ctx, id)
}

// GetAll retrieves all connections
func (s *ConnectionService) GetAll(ctx context.Context) ([]*models.StudentMentorConnection, error) {
	return s.connectionRepo.GetAll(ctx)
}

// GetByStudentID retrieves all connections for a student
func (s *ConnectionService) GetByStudentID(ctx context.Context, studentID int64) ([]*models.StudentMentorConnection, error) {
	return s.connectionRepo.GetByStudentID(ctx, studentID)
}

// GetByMentorID retrieves all connections for a mentor
func (s *ConnectionService) GetByMentorID(ctx context.Context, mentorID int64) ([]*models.StudentMentorConnection, error) {
	return s.connectionRepo.GetByMentorID(ctx, mentorID)
}

// GetByStudentEmail retrieves all connections for a student email
func (s *ConnectionService) GetByStudentEmail(ctx context.Context, studentEmail string) ([]*models.StudentMentorConnection, error) {
	return s.connectionRepo.GetByStudentEmail(ctx, studentEmail)
}

// GetByMentorEmail retrieves all connections for a mentor email
func (s *ConnectionService) GetByMentorEmail(ctx context.Context, mentorEmail string) ([]*models.StudentMentorConnection, error) {
	return s.connectionRepo.GetByMentorEmail(ctx, mentorEmail)
}

// GetByStatus retrieves all connections in a given raw status
func (s *ConnectionService) GetByStatus(ctx context.Context, rawStatus string) ([]*models.StudentMentorConnection, error) {
	status, ok := models.ParseConnectionStatus(rawStatus)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus, fmt.Sprintf("unknown connection status %q", rawStatus))
	}
	return s.connectionRepo.GetByStatus(ctx, status)
}

// GetPendingForMentor returns a mentor's inbox of PENDING connection requests
func (s *ConnectionService) GetPendingForMentor(ctx context.Context, mentorID int64) ([]*models.StudentMentorConnection, error) {
	return s.connectionRepo.GetByMentorIDAndStatus(ctx, mentorID, models.ConnectionStatusPending)
}

// GetApprovedForStudent returns a student's APPROVED connections
func (s *ConnectionService) GetApprovedForStudent(ctx context.Context, studentID int64) ([]*models.StudentMentorConnection, error) {
	return s.connectionRepo.GetByStudentIDAndStatus(ctx, studentID, models.ConnectionStatusApproved)
}

// UpdateStatus moves a connection to a new status. The raw status must
// belong to the closed set and the move must be a legal transition from the
// connection's current status.
func (s *ConnectionService) UpdateStatus(ctx context.Context, id int64, rawStatus string) (*models.StudentMentorConnection, error) {
	status, ok := models.ParseConnectionStatus(rawStatus)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus, fmt.Sprintf("unknown connection status %q", rawStatus))
	}

	connection, err := s.connectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !connection.Status.CanTransitionTo(status) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatusTransition,
			fmt.Sprintf("cannot move connection from %s to %s", connection.Status, status))
	}

	if err := s.connectionRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	connection.Status = status

	logger.Info().
		Int64("connection_id", id).
		Str("status", string(status)).
		Msg("Connection status updated")

	return connection, nil
}

// Delete hard-deletes a connection
func (s *ConnectionService) Delete(ctx context.Context, id int64) error {
	return s.connectionRepo.Delete(ctx, id)
}
