package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
	"github.com/yigit/mentorhub/internal/pkg/logger"
)

// MeetingService handles the meeting request lifecycle between students
// and mentors.
type MeetingService struct {
	meetingRepo meetingStore
	studentRepo studentStore
	mentorRepo  mentorStore
}

// NewMeetingService creates a new meeting service instance
func NewMeetingService(meetingRepo meetingStore, studentRepo studentStore, mentorRepo mentorStore) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		studentRepo: studentRepo,
		mentorRepo:  mentorRepo,
	}
}

// Create records a new meeting request from a student to a mentor. Both
// parties must exist. The meeting starts in PENDING with the request
// timestamp set server-side.
func (s *MeetingService) Create(ctx context.Context, studentID, mentorID int64, skills []string, question string) (*models.Meeting, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	if _, err := s.mentorRepo.GetByID(ctx, mentorID); err != nil {
		return nil, err
	}

	meeting := &models.Meeting{
		StudentID:      studentID,
		MentorID:       mentorID,
		SelectedSkills: strings.Join(skills, ","),
		Question:       question,
		Status:         models.MeetingStatusPending,
		RequestDate:    time.Now(),
		IsScheduled:    false,
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("meeting_id", meeting.ID).
		Int64("student_id", studentID).
		Int64("mentor_id", mentorID).
		Msg("Meeting request created")

	return meeting, nil
}

// GetByID retrieves a meeting by ID
func (s *MeetingService) GetByID(ctx context.Context, id int64) (*models.Meeting, error) {
	return s.meetingRepo.GetByID(ctx, id)
}

// GetAll retrieves all meetings
func (s *MeetingService) GetAll(ctx context.Context) ([]*models.Meeting, error) {
	return s.meetingRepo.GetAll(ctx)
}

// GetByStudentID retrieves all meetings requested by a student
func (s *MeetingService) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Meeting, error) {
	return s.meetingRepo.GetByStudentID(ctx, studentID)
}

// GetByMentorID retrieves all meetings addressed to a mentor
func (s *MeetingService) GetByMentorID(ctx context.Context, mentorID int64) ([]*models.Meeting, error) {
	return s.meetingRepo.GetByMentorID(ctx, mentorID)
}

// GetByStatus retrieves all meetings in a given raw status
func (s *MeetingService) GetByStatus(ctx context.Context, rawStatus string) ([]*models.Meeting, error) {
	status, ok := models.ParseMeetingStatus(rawStatus)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus, fmt.Sprintf("unknown meeting status %q", rawStatus))
	}
	return s.meetingRepo.GetByStatus(ctx, status)
}

// GetPendingForMentor returns a mentor's inbox of PENDING requests with the
// requesting student joined in, oldest first. Requests whose student row is
// gone are skipped.
func (s *MeetingService) GetPendingForMentor(ctx context.Context, mentorID int64) ([]*models.MeetingWithStudent, error) {
	meetings, err := s.meetingRepo.GetByMentorIDAndStatus(ctx, mentorID, models.MeetingStatusPending)
	if err != nil {
		return nil, err
	}
	return s.joinStudents(ctx, meetings)
}

// GetByMentorWithDetails returns all of a mentor's meetings regardless of
// status with the requesting student joined in. Rows whose student is gone
// are skipped.
func (s *MeetingService) GetByMentorWithDetails(ctx context.Context, mentorID int64) ([]*models.MeetingWithStudent, error) {
	meetings, err := s.meetingRepo.GetByMentorID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	return s.joinStudents(ctx, meetings)
}

// GetUpcomingForStudent returns a student's PENDING and APPROVED meetings
// with the mentor joined in, oldest first. Rows whose mentor is gone are
// skipped.
func (s *MeetingService) GetUpcomingForStudent(ctx context.Context, studentID int64) ([]*models.MeetingWithMentor, error) {
	meetings, err := s.meetingRepo.GetByStudentIDAndStatusIn(ctx, studentID,
		[]models.MeetingStatus{models.MeetingStatusPending, models.MeetingStatusApproved})
	if err != nil {
		return nil, err
	}
	return s.joinMentors(ctx, meetings)
}

// GetByStudentWithDetails returns all of a student's meetings regardless of
// status with the mentor joined in. Rows whose mentor is gone are skipped.
func (s *MeetingService) GetByStudentWithDetails(ctx context.Context, studentID int64) ([]*models.MeetingWithMentor, error) {
	meetings, err := s.meetingRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.joinMentors(ctx, meetings)
}

func (s *MeetingService) joinStudents(ctx context.Context, meetings []*models.Meeting) ([]*models.MeetingWithStudent, error) {
	result := make([]*models.MeetingWithStudent, 0, len(meetings))
	for _, meeting := range meetings {
		student, err := s.studentRepo.GetByID(ctx, meeting.StudentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				logger.Warn().
					Int64("meeting_id", meeting.ID).
					Int64("student_id", meeting.StudentID).
					Msg("Skipping meeting with missing student")
				continue
			}
			return nil, err
		}
		result = append(result, &models.MeetingWithStudent{Meeting: meeting, Student: student})
	}
	return result, nil
}

func (s *MeetingService) joinMentors(ctx context.Context, meetings []*models.Meeting) ([]*models.MeetingWithMentor, error) {
	result := make([]*models.MeetingWithMentor, 0, len(meetings))
	for _, meeting := range meetings {
		mentor, err := s.mentorRepo.GetByID(ctx, meeting.MentorID)
		if err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				logger.Warn().
					Int64("meeting_id", meeting.ID).
					Int64("mentor_id", meeting.MentorID).
					Msg("Skipping meeting with missing mentor")
				continue
			}
			return nil, err
		}
		result = append(result, &models.MeetingWithMentor{Meeting: meeting, Mentor: mentor})
	}
	return result, nil
}

// GetDetails returns a meeting with both parties joined in
func (s *MeetingService) GetDetails(ctx context.Context, id int64) (*models.MeetingDetails, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, meeting.StudentID)
	if err != nil {
		return nil, err
	}

	mentor, err := s.mentorRepo.GetByID(ctx, meeting.MentorID)
	if err != nil {
		return nil, err
	}

	return &models.MeetingDetails{Meeting: meeting, Student: student, Mentor: mentor}, nil
}

// UpdateStatus moves a meeting to a new status. The raw status must belong
// to the closed set and the move must be a legal transition from the
// meeting's current status.
func (s *MeetingService) UpdateStatus(ctx context.Context, id int64, rawStatus string) (*models.Meeting, error) {
	status, ok := models.ParseMeetingStatus(rawStatus)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus, fmt.Sprintf("unknown meeting status %q", rawStatus))
	}

	meeting, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !meeting.Status.CanTransitionTo(status) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatusTransition,
			fmt.Sprintf("cannot move meeting from %s to %s", meeting.Status, status))
	}

	if err := s.meetingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	meeting.Status = status

	logger.Info().
		Int64("meeting_id", id).
		Str("status", string(status)).
		Msg("Meeting status updated")

	return meeting, nil
}

// Cancel cancels a meeting on behalf of one of its parties. The caller must
// be the meeting's student or mentor, identified by role and ID, and the
// meeting must still be cancellable.
func (s *MeetingService) Cancel(ctx context.Context, id int64, role string, userID int64) error {
	meeting, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	switch role {
	case "student":
		if meeting.StudentID != userID {
			return apperrors.ErrNotMeetingOwner
		}
	case "mentor":
		if meeting.MentorID != userID {
			return apperrors.ErrNotMeetingOwner
		}
	default:
		return apperrors.NewBadRequestError(fmt.Sprintf("unknown role %q", role))
	}

	if !meeting.Status.CanTransitionTo(models.MeetingStatusCancelled) {
		return apperrors.NewCustomError(apperrors.ErrInvalidStatusTransition,
			fmt.Sprintf("cannot cancel meeting in status %s", meeting.Status))
	}

	return s.meetingRepo.UpdateStatus(ctx, id, models.MeetingStatusCancelled)
}

// Delete hard-deletes a meeting
func (s *MeetingService) Delete(ctx context.Context, id int64) error {
	return s.meetingRepo.Delete(ctx, id)
}
