package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
)

func newMeetingServiceFixture(t *testing.T) (*MeetingService, *fakeMeetingStore, *models.Student, *models.Mentor) {
	t.Helper()

	students := newFakeStudentStore()
	mentors := newFakeMentorStore()
	meetings := newFakeMeetingStore()

	student := &models.Student{Name: "Asha Verma", Email: "asha@example.com"}
	require.NoError(t, students.Create(context.Background(), student))

	mentor := &models.Mentor{Name: "Ravi Kumar", Email: "ravi@example.com"}
	require.NoError(t, mentors.Create(context.Background(), mentor))

	return NewMeetingService(meetings, students, mentors), meetings, student, mentor
}

func TestMeetingServiceCreate(t *testing.T) {
	svc, _, student, mentor := newMeetingServiceFixture(t)
	ctx := context.Background()

	meeting, err := svc.Create(ctx, student.ID, mentor.ID, []string{"Go", "PostgreSQL"}, "How do I test services?")
	require.NoError(t, err)

	assert.NotZero(t, meeting.ID)
	assert.Equal(t, models.MeetingStatusPending, meeting.Status)
	assert.Equal(t, "Go,PostgreSQL", meeting.SelectedSkills)
	assert.False(t, meeting.IsScheduled)
	assert.False(t, meeting.RequestDate.IsZero())
}

func TestMeetingServiceCreateMissingParty(t *testing.T) {
	svc, _, student, mentor := newMeetingServiceFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 999, mentor.ID, nil, "")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.Create(ctx, student.ID, 999, nil, "")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestMeetingServiceUpdateStatus(t *testing.T) {
	svc, _, student, mentor := newMeetingServiceFixture(t)
	ctx := context.Background()

	meeting, err := svc.Create(ctx, student.ID, mentor.ID, nil, "")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, meeting.ID, "APPROVED")
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusApproved, updated.Status)

	updated, err = svc.UpdateStatus(ctx, meeting.ID, "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCompleted, updated.Status)
}

func TestMeetingServiceUpdateStatusIllegalTransition(t *testing.T) {
	svc, _, student, mentor := newMeetingServiceFixture(t)
	ctx := context.Background()

	meeting, err := svc.Create(ctx, student.ID, mentor.ID, nil, "")
	require.NoError(t, err)

	// PENDING cannot jump straight to COMPLETED
	_, err = svc.UpdateStatus(ctx, meeting.ID, "COMPLETED")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)

	_, err = svc.UpdateStatus(ctx, meeting.ID, "REJECTED")
	require.NoError(t, err)

	// REJECTED is terminal
	_, err = svc.UpdateStatus(ctx, meeting.ID, "APPROVED")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
}

func TestMeetingServiceUpdateStatusUnknown(t *testing.T) {
	svc, _, student, mentor := newMeetingServiceFixture(t)
	ctx := context.Background()

	meeting, err := svc.Create(ctx, student.ID, mentor.ID, nil, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, meeting.ID, "SCHEDULED")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestMeetingServiceUpdateStatusNotFound(t *testing.T) {
	svc, _, _, _ := newMeetingServiceFixture(t)

	_, err := svc.UpdateStatus(context.Background(), 42, "APPROVED")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestMeetingServiceCancel(t *testing.T) {
	svc, _, student, mentor := newMeetingServiceFixture(t)
	ctx := context.Background()

	meeting, err := svc.Create(ctx, student.ID, mentor.ID, nil, "")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, meeting.ID, "student", student.ID))

	got, err := svc.GetByID(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCancelled, got.Status)
}

func TestMeetingServiceCancelNotOwner(t *testing.T) {
	svc, _, student, mentor := newMeetingServiceFixture(t)
	ctx := context.Background()

	meeting, err := svc.Create(ctx, student.ID, mentor.ID, nil, "")
	require.NoError(t, err)

	err = svc.Cancel(ctx, meeting.ID, "student", student.ID+100)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.Cancel(ctx, meeting.ID, "mentor", mentor.ID+100)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.Cancel(ctx, meeting.ID, "admin", student.ID)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestMeetingServiceCancelTerminalState(t *testing.T) {
	svc, _, student, mentor := newMeetingServiceFixture(t)
	ctx := context.Background()

	meeting, err := svc.Create(ctx, student.ID, mentor.ID, nil, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, meeting.ID, "REJECTED")
	require.NoError(t, err)

	err = svc.Cancel(ctx, meeting.ID, "mentor", mentor.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
}

func TestMeetingServiceGetPendingForMentor(t *testing.T) {
	svc, _, student, mentor := newMeetingServiceFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, student.ID, mentor.ID, nil, "first")
	require.NoError(t, err)
	second, err := svc.Create(ctx, student.ID, mentor.ID, nil, "second")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, second.ID, "APPROVED")
	require.NoError(t, err)

	pending, err := svc.GetPendingForMentor(ctx, mentor.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].Meeting.ID)
	assert.Equal(t, student.Email, pending[0].Student.Email)
}

func TestMeetingServiceGetUpcomingForStudentSkipsMissingMentor(t *testing.T) {
	students := newFakeStudentStore()
	mentors := newFakeMentorStore()
	meetings := newFakeMeetingStore()
	svc := NewMeetingService(meetings, students, mentors)
	ctx := context.Background()

	student := &models.Student{Name: "Asha Verma", Email: "asha@example.com"}
	require.NoError(t, students.Create(ctx, student))
	mentor := &models.Mentor{Name: "Ravi Kumar", Email: "ravi@example.com"}
	require.NoError(t, mentors.Create(ctx, mentor))

	kept, err := svc.Create(ctx, student.ID, mentor.ID, nil, "")
	require.NoError(t, err)

	// A meeting whose mentor row is gone must be silently skipped
	orphan := &models.Meeting{StudentID: student.ID, MentorID: 999, Status: models.MeetingStatusPending}
	require.NoError(t, meetings.Create(ctx, orphan))

	upcoming, err := svc.GetUpcomingForStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, kept.ID, upcoming[0].Meeting.ID)
}

func TestMeetingServiceGetByMentorWithDetails(t *testing.T) {
	svc, meetings, student, mentor := newMeetingServiceFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, student.ID, mentor.ID, nil, "first")
	require.NoError(t, err)
	second, err := svc.Create(ctx, student.ID, mentor.ID, nil, "second")
	require.NoError(t, err)

	// Non-pending meetings are included too
	_, err = svc.UpdateStatus(ctx, second.ID, "APPROVED")
	require.NoError(t, err)

	// A meeting whose student row is gone must be silently skipped
	orphan := &models.Meeting{StudentID: 999, MentorID: mentor.ID, Status: models.MeetingStatusPending}
	require.NoError(t, meetings.Create(ctx, orphan))

	details, err := svc.GetByMentorWithDetails(ctx, mentor.ID)
	require.NoError(t, err)
	require.Len(t, details, 2)

	ids := []int64{details[0].Meeting.ID, details[1].Meeting.ID}
	assert.ElementsMatch(t, []int64{first.ID, second.ID}, ids)
	assert.Equal(t, student.Email, details[0].Student.Email)
}

func TestMeetingServiceGetByStudentWithDetails(t *testing.T) {
	svc, _, student, mentor := newMeetingServiceFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, student.ID, mentor.ID, nil, "")
	require.NoError(t, err)
	second, err := svc.Create(ctx, student.ID, mentor.ID, nil, "")
	require.NoError(t, err)

	// Terminal meetings stay in the listing
	_, err = svc.UpdateStatus(ctx, second.ID, "REJECTED")
	require.NoError(t, err)

	details, err := svc.GetByStudentWithDetails(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, details, 2)

	ids := []int64{details[0].Meeting.ID, details[1].Meeting.ID}
	assert.ElementsMatch(t, []int64{first.ID, second.ID}, ids)
	assert.Equal(t, mentor.Email, details[0].Mentor.Email)
}

func TestMeetingServiceGetByStatusUnknown(t *testing.T) {
	svc, _, _, _ := newMeetingServiceFixture(t)

	_, err := svc.GetByStatus(context.Background(), "DONE")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestMeetingServiceDelete(t *testing.T) {
	svc, _, student, mentor := newMeetingServiceFixture(t)
	ctx := context.Background()

	meeting, err := svc.Create(ctx, student.ID, mentor.ID, nil, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, meeting.ID))

	_, err = svc.GetByID(ctx, meeting.ID)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
