package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
)

func newConnectionServiceFixture(t *testing.T) (*ConnectionService, *models.Student, *models.Mentor) {
	t.Helper()

	students := newFakeStudentStore()
	mentors := newFakeMentorStore()
	connections := newFakeConnectionStore()

	student := &models.Student{Name: "Asha Verma", Email: "asha@example.com"}
	require.NoError(t, students.Create(context.Background(), student))

	mentor := &models.Mentor{Name: "Ravi Kumar", Email: "ravi@example.com"}
	require.NoError(t, mentors.Create(context.Background(), mentor))

	return NewConnectionService(connections, students, mentors), student, mentor
}

func TestConnectionServiceCreate(t *testing.T) {
	svc, student, mentor := newConnectionServiceFixture(t)
	ctx := context.Background()

	connection, err := svc.Create(ctx, student.ID, mentor.ID, "Go,PostgreSQL")
	require.NoError(t, err)

	assert.NotZero(t, connection.ID)
	assert.Equal(t, models.ConnectionStatusPending, connection.Status)
	assert.Equal(t, student.Email, connection.StudentEmail)
	assert.Equal(t, mentor.Email, connection.MentorEmail)
	assert.Equal(t, mentor.Name, connection.MentorName)
	assert.Equal(t, `["Go","PostgreSQL"]`, connection.SelectedSkills)
	assert.False(t, connection.ConnectionDate.IsZero())
}

func TestConnectionServiceCreateDuplicatePair(t *testing.T) {
	svc, student, mentor := newConnectionServiceFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, student.ID, mentor.ID, "")
	require.NoError(t, err)

	// A second request for the same pair conflicts regardless of status
	_, err = svc.Create(ctx, student.ID, mentor.ID, "")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestConnectionServiceCreateMissingParty(t *testing.T) {
	svc, student, mentor := newConnectionServiceFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 999, mentor.ID, "")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.Create(ctx, student.ID, 999, "")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestNormalizeSelectedSkills(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty becomes empty array", "", "[]"},
		{"json array passes through", `["Go","SQL"]`, `["Go","SQL"]`},
		{"comma list is encoded", "Go,SQL", `["Go","SQL"]`},
		{"single name", "Go", `["Go"]`},
		{"names are not trimmed", "Go, SQL", `["Go"," SQL"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSelectedSkills(tt.input))
		})
	}
}

func TestConnectionServiceUpdateStatus(t *testing.T) {
	svc, student, mentor := newConnectionServiceFixture(t)
	ctx := context.Background()

	connection, err := svc.Create(ctx, student.ID, mentor.ID, "")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, connection.ID, "APPROVED")
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusApproved, updated.Status)

	// APPROVED is terminal
	_, err = svc.UpdateStatus(ctx, connection.ID, "REJECTED")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
}

func TestConnectionServiceUpdateStatusUnknown(t *testing.T) {
	svc, student, mentor := newConnectionServiceFixture(t)
	ctx := context.Background()

	connection, err := svc.Create(ctx, student.ID, mentor.ID, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, connection.ID, "CANCELLED")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestConnectionServicePendingAndApprovedQueries(t *testing.T) {
	students := newFakeStudentStore()
	mentors := newFakeMentorStore()
	connections := newFakeConnectionStore()
	svc := NewConnectionService(connections, students, mentors)
	ctx := context.Background()

	student := &models.Student{Name: "Asha Verma", Email: "asha@example.com"}
	require.NoError(t, students.Create(ctx, student))
	other := &models.Student{Name: "Vikram Rao", Email: "vikram@example.com"}
	require.NoError(t, students.Create(ctx, other))
	mentor := &models.Mentor{Name: "Ravi Kumar", Email: "ravi@example.com"}
	require.NoError(t, mentors.Create(ctx, mentor))

	first, err := svc.Create(ctx, student.ID, mentor.ID, "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, other.ID, mentor.ID, "")
	require.NoError(t, err)

	pending, err := svc.GetPendingForMentor(ctx, mentor.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	_, err = svc.UpdateStatus(ctx, first.ID, "APPROVED")
	require.NoError(t, err)

	pending, err = svc.GetPendingForMentor(ctx, mentor.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	approved, err := svc.GetApprovedForStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, first.ID, approved[0].ID)
}
