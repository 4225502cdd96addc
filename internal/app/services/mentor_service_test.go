package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
)

func newMentorServiceFixture() (*MentorService, *fakeMentorStore, *fakeSkillStore) {
	mentors := newFakeMentorStore()
	skills := newFakeSkillStore()
	return NewMentorService(mentors, skills), mentors, skills
}

func TestMentorServiceRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newMentorServiceFixture()
	ctx := context.Background()

	first := &models.Mentor{Name: "Ravi Kumar", Email: "ravi@example.com", Password: "s3cret"}
	require.NoError(t, svc.Register(ctx, first))

	second := &models.Mentor{Name: "Other", Email: "ravi@example.com", Password: "s3cret"}
	err := svc.Register(ctx, second)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestMentorServiceGetByIDLoadsSkills(t *testing.T) {
	svc, _, skills := newMentorServiceFixture()
	ctx := context.Background()

	mentor := &models.Mentor{Name: "Ravi Kumar", Email: "ravi@example.com", Password: "s3cret"}
	require.NoError(t, svc.Register(ctx, mentor))

	skill := &models.Skill{Name: "Go"}
	require.NoError(t, skills.Create(ctx, skill))
	require.NoError(t, skills.Attach(ctx, mentor.ID, skill.ID))

	got, err := svc.GetByID(ctx, mentor.ID)
	require.NoError(t, err)
	require.Len(t, got.Skills, 1)
	assert.Equal(t, "Go", got.Skills[0].Name)
}

func TestMentorServiceCalendlyLink(t *testing.T) {
	svc, _, _ := newMentorServiceFixture()
	ctx := context.Background()

	mentor := &models.Mentor{Name: "Ravi Kumar", Email: "ravi@example.com", Password: "s3cret"}
	require.NoError(t, svc.Register(ctx, mentor))

	link, err := svc.GetCalendlyLink(ctx, mentor.ID)
	require.NoError(t, err)
	assert.Empty(t, link)

	require.NoError(t, svc.UpdateCalendlyLink(ctx, mentor.ID, "https://calendly.com/ravi"))

	link, err = svc.GetCalendlyLink(ctx, mentor.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://calendly.com/ravi", link)

	_, err = svc.GetCalendlyLink(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
