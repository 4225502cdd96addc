package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
)

func newSkillServiceFixture(t *testing.T) (*SkillService, *fakeSkillStore, *models.Mentor) {
	t.Helper()

	skills := newFakeSkillStore()
	mentors := newFakeMentorStore()

	mentor := &models.Mentor{Name: "Ravi Kumar", Email: "ravi@example.com"}
	require.NoError(t, mentors.Create(context.Background(), mentor))

	return NewSkillService(skills, mentors), skills, mentor
}

func skillNames(skills []*models.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

func TestSkillServiceAttachSkillsCreatesMissing(t *testing.T) {
	svc, _, mentor := newSkillServiceFixture(t)
	ctx := context.Background()

	attached, err := svc.AttachSkills(ctx, mentor.ID, []string{"Go", "PostgreSQL"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Go", "PostgreSQL"}, skillNames(attached))

	// Both names must now exist in the catalog
	catalog, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Go", "PostgreSQL"}, skillNames(catalog))
}

func TestSkillServiceAttachSkillsIdempotent(t *testing.T) {
	svc, _, mentor := newSkillServiceFixture(t)
	ctx := context.Background()

	_, err := svc.AttachSkills(ctx, mentor.ID, []string{"Go"})
	require.NoError(t, err)

	// Duplicate names attach once, both within a request and across requests
	attached, err := svc.AttachSkills(ctx, mentor.ID, []string{"Go", "Go"})
	require.NoError(t, err)
	assert.Len(t, attached, 1)

	catalog, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog, 1)
}

func TestSkillServiceAttachSkillsMentorNotFound(t *testing.T) {
	svc, _, _ := newSkillServiceFixture(t)

	_, err := svc.AttachSkills(context.Background(), 999, []string{"Go"})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestSkillServiceDetachSkill(t *testing.T) {
	svc, _, mentor := newSkillServiceFixture(t)
	ctx := context.Background()

	attached, err := svc.AttachSkills(ctx, mentor.ID, []string{"Go"})
	require.NoError(t, err)

	require.NoError(t, svc.DetachSkill(ctx, mentor.ID, attached[0].ID))

	// Detaching again reports the skill as not attached
	err = svc.DetachSkill(ctx, mentor.ID, attached[0].ID)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestSkillServiceDetachSkillByName(t *testing.T) {
	svc, _, mentor := newSkillServiceFixture(t)
	ctx := context.Background()

	_, err := svc.AttachSkills(ctx, mentor.ID, []string{"Go"})
	require.NoError(t, err)

	require.NoError(t, svc.DetachSkillByName(ctx, mentor.ID, "Go"))

	remaining, err := svc.SkillsOfMentor(ctx, mentor.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestSkillServiceDetachSkillByNameUnknown(t *testing.T) {
	svc, _, mentor := newSkillServiceFixture(t)
	ctx := context.Background()

	// A name with no catalog entry reads as "not attached", not "not found"
	err := svc.DetachSkillByName(ctx, mentor.ID, "Rust")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)

	// In-catalog but unattached behaves the same
	skill := &models.Skill{Name: "Rust"}
	require.NoError(t, svc.Create(ctx, skill))
	err = svc.DetachSkillByName(ctx, mentor.ID, "Rust")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	err = svc.DetachSkillByName(ctx, 999, "Rust")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestSkillServiceDetachSkillsRequiresExisting(t *testing.T) {
	svc, _, mentor := newSkillServiceFixture(t)
	ctx := context.Background()

	_, err := svc.DetachSkills(ctx, mentor.ID, []string{"Go"})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.AttachSkills(ctx, mentor.ID, []string{"Go", "SQL"})
	require.NoError(t, err)

	// Unknown names are skipped, known ones are removed
	remaining, err := svc.DetachSkills(ctx, mentor.ID, []string{"Go", "Rust"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"SQL"}, skillNames(remaining))
}

func TestSkillServiceDeleteInUse(t *testing.T) {
	svc, _, mentor := newSkillServiceFixture(t)
	ctx := context.Background()

	attached, err := svc.AttachSkills(ctx, mentor.ID, []string{"Go"})
	require.NoError(t, err)
	skillID := attached[0].ID

	err = svc.Delete(ctx, skillID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	require.NoError(t, svc.DetachSkill(ctx, mentor.ID, skillID))
	require.NoError(t, svc.Delete(ctx, skillID))
}

func TestSkillServiceDeleteNotFound(t *testing.T) {
	svc, _, _ := newSkillServiceFixture(t)

	err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestSkillServiceUpdate(t *testing.T) {
	svc, _, _ := newSkillServiceFixture(t)
	ctx := context.Background()

	skill := &models.Skill{Name: "Go"}
	require.NoError(t, svc.Create(ctx, skill))

	updated, err := svc.Update(ctx, skill.ID, "Golang")
	require.NoError(t, err)
	assert.Equal(t, "Golang", updated.Name)

	got, err := svc.GetByName(ctx, "Golang")
	require.NoError(t, err)
	assert.Equal(t, skill.ID, got.ID)
}
