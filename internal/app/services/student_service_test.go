package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
	"github.com/yigit/mentorhub/internal/pkg/auth"
)

func TestStudentServiceRegister(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	student := &models.Student{Name: "Asha Verma", Email: "asha@example.com", Password: "s3cret"}
	require.NoError(t, svc.Register(ctx, student))

	assert.NotZero(t, student.ID)
	assert.NotEqual(t, "s3cret", student.Password)
	assert.True(t, auth.CheckPassword(student.Password, "s3cret"))
}

func TestStudentServiceRegisterDuplicateEmail(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	first := &models.Student{Name: "Asha Verma", Email: "asha@example.com", Password: "s3cret"}
	require.NoError(t, svc.Register(ctx, first))

	second := &models.Student{Name: "Other", Email: "asha@example.com", Password: "s3cret"}
	err := svc.Register(ctx, second)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestStudentServiceRegisterInvalid(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	err := svc.Register(context.Background(), &models.Student{Email: "", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestStudentServiceLogin(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	student := &models.Student{Name: "Asha Verma", Email: "asha@example.com", Password: "s3cret"}
	require.NoError(t, svc.Register(ctx, student))

	got, err := svc.Login(ctx, "asha@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, student.ID, got.ID)

	_, err = svc.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestStudentServiceUpdatePartial(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	student := &models.Student{Name: "Asha Verma", Email: "asha@example.com", Phone: "111", Password: "s3cret"}
	require.NoError(t, svc.Register(ctx, student))
	originalHash := student.Password

	require.NoError(t, svc.Update(ctx, student.ID, &models.Student{Phone: "222"}))

	got, err := svc.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "222", got.Phone)
	assert.Equal(t, "Asha Verma", got.Name)
	assert.Equal(t, originalHash, got.Password)

	// Supplying a password triggers a re-hash
	require.NoError(t, svc.Update(ctx, student.ID, &models.Student{Password: "n3wpass"}))
	got, err = svc.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(got.Password, "n3wpass"))
}

func TestStudentServiceDeleteNotFound(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
