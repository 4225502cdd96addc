package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
	"github.com/yigit/mentorhub/internal/pkg/auth"
)

// StudentService handles student-related operations
type StudentService struct {
	studentRepo studentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo studentStore) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// Register creates a new student account with a hashed password
func (s *StudentService) Register(ctx context.Context, student *models.Student) error {
	if student == nil || strings.TrimSpace(student.Email) == "" || student.Password == "" {
		return apperrors.NewBadRequestError("student data is invalid")
	}

	// Check if email already exists before hashing
	_, err := s.studentRepo.GetByEmail(ctx, student.Email)
	if err == nil {
		return apperrors.ErrStudentEmailExists
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return fmt.Errorf("error checking student email: %w", err)
	}

	hashed, err := auth.HashPassword(student.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	student.Password = hashed

	return s.studentRepo.Create(ctx, student)
}

// Login verifies credentials and returns the matching student.
// There is no session or token; the caller carries identity manually.
func (s *StudentService) Login(ctx context.Context, email, password string) (*models.Student, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving student for login: %w", err)
	}

	if !auth.CheckPassword(student.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return student, nil
}

// GetByID retrieves a student by ID
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a student by email
func (s *StudentService) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return s.studentRepo.GetByEmail(ctx, email)
}

// GetAll retrieves all students
func (s *StudentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// Update overwrites non-empty fields of an existing student. A new password
// is hashed before it is stored.
func (s *StudentService) Update(ctx context.Context, id int64, updated *models.Student) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if updated.Name != "" {
		student.Name = updated.Name
	}
	if updated.Email != "" {
		student.Email = updated.Email
	}
	if updated.Phone != "" {
		student.Phone = updated.Phone
	}
	if updated.Password != "" {
		hashed, err := auth.HashPassword(updated.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		student.Password = hashed
	}

	return s.studentRepo.Update(ctx, student)
}

// Delete removes a student by ID. Dependent meetings are not cascaded.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
