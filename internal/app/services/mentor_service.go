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

// MentorService handles mentor-related operations
type MentorService struct {
	mentorRepo mentorStore
	skillRepo  skillStore
}

// NewMentorService creates a new mentor service instance
func NewMentorService(mentorRepo mentorStore, skillRepo skillStore) *MentorService {
	return &MentorService{
		mentorRepo: mentorRepo,
		skillRepo:  skillRepo,
	}
}

// Register creates a new mentor account with a hashed password
func (s *MentorService) Register(ctx context.Context, mentor *models.Mentor) error {
	if mentor == nil || strings.TrimSpace(mentor.Email) == "" || mentor.Password == "" {
		return apperrors.NewBadRequestError("mentor data is invalid")
	}

	_, err := s.mentorRepo.GetByEmail(ctx, mentor.Email)
	if err == nil {
		return apperrors.ErrMentorEmailExists
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return fmt.Errorf("error checking mentor email: %w", err)
	}

	hashed, err := auth.HashPassword(mentor.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	mentor.Password = hashed

	return s.mentorRepo.Create(ctx, mentor)
}

// Login verifies credentials and returns the matching mentor.
// There is no session or token; the caller carries identity manually.
func (s *MentorService) Login(ctx context.Context, email, password string) (*models.Mentor, error) {
	mentor, err := s.mentorRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving mentor for login: %w", err)
	}

	if !auth.CheckPassword(mentor.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return mentor, nil
}

// GetByID retrieves a mentor by ID, with attached skills loaded
func (s *MentorService) GetByID(ctx context.Context, id int64) (*models.Mentor, error) {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	skills, err := s.skillRepo.SkillsOfMentor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading mentor skills: %w", err)
	}
	mentor.Skills = skills

	return mentor, nil
}

// GetByEmail retrieves a mentor by email
func (s *MentorService) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	mentor, err := s.mentorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	skills, err := s.skillRepo.SkillsOfMentor(ctx, mentor.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading mentor skills: %w", err)
	}
	mentor.Skills = skills

	return mentor, nil
}

// GetAll retrieves all mentors
func (s *MentorService) GetAll(ctx context.Context) ([]*models.Mentor, error) {
	mentors, err := s.mentorRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, mentor := range mentors {
		skills, err := s.skillRepo.SkillsOfMentor(ctx, mentor.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading mentor skills: %w", err)
		}
		mentor.Skills = skills
	}

	return mentors, nil
}

// Update overwrites non-empty fields of an existing mentor. A new password
// is hashed before it is stored.
func (s *MentorService) Update(ctx context.Context, id int64, updated *models.Mentor) error {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if updated.Name != "" {
		mentor.Name = updated.Name
	}
	if updated.Email != "" {
		mentor.Email = updated.Email
	}
	if updated.Phone != "" {
		mentor.Phone = updated.Phone
	}
	if updated.Password != "" {
		hashed, err := auth.HashPassword(updated.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		mentor.Password = hashed
	}
	if updated.CalendlyLink != "" {
		mentor.CalendlyLink = updated.CalendlyLink
	}

	return s.mentorRepo.Update(ctx, mentor)
}

// Delete removes a mentor by ID
func (s *MentorService) Delete(ctx context.Context, id int64) error {
	return s.mentorRepo.Delete(ctx, id)
}

// GetCalendlyLink returns a mentor's external scheduling link, empty when unset
func (s *MentorService) GetCalendlyLink(ctx context.Context, id int64) (string, error) {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return mentor.CalendlyLink, nil
}

// UpdateCalendlyLink replaces a mentor's external scheduling link
func (s *MentorService) UpdateCalendlyLink(ctx context.Context, id int64, link string) error {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	mentor.CalendlyLink = link
	return s.mentorRepo.Update(ctx, mentor)
}
