package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
	"github.com/yigit/mentorhub/internal/pkg/logger"
)

// SkillService handles the skill catalog and mentor skill tagging
type SkillService struct {
	skillRepo  skillStore
	mentorRepo mentorStore
}

// NewSkillService creates a new skill service instance
func NewSkillService(skillRepo skillStore, mentorRepo mentorStore) *SkillService {
	return &SkillService{
		skillRepo:  skillRepo,
		mentorRepo: mentorRepo,
	}
}

// Create adds a new skill to the catalog
func (s *SkillService) Create(ctx context.Context, skill *models.Skill) error {
	return s.skillRepo.Create(ctx, skill)
}

// GetByID retrieves a skill by ID
func (s *SkillService) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	return s.skillRepo.GetByID(ctx, id)
}

// GetByName retrieves a skill by its exact name
func (s *SkillService) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	return s.skillRepo.GetByName(ctx, name)
}

// GetAll retrieves the full skill catalog
func (s *SkillService) GetAll(ctx context.Context) ([]*models.Skill, error) {
	return s.skillRepo.GetAll(ctx)
}

// Update renames an existing skill
func (s *SkillService) Update(ctx context.Context, id int64, name string) (*models.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	skill.Name = name
	if err := s.skillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}

	return skill, nil
}

// Delete removes a skill from the catalog. A skill still attached to any
// mentor cannot be deleted.
func (s *SkillService) Delete(ctx context.Context, id int64) error {
	if _, err := s.skillRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.skillRepo.CountMentorsOfSkill(ctx, id)
	if err != nil {
		return fmt.Errorf("error counting mentors of skill: %w", err)
	}
	if count > 0 {
		return apperrors.ErrSkillInUse
	}

	return s.skillRepo.Delete(ctx, id)
}

// SkillsOfMentor returns the skills attached to a mentor
func (s *SkillService) SkillsOfMentor(ctx context.Context, mentorID int64) ([]*models.Skill, error) {
	if _, err := s.mentorRepo.GetByID(ctx, mentorID); err != nil {
		return nil, err
	}
	return s.skillRepo.SkillsOfMentor(ctx, mentorID)
}

// AttachSkills attaches the named skills to a mentor, creating catalog
// entries for names not seen before. Attaching an already-attached skill is
// a no-op. Returns the mentor's full skill set afterwards.
func (s *SkillService) AttachSkills(ctx context.Context, mentorID int64, names []string) ([]*models.Skill, error) {
	if _, err := s.mentorRepo.GetByID(ctx, mentorID); err != nil {
		return nil, err
	}

	for _, name := range names {
		if name == "" {
			continue
		}

		skill, err := s.findOrCreateSkill(ctx, name)
		if err != nil {
			return nil, err
		}

		if err := s.skillRepo.Attach(ctx, mentorID, skill.ID); err != nil {
			return nil, fmt.Errorf("error attaching skill %q to mentor %d: %w", name, mentorID, err)
		}
	}

	return s.skillRepo.SkillsOfMentor(ctx, mentorID)
}

// findOrCreateSkill resolves a skill name to a catalog entry, creating one
// when missing. Lookup is by exact name. A create that loses a race against a
// concurrent insert falls back to re-fetching.
func (s *SkillService) findOrCreateSkill(ctx context.Context, name string) (*models.Skill, error) {
	skill, err := s.skillRepo.GetByName(ctx, name)
	if err == nil {
		return skill, nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, fmt.Errorf("error looking up skill %q: %w", name, err)
	}

	skill = &models.Skill{Name: name}
	err = s.skillRepo.Create(ctx, skill)
	if err == nil {
		logger.Debug().Str("skill", name).Msg("Created new skill from mentor tagging")
		return skill, nil
	}
	if errors.Is(err, apperrors.ErrConflict) {
		return s.skillRepo.GetByName(ctx, name)
	}

	return nil, fmt.Errorf("error creating skill %q: %w", name, err)
}

// DetachSkill removes a single skill from a mentor
func (s *SkillService) DetachSkill(ctx context.Context, mentorID, skillID int64) error {
	if _, err := s.mentorRepo.GetByID(ctx, mentorID); err != nil {
		return err
	}
	if _, err := s.skillRepo.GetByID(ctx, skillID); err != nil {
		return err
	}

	removed, err := s.skillRepo.Detach(ctx, mentorID, skillID)
	if err != nil {
		return fmt.Errorf("error detaching skill: %w", err)
	}
	if !removed {
		return apperrors.ErrSkillNotAttached
	}

	return nil
}

// DetachSkillByName removes a named skill from a mentor. A name with no
// catalog entry is treated the same as a skill that is not attached.
func (s *SkillService) DetachSkillByName(ctx context.Context, mentorID int64, name string) error {
	if _, err := s.mentorRepo.GetByID(ctx, mentorID); err != nil {
		return err
	}

	skill, err := s.skillRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrSkillNotAttached
		}
		return fmt.Errorf("error looking up skill %q: %w", name, err)
	}

	removed, err := s.skillRepo.Detach(ctx, mentorID, skill.ID)
	if err != nil {
		return fmt.Errorf("error detaching skill %q: %w", name, err)
	}
	if !removed {
		return apperrors.ErrSkillNotAttached
	}

	return nil
}

// DetachSkills removes the named skills from a mentor. Names that resolve to
// skills not attached to the mentor are skipped. The mentor must have at
// least one attached skill.
func (s *SkillService) DetachSkills(ctx context.Context, mentorID int64, names []string) ([]*models.Skill, error) {
	if _, err := s.mentorRepo.GetByID(ctx, mentorID); err != nil {
		return nil, err
	}

	current, err := s.skillRepo.SkillsOfMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		return nil, apperrors.ErrMentorHasNoSkills
	}

	byName := make(map[string]*models.Skill, len(current))
	for _, skill := range current {
		byName[skill.Name] = skill
	}

	for _, name := range names {
		skill, ok := byName[name]
		if !ok {
			continue
		}
		if _, err := s.skillRepo.Detach(ctx, mentorID, skill.ID); err != nil {
			return nil, fmt.Errorf("error detaching skill %q: %w", name, err)
		}
	}

	return s.skillRepo.SkillsOfMentor(ctx, mentorID)
}
