package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/mentorhub/internal/app/models"
	appRepos "github.com/yigit/mentorhub/internal/app/repositories"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
)

// defaultSkills is the initial skill catalog created at startup
var defaultSkills = []string{
	"Go",
	"Java",
	"Python",
	"JavaScript",
	"PostgreSQL",
	"System Design",
	"Data Structures",
	"Machine Learning",
	"DevOps",
	"Career Guidance",
}

// CreateDefaultData seeds the default skill catalog if the entries don't
// exist yet. Failures on individual skills are collected and reported
// together so a partial catalog doesn't block startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	skillRepo := appRepos.NewSkillRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default skill catalog...")
	var finalErr error

	for _, name := range defaultSkills {
		skill := &appModels.Skill{Name: name}
		err := skillRepo.Create(ctx, skill)
		if err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("skill", name).Msg("Error creating default skill")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
