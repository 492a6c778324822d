package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/adhikara/signon/internal/pkg/database"
	"github.com/adhikara/signon/internal/pkg/models"
)

// OnboardingRepo implements the onboarding repository on postgres + redis
type OnboardingRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewOnboardingRepo creates a new onboarding repository instance
func NewOnboardingRepo(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *OnboardingRepo {
	return &OnboardingRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
