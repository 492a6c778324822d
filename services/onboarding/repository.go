package onboarding

import (
	"context"

	"github.com/google/uuid"

	"github.com/adhikara/signon/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adhikara/signon/services/onboarding OnboardingRepo

// OnboardingRepo represents the onboarding repository interface.
// Verification records and users live in postgres; attempt counters and
// resend cooldowns live in redis.
type OnboardingRepo interface {
	// verification records
	UpsertVerification(ctx context.Context, v *models.Verification) error
	GetVerification(ctx context.Context, vtype, target string) (*models.Verification, error)
	DeleteVerification(ctx context.Context, id uuid.UUID) error

	// users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// throttling
	RegisterAttempt(ctx context.Context, target string) (int64, error)
	ClearAttempts(ctx context.Context, target string) error
	AcquireResendSlot(ctx context.Context, target string) (bool, error)
}
