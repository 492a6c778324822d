package onboarding

import (
	"context"

	"github.com/adhikara/signon/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adhikara/signon/services/onboarding OnboardingUC

// OnboardingUC represents the onboarding usecase interface
type OnboardingUC interface {
	// signup + verification
	RequestVerification(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) error

	// onboarding completion
	CompleteOnboarding(ctx context.Context, req *models.OnboardingRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
