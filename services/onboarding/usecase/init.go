package usecase

import (
	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/services/onboarding"
)

// OnboardingUC implements the onboarding usecase
type OnboardingUC struct {
	repo onboarding.OnboardingRepo
	gw   onboarding.OnboardingGW
	cfg  *models.Config
}

// NewOnboardingUC creates a new onboarding usecase instance
func NewOnboardingUC(
	repo onboarding.OnboardingRepo,
	gw onboarding.OnboardingGW,
	cfg *models.Config,
) *OnboardingUC {
	return &OnboardingUC{
		repo: repo,
		gw:   gw,
		cfg:  cfg,
	}
}
