package onboarding

import (
	"context"

	"github.com/adhikara/signon/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/adhikara/signon/services/onboarding OnboardingGW

// OnboardingGW represents the onboarding gateway interface for
// publishing events to other systems
type OnboardingGW interface {
	PublishEmailNotification(ctx context.Context, event *models.EmailNotificationEvent) error
	PublishSignupCompleted(ctx context.Context, user *models.User) error
}
