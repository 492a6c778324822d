package gateway

import (
	"context"
	"fmt"

	"github.com/adhikara/signon/internal/pkg/constants"
	"github.com/adhikara/signon/internal/pkg/logger"
	"github.com/adhikara/signon/internal/pkg/models"
)

// PublishEmailNotification publishes a verification email event for the
// mail consumer to deliver.
func (g *OnboardingGW) PublishEmailNotification(_ context.Context, event *models.EmailNotificationEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectEmailNotification, event); err != nil {
		return fmt.Errorf("failed to publish email notification: %w", err)
	}

	logger.Debug("Published email notification",
		logger.String("to", event.To),
		logger.String("template", event.Template))

	return nil
}

// PublishSignupCompleted publishes a signup completed event
func (g *OnboardingGW) PublishSignupCompleted(_ context.Context, user *models.User) error {
	if err := g.natsClient.PublishJSON(constants.SubjectSignupCompleted, user); err != nil {
		return fmt.Errorf("failed to publish signup completed event: %w", err)
	}

	logger.Debug("Published signup completed event",
		logger.String("user_id", user.ID.String()))

	return nil
}
