package usecase

import (
	"context"
	"fmt"

	"github.com/adhikara/signon/internal/pkg/jwt"
	"github.com/adhikara/signon/internal/pkg/logger"
	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/internal/utils"
)

// CompleteOnboarding creates the user account for a verified email and
// returns an access token for the new account.
func (u *OnboardingUC) CompleteOnboarding(ctx context.Context, req *models.OnboardingRequest) (*models.AuthResponse, error) {
	email, err := utils.NormalizeEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}

	user := &models.User{
		Email:    email,
		Username: req.Username,
		Name:     req.Name,
	}

	if err := u.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := u.gw.PublishSignupCompleted(ctx, user); err != nil {
		logger.Warn("Failed to publish signup completed event",
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
	}

	logger.Info("Onboarding completed",
		logger.String("user_id", user.ID.String()),
		logger.String("username", user.Username))

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}, nil
}

// GetUserByID returns the user profile for an authenticated request.
func (u *OnboardingUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return u.repo.GetUserByID(ctx, id)
}
