package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/adhikara/signon/internal/pkg/constants"
	"github.com/adhikara/signon/internal/pkg/logger"
	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/internal/pkg/totp"
	"github.com/adhikara/signon/internal/utils"
	"github.com/adhikara/signon/services/onboarding"
)

// RequestVerification issues a verification record for the given email and
// publishes an email notification carrying the current code.
func (u *OnboardingUC) RequestVerification(ctx context.Context, email string) error {
	target, err := utils.NormalizeEmail(email)
	if err != nil {
		return fmt.Errorf("invalid verification target: %w", err)
	}

	ok, err := u.repo.AcquireResendSlot(ctx, target)
	if err != nil {
		return fmt.Errorf("failed to check resend cooldown: %w", err)
	}
	if !ok {
		return onboarding.ErrResendCooldown
	}

	params := u.totpParams()
	secret, err := totp.GenerateSecret(u.cfg.App.Name, target, params)
	if err != nil {
		return fmt.Errorf("failed to generate verification secret: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(u.cfg.Verification.TTL) * time.Second)

	v := &models.Verification{
		ID:        uuid.New(),
		Type:      models.VerificationTypeOnboarding,
		Target:    target,
		Secret:    secret,
		Algorithm: params.Algorithm,
		Digits:    params.Digits,
		Period:    params.Period,
		ExpiresAt: &expiresAt,
		CreatedAt: now,
	}

	if err := u.repo.UpsertVerification(ctx, v); err != nil {
		return fmt.Errorf("failed to store verification: %w", err)
	}

	code, err := totp.CurrentCode(secret, params)
	if err != nil {
		return fmt.Errorf("failed to derive verification code: %w", err)
	}

	event := &models.EmailNotificationEvent{
		To:          target,
		Template:    constants.EmailTemplateVerificationCode,
		Code:        code,
		VerifyURL:   u.verifyURL(target, code),
		RequestedAt: now,
	}
	if err := u.gw.PublishEmailNotification(ctx, event); err != nil {
		return fmt.Errorf("failed to publish email notification: %w", err)
	}

	logger.Info("Issued verification code",
		logger.String("target", target),
		logger.String("verification_id", v.ID.String()))

	return nil
}

// VerifyCode checks a submitted email+code pair against the stored
// verification record and consumes the record on success.
func (u *OnboardingUC) VerifyCode(ctx context.Context, email, code string) error {
	target, err := utils.NormalizeEmail(email)
	if err != nil {
		return onboarding.ErrInvalidCode
	}

	attempts, err := u.repo.RegisterAttempt(ctx, target)
	if err != nil {
		return fmt.Errorf("failed to register verification attempt: %w", err)
	}
	if attempts > int64(u.cfg.Verification.MaxAttempts) {
		logger.Warn("Verification attempts exhausted",
			logger.String("target", target),
			logger.Int64("attempts", attempts))
		return onboarding.ErrTooManyAttempts
	}

	v, err := u.repo.GetVerification(ctx, models.VerificationTypeOnboarding, target)
	if err != nil {
		if errors.Is(err, onboarding.ErrVerificationNotFound) {
			return onboarding.ErrInvalidCode
		}
		return fmt.Errorf("failed to look up verification: %w", err)
	}

	if v.Expired(time.Now()) {
		return onboarding.ErrInvalidCode
	}

	valid, err := totp.Validate(code, v.Secret, totp.Params{
		Algorithm: v.Algorithm,
		Digits:    v.Digits,
		Period:    v.Period,
	})
	if err != nil {
		return fmt.Errorf("failed to verify code: %w", err)
	}
	if !valid {
		return onboarding.ErrInvalidCode
	}

	// Single-use: the delete is the consumption point. Losing the race to
	// a concurrent submit of the same code counts as an invalid code.
	if err := u.repo.DeleteVerification(ctx, v.ID); err != nil {
		if errors.Is(err, onboarding.ErrVerificationNotFound) {
			return onboarding.ErrInvalidCode
		}
		return fmt.Errorf("failed to consume verification: %w", err)
	}

	if err := u.repo.ClearAttempts(ctx, target); err != nil {
		logger.Warn("Failed to clear verification attempts",
			logger.String("target", target),
			logger.Err(err))
	}

	logger.Info("Email verified",
		logger.String("target", target),
		logger.String("verification_id", v.ID.String()))

	return nil
}

func (u *OnboardingUC) totpParams() totp.Params {
	return totp.Params{
		Algorithm: u.cfg.Verification.Algorithm,
		Digits:    u.cfg.Verification.Digits,
		Period:    u.cfg.Verification.Period,
	}
}

func (u *OnboardingUC) verifyURL(target, code string) string {
	q := url.Values{}
	q.Set("email", target)
	q.Set("code", code)
	return fmt.Sprintf("%s/signup/verify?%s", u.cfg.App.BaseURL, q.Encode())
}
