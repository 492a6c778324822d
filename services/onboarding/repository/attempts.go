package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/adhikara/signon/internal/pkg/constants"
)

// RegisterAttempt increments the failed-attempt counter for a target and
// returns the new count. The first attempt in a window sets the window TTL.
func (r *OnboardingRepo) RegisterAttempt(ctx context.Context, target string) (int64, error) {
	key := fmt.Sprintf(constants.KeyVerifyAttempts, target)

	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to register attempt in Redis: %w", err)
	}

	if count == 1 {
		window := time.Duration(r.cfg.Verification.AttemptWindow) * time.Second
		if err := r.redisClient.Expire(ctx, key, window); err != nil {
			return 0, fmt.Errorf("failed to set attempt window: %w", err)
		}
	}

	return count, nil
}

// ClearAttempts resets the failed-attempt counter for a target
func (r *OnboardingRepo) ClearAttempts(ctx context.Context, target string) error {
	key := fmt.Sprintf(constants.KeyVerifyAttempts, target)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear attempts in Redis: %w", err)
	}

	return nil
}

// AcquireResendSlot claims the resend cooldown slot for a target. Returns
// false while a previously issued code is still inside the cooldown.
func (r *OnboardingRepo) AcquireResendSlot(ctx context.Context, target string) (bool, error) {
	key := fmt.Sprintf(constants.KeyResendCooldown, target)
	cooldown := time.Duration(r.cfg.Verification.ResendCooldown) * time.Second

	ok, err := r.redisClient.SetNX(ctx, key, time.Now().Unix(), cooldown)
	if err != nil {
		return false, fmt.Errorf("failed to acquire resend slot in Redis: %w", err)
	}

	return ok, nil
}
