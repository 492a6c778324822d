package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/services/onboarding"
)

// UpsertVerification creates or replaces the verification record for
// (type, target). A resend replaces the previous secret, so only the most
// recently issued code chain is ever valid for a target.
func (r *OnboardingRepo) UpsertVerification(ctx context.Context, v *models.Verification) error {
	query := `
		INSERT INTO verifications (id, type, target, secret, algorithm, digits, period, expires_at, created_at)
		VALUES (:id, :type, :target, :secret, :algorithm, :digits, :period, :expires_at, :created_at)
		ON CONFLICT (type, target) DO UPDATE SET
			secret = EXCLUDED.secret,
			algorithm = EXCLUDED.algorithm,
			digits = EXCLUDED.digits,
			period = EXCLUDED.period,
			expires_at = EXCLUDED.expires_at,
			created_at = EXCLUDED.created_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, v); err != nil {
		return fmt.Errorf("failed to upsert verification: %w", err)
	}

	return nil
}

// GetVerification retrieves the verification record for (type, target)
func (r *OnboardingRepo) GetVerification(ctx context.Context, vtype, target string) (*models.Verification, error) {
	query := `
		SELECT id, type, target, secret, algorithm, digits, period, expires_at, created_at
		FROM verifications
		WHERE type = $1 AND target = $2
	`

	var v models.Verification
	err := r.db.GetContext(ctx, &v, query, vtype, target)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, onboarding.ErrVerificationNotFound
		}
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}

	return &v, nil
}

// DeleteVerification consumes a verification record. Exactly one caller can
// succeed for a given record; a delete that affects no rows means another
// request consumed it first and reports ErrVerificationNotFound.
func (r *OnboardingRepo) DeleteVerification(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM verifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete verification: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return onboarding.ErrVerificationNotFound
	}

	return nil
}
