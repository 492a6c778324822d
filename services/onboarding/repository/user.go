package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/services/onboarding"
)

// CreateUser creates a new user in the database
func (r *OnboardingRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var emailTaken, usernameTaken bool
	err = tx.QueryRowContext(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM users WHERE email = $1),
			EXISTS (SELECT 1 FROM users WHERE username = $2)
	`, user.Email, user.Username).Scan(&emailTaken, &usernameTaken)
	if err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if emailTaken {
		return onboarding.ErrEmailTaken
	}
	if usernameTaken {
		return onboarding.ErrUsernameTaken
	}

	query := `
		INSERT INTO users (id, email, username, name, created_at, updated_at, is_active)
		VALUES (:id, :email, :username, :name, :created_at, :updated_at, :is_active)
	`
	if _, err = tx.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email address
func (r *OnboardingRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", email)
}

// GetUserByID retrieves a user by ID
func (r *OnboardingRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

func (r *OnboardingRepo) getUserByField(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, email, username, name, created_at, updated_at, is_active
		FROM users
		WHERE %s = $1
	`, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, onboarding.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
