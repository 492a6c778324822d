package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhikara/signon/internal/pkg/database"
	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/services/onboarding"
)

func setupRepoTest(t *testing.T) (*OnboardingRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &OnboardingRepo{
		cfg:         &models.Config{},
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func sampleVerification() *models.Verification {
	expiresAt := time.Now().Add(10 * time.Minute)
	return &models.Verification{
		ID:        uuid.New(),
		Type:      models.VerificationTypeOnboarding,
		Target:    "alice@example.com",
		Secret:    "JBSWY3DPEHPK3PXP",
		Algorithm: "SHA256",
		Digits:    6,
		Period:    30,
		ExpiresAt: &expiresAt,
		CreatedAt: time.Now(),
	}
}

func TestUpsertVerification(t *testing.T) {
	repo, mock, cleanup := setupRepoTest(t)
	defer cleanup()

	v := sampleVerification()

	mock.ExpectExec("^INSERT INTO verifications").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertVerification(context.Background(), v)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertVerification_DBError(t *testing.T) {
	repo, mock, cleanup := setupRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^INSERT INTO verifications").
		WillReturnError(errors.New("connection refused"))

	err := repo.UpsertVerification(context.Background(), sampleVerification())

	assert.Error(t, err)
}

func TestGetVerification(t *testing.T) {
	repo, mock, cleanup := setupRepoTest(t)
	defer cleanup()

	v := sampleVerification()
	rows := sqlmock.NewRows([]string{"id", "type", "target", "secret", "algorithm", "digits", "period", "expires_at", "created_at"}).
		AddRow(v.ID, v.Type, v.Target, v.Secret, v.Algorithm, v.Digits, v.Period, *v.ExpiresAt, v.CreatedAt)

	mock.ExpectQuery("^SELECT (.+) FROM verifications WHERE type").
		WithArgs(models.VerificationTypeOnboarding, "alice@example.com").
		WillReturnRows(rows)

	got, err := repo.GetVerification(context.Background(), models.VerificationTypeOnboarding, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)
	assert.Equal(t, v.Secret, got.Secret)
	assert.Equal(t, v.Algorithm, got.Algorithm)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVerification_NotFound(t *testing.T) {
	repo, mock, cleanup := setupRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM verifications WHERE type").
		WithArgs(models.VerificationTypeOnboarding, "nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.GetVerification(context.Background(), models.VerificationTypeOnboarding, "nobody@example.com")

	assert.ErrorIs(t, err, onboarding.ErrVerificationNotFound)
	assert.Nil(t, got)
}

func TestDeleteVerification(t *testing.T) {
	repo, mock, cleanup := setupRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("^DELETE FROM verifications").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteVerification(context.Background(), id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVerification_AlreadyConsumed(t *testing.T) {
	repo, mock, cleanup := setupRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("^DELETE FROM verifications").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteVerification(context.Background(), id)

	assert.ErrorIs(t, err, onboarding.ErrVerificationNotFound)
}
