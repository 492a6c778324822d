package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/services/onboarding"
)

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT").
		WithArgs("alice@example.com", "alice").
		WillReturnRows(sqlmock.NewRows([]string{"email_taken", "username_taken"}).AddRow(false, false))
	mock.ExpectExec("^INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := &models.User{
		Email:    "alice@example.com",
		Username: "alice",
		Name:     "Alice Example",
	}

	err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.True(t, user.IsActive)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_EmailTaken(t *testing.T) {
	repo, mock, cleanup := setupRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT").
		WithArgs("alice@example.com", "alice").
		WillReturnRows(sqlmock.NewRows([]string{"email_taken", "username_taken"}).AddRow(true, false))
	mock.ExpectRollback()

	err := repo.CreateUser(context.Background(), &models.User{
		Email:    "alice@example.com",
		Username: "alice",
	})

	assert.ErrorIs(t, err, onboarding.ErrEmailTaken)
}

func TestCreateUser_UsernameTaken(t *testing.T) {
	repo, mock, cleanup := setupRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT").
		WithArgs("alice@example.com", "alice").
		WillReturnRows(sqlmock.NewRows([]string{"email_taken", "username_taken"}).AddRow(false, true))
	mock.ExpectRollback()

	err := repo.CreateUser(context.Background(), &models.User{
		Email:    "alice@example.com",
		Username: "alice",
	})

	assert.ErrorIs(t, err, onboarding.ErrUsernameTaken)
}

func TestGetUserByEmail(t *testing.T) {
	repo, mock, cleanup := setupRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "email", "username", "name", "created_at", "updated_at", "is_active"}).
		AddRow(userID, "alice@example.com", "alice", "Alice Example", time.Now(), time.Now(), true)

	mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	user, err := repo.GetUserByEmail(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsActive)
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupRepoTest(t)
	defer cleanup()

	id := uuid.New().String()
	mock.ExpectQuery("^SELECT (.+) FROM users WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetUserByID(context.Background(), id)

	assert.ErrorIs(t, err, onboarding.ErrUserNotFound)
	assert.Nil(t, user)
}
