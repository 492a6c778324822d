package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhikara/signon/internal/pkg/jwt"
	"github.com/adhikara/signon/internal/pkg/models"
	"github.com/adhikara/signon/services/onboarding"
	"github.com/adhikara/signon/services/onboarding/mocks"
)

func TestCompleteOnboarding_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOnboardingRepo(ctrl)
	mockGW := mocks.NewMockOnboardingGW(ctrl)
	cfg := testConfig()
	uc := NewOnboardingUC(mockRepo, mockGW, cfg)

	userID := uuid.New()
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *models.User) error {
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "alice", user.Username)
			user.ID = userID
			user.IsActive = true
			return nil
		})
	mockGW.EXPECT().PublishSignupCompleted(gomock.Any(), gomock.Any()).Return(nil)

	auth, err := uc.CompleteOnboarding(context.Background(), &models.OnboardingRequest{
		Email:    "Alice@Example.com",
		Username: "alice",
		Name:     "Alice Example",
	})

	require.NoError(t, err)
	assert.Equal(t, userID.String(), auth.UserID)
	assert.Equal(t, "alice@example.com", auth.Email)
	assert.NotEmpty(t, auth.Token)
	assert.Greater(t, auth.ExpiresAt, time.Now().Unix())

	claims, err := jwt.ValidateToken(auth.Token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
}

func TestCompleteOnboarding_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOnboardingRepo(ctrl)
	mockGW := mocks.NewMockOnboardingGW(ctrl)
	uc := NewOnboardingUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(onboarding.ErrEmailTaken)

	auth, err := uc.CompleteOnboarding(context.Background(), &models.OnboardingRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Name:     "Alice Example",
	})

	assert.ErrorIs(t, err, onboarding.ErrEmailTaken)
	assert.Nil(t, auth)
}

func TestCompleteOnboarding_PublishFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOnboardingRepo(ctrl)
	mockGW := mocks.NewMockOnboardingGW(ctrl)
	uc := NewOnboardingUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *models.User) error {
			user.ID = uuid.New()
			return nil
		})
	mockGW.EXPECT().PublishSignupCompleted(gomock.Any(), gomock.Any()).Return(assert.AnError)

	auth, err := uc.CompleteOnboarding(context.Background(), &models.OnboardingRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Name:     "Alice Example",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
}

func TestGetUserByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOnboardingRepo(ctrl)
	mockGW := mocks.NewMockOnboardingGW(ctrl)
	uc := NewOnboardingUC(mockRepo, mockGW, testConfig())

	want := &models.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice"}
	mockRepo.EXPECT().GetUserByID(gomock.Any(), want.ID.String()).Return(want, nil)

	got, err := uc.GetUserByID(context.Background(), want.ID.String())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
