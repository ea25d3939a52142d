package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"sundar_marbles/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNewsletterRepository struct {
	mock.Mock
}

func (m *MockNewsletterRepository) Upsert(ctx context.Context, email, name string) (models.NewsletterSubscription, error) {
	args := m.Called(ctx, email, name)
	return args.Get(0).(models.NewsletterSubscription), args.Error(1)
}

func (m *MockNewsletterRepository) Unsubscribe(ctx context.Context, email string, at time.Time) (bool, error) {
	args := m.Called(ctx, email, at)
	return args.Bool(0), args.Error(1)
}

func TestNewsletterService_Subscribe(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockNewsletterRepository)
	service := NewNewsletterService(slog.Default(), mockRepo)

	existingID := uuid.New()
	sub := models.NewsletterSubscription{
		ID:       existingID,
		Email:    "ali@example.com",
		Name:     "Ali",
		IsActive: true,
	}

	// The upsert keeps the original row, so repeated subscriptions and
	// reactivations come back with the same id.
	mockRepo.On("Upsert", ctx, "ali@example.com", "Ali").Return(sub, nil).Twice()

	first, err := service.Subscribe(ctx, "ali@example.com", "Ali")
	require.NoError(t, err)

	second, err := service.Subscribe(ctx, "ali@example.com", "Ali")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsActive)
	assert.Nil(t, second.UnsubscribedAt)
	mockRepo.AssertExpectations(t)
}

func TestNewsletterService_Subscribe_RepoError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockNewsletterRepository)
	service := NewNewsletterService(slog.Default(), mockRepo)

	mockRepo.On("Upsert", ctx, "ali@example.com", "").
		Return(models.NewsletterSubscription{}, errors.New("db down")).Once()

	_, err := service.Subscribe(ctx, "ali@example.com", "")
	require.Error(t, err)
}

func TestNewsletterService_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockNewsletterRepository)
	service := NewNewsletterService(slog.Default(), mockRepo)

	tests := []struct {
		name        string
		deactivated bool
	}{
		{name: "active subscription deactivated", deactivated: true},
		{name: "unknown address acknowledged", deactivated: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.On("Unsubscribe", ctx, "ali@example.com", mock.AnythingOfType("time.Time")).
				Return(tt.deactivated, nil).Once()

			err := service.Unsubscribe(ctx, "ali@example.com")
			require.NoError(t, err)
		})
	}

	mockRepo.AssertExpectations(t)
}
