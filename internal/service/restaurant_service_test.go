package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"menu-svc/internal/domain"
	"menu-svc/internal/mocks"
	"menu-svc/internal/service"
	"menu-svc/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRestaurantService_Create(t *testing.T) {
	tests := []struct {
		name        string
		input       *domain.Restaurant
		mockError   error
		expectWrite bool
		wantErr     error
	}{
		{
			name:        "valid restaurant",
			input:       &domain.Restaurant{Name: "Cafe A"},
			expectWrite: true,
		},
		{
			name:        "database error",
			input:       &domain.Restaurant{Name: "Cafe A"},
			mockError:   assert.AnError,
			expectWrite: true,
			wantErr:     assert.AnError,
		},
		{
			name:    "empty name",
			input:   &domain.Restaurant{Name: "  "},
			wantErr: service.ErrInvalidPayload,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewRestaurantRepository(t)
			svc := service.NewRestaurantService(mockRepo, nil, nil)

			if testCase.expectWrite {
				mockRepo.On("CreateRestaurant", mock.Anything, testCase.input).Return(testCase.mockError).Once()
			}

			err := svc.Create(context.Background(), testCase.input)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			_, parseErr := uuid.Parse(testCase.input.ID)
			assert.NoError(t, parseErr)
		})
	}
}

func TestRestaurantService_CreateAssignsDistinctIDs(t *testing.T) {
	mockRepo := mocks.NewRestaurantRepository(t)
	mockRepo.On("CreateRestaurant", mock.Anything, mock.AnythingOfType("*domain.Restaurant")).Return(nil).Twice()
	svc := service.NewRestaurantService(mockRepo, nil, nil)

	first := &domain.Restaurant{Name: "Cafe A"}
	second := &domain.Restaurant{Name: "Cafe A"}
	require.NoError(t, svc.Create(context.Background(), first))
	require.NoError(t, svc.Create(context.Background(), second))

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRestaurantService_CreatePublishesEvent(t *testing.T) {
	mockRepo := mocks.NewRestaurantRepository(t)
	mockPublisher := mocks.NewEventPublisher(t)
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil)).With("component", "service")
	svc := service.NewRestaurantService(mockRepo, mockPublisher, logger)

	mockRepo.On("CreateRestaurant", mock.Anything, mock.Anything).Return(nil).Once()
	mockPublisher.On("PublishMenuEvent", mock.Anything, mock.MatchedBy(func(e domain.MenuEvent) bool {
		return e.Type == domain.EventRestaurantCreated && e.RestaurantID != ""
	})).Return(errors.New("broker down")).Once()

	err := svc.Create(context.Background(), &domain.Restaurant{Name: "Cafe A"})
	assert.NoError(t, err, "publish failures must not fail the request")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "failed to publish menu event", entry["msg"])
	assert.Equal(t, "service", entry["component"])
	assert.Equal(t, domain.EventRestaurantCreated, entry["type"])
	assert.Equal(t, "broker down", entry["error"])
}

func TestRestaurantService_Get(t *testing.T) {
	tests := []struct {
		name      string
		mockRest  *domain.Restaurant
		mockError error
		wantErr   error
	}{
		{
			name:     "found",
			mockRest: &domain.Restaurant{ID: "r1", Name: "Cafe A"},
		},
		{
			name:      "missing",
			mockError: storage.ErrNotFound,
			wantErr:   service.ErrRestaurantNotFound,
		},
		{
			name:      "storage failure",
			mockError: assert.AnError,
			wantErr:   assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewRestaurantRepository(t)
			svc := service.NewRestaurantService(mockRepo, nil, nil)
			mockRepo.On("GetRestaurant", mock.Anything, "r1").Return(testCase.mockRest, testCase.mockError).Once()

			rest, err := svc.Get(context.Background(), "r1")
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, rest)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.mockRest, rest)
		})
	}
}

func TestRestaurantNotFoundError_Message(t *testing.T) {
	err := &service.RestaurantNotFoundError{ID: "abc"}
	assert.Equal(t, "Restaurant abc not found", err.Error())
	assert.True(t, errors.Is(err, service.ErrRestaurantNotFound))
}
