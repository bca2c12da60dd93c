package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"menu-svc/internal/domain"

	"github.com/google/uuid"
)

type RestaurantService struct {
	repo      RestaurantRepository
	publisher EventPublisher
	logger    *slog.Logger
	newID     func() string
}

// NewRestaurantService uses slog.Default when logger is nil.
func NewRestaurantService(repo RestaurantRepository, publisher EventPublisher, logger *slog.Logger) *RestaurantService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RestaurantService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// Create assigns a fresh id and stores the restaurant. Names are not
// required to be unique.
func (s *RestaurantService) Create(ctx context.Context, rest *domain.Restaurant) error {
	if strings.TrimSpace(rest.Name) == "" {
		return invalidPayload("name must not be empty")
	}

	rest.ID = s.newID()
	if err := s.repo.CreateRestaurant(ctx, rest); err != nil {
		return err
	}

	publish(ctx, s.logger, s.publisher, domain.MenuEvent{
		Type:         domain.EventRestaurantCreated,
		RestaurantID: rest.ID,
		Timestamp:    time.Now(),
	})
	return nil
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	return getRestaurant(ctx, s.repo, id)
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

// publish never fails the caller: the write it reports has already happened.
func publish(ctx context.Context, logger *slog.Logger, publisher EventPublisher, event domain.MenuEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishMenuEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "failed to publish menu event",
			"type", event.Type,
			"restaurant_id", event.RestaurantID,
			"error", err)
	}
}
