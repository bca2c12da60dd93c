package service

import (
	"context"
	"log/slog"
	"math"
	"time"

	"menu-svc/internal/domain"

	"github.com/google/uuid"
)

type MenuService struct {
	restaurants RestaurantRepository
	items       MenuItemRepository
	publisher   EventPublisher
	qrEncoder   QRGenerator
	logger      *slog.Logger
	newID       func() string
}

func NewMenuService(restaurants RestaurantRepository, items MenuItemRepository, publisher EventPublisher, qr QRGenerator, logger *slog.Logger) *MenuService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MenuService{
		restaurants: restaurants,
		items:       items,
		publisher:   publisher,
		qrEncoder:   qr,
		logger:      logger,
		newID:       uuid.NewString,
	}
}

// AddItem checks, in order, that the restaurant exists, that the price is
// non-negative, that every allergen and every dietary category is in its
// vocabulary, and only then writes the item under a fresh id.
func (s *MenuService) AddItem(ctx context.Context, restaurantID string, item *domain.MenuItem) error {
	if _, err := getRestaurant(ctx, s.restaurants, restaurantID); err != nil {
		return err
	}

	if item.Price < 0 || math.IsNaN(item.Price) || math.IsInf(item.Price, 0) {
		return invalidPayload("price must be a non-negative number")
	}

	if invalid := domain.InvalidAllergens(item.Allergens); len(invalid) > 0 {
		return &ValidationError{Field: "allergens", Invalid: invalid}
	}
	if invalid := domain.InvalidDietaryCategories(item.DietaryCategories); len(invalid) > 0 {
		return &ValidationError{Field: "dietary categories", Invalid: invalid}
	}

	if item.Allergens == nil {
		item.Allergens = []string{}
	}
	if item.DietaryCategories == nil {
		item.DietaryCategories = []string{}
	}
	item.RestaurantID = restaurantID
	item.ID = s.newID()

	if err := s.items.CreateMenuItem(ctx, item); err != nil {
		return err
	}

	publish(ctx, s.logger, s.publisher, domain.MenuEvent{
		Type:         domain.EventMenuItemCreated,
		RestaurantID: restaurantID,
		MenuItemID:   item.ID,
		Timestamp:    time.Now(),
	})
	return nil
}

// ListItems scans the whole menu_items collection; the store has no index
// on restaurant_id. Store order is preserved.
func (s *MenuService) ListItems(ctx context.Context, restaurantID string, filter MenuFilter) ([]domain.MenuItem, error) {
	if _, err := getRestaurant(ctx, s.restaurants, restaurantID); err != nil {
		return nil, err
	}

	all, err := s.items.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	menu := make([]domain.MenuItem, 0)
	for _, item := range all {
		if item.RestaurantID != restaurantID || !filter.Match(item) {
			continue
		}
		menu = append(menu, item)
	}
	return menu, nil
}

func (s *MenuService) QRCode(ctx context.Context, restaurantID string) ([]byte, error) {
	if _, err := getRestaurant(ctx, s.restaurants, restaurantID); err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(restaurantID)
}

var _ MenuServiceInterface = (*MenuService)(nil)
