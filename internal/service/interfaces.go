package service

import (
	"context"

	"menu-svc/internal/domain"
	"menu-svc/internal/storage"
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
}

type MenuItemRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
}

type EventPublisher interface {
	PublishMenuEvent(ctx context.Context, event domain.MenuEvent) error
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, rest *domain.Restaurant) error
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
}

type MenuServiceInterface interface {
	AddItem(ctx context.Context, restaurantID string, item *domain.MenuItem) error
	ListItems(ctx context.Context, restaurantID string, filter MenuFilter) ([]domain.MenuItem, error)
	QRCode(ctx context.Context, restaurantID string) ([]byte, error)
}

var (
	_ RestaurantRepository = (*storage.DocumentRepository)(nil)
	_ MenuItemRepository   = (*storage.DocumentRepository)(nil)
	_ EventPublisher       = (*storage.KafkaPublisher)(nil)
)
