package service

import (
	"context"
	"errors"

	"menu-svc/internal/domain"
	"menu-svc/internal/storage"
)

func getRestaurant(ctx context.Context, repo RestaurantRepository, id string) (*domain.Restaurant, error) {
	rest, err := repo.GetRestaurant(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, &RestaurantNotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}
	return rest, nil
}
