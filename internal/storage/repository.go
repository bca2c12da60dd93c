package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"menu-svc/internal/domain"
)

// DocumentRepository maps typed records onto a DocumentStore.
type DocumentRepository struct {
	Store DocumentStore
}

func NewDocumentRepository(store DocumentStore) *DocumentRepository {
	return &DocumentRepository{Store: store}
}

func (r *DocumentRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.put(ctx, CollectionRestaurants, rest.ID, rest)
}

func (r *DocumentRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	body, err := r.Store.Get(ctx, CollectionRestaurants, id)
	if err != nil {
		return nil, err
	}

	var rest domain.Restaurant
	if err := json.Unmarshal(body, &rest); err != nil {
		return nil, fmt.Errorf("decode %s: %w", Key(CollectionRestaurants, id), err)
	}
	rest.ID = id
	return &rest, nil
}

func (r *DocumentRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	docs, err := r.Store.List(ctx, CollectionRestaurants)
	if err != nil {
		return nil, err
	}

	restaurants := make([]domain.Restaurant, 0, len(docs))
	for _, doc := range docs {
		var rest domain.Restaurant
		if err := json.Unmarshal(doc.Body, &rest); err != nil {
			return nil, fmt.Errorf("decode %s: %w", Key(CollectionRestaurants, doc.ID), err)
		}
		rest.ID = doc.ID
		restaurants = append(restaurants, rest)
	}
	return restaurants, nil
}

func (r *DocumentRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return r.put(ctx, CollectionMenuItems, item.ID, item)
}

func (r *DocumentRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	docs, err := r.Store.List(ctx, CollectionMenuItems)
	if err != nil {
		return nil, err
	}

	items := make([]domain.MenuItem, 0, len(docs))
	for _, doc := range docs {
		var item domain.MenuItem
		if err := json.Unmarshal(doc.Body, &item); err != nil {
			return nil, fmt.Errorf("decode %s: %w", Key(CollectionMenuItems, doc.ID), err)
		}
		item.ID = doc.ID
		// Documents written by other clients may omit the sets.
		if item.Allergens == nil {
			item.Allergens = []string{}
		}
		if item.DietaryCategories == nil {
			item.DietaryCategories = []string{}
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *DocumentRepository) put(ctx context.Context, collection, id string, record any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %w", Key(collection, id), err)
	}
	return r.Store.Set(ctx, collection, id, body)
}
