package storage

import (
	"context"
	"encoding/json"
	"testing"

	"menu-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRepository_Restaurants(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentRepository(NewMemoryStore())

	restaurants, err := repo.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Empty(t, restaurants)
	assert.NotNil(t, restaurants)

	desc := "Corner bistro"
	require.NoError(t, repo.CreateRestaurant(ctx, &domain.Restaurant{ID: "r1", Name: "Cafe A"}))
	require.NoError(t, repo.CreateRestaurant(ctx, &domain.Restaurant{ID: "r2", Name: "Cafe B", Description: &desc}))

	got, err := repo.GetRestaurant(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, "Cafe B", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)

	_, err = repo.GetRestaurant(ctx, "r3")
	assert.ErrorIs(t, err, ErrNotFound)

	restaurants, err = repo.ListRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "r1", restaurants[0].ID)
	assert.Nil(t, restaurants[0].Description)
}

func TestDocumentRepository_MenuItemsStoredFlat(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewDocumentRepository(store)

	item := &domain.MenuItem{
		ID:                "m1",
		RestaurantID:      "r1",
		Name:              "Soup",
		Description:       "hot",
		Price:             5.5,
		Allergens:         []string{"milk"},
		DietaryCategories: []string{"vegetarian"},
	}
	require.NoError(t, repo.CreateMenuItem(ctx, item))

	body, err := store.Get(ctx, CollectionMenuItems, "m1")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Soup",
		"description": "hot",
		"price": 5.5,
		"allergens": ["milk"],
		"dietaryCategories": ["vegetarian"],
		"restaurant_id": "r1",
		"id": "m1"
	}`, string(body))

	items, err := repo.ListMenuItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, *item, items[0])
}

func TestDocumentRepository_UndecodableDocumentsFailListing(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		body       string
		list       func(context.Context, *DocumentRepository) error
		wantErr    string
	}{
		{
			name:       "menu item with string price",
			collection: CollectionMenuItems,
			body:       `{"name":"Tea","price":"2.5","restaurant_id":"r1"}`,
			list: func(ctx context.Context, repo *DocumentRepository) error {
				_, err := repo.ListMenuItems(ctx)
				return err
			},
			wantErr: "decode menu_items/legacy",
		},
		{
			name:       "restaurant that is not json",
			collection: CollectionRestaurants,
			body:       `not json`,
			list: func(ctx context.Context, repo *DocumentRepository) error {
				_, err := repo.ListRestaurants(ctx)
				return err
			},
			wantErr: "decode restaurants/legacy",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewMemoryStore()
			repo := NewDocumentRepository(store)

			require.NoError(t, store.Set(ctx, testCase.collection, "good", []byte(`{"name":"Cafe","restaurant_id":"r1"}`)))
			require.NoError(t, store.Set(ctx, testCase.collection, "legacy", []byte(testCase.body)))

			err := testCase.list(ctx, repo)
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.wantErr)
		})
	}
}

func TestDocumentRepository_MissingSetsListAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewDocumentRepository(store)

	require.NoError(t, store.Set(ctx, CollectionMenuItems, "m1", []byte(`{"name":"Tea","price":2.5,"restaurant_id":"r1"}`)))

	items, err := repo.ListMenuItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, []string{}, items[0].Allergens)
	assert.Equal(t, []string{}, items[0].DietaryCategories)

	body, err := json.Marshal(items[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), `"allergens":[]`)
	assert.Contains(t, string(body), `"dietaryCategories":[]`)
}
