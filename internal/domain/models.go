package domain

import "time"

type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// MenuItem belongs to exactly one restaurant. RestaurantID is fixed at creation.
type MenuItem struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	Allergens         []string `json:"allergens"`
	DietaryCategories []string `json:"dietaryCategories"`
	RestaurantID      string   `json:"restaurant_id"`
	ID                string   `json:"id"`
}

type Allergen struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DietaryCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

const (
	EventRestaurantCreated = "restaurant_created"
	EventMenuItemCreated   = "menu_item_created"
)

type MenuEvent struct {
	Type         string    `json:"type"`
	RestaurantID string    `json:"restaurant_id"`
	MenuItemID   string    `json:"menu_item_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
