package service

import (
	"slices"

	"menu-svc/internal/domain"
)

// MenuFilter narrows a restaurant's menu. Zero values disable each predicate.
type MenuFilter struct {
	DietaryCategory string
	AllergenFree    []string
}

func (f MenuFilter) Match(item domain.MenuItem) bool {
	if f.DietaryCategory != "" && !slices.Contains(item.DietaryCategories, f.DietaryCategory) {
		return false
	}
	for _, allergen := range f.AllergenFree {
		if slices.Contains(item.Allergens, allergen) {
			return false
		}
	}
	return true
}
