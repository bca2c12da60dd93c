package domain

var allergens = []Allergen{
	{ID: "milk", Name: "Milk"},
	{ID: "eggs", Name: "Eggs"},
	{ID: "fish", Name: "Fish"},
	{ID: "tree_nuts", Name: "Tree Nuts"},
	{ID: "wheat", Name: "Wheat"},
	{ID: "crustaceans", Name: "Crustaceans"},
	{ID: "gluten_free", Name: "Gluten-Free"},
	{ID: "peanuts", Name: "Peanuts"},
	{ID: "soybeans", Name: "Soybeans"},
	{ID: "sesame", Name: "Sesame"},
}

var dietaryCategories = []DietaryCategory{
	{ID: "vegan", Name: "Vegan"},
	{ID: "vegetarian", Name: "Vegetarian"},
}

var (
	allowedAllergens = func() map[string]struct{} {
		set := make(map[string]struct{}, len(allergens))
		for _, a := range allergens {
			set[a.ID] = struct{}{}
		}
		return set
	}()

	allowedDietaryCategories = func() map[string]struct{} {
		set := make(map[string]struct{}, len(dietaryCategories))
		for _, c := range dietaryCategories {
			set[c.ID] = struct{}{}
		}
		return set
	}()
)

// Allergens returns a copy of the allergen vocabulary.
func Allergens() []Allergen {
	out := make([]Allergen, len(allergens))
	copy(out, allergens)
	return out
}

// DietaryCategories returns a copy of the dietary vocabulary.
func DietaryCategories() []DietaryCategory {
	out := make([]DietaryCategory, len(dietaryCategories))
	copy(out, dietaryCategories)
	return out
}

func IsValidAllergen(token string) bool {
	_, ok := allowedAllergens[token]
	return ok
}

func IsValidDietaryCategory(token string) bool {
	_, ok := allowedDietaryCategories[token]
	return ok
}

// InvalidAllergens returns the distinct tokens outside the allergen
// vocabulary, in the order they first appear.
func InvalidAllergens(tokens []string) []string {
	return invalidTokens(tokens, IsValidAllergen)
}

// InvalidDietaryCategories is the dietary counterpart of InvalidAllergens.
func InvalidDietaryCategories(tokens []string) []string {
	return invalidTokens(tokens, IsValidDietaryCategory)
}

func invalidTokens(tokens []string, valid func(string) bool) []string {
	var invalid []string
	seen := make(map[string]struct{})
	for _, token := range tokens {
		if valid(token) {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		invalid = append(invalid, token)
	}
	return invalid
}
