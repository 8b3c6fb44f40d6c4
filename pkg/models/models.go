package models

import (
	"time"
)

// Recipe is a single catalog entry, immutable after load.
type Recipe struct {
	Name            string   `json:"name"`
	Filename        string   `json:"filename"`
	RawIngredients  []string `json:"ingredients_raw"`
	Tokens          []string `json:"ingredients_normalized"`
	IngredientCount int      `json:"ingredient_count"`
}

// MatchResult is a recipe that satisfied every query term, together with
// which of its tokens were matched and which were not.
type MatchResult struct {
	Recipe Recipe `json:"recipe"`
	// Index is the recipe's position in the catalog, used by the
	// presentation layer to reference the recipe in callbacks.
	Index     int      `json:"index"`
	Matched   []string `json:"matched"`
	Remaining []string `json:"remaining"`
}

// Pantry holds the ingredient terms a chat has collected for searching.
type Pantry struct {
	ID          string          `json:"id"`
	ChatID      int64           `json:"chat_id"`
	Terms       map[string]Term `json:"terms"`
	LastUpdated time.Time       `json:"last_updated"`
}

// Term is a single pantry entry. The key in Pantry.Terms is the normalized
// form; Raw keeps what the user actually typed.
type Term struct {
	Raw     string    `json:"raw"`
	AddedAt time.Time `json:"added_at"`
}

// CatalogStats summarizes the loaded catalog for the /stats command.
type CatalogStats struct {
	RecipeCount     int               `json:"recipe_count"`
	IngredientCount int               `json:"ingredient_count"`
	Quarantined     int               `json:"quarantined"`
	TopIngredients  []IngredientCount `json:"top_ingredients"`
}

// IngredientCount is an ingredient token with the number of recipes using it.
type IngredientCount struct {
	Token   string `json:"token"`
	Recipes int    `json:"recipes"`
}
