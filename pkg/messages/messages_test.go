package messages

import (
	"testing"

	"github.com/korjavin/recipefinder/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestResultCard(t *testing.T) {
	t.Parallel()

	card := ResultCard(models.MatchResult{
		Recipe:    models.Recipe{Name: "Omelette"},
		Matched:   []string{"egg", "butter"},
		Remaining: []string{"cheese"},
	})

	assert.Contains(t, card, "Omelette")
	assert.Contains(t, card, "✓ egg")
	assert.Contains(t, card, "✓ butter")
	assert.Contains(t, card, "also needs: cheese")
}

func TestResultCard_NothingRemaining(t *testing.T) {
	t.Parallel()

	card := ResultCard(models.MatchResult{
		Recipe:  models.Recipe{Name: "Omelette"},
		Matched: []string{"egg"},
	})

	assert.NotContains(t, card, "also needs")
}

func TestResultsHeader(t *testing.T) {
	t.Parallel()

	assert.Contains(t, ResultsHeader(1, []string{"egg"}), "1 recipe ")
	assert.Contains(t, ResultsHeader(3, []string{"egg", "rice"}), "3 recipes")
	assert.Contains(t, ResultsHeader(3, []string{"egg", "rice"}), "egg, rice")
}

func TestPantryContents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, EmptyPantry(), PantryContents(nil))

	rendered := PantryContents([]string{"egg", "flour"})
	assert.Contains(t, rendered, "• egg")
	assert.Contains(t, rendered, "• flour")
}

func TestStats(t *testing.T) {
	t.Parallel()

	rendered := Stats(models.CatalogStats{
		RecipeCount:     12,
		IngredientCount: 40,
		Quarantined:     1,
		TopIngredients: []models.IngredientCount{
			{Token: "egg", Recipes: 9},
		},
	})

	assert.Contains(t, rendered, "Recipes: 12")
	assert.Contains(t, rendered, "Distinct ingredients: 40")
	assert.Contains(t, rendered, "Skipped records: 1")
	assert.Contains(t, rendered, "egg (9 recipes)")
}
