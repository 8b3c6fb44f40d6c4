package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes_data.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, `[
		{
			"name": "Pancakes",
			"filename": "pancakes.pdf",
			"ingredients_raw": ["2 cups flour", "3 Eggs", "1 cup milk"],
			"ingredients_normalized": ["flour", "Eggs", "milk"],
			"ingredient_count": 3
		},
		{
			"name": "Chicken Fried Rice",
			"filename": "cfr.pdf",
			"ingredients_raw": ["1 lb chicken breasts", "2 cups rice"],
			"ingredients_normalized": ["chicken breasts", "rice"],
			"ingredient_count": 2
		}
	]`)

	cat, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())
	assert.Zero(t, cat.Quarantined())

	recipes := cat.Recipes()

	// Catalog order is preserved.
	assert.Equal(t, "Pancakes", recipes[0].Name)
	assert.Equal(t, "Chicken Fried Rice", recipes[1].Name)

	// Tokens are re-normalized on load so they match query-side
	// normalization: lowercased and singularized.
	assert.Equal(t, []string{"flour", "egg", "milk"}, recipes[0].Tokens)
	assert.Equal(t, []string{"chicken breast", "rice"}, recipes[1].Tokens)
	assert.Equal(t, 3, recipes[0].IngredientCount)
}

func TestLoad_QuarantinesMalformedRecords(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, `[
		{
			"name": "",
			"filename": "anon.pdf",
			"ingredients_normalized": ["flour"]
		},
		{
			"name": "No Document",
			"ingredients_normalized": ["flour"]
		},
		{
			"name": "No Ingredients",
			"filename": "empty.pdf",
			"ingredients_normalized": []
		},
		{
			"name": "Omelette",
			"filename": "omelette.pdf",
			"ingredients_normalized": ["egg", "butter"],
			"ingredient_count": 2
		}
	]`)

	cat, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cat.Len())
	assert.Equal(t, 3, cat.Quarantined())
	assert.Equal(t, "Omelette", cat.Recipes()[0].Name)
}

func TestLoad_FallsBackToRawIngredients(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, `[
		{
			"name": "Toast",
			"filename": "toast.pdf",
			"ingredients_raw": ["2 slices bread", "1 tbsp butter"]
		}
	]`)

	cat, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())
	assert.Equal(t, []string{"bread", "butter"}, cat.Recipes()[0].Tokens)
}

func TestLoad_RecomputesIngredientCount(t *testing.T) {
	t.Parallel()

	// Duplicates in the source collapse into a set; the stored count is
	// ignored in favor of the deduplicated size.
	path := writeCatalogFile(t, `[
		{
			"name": "Eggs Two Ways",
			"filename": "eggs.pdf",
			"ingredients_normalized": ["Eggs", "egg", "butter"],
			"ingredient_count": 3
		}
	]`)

	cat, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	recipe := cat.Recipes()[0]
	assert.Equal(t, []string{"egg", "butter"}, recipe.Tokens)
	assert.Equal(t, 2, recipe.IngredientCount)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()
		path := writeCatalogFile(t, `{not json`)
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestStats(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, `[
		{"name": "A", "filename": "a.pdf", "ingredients_normalized": ["egg", "flour"]},
		{"name": "B", "filename": "b.pdf", "ingredients_normalized": ["egg", "rice"]},
		{"name": "C", "filename": "c.pdf", "ingredients_normalized": ["egg"]},
		{"name": "", "filename": "bad.pdf", "ingredients_normalized": ["egg"]}
	]`)

	cat, err := Load(path)
	require.NoError(t, err)

	stats := cat.Stats(2)
	assert.Equal(t, 3, stats.RecipeCount)
	assert.Equal(t, 3, stats.IngredientCount)
	assert.Equal(t, 1, stats.Quarantined)

	require.Len(t, stats.TopIngredients, 2)
	assert.Equal(t, "egg", stats.TopIngredients[0].Token)
	assert.Equal(t, 3, stats.TopIngredients[0].Recipes)
	// Ties break alphabetically.
	assert.Equal(t, "flour", stats.TopIngredients[1].Token)
}
