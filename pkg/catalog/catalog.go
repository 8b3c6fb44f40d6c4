package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/korjavin/recipefinder/pkg/ingredient"
	"github.com/korjavin/recipefinder/pkg/logger"
	"github.com/korjavin/recipefinder/pkg/models"
)

// Catalog is the read-only set of recipes available for search. It is
// loaded once at startup and never mutated, so it is safe to share across
// goroutines without locking.
type Catalog struct {
	recipes     []models.Recipe
	quarantined int
	logger      *logger.Logger
}

// record mirrors the on-disk JSON shape. Fields the producer may omit are
// validated in validate() rather than trusted.
type record struct {
	Name            string   `json:"name"`
	Filename        string   `json:"filename"`
	RawIngredients  []string `json:"ingredients_raw"`
	Tokens          []string `json:"ingredients_normalized"`
	IngredientCount int      `json:"ingredient_count"`
}

// Load reads the recipe catalog from a JSON file. Records that fail
// validation are quarantined: logged and excluded from search, never fatal.
// Only an unreadable or syntactically invalid file is an error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	c := &Catalog{logger: logger.New("")}
	for i, rec := range records {
		recipe, err := rec.validate()
		if err != nil {
			c.logger.Warn("Quarantined catalog record %d (%q): %v", i, rec.Name, err)
			c.quarantined++
			continue
		}
		c.recipes = append(c.recipes, recipe)
	}

	c.logger.Info("Catalog loaded: %d recipes, %d quarantined", len(c.recipes), c.quarantined)
	return c, nil
}

// validate turns a raw record into a Recipe. Tokens from disk are passed
// through the same normalizer used on query terms, so both sides of a match
// are guaranteed symmetric treatment; duplicates collapse and the
// ingredient count is recomputed from the resulting set.
func (r record) validate() (models.Recipe, error) {
	if r.Name == "" {
		return models.Recipe{}, fmt.Errorf("missing name")
	}
	if r.Filename == "" {
		return models.Recipe{}, fmt.Errorf("missing filename")
	}

	tokens := ingredient.NormalizeAll(r.Tokens)
	if len(tokens) == 0 {
		// Fall back to the raw phrases when the producer did not
		// pre-normalize.
		tokens = ingredient.NormalizeAll(r.RawIngredients)
	}
	if len(tokens) == 0 {
		return models.Recipe{}, fmt.Errorf("no usable ingredient tokens")
	}

	return models.Recipe{
		Name:            r.Name,
		Filename:        r.Filename,
		RawIngredients:  r.RawIngredients,
		Tokens:          tokens,
		IngredientCount: len(tokens),
	}, nil
}

// Recipes returns the loaded recipes in catalog order. Callers must not
// mutate the returned slice.
func (c *Catalog) Recipes() []models.Recipe {
	return c.recipes
}

// Len returns the number of searchable recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Quarantined returns the number of records dropped during load.
func (c *Catalog) Quarantined() int {
	return c.quarantined
}

// Stats computes summary statistics over the catalog: recipe count,
// distinct ingredient count, and the ingredients used by the most recipes.
func (c *Catalog) Stats(topN int) models.CatalogStats {
	counts := make(map[string]int)
	for _, recipe := range c.recipes {
		for _, token := range recipe.Tokens {
			counts[token]++
		}
	}

	top := make([]models.IngredientCount, 0, len(counts))
	for token, n := range counts {
		top = append(top, models.IngredientCount{Token: token, Recipes: n})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Recipes != top[j].Recipes {
			return top[i].Recipes > top[j].Recipes
		}
		return top[i].Token < top[j].Token
	})
	if topN > 0 && len(top) > topN {
		top = top[:topN]
	}

	return models.CatalogStats{
		RecipeCount:     len(c.recipes),
		IngredientCount: len(counts),
		Quarantined:     c.quarantined,
		TopIngredients:  top,
	}
}
