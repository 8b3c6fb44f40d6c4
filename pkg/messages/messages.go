package messages

import (
	"fmt"
	"strings"

	"github.com/korjavin/recipefinder/pkg/models"
)

// Welcome is the /start greeting.
func Welcome() string {
	return "👋 Welcome to Recipe Finder! Tell me what's in your kitchen and " +
		"I'll find recipes that use only what you have.\n\n" +
		"Commands:\n" +
		"/add <ingredient> — add an ingredient\n" +
		"/remove <ingredient> — remove one\n" +
		"/pantry — show your ingredients\n" +
		"/clear — start over\n" +
		"/find — search recipes\n" +
		"/stats — catalog statistics\n\n" +
		"You can also just send me a list like \"chicken, rice and garlic\"."
}

// PantryContents renders the current ingredient terms.
func PantryContents(terms []string) string {
	if len(terms) == 0 {
		return EmptyPantry()
	}

	var b strings.Builder
	b.WriteString("🥕 Your ingredients:\n\n")
	for _, term := range terms {
		b.WriteString("• " + term + "\n")
	}
	b.WriteString("\nUse /find to search recipes.")
	return b.String()
}

// EmptyPantry is shown when a chat has no ingredients yet.
func EmptyPantry() string {
	return "Your pantry is empty! Add ingredients with /add or just send me a list."
}

// ResultsHeader summarizes a successful search.
func ResultsHeader(count int, terms []string) string {
	plural := "s"
	if count == 1 {
		plural = ""
	}
	return fmt.Sprintf("✅ Found %d recipe%s with all of: %s", count, plural, strings.Join(terms, ", "))
}

// NoResults is shown for a search that matched nothing.
func NoResults(terms []string) string {
	return fmt.Sprintf("😢 No recipes found containing all of: %s\n\nTry removing some ingredients.",
		strings.Join(terms, ", "))
}

// ResultCard renders one matching recipe: its name, the tokens the search
// matched, and the rest of its ingredient list.
func ResultCard(result models.MatchResult) string {
	var b strings.Builder
	b.WriteString("🍳 " + result.Recipe.Name + "\n")
	for _, token := range result.Matched {
		b.WriteString("  ✓ " + token + "\n")
	}
	if len(result.Remaining) > 0 {
		b.WriteString("  also needs: " + strings.Join(result.Remaining, ", ") + "\n")
	}
	return b.String()
}

// Stats renders catalog statistics for the /stats command.
func Stats(stats models.CatalogStats) string {
	var b strings.Builder
	b.WriteString("📊 Catalog\n\n")
	fmt.Fprintf(&b, "Recipes: %d\n", stats.RecipeCount)
	fmt.Fprintf(&b, "Distinct ingredients: %d\n", stats.IngredientCount)
	if stats.Quarantined > 0 {
		fmt.Fprintf(&b, "Skipped records: %d\n", stats.Quarantined)
	}
	if len(stats.TopIngredients) > 0 {
		b.WriteString("\nMost used ingredients:\n")
		for _, ic := range stats.TopIngredients {
			fmt.Fprintf(&b, "• %s (%d recipes)\n", ic.Token, ic.Recipes)
		}
	}
	return b.String()
}

// Added confirms newly added pantry terms.
func Added(terms []string) string {
	if len(terms) == 0 {
		return "Those were already in your pantry."
	}
	return fmt.Sprintf("✅ Added %d ingredient(s): %s", len(terms), strings.Join(terms, ", "))
}

// Error is the generic failure message.
func Error(context string) string {
	return fmt.Sprintf("😢 Sorry, I couldn't %s. Please try again later.", context)
}
