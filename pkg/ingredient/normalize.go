package ingredient

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
	reNumber  = regexp.MustCompile(`^\p{N}+$`)
)

// unitWords are quantity/unit tokens stripped from the front of a phrase.
// "1 cup flour" and "2 tbsp olive oil" should both reduce to the bare
// ingredient name.
var unitWords = map[string]bool{
	"cup": true, "cups": true,
	"tablespoon": true, "tablespoons": true, "tbsp": true,
	"teaspoon": true, "teaspoons": true, "tsp": true,
	"ounce": true, "ounces": true, "oz": true,
	"pound": true, "pounds": true, "lb": true, "lbs": true,
	"gram": true, "grams": true, "g": true, "kg": true,
	"ml": true, "l": true, "liter": true, "liters": true,
	"pinch": true, "dash": true, "clove": true, "cloves": true,
	"slice": true, "slices": true, "piece": true, "pieces": true,
	"can": true, "cans": true, "package": true, "packages": true,
	"a": true, "an": true, "of": true, "some": true,
	"large": true, "small": true, "medium": true, "fresh": true,
}

// Normalize maps a raw ingredient phrase to a canonical token: lowercase,
// punctuation and digits dropped, leading quantity/unit words stripped,
// whitespace collapsed, and a trailing plural reduced to singular. The
// plural handling is a heuristic ("s"/"es" trimming), not a stemmer.
//
// Normalize is pure and total: it never fails, and for malformed input it
// returns a best-effort cleaned string, possibly empty. It is idempotent.
func Normalize(phrase string) string {
	s := strings.ToLower(phrase)

	// Preparation notes and parenthesized quantities trail the ingredient
	// name: "flour, sifted", "butter (softened)".
	if idx := strings.IndexAny(s, ",("); idx > 0 {
		s = s[:idx]
	}

	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	words := strings.Fields(s)

	// Strip leading quantities and units, but never strip the whole phrase:
	// "2 cups flour" -> "flour", while "can" alone stays "can".
	start := 0
	for start < len(words)-1 {
		w := words[start]
		if reNumber.MatchString(w) || unitWords[w] {
			start++
			continue
		}
		break
	}
	words = words[start:]

	for i, w := range words {
		words[i] = singular(w)
	}

	return strings.Join(words, " ")
}

// NormalizeAll normalizes every phrase in the list and de-duplicates the
// results, preserving first-seen order. Phrases that normalize to the empty
// string are dropped.
func NormalizeAll(phrases []string) []string {
	seen := make(map[string]bool, len(phrases))
	tokens := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		token := Normalize(phrase)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}

// singular trims a simple English plural suffix. Words of three runes or
// fewer are left alone so "gas" or "peas" do not collapse into nonsense.
func singular(w string) string {
	r := []rune(w)
	if len(r) <= 3 {
		return w
	}
	switch {
	case strings.HasSuffix(w, "ies"):
		// berries -> berry
		return string(r[:len(r)-3]) + "y"
	case strings.HasSuffix(w, "oes") || strings.HasSuffix(w, "ches") || strings.HasSuffix(w, "shes") || strings.HasSuffix(w, "sses"):
		// tomatoes -> tomato, peaches -> peach
		return string(r[:len(r)-2])
	case strings.HasSuffix(w, "ss") || strings.HasSuffix(w, "us"):
		// molasses, asparagus: not plurals
		return w
	case strings.HasSuffix(w, "s"):
		return string(r[:len(r)-1])
	}
	return w
}
