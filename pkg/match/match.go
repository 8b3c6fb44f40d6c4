package match

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/korjavin/recipefinder/pkg/ingredient"
	"github.com/korjavin/recipefinder/pkg/models"
)

// DefaultThreshold is the minimum normalized Levenshtein similarity for two
// tokens to count as a fuzzy match. 0.72 lets one edit through on a
// five-letter word ("chiken" vs "chicken" scores 0.857) while keeping
// unrelated short tokens apart ("ham" vs "cream" scores 0.2). Looser values
// start matching across ingredient families; stricter ones reject common
// misspellings.
const DefaultThreshold = 0.72

// Containment below these lengths is ignored, so "rice" does not match via
// the "ice" inside it.
const (
	minTermRunes = 3
	minWordRunes = 2
)

// Matcher answers whether a user-supplied ingredient term matches any token
// of a recipe, and filters a catalog down to fully matched recipes. It is
// stateless apart from the similarity threshold and safe for concurrent use.
type Matcher struct {
	threshold float64
}

// New creates a Matcher with the given similarity threshold. A zero or
// negative threshold falls back to DefaultThreshold.
func New(threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// TermMatches reports whether the term fuzzily matches at least one of the
// candidate tokens. The term is normalized first; tokens are assumed to be
// normalized already (the catalog loader guarantees this). Matching is
// existential: the first satisfying token wins.
func (m *Matcher) TermMatches(term string, tokens []string) bool {
	_, ok := m.matchToken(term, tokens)
	return ok
}

// matchToken returns the first candidate token the term matches.
func (m *Matcher) matchToken(term string, tokens []string) (string, bool) {
	query := ingredient.Normalize(term)
	if query == "" {
		return "", false
	}

	for _, token := range tokens {
		if token == "" {
			continue
		}
		if m.tokenMatches(query, token) {
			return token, true
		}
	}
	return "", false
}

func (m *Matcher) tokenMatches(query, token string) bool {
	if query == token {
		return true
	}

	// Substring containment in either direction: "chicken" should match
	// "chicken breast", and "chicken breast" a recipe's "chicken". Short
	// strings are excluded to avoid accidental hits inside longer words.
	if contains(token, query) || contains(query, token) {
		return true
	}

	// Word-level containment: any sufficiently long word of the query
	// against any word of the token, e.g. "boneless chicken" vs
	// "chicken thigh".
	queryWords := strings.Fields(query)
	tokenWords := strings.Fields(token)
	for _, qw := range queryWords {
		if len([]rune(qw)) < minTermRunes {
			continue
		}
		for _, tw := range tokenWords {
			if len([]rune(tw)) < minWordRunes {
				continue
			}
			if strings.Contains(tw, qw) || strings.Contains(qw, tw) {
				return true
			}
		}
	}

	// Edit-distance similarity, whole strings first, then per-word so a
	// misspelled "zuccini" still finds "zucchini noodles".
	if similarity(query, token) >= m.threshold {
		return true
	}
	for _, qw := range queryWords {
		if len([]rune(qw)) < minTermRunes {
			continue
		}
		for _, tw := range tokenWords {
			if similarity(qw, tw) >= m.threshold {
				return true
			}
		}
	}

	return false
}

// Search filters the catalog down to recipes whose token sets fuzzily cover
// every query term (conjunctive semantics). Catalog order is preserved. An
// empty term list means "no constraint yet" and returns the whole catalog.
// Recipes without tokens never match a non-empty query. Search is a pure
// function of its inputs and never fails.
func (m *Matcher) Search(catalog []models.Recipe, terms []string) []models.MatchResult {
	results := make([]models.MatchResult, 0, len(catalog))

	terms = nonBlank(terms)
	if len(terms) == 0 {
		for i, recipe := range catalog {
			results = append(results, models.MatchResult{
				Recipe:    recipe,
				Index:     i,
				Remaining: recipe.Tokens,
			})
		}
		return results
	}

	for i, recipe := range catalog {
		if len(recipe.Tokens) == 0 {
			continue
		}

		matched := make(map[string]bool, len(terms))
		hasAll := true
		for _, term := range terms {
			token, ok := m.matchToken(term, recipe.Tokens)
			if !ok {
				hasAll = false
				break
			}
			matched[token] = true
		}
		if !hasAll {
			continue
		}

		result := models.MatchResult{Recipe: recipe, Index: i}
		for _, token := range recipe.Tokens {
			if matched[token] {
				result.Matched = append(result.Matched, token)
			} else {
				result.Remaining = append(result.Remaining, token)
			}
		}
		results = append(results, result)
	}

	return results
}

// contains reports whether needle occurs inside haystack, ignoring needles
// shorter than minTermRunes.
func contains(haystack, needle string) bool {
	if len([]rune(needle)) < minTermRunes {
		return false
	}
	return strings.Contains(haystack, needle)
}

// similarity is a 0.0-1.0 score between two strings using Levenshtein
// distance: 1.0 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

func nonBlank(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}
