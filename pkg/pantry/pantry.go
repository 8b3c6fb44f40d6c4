package pantry

import (
	"fmt"
	"sort"
	"time"

	"github.com/korjavin/recipefinder/pkg/ingredient"
	"github.com/korjavin/recipefinder/pkg/logger"
	"github.com/korjavin/recipefinder/pkg/models"
	"github.com/korjavin/recipefinder/pkg/storage"
)

// Service manages the per-chat pantry: the set of ingredient terms a chat
// has collected to search with. Terms are keyed by their normalized form,
// so "Eggs" and "eggs" occupy one slot.
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new pantry service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New(""),
	}
}

// GetPantry retrieves the pantry for a chat, creating an empty one if none
// exists yet.
func (s *Service) GetPantry(chatID int64) (*models.Pantry, error) {
	pantryKey := fmt.Sprintf("pantry:%d", chatID)

	var pantry models.Pantry
	err := s.store.Get(pantryKey, &pantry)
	if err != nil {
		pantry = models.Pantry{
			ID:          pantryKey,
			ChatID:      chatID,
			Terms:       make(map[string]models.Term),
			LastUpdated: time.Now(),
		}

		if err := s.store.Set(pantryKey, pantry); err != nil {
			return nil, fmt.Errorf("failed to create pantry: %w", err)
		}
	}

	if pantry.Terms == nil {
		pantry.Terms = make(map[string]models.Term)
	}

	return &pantry, nil
}

// AddTerm adds one ingredient term to the pantry. Terms that normalize to
// the empty string are ignored. Returns the normalized form and whether the
// term was new.
func (s *Service) AddTerm(chatID int64, raw string) (string, bool, error) {
	normalized := ingredient.Normalize(raw)
	if normalized == "" {
		return "", false, nil
	}

	pantry, err := s.GetPantry(chatID)
	if err != nil {
		return "", false, err
	}

	_, exists := pantry.Terms[normalized]
	pantry.Terms[normalized] = models.Term{
		Raw:     raw,
		AddedAt: time.Now(),
	}
	pantry.LastUpdated = time.Now()

	if err := s.store.Set(pantry.ID, pantry); err != nil {
		return "", false, err
	}
	return normalized, !exists, nil
}

// AddTerms adds multiple terms at once and returns the normalized forms
// that were actually added (new and non-empty).
func (s *Service) AddTerms(chatID int64, raws []string) ([]string, error) {
	pantry, err := s.GetPantry(chatID)
	if err != nil {
		return nil, err
	}

	var added []string
	for _, raw := range raws {
		normalized := ingredient.Normalize(raw)
		if normalized == "" {
			continue
		}
		if _, exists := pantry.Terms[normalized]; !exists {
			added = append(added, normalized)
		}
		pantry.Terms[normalized] = models.Term{
			Raw:     raw,
			AddedAt: time.Now(),
		}
	}
	pantry.LastUpdated = time.Now()

	if err := s.store.Set(pantry.ID, pantry); err != nil {
		return nil, err
	}
	return added, nil
}

// RemoveTerm removes an ingredient term from the pantry. The raw form is
// normalized first, so users can remove with any spelling that maps to the
// same token. Returns whether the term was present.
func (s *Service) RemoveTerm(chatID int64, raw string) (bool, error) {
	normalized := ingredient.Normalize(raw)
	if normalized == "" {
		return false, nil
	}

	pantry, err := s.GetPantry(chatID)
	if err != nil {
		return false, err
	}

	_, exists := pantry.Terms[normalized]
	if !exists {
		return false, nil
	}

	delete(pantry.Terms, normalized)
	pantry.LastUpdated = time.Now()

	return true, s.store.Set(pantry.ID, pantry)
}

// ListTerms returns the normalized pantry terms in sorted order, so chat
// renderings are stable between calls.
func (s *Service) ListTerms(chatID int64) ([]string, error) {
	pantry, err := s.GetPantry(chatID)
	if err != nil {
		return nil, err
	}

	terms := make([]string, 0, len(pantry.Terms))
	for term := range pantry.Terms {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	return terms, nil
}

// Clear resets the pantry for a chat
func (s *Service) Clear(chatID int64) error {
	pantryKey := fmt.Sprintf("pantry:%d", chatID)

	pantry := models.Pantry{
		ID:          pantryKey,
		ChatID:      chatID,
		Terms:       make(map[string]models.Term),
		LastUpdated: time.Now(),
	}

	return s.store.Set(pantryKey, pantry)
}
