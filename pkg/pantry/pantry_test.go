package pantry

import (
	"testing"

	"github.com/korjavin/recipefinder/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store)
}

func TestAddTerm(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	chatID := int64(42)

	normalized, added, err := svc.AddTerm(chatID, "Chicken Breasts")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "chicken breast", normalized)

	// Different spelling of the same ingredient occupies the same slot.
	_, added, err = svc.AddTerm(chatID, "chicken breast")
	require.NoError(t, err)
	assert.False(t, added)

	terms, err := svc.ListTerms(chatID)
	require.NoError(t, err)
	assert.Equal(t, []string{"chicken breast"}, terms)
}

func TestAddTerm_BlankIgnored(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	chatID := int64(42)

	normalized, added, err := svc.AddTerm(chatID, "  !! ")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, normalized)

	terms, err := svc.ListTerms(chatID)
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestAddTerms(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	chatID := int64(7)

	added, err := svc.AddTerms(chatID, []string{"2 Eggs", "rice", "", "egg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"egg", "rice"}, added)

	terms, err := svc.ListTerms(chatID)
	require.NoError(t, err)
	assert.Equal(t, []string{"egg", "rice"}, terms)
}

func TestRemoveTerm(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	chatID := int64(7)

	_, _, err := svc.AddTerm(chatID, "tomatoes")
	require.NoError(t, err)

	// Removal normalizes too, so any spelling that maps to the same token
	// works.
	removed, err := svc.RemoveTerm(chatID, "Tomato")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.RemoveTerm(chatID, "tomato")
	require.NoError(t, err)
	assert.False(t, removed)

	terms, err := svc.ListTerms(chatID)
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestClear(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	chatID := int64(9)

	_, err := svc.AddTerms(chatID, []string{"flour", "milk"})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(chatID))

	terms, err := svc.ListTerms(chatID)
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestPantriesAreIsolatedPerChat(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, _, err := svc.AddTerm(1, "flour")
	require.NoError(t, err)
	_, _, err = svc.AddTerm(2, "rice")
	require.NoError(t, err)

	terms1, err := svc.ListTerms(1)
	require.NoError(t, err)
	terms2, err := svc.ListTerms(2)
	require.NoError(t, err)

	assert.Equal(t, []string{"flour"}, terms1)
	assert.Equal(t, []string{"rice"}, terms2)
}
