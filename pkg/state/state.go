package state

import (
	"sync"
	"time"
)

// Mode is the view a chat is currently in.
type Mode string

const (
	// ModeSearching is the default mode: the chat is browsing results.
	ModeSearching Mode = "searching"
	// ModeViewing means a recipe document is open in the chat.
	ModeViewing Mode = "viewing"
)

// View is the presentation state of a chat: either searching, or viewing a
// selected recipe identified by its catalog index.
type View struct {
	Mode        Mode
	RecipeIndex int
	Timestamp   time.Time
}

// Manager tracks the view state of each chat. States are in-memory only
// and expire back to searching after maxAge.
type Manager struct {
	views  map[int64]View
	maxAge time.Duration
	mu     sync.RWMutex
}

// New creates a new state manager. Entries older than 10 minutes read as
// searching.
func New() *Manager {
	return &Manager{
		views:  make(map[int64]View),
		maxAge: 10 * time.Minute,
	}
}

// SetViewing marks the chat as viewing the recipe at the given catalog index.
func (m *Manager) SetViewing(chatID int64, recipeIndex int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views[chatID] = View{
		Mode:        ModeViewing,
		RecipeIndex: recipeIndex,
		Timestamp:   time.Now(),
	}
}

// SetSearching returns the chat to the search view.
func (m *Manager) SetSearching(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.views, chatID)
}

// GetView returns the current view for a chat. Expired or unknown chats are
// searching.
func (m *Manager) GetView(chatID int64) View {
	m.mu.RLock()
	view, ok := m.views[chatID]
	m.mu.RUnlock()

	if !ok {
		return View{Mode: ModeSearching}
	}
	if time.Since(view.Timestamp) > m.maxAge {
		m.mu.Lock()
		delete(m.views, chatID)
		m.mu.Unlock()
		return View{Mode: ModeSearching}
	}
	return view
}
