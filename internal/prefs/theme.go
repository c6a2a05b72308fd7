// Package prefs manages display preferences that outlive the process.
package prefs

import (
	"log/slog"
	"sync"

	"github.com/mmcdole/kutubxona/internal/domain"
)

// Theme tracks the dark mode preference. The stored value is read once at
// construction and rewritten on every change.
type Theme struct {
	mu     sync.Mutex
	store  domain.ThemeStore
	logger *slog.Logger
	dark   bool
}

// NewTheme loads the saved preference, falling back to defaultDark when none exists
func NewTheme(store domain.ThemeStore, defaultDark bool, logger *slog.Logger) *Theme {
	if logger == nil {
		logger = slog.Default()
	}
	dark, ok := store.GetDarkMode()
	if !ok {
		dark = defaultDark
	}
	return &Theme{store: store, logger: logger, dark: dark}
}

// DarkMode reports the current preference
func (t *Theme) DarkMode() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dark
}

// SetDarkMode sets the preference, writing it when it changes
func (t *Theme) SetDarkMode(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.dark == on {
		return
	}
	t.dark = on
	t.persist()
}

// Toggle flips the preference and returns the new value
func (t *Theme) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dark = !t.dark
	t.persist()
	return t.dark
}

func (t *Theme) persist() {
	if err := t.store.SetDarkMode(t.dark); err != nil {
		t.logger.Error("failed to persist theme", "error", err, "darkMode", t.dark)
	}
}
