package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/kutubxona/internal/domain"
)

// CatalogLoader is the part of the catalog store the loader drives
type CatalogLoader interface {
	Load(ctx context.Context) error
	Books() []domain.Book
}

// Command factories for async operations

// LoadCatalogCmd loads the catalog, giving up after timeout
func LoadCatalogCmd(ctx context.Context, loader CatalogLoader, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if err := loader.Load(ctx); err != nil {
			return ErrMsg{Err: err, Context: "loading catalog"}
		}
		return CatalogLoadedMsg{Count: len(loader.Books())}
	}
}
