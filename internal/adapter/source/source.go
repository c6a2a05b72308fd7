package source

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/kutubxona/internal/adapter"
	"github.com/mmcdole/kutubxona/internal/adapter/source/mock"
	"github.com/mmcdole/kutubxona/internal/domain"
)

// NewBookSource creates the domain.BookSource described by the catalog config.
// A seed file replaces the built-in catalog.
func NewBookSource(cfg *adapter.CatalogConfig, logger *slog.Logger) (domain.BookSource, error) {
	if cfg == nil {
		return nil, fmt.Errorf("catalog config is nil")
	}

	if cfg.SeedFile != "" {
		src, err := mock.NewBookSourceFromFile(cfg.SeedFile, cfg.LoadLatency, logger)
		if err != nil {
			return nil, err
		}
		return src, nil
	}

	src, err := mock.NewBookSource(cfg.LoadLatency, logger)
	if err != nil {
		return nil, err
	}
	return src, nil
}
