package mock

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mmcdole/kutubxona/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed books.yaml
var seedCatalog []byte

var _ domain.BookSource = (*BookSource)(nil)

// BookSource implements domain.BookSource over a fixed YAML catalog.
// Every fetch waits the configured latency before answering.
type BookSource struct {
	books   []domain.Book
	latency time.Duration
	logger  *slog.Logger
}

// NewBookSource creates a source serving the built-in catalog
func NewBookSource(latency time.Duration, logger *slog.Logger) (*BookSource, error) {
	return newBookSource(seedCatalog, latency, logger)
}

// NewBookSourceFromFile creates a source serving the catalog in a YAML file
func NewBookSourceFromFile(path string, latency time.Duration, logger *slog.Logger) (*BookSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return newBookSource(data, latency, logger)
}

func newBookSource(data []byte, latency time.Duration, logger *slog.Logger) (*BookSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	books, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	return &BookSource{books: books, latency: latency, logger: logger}, nil
}

// ParseCatalog decodes a YAML list of books and rejects duplicate IDs
func ParseCatalog(data []byte) ([]domain.Book, error) {
	var books []domain.Book
	if err := yaml.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[int64]bool, len(books))
	for _, b := range books {
		if seen[b.ID] {
			return nil, fmt.Errorf("duplicate book id %d in catalog", b.ID)
		}
		seen[b.ID] = true
	}
	return books, nil
}

// FetchBooks returns a copy of the whole catalog after the simulated latency
func (s *BookSource) FetchBooks(ctx context.Context) ([]domain.Book, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	books := make([]domain.Book, len(s.books))
	for i, b := range s.books {
		books[i] = b.Clone()
	}
	s.logger.Debug("fetched books", "count", len(books))
	return books, nil
}
