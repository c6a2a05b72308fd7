// Package catalog holds the in-memory book catalog: the collection itself,
// the search and category filter, and the saved book list.
package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mmcdole/kutubxona/internal/domain"
)

// Store owns the book collection and every piece of state derived from it.
// Reads recompute the filtered view on each call; nothing is cached.
type Store struct {
	source domain.BookSource
	saved  domain.SavedBooksStore
	logger *slog.Logger
	now    func() time.Time

	mu         sync.RWMutex
	books      []domain.Book // Insertion order is display order
	savedIDs   []int64
	searchTerm string
	category   string
	loading    bool
	lastID     int64 // Highest ID ever held; new IDs are always above it
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source used for new book IDs
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store. The saved book list is read from saved once, here.
func New(source domain.BookSource, saved domain.SavedBooksStore, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		source:   source,
		saved:    saved,
		logger:   logger,
		now:      time.Now,
		category: domain.CategoryAll,
		loading:  true,
	}
	for _, opt := range opts {
		opt(s)
	}

	if ids, ok := saved.GetSavedBooks(); ok {
		s.savedIDs = ids
	}
	s.logger.Debug("restored saved books", "count", len(s.savedIDs))
	return s
}

// Load replaces the collection with the source's catalog and clears the
// loading flag. On failure the store is left untouched.
func (s *Store) Load(ctx context.Context) error {
	books, err := s.source.FetchBooks(ctx)
	if err != nil {
		s.logger.Error("failed to load books", "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = books
	for _, b := range books {
		if b.ID > s.lastID {
			s.lastID = b.ID
		}
	}
	s.loading = false
	s.logger.Info("loaded books", "count", len(books))
	return nil
}

// Loading reports whether the first load has not completed yet
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// indexOf returns the position of id in the collection, or -1.
// Callers hold s.mu.
func (s *Store) indexOf(id int64) int {
	for i, b := range s.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// nextID returns a time-derived ID strictly above every ID seen so far.
// Callers hold s.mu for writing.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
