package catalog

import (
	"slices"

	"github.com/mmcdole/kutubxona/internal/domain"
)

// AddBook appends a new book built from in. The ID is freshly allocated and
// rating, reviews and downloads start at zero. Input is not validated.
func (s *Store) AddBook(in domain.BookInput) domain.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := domain.Book{
		ID:          s.nextID(),
		Title:       in.Title,
		Author:      in.Author,
		Category:    in.Category,
		Year:        in.Year,
		Description: in.Description,
		Pages:       in.Pages,
		Language:    in.Language,
		Formats:     slices.Clone(in.Formats),
		Cover:       in.Cover,
	}
	s.books = append(s.books, book)
	s.logger.Info("added book", "bookID", book.ID, "title", book.Title)
	return book.Clone()
}

// UpdateBook merges patch over the book with id. Unknown IDs are ignored.
func (s *Store) UpdateBook(id int64, patch domain.BookPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("update skipped, no such book", "bookID", id)
		return false
	}
	s.books[i] = patch.Apply(s.books[i])
	s.logger.Info("updated book", "bookID", id)
	return true
}

// DeleteBook removes the book with id. Unknown IDs are ignored.
// The saved list is left as is; see SavedBooks.
func (s *Store) DeleteBook(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("delete skipped, no such book", "bookID", id)
		return false
	}
	s.books = slices.Delete(s.books, i, i+1)
	s.logger.Info("deleted book", "bookID", id)
	return true
}

// SaveBook adds id to the saved list and persists the list.
// Saving an already saved ID changes nothing and writes nothing.
func (s *Store) SaveBook(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.savedIDs, id) {
		return
	}
	s.savedIDs = append(slices.Clip(s.savedIDs), id)
	s.persistSaved()
}

// UnsaveBook removes id from the saved list and persists the list.
// Unsaving an ID that is not saved changes nothing and writes nothing.
func (s *Store) UnsaveBook(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.savedIDs, id)
	if i < 0 {
		return
	}
	s.savedIDs = slices.Delete(slices.Clone(s.savedIDs), i, i+1)
	s.persistSaved()
}

// SetSearchTerm sets the text matched against titles and authors
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
}

// SelectCategory sets the category filter; domain.CategoryAll disables it
func (s *Store) SelectCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
}

// persistSaved writes the full saved list. A failed write is logged and the
// in-memory list is kept. Callers hold s.mu.
func (s *Store) persistSaved() {
	if err := s.saved.SetSavedBooks(s.savedIDs); err != nil {
		s.logger.Error("failed to persist saved books", "error", err, "count", len(s.savedIDs))
		return
	}
	s.logger.Debug("persisted saved books", "count", len(s.savedIDs))
}
