package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mmcdole/kutubxona/internal/domain"
)

// Books returns the whole collection in insertion order
func (s *Store) Books() []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBooks(s.books)
}

// Book returns the book with id
func (s *Store) Book(id int64) (domain.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.books[i].Clone(), true
	}
	return domain.Book{}, false
}

// SearchTerm returns the current search text
func (s *Store) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchTerm
}

// SelectedCategory returns the current category filter
func (s *Store) SelectedCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category
}

// FilteredBooks returns, in collection order, the books whose title or
// author contains the search term (ignoring case) and whose category is the
// selected one, unless the selection is domain.CategoryAll.
func (s *Store) FilteredBooks() []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(s.searchTerm)
	var out []domain.Book
	for _, b := range s.books {
		if !matchesSearch(b, term) {
			continue
		}
		if s.category != domain.CategoryAll && b.Category != s.category {
			continue
		}
		out = append(out, b.Clone())
	}
	return out
}

func matchesSearch(b domain.Book, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(b.Title), lowerTerm) ||
		strings.Contains(strings.ToLower(b.Author), lowerTerm)
}

// Categories returns domain.CategoryAll followed by each distinct category
// in the order it first appears in the collection. The sentinel is listed
// once even if a book carries it.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cats := []string{domain.CategoryAll}
	seen := map[string]bool{domain.CategoryAll: true}
	for _, b := range s.books {
		if seen[b.Category] {
			continue
		}
		seen[b.Category] = true
		cats = append(cats, b.Category)
	}
	return cats
}

// SavedIDs returns the saved list as stored, including IDs of deleted books
func (s *Store) SavedIDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.savedIDs)
}

// IsSaved reports whether id is on the saved list
func (s *Store) IsSaved(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.savedIDs, id)
}

// SavedBooks resolves the saved list against the collection, in collection
// order. IDs with no matching book are skipped.
func (s *Store) SavedBooks() []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.savedBooksLocked()
}

func (s *Store) savedBooksLocked() []domain.Book {
	var out []domain.Book
	for _, b := range s.books {
		if slices.Contains(s.savedIDs, b.ID) {
			out = append(out, b.Clone())
		}
	}
	return out
}

// TopDownloadedLimit is the length of Stats.TopDownloaded
const TopDownloadedLimit = 5

// CategoryCount is the number of books in one category
type CategoryCount struct {
	Category string
	Count    int
}

// Stats summarizes the whole catalog for the admin dashboard
type Stats struct {
	TotalBooks     int
	TotalDownloads int
	AverageRating  float64         // 0 when the catalog is empty
	ByCategory     []CategoryCount // First-seen order
	TopDownloaded  []domain.Book   // Most downloaded first; ties keep collection order
}

// Stats computes catalog-wide totals
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{TotalBooks: len(s.books)}
	var ratingSum float64
	index := make(map[string]int)
	for _, b := range s.books {
		st.TotalDownloads += b.DownloadCount
		ratingSum += b.Rating

		i, ok := index[b.Category]
		if !ok {
			i = len(st.ByCategory)
			index[b.Category] = i
			st.ByCategory = append(st.ByCategory, CategoryCount{Category: b.Category})
		}
		st.ByCategory[i].Count++
	}
	if len(s.books) == 0 {
		return st
	}
	st.AverageRating = ratingSum / float64(len(s.books))

	top := cloneBooks(s.books)
	slices.SortStableFunc(top, func(a, b domain.Book) int {
		return cmp.Compare(b.DownloadCount, a.DownloadCount)
	})
	if len(top) > TopDownloadedLimit {
		top = top[:TopDownloadedLimit]
	}
	st.TopDownloaded = top
	return st
}

// SavedStats summarizes the resolvable saved books
type SavedStats struct {
	Count         int
	TotalPages    int
	AverageRating float64 // 0 when nothing is saved
}

// SavedStats computes totals over SavedBooks
func (s *Store) SavedStats() SavedStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := s.savedBooksLocked()
	st := SavedStats{Count: len(books)}
	var ratingSum float64
	for _, b := range books {
		st.TotalPages += b.Pages
		ratingSum += b.Rating
	}
	if len(books) > 0 {
		st.AverageRating = ratingSum / float64(len(books))
	}
	return st
}

func cloneBooks(books []domain.Book) []domain.Book {
	out := make([]domain.Book, len(books))
	for i, b := range books {
		out[i] = b.Clone()
	}
	return out
}
