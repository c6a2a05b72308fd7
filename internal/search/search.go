// Package search offers "did you mean" suggestions when a catalog filter
// comes back empty. It never changes what the catalog's own filter returns.
package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sfuzzy "github.com/sahilm/fuzzy"

	"github.com/mmcdole/kutubxona/internal/domain"
)

// Suggestion is a book that loosely matches a search term
type Suggestion struct {
	Book     domain.Book
	Distance int // Levenshtein distance to the matched text (lower = closer)
}

// SuggestBooks returns up to limit books whose title or author contains the
// letters of term in order, ignoring case and diacritics. Closest first;
// equal distances keep collection order.
func SuggestBooks(term string, books []domain.Book, limit int) []Suggestion {
	term = strings.TrimSpace(term)
	if term == "" || limit <= 0 || len(books) == 0 {
		return nil
	}

	targets := make([]string, len(books))
	for i, b := range books {
		targets[i] = b.Title + " " + b.Author
	}

	ranks := fuzzy.RankFindNormalizedFold(term, targets)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	if len(ranks) > limit {
		ranks = ranks[:limit]
	}

	out := make([]Suggestion, len(ranks))
	for i, r := range ranks {
		out[i] = Suggestion{Book: books[r.OriginalIndex], Distance: r.Distance}
	}
	return out
}

// ClosestCategory returns the category that best matches input, skipping
// domain.CategoryAll. An exact match ignoring case always wins.
func ClosestCategory(input string, categories []string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	candidates := make([]string, 0, len(categories))
	lower := make([]string, 0, len(categories))
	for _, c := range categories {
		if c == domain.CategoryAll {
			continue
		}
		if strings.EqualFold(c, input) {
			return c, true
		}
		candidates = append(candidates, c)
		lower = append(lower, strings.ToLower(c))
	}

	matches := sfuzzy.Find(strings.ToLower(input), lower)
	if len(matches) == 0 {
		return "", false
	}
	return candidates[matches[0].Index], true
}
