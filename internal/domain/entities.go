package domain

import (
	"fmt"
	"slices"
	"strings"
)

// CategoryAll is the category that matches every book. No book carries it.
const CategoryAll = "Barchasi"

// Book is a single catalog entry.
type Book struct {
	ID            int64    `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Author        string   `json:"author" yaml:"author"`
	Category      string   `json:"category" yaml:"category"`
	Year          int      `json:"year" yaml:"year"`
	Description   string   `json:"description" yaml:"description"`
	Pages         int      `json:"pages" yaml:"pages"`
	Language      string   `json:"language" yaml:"language"`
	Formats       []string `json:"format" yaml:"format"` // e.g. PDF, EPUB, MOBI
	Rating        float64  `json:"rating" yaml:"rating"` // 0.0 - 5.0
	Reviews       int      `json:"reviews" yaml:"reviews"`
	DownloadCount int      `json:"downloadCount" yaml:"downloadCount"`
	Cover         string   `json:"cover" yaml:"cover"` // Cover image reference
}

// Clone returns a copy that shares no slices with b.
func (b Book) Clone() Book {
	b.Formats = slices.Clone(b.Formats)
	return b
}

// FormatList returns the available formats as a display string
func (b Book) FormatList() string {
	return strings.Join(b.Formats, ", ")
}

// Format returns the offered format matching name, ignoring case
func (b Book) Format(name string) (string, bool) {
	for _, f := range b.Formats {
		if strings.EqualFold(f, strings.TrimSpace(name)) {
			return f, true
		}
	}
	return "", false
}

// FormattedRating returns the rating with one decimal place
func (b Book) FormattedRating() string {
	return fmt.Sprintf("%.1f", b.Rating)
}

// BookInput carries the caller-supplied fields of a new book.
// Identifier and counters are assigned by the catalog.
type BookInput struct {
	Title       string
	Author      string
	Category    string
	Year        int
	Description string
	Pages       int
	Language    string
	Formats     []string
	Cover       string
}

// BookPatch is a partial update. Nil fields are left untouched.
type BookPatch struct {
	Title         *string
	Author        *string
	Category      *string
	Year          *int
	Description   *string
	Pages         *int
	Language      *string
	Formats       []string // nil = unchanged; replaces the slice when set
	Rating        *float64
	Reviews       *int
	DownloadCount *int
	Cover         *string
}

// IsEmpty reports whether the patch supplies no fields.
func (p BookPatch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Category == nil &&
		p.Year == nil && p.Description == nil && p.Pages == nil &&
		p.Language == nil && p.Formats == nil && p.Rating == nil &&
		p.Reviews == nil && p.DownloadCount == nil && p.Cover == nil
}

// Apply returns b with every supplied field of p merged over it.
// The identifier never changes.
func (p BookPatch) Apply(b Book) Book {
	b = b.Clone()
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Pages != nil {
		b.Pages = *p.Pages
	}
	if p.Language != nil {
		b.Language = *p.Language
	}
	if p.Formats != nil {
		b.Formats = slices.Clone(p.Formats)
	}
	if p.Rating != nil {
		b.Rating = *p.Rating
	}
	if p.Reviews != nil {
		b.Reviews = *p.Reviews
	}
	if p.DownloadCount != nil {
		b.DownloadCount = *p.DownloadCount
	}
	if p.Cover != nil {
		b.Cover = *p.Cover
	}
	return b
}
