package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_Format(t *testing.T) {
	b := Book{Formats: []string{"PDF", "EPUB"}}

	got, ok := b.Format("epub")
	assert.True(t, ok)
	assert.Equal(t, "EPUB", got)

	got, ok = b.Format(" PDF ")
	assert.True(t, ok)
	assert.Equal(t, "PDF", got)

	_, ok = b.Format("MOBI")
	assert.False(t, ok)

	_, ok = Book{}.Format("PDF")
	assert.False(t, ok)
}

func TestBookPatch_ApplyKeepsID(t *testing.T) {
	title := "Yangi"
	b := Book{ID: 4, Title: "Eski", Formats: []string{"PDF"}}

	got := BookPatch{Title: &title, Formats: []string{"EPUB"}}.Apply(b)

	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, "Yangi", got.Title)
	assert.Equal(t, []string{"EPUB"}, got.Formats)
	assert.Equal(t, []string{"PDF"}, b.Formats)
	assert.True(t, BookPatch{}.IsEmpty())
}
