package mock

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewBookSource_BuiltInCatalog(t *testing.T) {
	src, err := NewBookSource(0, nil)
	require.NoError(t, err)

	books, err := src.FetchBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 6)

	first := books[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "O'tkan kunlar", first.Title)
	assert.Equal(t, "Abdulla Qodiriy", first.Author)
	assert.Equal(t, "Adabiyot", first.Category)
	assert.Equal(t, 1925, first.Year)
	assert.Equal(t, []string{"PDF", "EPUB"}, first.Formats)
	assert.InDelta(t, 4.8, first.Rating, 1e-9)
	assert.Equal(t, 2340, first.DownloadCount)
	assert.Equal(t, "/placeholder.svg?height=300&width=200", first.Cover)

	assert.Equal(t, "Texnologiya", books[3].Category)
	assert.Equal(t, 1312, books[3].Pages)
}

func TestFetchBooks_ReturnsCopies(t *testing.T) {
	src, err := NewBookSource(0, nil)
	require.NoError(t, err)

	books, err := src.FetchBooks(context.Background())
	require.NoError(t, err)
	books[0].Title = "changed"
	books[0].Formats[0] = "DOC"

	again, err := src.FetchBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "O'tkan kunlar", again[0].Title)
	assert.Equal(t, "PDF", again[0].Formats[0])
}

func TestFetchBooks_WaitsLatency(t *testing.T) {
	src, err := NewBookSource(20*time.Millisecond, nil)
	require.NoError(t, err)

	start := time.Now()
	_, err = src.FetchBooks(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFetchBooks_Cancelled(t *testing.T) {
	src, err := NewBookSource(time.Hour, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	books, err := src.FetchBooks(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, books)
}

func TestFetchBooks_CancelledWithoutLatency(t *testing.T) {
	src, err := NewBookSource(0, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = src.FetchBooks(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewBookSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: 10
  title: Kecha va kunduz
  author: Cho'lpon
  category: Adabiyot
  format: [EPUB]
`), 0644))

	src, err := NewBookSourceFromFile(path, 0, nil)
	require.NoError(t, err)

	books, err := src.FetchBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, int64(10), books[0].ID)
	assert.Equal(t, "Cho'lpon", books[0].Author)
}

func TestNewBookSourceFromFile_Missing(t *testing.T) {
	_, err := NewBookSourceFromFile(filepath.Join(t.TempDir(), "missing.yaml"), 0, nil)
	assert.Error(t, err)
}

func TestParseCatalog_RejectsDuplicateIDs(t *testing.T) {
	_, err := ParseCatalog([]byte("- id: 1\n  title: A\n- id: 1\n  title: B\n"))
	assert.ErrorContains(t, err, "duplicate book id 1")
}

func TestParseCatalog_Malformed(t *testing.T) {
	_, err := ParseCatalog([]byte("id: [unterminated"))
	assert.Error(t, err)
}
