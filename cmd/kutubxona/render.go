package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/kutubxona/internal/domain"
	"github.com/mmcdole/kutubxona/internal/tui/styles"
)

// printBookLine writes one catalog row
func printBookLine(w io.Writer, st styles.Styles, b domain.Book, saved bool) {
	mark := " "
	if saved {
		mark = st.Accent.Render(styles.SavedChar)
	}
	fmt.Fprintf(w, "%s %s %s  %s  %s %s\n",
		mark,
		st.Dim.Render(fmt.Sprintf("#%d", b.ID)),
		st.Title.Render(b.Title),
		st.Subtitle.Render(b.Author),
		st.Badge.Render(b.Category),
		st.Accent.Render(styles.RatingChar+" "+b.FormattedRating()),
	)
}

func printBooks(w io.Writer, st styles.Styles, books []domain.Book, isSaved func(int64) bool) {
	for _, b := range books {
		printBookLine(w, st, b, isSaved(b.ID))
	}
}

// printBookDetail writes every field of a book
func printBookDetail(w io.Writer, st styles.Styles, b domain.Book, saved bool) {
	title := st.Title.Render(b.Title)
	if saved {
		title += " " + st.Accent.Render(styles.SavedChar)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, st.Subtitle.Render(b.Author))
	fmt.Fprintln(w)

	rows := [][2]string{
		{"ID", fmt.Sprintf("%d", b.ID)},
		{"Toifa", b.Category},
		{"Yil", fmt.Sprintf("%d", b.Year)},
		{"Sahifalar", fmt.Sprintf("%d", b.Pages)},
		{"Til", b.Language},
		{"Format", b.FormatList()},
		{"Reyting", fmt.Sprintf("%s (%d sharh)", b.FormattedRating(), b.Reviews)},
		{"Yuklashlar", fmt.Sprintf("%d", b.DownloadCount)},
	}
	if b.Cover != "" {
		rows = append(rows, [2]string{"Muqova", b.Cover})
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s %s\n", st.Dim.Render(fmt.Sprintf("%-11s", r[0]+":")), r[1])
	}

	if desc := strings.TrimSpace(b.Description); desc != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, desc)
	}
}
