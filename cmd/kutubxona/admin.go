package main

import (
	"fmt"
	"strings"

	"github.com/mmcdole/kutubxona/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newAdminCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Catalog administration (admin account only)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Child hooks replace the root's, so build the app here too
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			if _, err := opts.app.requireAdmin(cmd.Context(), opts); err != nil {
				return err
			}
			return opts.app.loadCatalog(cmd.Context())
		},
	}

	cmd.AddCommand(
		newAdminStatsCmd(opts),
		newAdminAddCmd(opts),
		newAdminUpdateCmd(opts),
		newAdminDeleteCmd(opts),
	)
	return cmd
}

func newAdminStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			st := a.styles()
			stats := a.catalog.Stats()

			fmt.Fprintf(a.out, "%s %d\n", st.Dim.Render("Jami kitoblar:"), stats.TotalBooks)
			fmt.Fprintf(a.out, "%s %d\n", st.Dim.Render("Jami yuklashlar:"), stats.TotalDownloads)
			fmt.Fprintf(a.out, "%s %.1f\n", st.Dim.Render("O'rtacha reyting:"), stats.AverageRating)
			fmt.Fprintf(a.out, "%s %d\n", st.Dim.Render("Toifalar:"), len(stats.ByCategory))

			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, st.Title.Render("Kategoriyalar bo'yicha"))
			for _, c := range stats.ByCategory {
				fmt.Fprintf(a.out, "  %s: %d\n", c.Category, c.Count)
			}

			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, st.Title.Render("Eng ko'p yuklangan kitoblar"))
			for i, b := range stats.TopDownloaded {
				fmt.Fprintf(a.out, "  %d. %s %s\n", i+1, b.Title, st.Dim.Render(fmt.Sprintf("(%d)", b.DownloadCount)))
			}
			return nil
		},
	}
}

// bookFlags holds the editable book fields shared by add and update
type bookFlags struct {
	title, author, category, description, language, cover string
	year, pages, reviews, downloads                         int
	rating                                                  float64
	formats                                                 []string
}

func (f *bookFlags) register(fs *pflag.FlagSet, counters bool) {
	fs.StringVar(&f.title, "title", "", "book title")
	fs.StringVar(&f.author, "author", "", "author")
	fs.StringVar(&f.category, "category", "", "category")
	fs.IntVar(&f.year, "year", 0, "publication year")
	fs.StringVar(&f.description, "description", "", "description")
	fs.IntVar(&f.pages, "pages", 0, "page count")
	fs.StringVar(&f.language, "language", "", "language")
	fs.StringSliceVar(&f.formats, "format", nil, "available formats, e.g. PDF,EPUB")
	fs.StringVar(&f.cover, "cover", "", "cover image URL")
	if counters {
		fs.Float64Var(&f.rating, "rating", 0, "rating 0.0-5.0")
		fs.IntVar(&f.reviews, "reviews", 0, "review count")
		fs.IntVar(&f.downloads, "downloads", 0, "download count")
	}
}

// checkCategory refuses the catch-all filter name as a book category
func (f *bookFlags) checkCategory(fs *pflag.FlagSet) error {
	if fs.Changed("category") && strings.EqualFold(strings.TrimSpace(f.category), domain.CategoryAll) {
		return fmt.Errorf("category %q is reserved", domain.CategoryAll)
	}
	return nil
}

func (f *bookFlags) input() domain.BookInput {
	return domain.BookInput{
		Title:       f.title,
		Author:      f.author,
		Category:    f.category,
		Year:        f.year,
		Description: f.description,
		Pages:       f.pages,
		Language:    f.language,
		Formats:     f.formats,
		Cover:       f.cover,
	}
}

// patch includes only the flags given on the command line
func (f *bookFlags) patch(fs *pflag.FlagSet) domain.BookPatch {
	var p domain.BookPatch
	if fs.Changed("title") {
		p.Title = &f.title
	}
	if fs.Changed("author") {
		p.Author = &f.author
	}
	if fs.Changed("category") {
		p.Category = &f.category
	}
	if fs.Changed("year") {
		p.Year = &f.year
	}
	if fs.Changed("description") {
		p.Description = &f.description
	}
	if fs.Changed("pages") {
		p.Pages = &f.pages
	}
	if fs.Changed("language") {
		p.Language = &f.language
	}
	if fs.Changed("format") {
		p.Formats = append([]string{}, f.formats...)
	}
	if fs.Changed("cover") {
		p.Cover = &f.cover
	}
	if fs.Changed("rating") {
		p.Rating = &f.rating
	}
	if fs.Changed("reviews") {
		p.Reviews = &f.reviews
	}
	if fs.Changed("downloads") {
		p.DownloadCount = &f.downloads
	}
	return p
}

func newAdminAddCmd(opts *rootOptions) *cobra.Command {
	var f bookFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.checkCategory(cmd.Flags()); err != nil {
				return err
			}
			a := opts.app
			b := a.catalog.AddBook(f.input())
			a.logger.Info("book added", "bookID", b.ID, "title", b.Title)

			fmt.Fprintf(a.out, "%s\n", a.styles().Success.Render("Kitob qo'shildi"))
			printBookLine(a.out, a.styles(), b, false)
			return nil
		},
	}
	f.register(cmd.Flags(), false)
	return cmd
}

func newAdminUpdateCmd(opts *rootOptions) *cobra.Command {
	var f bookFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookID(args[0])
			if err != nil {
				return err
			}
			if err := f.checkCategory(cmd.Flags()); err != nil {
				return err
			}
			patch := f.patch(cmd.Flags())
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			a := opts.app
			if !a.catalog.UpdateBook(id, patch) {
				return fmt.Errorf("book %d: %w", id, domain.ErrBookNotFound)
			}
			a.logger.Info("book updated", "bookID", id)

			b, _ := a.catalog.Book(id)
			fmt.Fprintf(a.out, "%s\n", a.styles().Success.Render("Kitob yangilandi"))
			printBookLine(a.out, a.styles(), b, a.catalog.IsSaved(id))
			return nil
		},
	}
	f.register(cmd.Flags(), true)
	return cmd
}

func newAdminDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a book from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookID(args[0])
			if err != nil {
				return err
			}

			a := opts.app
			if !a.catalog.DeleteBook(id) {
				return fmt.Errorf("book %d: %w", id, domain.ErrBookNotFound)
			}
			a.logger.Info("book deleted", "bookID", id)

			fmt.Fprintf(a.out, "%s %d\n", a.styles().Success.Render("Kitob o'chirildi:"), id)
			return nil
		},
	}
}
