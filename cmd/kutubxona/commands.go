package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/kutubxona/internal/adapter"
	"github.com/mmcdole/kutubxona/internal/domain"
	"github.com/mmcdole/kutubxona/internal/search"
	"github.com/spf13/cobra"
)

const suggestionLimit = 3

func parseBookID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid book id %q", arg)
	}
	return id, nil
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var term, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books, optionally filtered by search term and category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if err := a.loadCatalog(cmd.Context()); err != nil {
				return err
			}
			st := a.styles()

			if category != "" {
				match, ok := search.ClosestCategory(category, a.catalog.Categories())
				if !ok || !strings.EqualFold(match, category) {
					if ok {
						fmt.Fprintf(a.out, "Balki: %s?\n", st.Accent.Render(match))
					}
					return fmt.Errorf("unknown category %q", category)
				}
				a.catalog.SelectCategory(match)
			}
			a.catalog.SetSearchTerm(term)

			books := a.catalog.FilteredBooks()
			if len(books) == 0 {
				fmt.Fprintln(a.out, st.Dim.Render("Hech qanday kitob topilmadi"))
				if term != "" {
					for _, s := range search.SuggestBooks(term, a.catalog.Books(), suggestionLimit) {
						fmt.Fprintf(a.out, "  Balki: %s (%s)?\n", st.Title.Render(s.Book.Title), s.Book.Author)
					}
				}
				return nil
			}

			printBooks(a.out, st, books, a.catalog.IsSaved)
			return nil
		},
	}

	cmd.Flags().StringVarP(&term, "search", "s", "", "match title or author (case-insensitive)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only books in this category")
	return cmd
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories in first-seen order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if err := a.loadCatalog(cmd.Context()); err != nil {
				return err
			}
			for _, c := range a.catalog.Categories() {
				fmt.Fprintln(a.out, c)
			}
			return nil
		},
	}
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookID(args[0])
			if err != nil {
				return err
			}
			a := opts.app
			if err := a.loadCatalog(cmd.Context()); err != nil {
				return err
			}
			b, ok := a.catalog.Book(id)
			if !ok {
				return fmt.Errorf("book %d: %w", id, domain.ErrBookNotFound)
			}
			printBookDetail(a.out, a.styles(), b, a.catalog.IsSaved(id))
			return nil
		},
	}
}

func newSaveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save ID",
		Short: "Add a book to your saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookID(args[0])
			if err != nil {
				return err
			}
			a := opts.app
			if _, err := a.requireLogin(cmd.Context(), opts); err != nil {
				return err
			}
			if err := a.loadCatalog(cmd.Context()); err != nil {
				return err
			}
			b, ok := a.catalog.Book(id)
			if !ok {
				return fmt.Errorf("book %d: %w", id, domain.ErrBookNotFound)
			}
			a.catalog.SaveBook(id)
			fmt.Fprintf(a.out, "%s %s\n", a.styles().Success.Render("Saqlandi:"), b.Title)
			return nil
		},
	}
}

func newUnsaveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unsave ID",
		Short: "Remove a book from your saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookID(args[0])
			if err != nil {
				return err
			}
			a := opts.app
			if _, err := a.requireLogin(cmd.Context(), opts); err != nil {
				return err
			}
			a.catalog.UnsaveBook(id)
			fmt.Fprintf(a.out, "%s %d\n", a.styles().Success.Render("Olib tashlandi:"), id)
			return nil
		},
	}
}

func newSavedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List saved books with totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if _, err := a.requireLogin(cmd.Context(), opts); err != nil {
				return err
			}
			if err := a.loadCatalog(cmd.Context()); err != nil {
				return err
			}
			st := a.styles()

			books := a.catalog.SavedBooks()
			if len(books) == 0 {
				fmt.Fprintln(a.out, st.Dim.Render("Saqlangan kitoblar yo'q"))
				return nil
			}
			printBooks(a.out, st, books, a.catalog.IsSaved)

			stats := a.catalog.SavedStats()
			fmt.Fprintln(a.out)
			fmt.Fprintf(a.out, "%s %d  %s %d  %s %.1f\n",
				st.Dim.Render("Kitoblar:"), stats.Count,
				st.Dim.Render("Sahifalar:"), stats.TotalPages,
				st.Dim.Render("O'rtacha reyting:"), stats.AverageRating,
			)
			return nil
		},
	}
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in or sign up and show the resulting account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			user, err := a.requireLogin(cmd.Context(), opts)
			if err != nil {
				return err
			}
			st := a.styles()
			fmt.Fprintf(a.out, "Xush kelibsiz, %s %s\n", st.Title.Render(user.Name), st.Badge.Render(string(user.Role)))
			fmt.Fprintf(a.out, "%s %s\n", st.Dim.Render("Email:"), user.Email)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.signUp, "signup", false, "create an account instead of signing in")
	cmd.Flags().StringVar(&opts.name, "name", "", "full name (sign-up)")
	cmd.Flags().StringVar(&opts.confirmPassword, "confirm-password", "", "password confirmation (sign-up, prompted when omitted on a terminal)")
	return cmd
}

func newDownloadCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "download ID",
		Short: "Download a book in one of its formats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookID(args[0])
			if err != nil {
				return err
			}
			a := opts.app
			if _, err := a.requireLogin(cmd.Context(), opts); err != nil {
				return err
			}
			if err := a.loadCatalog(cmd.Context()); err != nil {
				return err
			}
			b, ok := a.catalog.Book(id)
			if !ok {
				return fmt.Errorf("book %d: %w", id, domain.ErrBookNotFound)
			}

			want := format
			if want == "" && len(b.Formats) > 0 {
				want = b.Formats[0]
			}
			f, ok := b.Format(want)
			if !ok {
				return fmt.Errorf("%q for book %d (available: %s): %w", want, id, b.FormatList(), domain.ErrFormatUnavailable)
			}

			a.logger.Info("download requested", "bookID", id, "format", f)
			fmt.Fprintf(a.out, "%s formatida yuklab olinmoqda...\n", a.styles().Accent.Render(f))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "file format (default: the book's first format)")
	return cmd
}

func newThemeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if len(args) == 1 {
				switch args[0] {
				case "dark":
					a.theme.SetDarkMode(true)
				case "light":
					a.theme.SetDarkMode(false)
				case "toggle":
					a.theme.Toggle()
				}
			}

			name := "light"
			if a.theme.DarkMode() {
				name = "dark"
			}
			fmt.Fprintf(a.out, "theme: %s\n", a.styles().Accent.Render(name))
			return nil
		},
	}
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget saved books and the theme preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if err := a.prefs.Reset(); err != nil {
				return fmt.Errorf("failed to reset preferences: %w", err)
			}
			fmt.Fprintln(a.out, "preferences cleared")
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if err := adapter.SaveConfig(a.cfg); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wrote %s\n", adapter.ConfigFilePath())
			return nil
		},
	})
	return cmd
}
