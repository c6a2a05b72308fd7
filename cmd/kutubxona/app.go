package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/kutubxona/internal/adapter"
	"github.com/mmcdole/kutubxona/internal/adapter/source"
	"github.com/mmcdole/kutubxona/internal/catalog"
	"github.com/mmcdole/kutubxona/internal/domain"
	"github.com/mmcdole/kutubxona/internal/prefs"
	"github.com/mmcdole/kutubxona/internal/session"
	"github.com/mmcdole/kutubxona/internal/store"
	"github.com/mmcdole/kutubxona/internal/tui"
	"github.com/mmcdole/kutubxona/internal/tui/styles"
	"golang.org/x/term"
)

var (
	errLoginRequired = errors.New("login required: pass --email and --password, or --google")
	errAdminRequired = errors.New("administrator access required")
	errNoGoogle      = errors.New("google sign-in is not available")
)

const loadTimeout = 30 * time.Second

// app wires the stores for one command invocation
type app struct {
	cfg       *adapter.Config
	logger    *slog.Logger
	logCloser io.Closer

	prefs   domain.PreferenceStore
	catalog *catalog.Store
	session *session.Store
	theme   *prefs.Theme
	auth    domain.Authenticator

	out io.Writer
	err io.Writer

	// Overridable for tests
	isTerminal     func() bool
	promptPassword func(label string) (string, error)
}

func newApp(configPath string, out, errOut io.Writer) (*app, error) {
	var (
		cfg *adapter.Config
		err error
	)
	if configPath == "" {
		cfg, err = adapter.LoadConfig()
	} else {
		cfg, err = adapter.LoadConfigFile(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, logCloser, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger, logCloser = adapter.NullLogger(), io.NopCloser(nil)
	}
	slog.SetDefault(logger)

	logger.Info("starting kutubxona", "version", Version)

	prefStore, err := store.Open(cfg.Data.Path)
	if err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}

	src, err := source.NewBookSource(&cfg.Catalog, logger)
	if err != nil {
		prefStore.Close()
		logCloser.Close()
		return nil, fmt.Errorf("failed to create book source: %w", err)
	}

	auth, err := source.NewAuthenticator(&cfg.Auth, logger)
	if err != nil {
		prefStore.Close()
		logCloser.Close()
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}

	return &app{
		cfg:            cfg,
		logger:         logger,
		logCloser:      logCloser,
		prefs:          prefStore,
		catalog:        catalog.New(src, prefStore, logger),
		session:        session.New(logger),
		theme:          prefs.NewTheme(prefStore, cfg.UI.DarkMode, logger),
		auth:           auth,
		out:            out,
		err:            errOut,
		isTerminal:     stdoutIsTerminal,
		promptPassword: readPassword,
	}, nil
}

func (a *app) close() {
	a.session.Logout()
	if err := a.prefs.Close(); err != nil {
		a.logger.Error("failed to close preference store", "error", err)
	}
	a.logger.Info("shutting down")
	a.logCloser.Close()
}

func (a *app) styles() styles.Styles {
	return styles.New(a.theme.DarkMode())
}

// loadCatalog fills the catalog, with a spinner when attached to a terminal
func (a *app) loadCatalog(ctx context.Context) error {
	if a.cfg.UI.Spinner && a.isTerminal() {
		_, err := tui.RunLoader(ctx, a.catalog, a.styles(), loadTimeout, tea.WithOutput(a.err))
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()
	return a.catalog.Load(ctx)
}

// requireLogin signs in with the persistent flags
func (a *app) requireLogin(ctx context.Context, opts *rootOptions) (domain.User, error) {
	if user, ok := a.session.Current(); ok {
		return user, nil
	}

	var (
		user domain.User
		err  error
	)
	switch {
	case opts.google:
		google, ok := a.auth.(domain.GoogleAuthenticator)
		if !ok {
			return domain.User{}, errNoGoogle
		}
		user, err = google.AuthenticateGoogle(ctx)
	case opts.email != "":
		creds, cerr := a.credentials(opts)
		if cerr != nil {
			return domain.User{}, cerr
		}
		user, err = a.auth.Authenticate(ctx, creds)
	default:
		return domain.User{}, errLoginRequired
	}
	if err != nil {
		return domain.User{}, err
	}

	return a.session.Login(user), nil
}

// credentials builds the login or sign-up form from the flags, prompting
// for passwords that were not given
func (a *app) credentials(opts *rootOptions) (domain.Credentials, error) {
	creds := domain.Credentials{
		Email:    strings.TrimSpace(opts.email),
		Password: opts.password,
		SignUp:   opts.signUp,
	}

	var err error
	if creds.Password == "" {
		if creds.Password, err = a.promptPassword("Parol: "); err != nil {
			return domain.Credentials{}, err
		}
	}

	if opts.signUp {
		creds.Name = strings.TrimSpace(opts.name)
		creds.ConfirmPassword = opts.confirmPassword
		if creds.ConfirmPassword == "" {
			if creds.ConfirmPassword, err = a.promptPassword("Parolni tasdiqlang: "); err != nil {
				return domain.Credentials{}, err
			}
		}
	}
	return creds, nil
}

// requireAdmin signs in and checks the administrator role
func (a *app) requireAdmin(ctx context.Context, opts *rootOptions) (domain.User, error) {
	user, err := a.requireLogin(ctx, opts)
	if err != nil {
		return domain.User{}, err
	}
	if !user.IsAdmin() {
		a.logger.Warn("admin command refused", "email", user.Email)
		return domain.User{}, errAdminRequired
	}
	return user, nil
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// readPassword prompts on stderr without echo
func readPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errLoginRequired
	}

	fmt.Fprint(os.Stderr, label)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
