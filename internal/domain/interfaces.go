package domain

import "context"

// BookSource provides the initial catalog as a single batch.
type BookSource interface {
	FetchBooks(ctx context.Context) ([]Book, error)
}

// SavedBooksStore persists the saved book identifiers.
type SavedBooksStore interface {
	GetSavedBooks() ([]int64, bool)
	SetSavedBooks(ids []int64) error
}

// ThemeStore persists the dark mode display preference.
type ThemeStore interface {
	GetDarkMode() (bool, bool)
	SetDarkMode(on bool) error
}

// PreferenceStore is the durable key-value store behind both preferences.
type PreferenceStore interface {
	SavedBooksStore
	ThemeStore
	Reset() error
	Close() error
}

// Authenticator turns submitted credentials into an identity.
// Implementations decide how credentials are verified and which role is granted.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (User, error)
}

// GoogleAuthenticator is implemented by authenticators offering Google sign-in.
type GoogleAuthenticator interface {
	AuthenticateGoogle(ctx context.Context) (User, error)
}
