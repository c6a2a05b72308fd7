package mock

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/kutubxona/internal/domain"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

var (
	_ domain.Authenticator       = (*Authenticator)(nil)
	_ domain.GoogleAuthenticator = (*Authenticator)(nil)
)

// ValidationError maps form fields to the reason they were rejected.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e[f]
	}
	return "invalid credentials: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match domain.ErrInvalidCredentials with errors.Is
func (e ValidationError) Unwrap() error {
	return domain.ErrInvalidCredentials
}

// Authenticator implements domain.Authenticator without a user database.
// Any well-formed credentials succeed; the role comes from the email alone.
type Authenticator struct {
	adminEmail string
	latency    time.Duration
	newID      func() string
	logger     *slog.Logger
}

// NewAuthenticator creates a mock authenticator granting admin to adminEmail
func NewAuthenticator(adminEmail string, latency time.Duration, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{
		adminEmail: adminEmail,
		latency:    latency,
		newID:      uuid.NewString,
		logger:     logger,
	}
}

// RoleFor is the role policy: admin iff the email equals adminEmail exactly
func RoleFor(email, adminEmail string) domain.Role {
	if adminEmail != "" && email == adminEmail {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}

// Validate checks credentials the way the login and sign-up forms do
func Validate(creds domain.Credentials) error {
	errs := ValidationError{}

	switch {
	case creds.Email == "":
		errs["email"] = "email is required"
	case !emailPattern.MatchString(creds.Email):
		errs["email"] = "email is malformed"
	}

	switch {
	case creds.Password == "":
		errs["password"] = "password is required"
	case len(creds.Password) < minPasswordLength:
		errs["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLength)
	}

	if creds.SignUp {
		if creds.Name == "" {
			errs["name"] = "name is required"
		}
		switch {
		case creds.ConfirmPassword == "":
			errs["confirmPassword"] = "password confirmation is required"
		case creds.ConfirmPassword != creds.Password:
			errs["confirmPassword"] = "passwords do not match"
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Authenticate validates creds and mints an identity for them
func (a *Authenticator) Authenticate(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	if err := Validate(creds); err != nil {
		a.logger.Debug("rejected credentials", "error", err)
		return domain.User{}, err
	}
	if err := a.wait(ctx); err != nil {
		return domain.User{}, err
	}

	name := creds.Name
	if name == "" {
		name, _, _ = strings.Cut(creds.Email, "@")
	}

	user := domain.User{
		ID:    a.newID(),
		Name:  name,
		Email: creds.Email,
		Role:  RoleFor(creds.Email, a.adminEmail),
	}
	a.logger.Info("authenticated", "email", user.Email, "role", user.Role)
	return user, nil
}

// AuthenticateGoogle simulates a federated sign-in that always yields the same standard user
func (a *Authenticator) AuthenticateGoogle(ctx context.Context) (domain.User, error) {
	if err := a.wait(ctx); err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:    a.newID(),
		Name:  "Google User",
		Email: "user@gmail.com",
		Role:  domain.RoleUser,
	}, nil
}

func (a *Authenticator) wait(ctx context.Context) error {
	if a.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(a.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
