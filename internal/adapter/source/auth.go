package source

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/kutubxona/internal/adapter"
	"github.com/mmcdole/kutubxona/internal/adapter/source/mock"
	"github.com/mmcdole/kutubxona/internal/domain"
)

// NewAuthenticator creates the domain.Authenticator described by the auth config.
// Check for domain.GoogleAuthenticator to offer Google sign-in.
func NewAuthenticator(cfg *adapter.AuthConfig, logger *slog.Logger) (domain.Authenticator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("auth config is nil")
	}
	if cfg.AdminEmail == "" {
		return nil, fmt.Errorf("admin email is required")
	}
	return mock.NewAuthenticator(cfg.AdminEmail, cfg.Latency, logger), nil
}
