package commands

import (
	"github.com/systmms/azwarden/internal/authfile"
	"github.com/systmms/azwarden/internal/config"
	"github.com/systmms/azwarden/internal/session"
)

// newManager builds a session manager from the global flags.
func newManager(cfg *config.Config) *session.Manager {
	opts := []session.Option{
		session.WithLogger(cfg.Logger),
	}
	if cfg.AuthorizationFile != "" {
		opts = append(opts, session.WithResolver(authfile.Resolver{Path: cfg.AuthorizationFile}))
	}
	if cfg.Subscription != "" {
		opts = append(opts, session.WithSubscription(cfg.Subscription))
	}
	return session.NewManager(opts...)
}
