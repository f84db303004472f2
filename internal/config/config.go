// Package config carries the CLI's runtime options, populated from global
// flags and shared across commands.
package config

import "github.com/systmms/azwarden/internal/logging"

// Config is the per-invocation runtime configuration.
type Config struct {
	// AuthorizationFile, when set, authenticates from a service principal
	// authorization document instead of the environment.
	AuthorizationFile string

	// Subscription overrides the resolved session's subscription.
	Subscription string

	// Debug enables debug logging.
	Debug bool

	// NoColor disables colored output.
	NoColor bool

	// Logger is initialized from the flags above before commands run.
	Logger *logging.Logger
}
