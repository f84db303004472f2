package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/azwarden/internal/config"
	"github.com/systmms/azwarden/internal/errors"
	"github.com/systmms/azwarden/internal/session"
)

func NewTokenCommand(cfg *config.Config) *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for the resolved session",
		Long: `Acquire a bearer token with the resolved credentials and print it to
stdout, for piping into curl or other tooling. The token grants real access;
treat the output as a secret.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := newManager(cfg)
			s, err := mgr.Get(cmd.Context())
			if err != nil {
				return errors.WithSuggestion("Failed to resolve Azure session", err)
			}

			tk, err := s.Token(cmd.Context(), scope)
			if err != nil {
				return errors.WithSuggestion("Failed to acquire token", err)
			}

			cfg.Logger.Warn("printing a live bearer token for subscription %s", s.SubscriptionID())
			fmt.Fprintln(cmd.OutOrStdout(), tk.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", session.ScopeManagement, "OAuth scope to request the token for")
	return cmd
}
