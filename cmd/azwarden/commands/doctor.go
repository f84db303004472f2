package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/systmms/azwarden/internal/config"
	"github.com/systmms/azwarden/internal/errors"
	"github.com/systmms/azwarden/internal/session"
)

// doctorVars are the variables doctor reports on, in display order. Values
// are never printed, only whether each one is set.
var doctorVars = []string{
	session.EnvAccessToken,
	session.EnvUseMSI,
	session.EnvTenantID,
	session.EnvClientID,
	session.EnvClientSecret,
	session.EnvSubscriptionID,
}

func NewDoctorCommand(cfg *config.Config) *cobra.Command {
	var resolve bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check Azure authentication configuration",
		Long: `Report which authentication variables are set and which mode they
select, without contacting Azure.

Use --resolve to additionally resolve credentials and perform a token
acquisition round-trip.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := session.FromEnvironment()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VARIABLE\tSTATUS")
			for _, name := range doctorVars {
				status := "unset"
				if env.IsSet(name) {
					status = "set"
				}
				fmt.Fprintf(w, "%s\t%s\n", name, status)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			mode, err := session.Select(env)
			if err != nil {
				cfg.Logger.Error("configuration error: %v", err)
				return errors.WithSuggestion("Authentication configuration is invalid", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nSelected mode: %s\n", mode)

			if !resolve {
				return nil
			}

			mgr := newManager(cfg)
			s, err := mgr.Get(cmd.Context())
			if err != nil {
				return errors.WithSuggestion("Credential resolution failed", err)
			}
			cfg.Logger.Info("resolved session for subscription %s", s.SubscriptionID())

			if _, err := s.Token(cmd.Context(), session.ScopeManagement); err != nil {
				return errors.WithSuggestion("Token acquisition failed", err)
			}
			cfg.Logger.Info("token acquisition succeeded")
			return nil
		},
	}

	cmd.Flags().BoolVar(&resolve, "resolve", false, "Also resolve credentials and acquire a token")
	return cmd
}
