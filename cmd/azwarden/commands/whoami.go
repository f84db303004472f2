package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/systmms/azwarden/internal/config"
	"github.com/systmms/azwarden/internal/errors"
)

func NewWhoamiCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the resolved Azure session",
		Long: `Resolve credentials exactly as the governance plugin would and print
the resulting authentication mode, subscription, tenant and capabilities.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := newManager(cfg)
			s, err := mgr.Get(cmd.Context())
			if err != nil {
				return errors.WithSuggestion("Failed to resolve Azure session", err)
			}

			tenant, err := s.TenantID(cmd.Context())
			if err != nil || tenant == "" {
				tenant = "-"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "MODE\t%s\n", s.Mode())
			fmt.Fprintf(w, "SUBSCRIPTION\t%s\n", s.SubscriptionID())
			fmt.Fprintf(w, "TENANT\t%s\n", tenant)
			fmt.Fprint(w, "CAPABILITIES\t")
			for i, c := range s.Capabilities() {
				if i > 0 {
					fmt.Fprint(w, ", ")
				}
				fmt.Fprint(w, string(c))
			}
			fmt.Fprintln(w)
			return w.Flush()
		},
	}
}
