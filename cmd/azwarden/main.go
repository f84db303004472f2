package main

import (
	"fmt"
	"os"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/systmms/azwarden/cmd/azwarden/commands"
	"github.com/systmms/azwarden/internal/config"
	"github.com/systmms/azwarden/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Wipe all protected credential memory on exit.
	defer memguard.Purge()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "azwarden",
		Short: "Inspect and verify Azure authentication for the governance plugin",
		Long: `azwarden resolves Azure credentials the same way the governance plugin
does at runtime - raw access token, managed identity, service principal or
Azure CLI session - and lets an operator inspect the result before any
policy runs.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg.Logger = logging.New(cfg.Debug, cfg.NoColor)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.AuthorizationFile, "authorization-file", "", "Authenticate from an authorization file instead of the environment")
	rootCmd.PersistentFlags().StringVar(&cfg.Subscription, "subscription", "", "Override the target subscription id")
	rootCmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		commands.NewWhoamiCommand(cfg),
		commands.NewTokenCommand(cfg),
		commands.NewDoctorCommand(cfg),
	)

	return rootCmd.Execute()
}
