package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "craftdeck",
		Short: "CLI tool for the craftdeck control-plane API",
		Long: `craftdeck is a CLI tool for administering a managed Minecraft server
through the craftdeck control-plane JSON API.

It covers credential management, console command execution, whitelist and
operator management, audit queries, and server lifecycle control.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load key from file if not provided via flag/env
			if err := cfg.LoadKey(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.Key)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: CRAFTDECK_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Key, "key", cfg.Key, "Credential key (env: CRAFTDECK_KEY)")
	rootCmd.PersistentFlags().StringVar(&cfg.KeyFile, "key-file", cfg.KeyFile, "Key file path (env: CRAFTDECK_KEY_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newKeysCmd())
	rootCmd.AddCommand(newExecCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newWhitelistCmd())
	rootCmd.AddCommand(newOpCmd())
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newServerCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
