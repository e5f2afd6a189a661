package cli

import (
	"github.com/spf13/cobra"
)

func newServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Managed server lifecycle commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start the managed server (root or admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ServerStatus
			if err := client.Post("/api/v1/server/start", nil, &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop the managed server (root or admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ServerStatus
			if err := client.Post("/api/v1/server/stop", nil, &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the managed server's status",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ServerStatus
			if err := client.Get("/api/v1/server/status", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "logs",
		Short: "Show the tail of the managed server's log",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ServerLogs
			if err := client.Get("/api/v1/server/logs", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check control-plane health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult
			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
