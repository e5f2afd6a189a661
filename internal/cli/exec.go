package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run a console command on the managed server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"command": strings.Join(args, " ")}

			var result CommandResult
			if err := client.Post("/api/v1/exec", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recent console commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CommandHistory
			if err := client.Get("/api/v1/exec/history", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Show recent audit records (root only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AuditLog
			if err := client.Get("/api/v1/audit/logs", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
