package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Credential management commands (root only)",
	}

	cmd.AddCommand(newKeysIssueCmd())
	cmd.AddCommand(newKeysListCmd())
	cmd.AddCommand(newKeysMeCmd())
	cmd.AddCommand(newKeysRevokeCmd())

	return cmd
}

func newKeysIssueCmd() *cobra.Command {
	var role, player string
	var save bool

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a new credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"role": role}
			if player != "" {
				req["player_name"] = player
			}

			var result Credential
			if err := client.Post("/api/v1/auth/keys", req, &result); err != nil {
				return err
			}

			if save {
				if err := cfg.SaveKey(result.Key); err != nil {
					return fmt.Errorf("failed to save key: %w", err)
				}
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "player", "Role for the new key: admin, player")
	cmd.Flags().StringVar(&player, "player", "", "Player name to bind the key to")
	cmd.Flags().BoolVar(&save, "save", false, "Save the issued key to the key file")

	return cmd
}

func newKeysListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CredentialList
			if err := client.Get("/api/v1/auth/keys", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newKeysMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the credential in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Credential
			if err := client.Get("/api/v1/auth/keys/my", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newKeysRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <key>",
		Short: "Revoke a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DeletedKey
			if err := client.Delete("/api/v1/auth/keys/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
