package cli

import (
	"github.com/spf13/cobra"
)

func newWhitelistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelist",
		Short: "Whitelist management commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show the whitelist",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Whitelist
			if err := client.Get("/api/v1/whitelist", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <player>",
		Short: "Add a player to the whitelist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerAction
			if err := client.Post("/api/v1/whitelist/add/"+args[0], nil, &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <player>",
		Short: "Remove a player from the whitelist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerAction
			if err := client.Post("/api/v1/whitelist/remove/"+args[0], nil, &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Turn whitelist enforcement on",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CommandOutput
			if err := client.Post("/api/v1/whitelist/enable", nil, &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Turn whitelist enforcement off",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CommandOutput
			if err := client.Post("/api/v1/whitelist/disable", nil, &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}

func newOpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "op",
		Short: "Operator management commands (root or admin)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <player>",
		Short: "Grant operator status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerAction
			if err := client.Post("/api/v1/op/add/"+args[0], nil, &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <player>",
		Short: "Revoke operator status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerAction
			if err := client.Post("/api/v1/op/remove/"+args[0], nil, &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Show online players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result OnlinePlayers
			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "data <player>",
		Short: "Show an online player's data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerData
			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}
