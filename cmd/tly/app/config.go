package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tlyhq/tly-cli/pkg/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the tly configuration file",
	}

	cmd.AddCommand(newSetTokenCmd())
	cmd.AddCommand(newGetTokenCmd())
	cmd.AddCommand(newUnsetTokenCmd())
	cmd.AddCommand(newSetBaseURLCmd())
	cmd.AddCommand(newGetBaseURLCmd())
	cmd.AddCommand(newUnsetBaseURLCmd())

	return cmd
}

func newSetTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token <token>",
		Short: "Store the T.LY API token in the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if args[0] == "" {
				return newUsageErrorf("token must not be empty")
			}
			err := config.UpdateConfig(func(c *config.Config) {
				c.APIToken = args[0]
			})
			if err != nil {
				return fmt.Errorf("failed to update config: %w", err)
			}
			fmt.Println("Successfully stored the API token")
			return nil
		},
	}
}

func newGetTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-token",
		Short: "Show the stored API token (masked)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadOrCreateConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.APIToken == "" {
				fmt.Println("No API token is currently stored")
				return nil
			}
			fmt.Printf("API token: %s\n", maskToken(cfg.APIToken))
			return nil
		},
	}
}

func newUnsetTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset-token",
		Short: "Remove the stored API token",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			err := config.UpdateConfig(func(c *config.Config) {
				c.APIToken = ""
			})
			if err != nil {
				return fmt.Errorf("failed to update config: %w", err)
			}
			fmt.Println("Successfully removed the API token")
			return nil
		},
	}
}

func newSetBaseURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-base-url <url>",
		Short: "Store an API base URL override in the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if args[0] == "" {
				return newUsageErrorf("base URL must not be empty")
			}
			err := config.UpdateConfig(func(c *config.Config) {
				c.BaseURL = args[0]
			})
			if err != nil {
				return fmt.Errorf("failed to update config: %w", err)
			}
			fmt.Printf("Successfully set the base URL to %s\n", args[0])
			return nil
		},
	}
}

func newGetBaseURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-base-url",
		Short: "Show the stored API base URL override",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadOrCreateConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.BaseURL == "" {
				fmt.Println("No base URL override is currently stored")
				return nil
			}
			fmt.Printf("Base URL: %s\n", cfg.BaseURL)
			return nil
		},
	}
}

func newUnsetBaseURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset-base-url",
		Short: "Remove the stored API base URL override",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			err := config.UpdateConfig(func(c *config.Config) {
				c.BaseURL = ""
			})
			if err != nil {
				return fmt.Errorf("failed to update config: %w", err)
			}
			fmt.Println("Successfully removed the base URL override")
			return nil
		},
	}
}

// maskToken hides all but the first and last four characters of a token.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return fmt.Sprintf("%s...%s", token[:4], token[len(token)-4:])
}
