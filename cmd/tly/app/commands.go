// Package app provides the entry point for the tly command-line application.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tlyhq/tly-cli/pkg/logger"
	"github.com/tlyhq/tly-cli/pkg/tly"
	"github.com/tlyhq/tly-cli/pkg/updates"
)

var rootCmd = &cobra.Command{
	Use:               "tly",
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	Short:             "tly is a command-line client for the T.LY URL shortener",
	Long: `tly is a command-line client for the T.LY URL-shortening API.

It can shorten and expand links, manage tags, pixels, UTM presets and
OneLinks, fetch QR codes, and call any supported API operation directly.
An API token is required; pass it with --token, the TLY_API_TOKEN
environment variable, or store it with 'tly config set-token'.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.Initialize()
		checkForUpdates(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			logger.Errorf("Error displaying help: %v", err)
		}
	},
}

// NewRootCmd creates a new root command for the tly CLI.
func NewRootCmd() *cobra.Command {
	flags := rootCmd.PersistentFlags()
	flags.String("token", "", "T.LY API token (overrides TLY_API_TOKEN and the config file)")
	flags.String("token-file", "", "File containing the T.LY API token, used when no token is set")
	flags.String("base-url", "", "API base URL (overrides TLY_BASE_URL and the config file)")
	flags.Duration("timeout", tly.DefaultTimeout, "HTTP request timeout")
	flags.Bool("debug", false, "Enable debug logging")
	bindPersistentFlags(flags)

	if err := viper.BindEnv("token", "TLY_API_TOKEN"); err != nil {
		logger.Fatalf("Error binding TLY_API_TOKEN: %v", err)
	}
	if err := viper.BindEnv("token-file", "TLY_API_TOKEN_FILE"); err != nil {
		logger.Fatalf("Error binding TLY_API_TOKEN_FILE: %v", err)
	}
	if err := viper.BindEnv("base-url", "TLY_BASE_URL"); err != nil {
		logger.Fatalf("Error binding TLY_BASE_URL: %v", err)
	}

	rootCmd.AddCommand(shortenCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(newQRCmd())
	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newTagCmd())
	rootCmd.AddCommand(newPixelCmd())
	rootCmd.AddCommand(newUTMCmd())
	rootCmd.AddCommand(newOneLinkCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// bindPersistentFlags makes every persistent flag readable through viper.
func bindPersistentFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		if err := viper.BindPFlag(flag.Name, flag); err != nil {
			logger.Fatalf("Error binding flag %s: %v", flag.Name, err)
		}
	})
}

// checkForUpdates looks for a newer release and prints a notice on stderr.
// Failures are logged at debug level only, an unreachable release API must
// never block the actual command.
func checkForUpdates(cmd *cobra.Command) {
	switch cmd.Name() {
	case "version", "completion", "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return
	}

	versionClient := updates.NewVersionClient()
	checker, err := updates.NewUpdateChecker(versionClient)
	if err != nil {
		logger.Debugf("unable to create update checker: %v", err)
		return
	}
	if err := checker.CheckLatestVersion(cmd.Context()); err != nil {
		logger.Debugf("could not check for updates: %v", err)
	}
}
