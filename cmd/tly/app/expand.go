package app

import (
	"github.com/spf13/cobra"

	"github.com/tlyhq/tly-cli/pkg/logger"
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Expand a short link to its destination URL",
	Args:  cobra.NoArgs,
	RunE:  expandCmdFunc,
}

var (
	expandShortURL string
	expandPassword string
)

func init() {
	expandCmd.Flags().StringVar(&expandShortURL, "short-url", "", "Short URL to expand (required)")
	expandCmd.Flags().StringVar(&expandPassword, "password", "", "Password for protected links")

	if err := expandCmd.MarkFlagRequired("short-url"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}
}

func expandCmdFunc(cmd *cobra.Command, _ []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	expanded, err := client.ExpandShortLink(cmd.Context(), expandShortURL, expandPassword)
	if err != nil {
		return wrapAPIError(err)
	}

	return printJSON(expanded)
}
