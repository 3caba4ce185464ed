package app

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/tlyhq/tly-cli/pkg/logger"
	"github.com/tlyhq/tly-cli/pkg/tly"
)

var shortenCmd = &cobra.Command{
	Use:   "shorten",
	Short: "Create a short link",
	Long: `Create a new short link for a long URL.

Example:
  tly shorten --long-url https://example.com/some/very/long/path`,
	Args: cobra.NoArgs,
	RunE: shortenCmdFunc,
}

var (
	shortenLongURL     string
	shortenDomain      string
	shortenDescription string
	shortenExpireAt    string
	shortenPublicStats bool
	shortenMetaJSON    string
)

func init() {
	shortenCmd.Flags().StringVar(&shortenLongURL, "long-url", "", "Long URL to shorten (required)")
	shortenCmd.Flags().StringVar(&shortenDomain, "domain", "", "Custom domain for the short link")
	shortenCmd.Flags().StringVar(&shortenDescription, "description", "", "Description of the short link")
	shortenCmd.Flags().StringVar(&shortenExpireAt, "expire-at-datetime", "", "Expiry timestamp, e.g. 2026-12-31 23:59:59")
	shortenCmd.Flags().BoolVar(&shortenPublicStats, "public-stats", false, "Make the link statistics public")
	shortenCmd.Flags().StringVar(&shortenMetaJSON, "meta-json", "", "Extra metadata as a JSON object")

	if err := shortenCmd.MarkFlagRequired("long-url"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}
}

func shortenCmdFunc(cmd *cobra.Command, _ []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	params := tly.CreateShortLinkParams{
		LongURL:          shortenLongURL,
		Domain:           shortenDomain,
		Description:      shortenDescription,
		ExpireAtDatetime: shortenExpireAt,
	}
	if cmd.Flags().Changed("public-stats") {
		params.PublicStats = &shortenPublicStats
	}
	if shortenMetaJSON != "" {
		var meta map[string]any
		if err := json.Unmarshal([]byte(shortenMetaJSON), &meta); err != nil {
			return newUsageErrorf("--meta-json must be a JSON object: %v", err)
		}
		params.Meta = meta
	}

	link, err := client.CreateShortLink(cmd.Context(), params)
	if err != nil {
		return wrapAPIError(err)
	}

	return printJSON(link)
}
