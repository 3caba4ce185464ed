package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tlyhq/tly-cli/pkg/logger"
	"github.com/tlyhq/tly-cli/pkg/tly"
)

func newOneLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onelink",
		Short: "Manage OneLink landing pages",
	}

	cmd.AddCommand(newOneLinkListCmd())
	cmd.AddCommand(newOneLinkStatsCmd())
	cmd.AddCommand(newOneLinkDeleteStatsCmd())

	return cmd
}

func newOneLinkListCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List OneLinks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.ListOneLinks(cmd.Context(), page)
			if err != nil {
				return wrapAPIError(err)
			}
			return printRawJSON(raw)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number (server default when omitted)")

	return cmd
}

func newOneLinkStatsCmd() *cobra.Command {
	var (
		shortURL string
		params   tly.StatsParams
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Fetch statistics for a OneLink",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.GetOneLinkStats(cmd.Context(), shortURL, params)
			if err != nil {
				return wrapAPIError(err)
			}
			return printRawJSON(raw)
		},
	}

	cmd.Flags().StringVar(&shortURL, "short-url", "", "OneLink short URL (required)")
	cmd.Flags().StringVar(&params.StartDate, "start-date", "", "Start of the date range")
	cmd.Flags().StringVar(&params.EndDate, "end-date", "", "End of the date range")

	if err := cmd.MarkFlagRequired("short-url"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}

	return cmd
}

func newOneLinkDeleteStatsCmd() *cobra.Command {
	var shortURL string

	cmd := &cobra.Command{
		Use:   "delete-stats",
		Short: "Delete the recorded statistics of a OneLink",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.DeleteOneLinkStats(cmd.Context(), shortURL)
			if err != nil {
				return wrapAPIError(err)
			}
			if len(raw) == 0 {
				fmt.Printf("Deleted stats for %s\n", shortURL)
				return nil
			}
			return printRawJSON(raw)
		},
	}

	cmd.Flags().StringVar(&shortURL, "short-url", "", "OneLink short URL (required)")
	if err := cmd.MarkFlagRequired("short-url"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}

	return cmd
}
