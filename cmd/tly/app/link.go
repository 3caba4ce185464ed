package app

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tlyhq/tly-cli/pkg/logger"
	"github.com/tlyhq/tly-cli/pkg/tly"
)

func newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage short links",
	}

	cmd.AddCommand(newLinkGetCmd())
	cmd.AddCommand(newLinkUpdateCmd())
	cmd.AddCommand(newLinkDeleteCmd())
	cmd.AddCommand(newLinkListCmd())
	cmd.AddCommand(newLinkStatsCmd())
	cmd.AddCommand(newLinkBulkShortenCmd())
	cmd.AddCommand(newLinkBulkUpdateCmd())

	return cmd
}

func newLinkGetCmd() *cobra.Command {
	var shortURL string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch the details of a short link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			link, err := client.GetShortLink(cmd.Context(), shortURL)
			if err != nil {
				return wrapAPIError(err)
			}
			return printJSON(link)
		},
	}

	cmd.Flags().StringVar(&shortURL, "short-url", "", "Short URL to look up (required)")
	if err := cmd.MarkFlagRequired("short-url"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}

	return cmd
}

func newLinkUpdateCmd() *cobra.Command {
	var (
		params      tly.UpdateShortLinkParams
		publicStats bool
		metaJSON    string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an existing short link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("public-stats") {
				params.PublicStats = &publicStats
			}
			if metaJSON != "" {
				var meta map[string]any
				if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
					return newUsageErrorf("--meta-json must be a JSON object: %v", err)
				}
				params.Meta = meta
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			link, err := client.UpdateShortLink(cmd.Context(), params)
			if err != nil {
				return wrapAPIError(err)
			}
			return printJSON(link)
		},
	}

	cmd.Flags().StringVar(&params.ShortURL, "short-url", "", "Short URL to update (required)")
	cmd.Flags().StringVar(&params.LongURL, "long-url", "", "New destination URL")
	cmd.Flags().StringVar(&params.Description, "description", "", "New description")
	cmd.Flags().StringVar(&params.ExpireAtDatetime, "expire-at-datetime", "", "New expiry timestamp")
	cmd.Flags().BoolVar(&publicStats, "public-stats", false, "Make the link statistics public")
	cmd.Flags().StringVar(&metaJSON, "meta-json", "", "Extra metadata as a JSON object")

	if err := cmd.MarkFlagRequired("short-url"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}

	return cmd
}

func newLinkDeleteCmd() *cobra.Command {
	var shortURL string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a short link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.DeleteShortLink(cmd.Context(), shortURL)
			if err != nil {
				return wrapAPIError(err)
			}
			if len(raw) == 0 {
				fmt.Printf("Deleted %s\n", shortURL)
				return nil
			}
			return printRawJSON(raw)
		},
	}

	cmd.Flags().StringVar(&shortURL, "short-url", "", "Short URL to delete (required)")
	if err := cmd.MarkFlagRequired("short-url"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}

	return cmd
}

func newLinkListCmd() *cobra.Command {
	var (
		params tly.ListShortLinksParams
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List short links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			page, err := client.ListShortLinks(cmd.Context(), params)
			if err != nil {
				return wrapAPIError(err)
			}

			if format == FormatText {
				rows := make([][]string, 0, len(page.Data))
				for _, link := range page.Data {
					rows = append(rows, []string{
						strconv.FormatInt(link.ID, 10),
						link.ShortURL,
						link.LongURL,
						link.Description,
						link.CreatedAt,
					})
				}
				return renderTable([]string{"ID", "Short URL", "Long URL", "Description", "Created"}, rows)
			}
			return printJSON(page)
		},
	}

	cmd.Flags().StringVar(&params.Search, "search", "", "Search term")
	cmd.Flags().StringSliceVar(&params.TagIDs, "tag-ids", nil, "Filter by tag IDs")
	cmd.Flags().StringSliceVar(&params.PixelIDs, "pixel-ids", nil, "Filter by pixel IDs")
	cmd.Flags().StringSliceVar(&params.Domains, "domains", nil, "Filter by domains")
	cmd.Flags().StringVar(&params.StartDate, "start-date", "", "Only links created on or after this date")
	cmd.Flags().StringVar(&params.EndDate, "end-date", "", "Only links created on or before this date")
	cmd.Flags().StringVar(&format, "format", FormatJSON, "Output format: json or text")

	return cmd
}

func newLinkStatsCmd() *cobra.Command {
	var (
		shortURL string
		params   tly.StatsParams
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Fetch click statistics for a short link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.GetLinkStats(cmd.Context(), shortURL, params)
			if err != nil {
				return wrapAPIError(err)
			}
			return printRawJSON(raw)
		},
	}

	cmd.Flags().StringVar(&shortURL, "short-url", "", "Short URL to fetch stats for (required)")
	cmd.Flags().StringVar(&params.StartDate, "start-date", "", "Start of the date range")
	cmd.Flags().StringVar(&params.EndDate, "end-date", "", "End of the date range")

	if err := cmd.MarkFlagRequired("short-url"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}

	return cmd
}

func newLinkBulkShortenCmd() *cobra.Command {
	var (
		linksJSON string
		domain    string
		tags      []int64
		pixels    []int64
	)

	cmd := &cobra.Command{
		Use:   "bulk-shorten",
		Short: "Shorten multiple long URLs in one request",
		Long: `Shorten multiple long URLs in one request.

Example:
  tly link bulk-shorten --links-json '[{"long_url": "https://example.com/a"},
                                       {"long_url": "https://example.com/b"}]'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var links []tly.BulkLink
			if err := json.Unmarshal([]byte(linksJSON), &links); err != nil {
				return newUsageErrorf("--links-json must be a JSON array of links: %v", err)
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.BulkShortenLinks(cmd.Context(), tly.BulkShortenParams{
				Links:  links,
				Domain: domain,
				Tags:   tags,
				Pixels: pixels,
			})
			if err != nil {
				return wrapAPIError(err)
			}
			return printRawJSON(raw)
		},
	}

	cmd.Flags().StringVar(&linksJSON, "links-json", "", "JSON array of links to shorten (required)")
	cmd.Flags().StringVar(&domain, "domain", "", "Custom domain for the new short links")
	cmd.Flags().Int64SliceVar(&tags, "tags", nil, "Tag IDs to attach to every link")
	cmd.Flags().Int64SliceVar(&pixels, "pixels", nil, "Pixel IDs to attach to every link")

	if err := cmd.MarkFlagRequired("links-json"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}

	return cmd
}

func newLinkBulkUpdateCmd() *cobra.Command {
	var (
		linksJSON string
		tags      []int64
		pixels    []int64
	)

	cmd := &cobra.Command{
		Use:   "bulk-update",
		Short: "Update multiple short links in one request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var links []tly.BulkUpdateLink
			if err := json.Unmarshal([]byte(linksJSON), &links); err != nil {
				return newUsageErrorf("--links-json must be a JSON array of links: %v", err)
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.BulkUpdateLinks(cmd.Context(), tly.BulkUpdateParams{
				Links:  links,
				Tags:   tags,
				Pixels: pixels,
			})
			if err != nil {
				return wrapAPIError(err)
			}
			return printRawJSON(raw)
		},
	}

	cmd.Flags().StringVar(&linksJSON, "links-json", "", "JSON array of link updates (required)")
	cmd.Flags().Int64SliceVar(&tags, "tags", nil, "Tag IDs to attach to every link")
	cmd.Flags().Int64SliceVar(&pixels, "pixels", nil, "Pixel IDs to attach to every link")

	if err := cmd.MarkFlagRequired("links-json"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}

	return cmd
}
