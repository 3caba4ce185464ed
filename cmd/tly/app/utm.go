package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tlyhq/tly-cli/pkg/logger"
	"github.com/tlyhq/tly-cli/pkg/tly"
)

func newUTMCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utm",
		Short: "Manage UTM parameter presets",
	}

	cmd.AddCommand(newUTMListCmd())
	cmd.AddCommand(newUTMCreateCmd())
	cmd.AddCommand(newUTMGetCmd())
	cmd.AddCommand(newUTMUpdateCmd())
	cmd.AddCommand(newUTMDeleteCmd())

	return cmd
}

func addUTMParamFlags(cmd *cobra.Command, params *tly.UTMPresetParams) {
	cmd.Flags().StringVar(&params.Name, "name", "", "Preset name (required)")
	cmd.Flags().StringVar(&params.Source, "source", "", "utm_source value (required)")
	cmd.Flags().StringVar(&params.Medium, "medium", "", "utm_medium value (required)")
	cmd.Flags().StringVar(&params.Campaign, "campaign", "", "utm_campaign value (required)")
	cmd.Flags().StringVar(&params.Content, "content", "", "utm_content value")
	cmd.Flags().StringVar(&params.Term, "term", "", "utm_term value")

	for _, flag := range []string{"name", "source", "medium", "campaign"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			logger.Warnf("Warning: Failed to mark flag as required: %v", err)
		}
	}
}

func newUTMListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all UTM presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			presets, err := client.ListUTMPresets(cmd.Context())
			if err != nil {
				return wrapAPIError(err)
			}

			if format == FormatText {
				rows := make([][]string, 0, len(presets))
				for _, preset := range presets {
					rows = append(rows, []string{
						strconv.FormatInt(preset.ID, 10),
						preset.Name,
						preset.Source,
						preset.Medium,
						preset.Campaign,
					})
				}
				return renderTable([]string{"ID", "Name", "Source", "Medium", "Campaign"}, rows)
			}
			return printJSON(presets)
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatJSON, "Output format: json or text")

	return cmd
}

func newUTMCreateCmd() *cobra.Command {
	var params tly.UTMPresetParams

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new UTM preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			preset, err := client.CreateUTMPreset(cmd.Context(), params)
			if err != nil {
				return wrapAPIError(err)
			}
			return printJSON(preset)
		},
	}

	addUTMParamFlags(cmd, &params)

	return cmd
}

func newUTMGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a UTM preset by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			preset, err := client.GetUTMPreset(cmd.Context(), args[0])
			if err != nil {
				return wrapAPIError(err)
			}
			return printJSON(preset)
		},
	}

	return cmd
}

func newUTMUpdateCmd() *cobra.Command {
	var params tly.UTMPresetParams

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a UTM preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			preset, err := client.UpdateUTMPreset(cmd.Context(), args[0], params)
			if err != nil {
				return wrapAPIError(err)
			}
			return printJSON(preset)
		},
	}

	addUTMParamFlags(cmd, &params)

	return cmd
}

func newUTMDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a UTM preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.DeleteUTMPreset(cmd.Context(), args[0])
			if err != nil {
				return wrapAPIError(err)
			}
			if len(raw) == 0 {
				fmt.Printf("Deleted UTM preset %s\n", args[0])
				return nil
			}
			return printRawJSON(raw)
		},
	}

	return cmd
}
