package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tlyhq/tly-cli/pkg/logger"
	"github.com/tlyhq/tly-cli/pkg/tly"
)

func newPixelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pixel",
		Short: "Manage retargeting pixels",
	}

	cmd.AddCommand(newPixelListCmd())
	cmd.AddCommand(newPixelCreateCmd())
	cmd.AddCommand(newPixelGetCmd())
	cmd.AddCommand(newPixelUpdateCmd())
	cmd.AddCommand(newPixelDeleteCmd())

	return cmd
}

func addPixelParamFlags(cmd *cobra.Command, params *tly.PixelParams) {
	cmd.Flags().StringVar(&params.Name, "name", "", "Pixel name (required)")
	cmd.Flags().StringVar(&params.PixelID, "pixel-id", "", "Platform pixel ID (required)")
	cmd.Flags().StringVar(&params.PixelType, "pixel-type", "", "Pixel platform, e.g. facebook, google (required)")

	for _, flag := range []string{"name", "pixel-id", "pixel-type"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			logger.Warnf("Warning: Failed to mark flag as required: %v", err)
		}
	}
}

func newPixelListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all pixels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			pixels, err := client.ListPixels(cmd.Context())
			if err != nil {
				return wrapAPIError(err)
			}

			if format == FormatText {
				rows := make([][]string, 0, len(pixels))
				for _, pixel := range pixels {
					rows = append(rows, []string{
						strconv.FormatInt(pixel.ID, 10),
						pixel.Name,
						pixel.PixelID,
						pixel.PixelType,
					})
				}
				return renderTable([]string{"ID", "Name", "Pixel ID", "Type"}, rows)
			}
			return printJSON(pixels)
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatJSON, "Output format: json or text")

	return cmd
}

func newPixelCreateCmd() *cobra.Command {
	var params tly.PixelParams

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new pixel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			pixel, err := client.CreatePixel(cmd.Context(), params)
			if err != nil {
				return wrapAPIError(err)
			}
			return printJSON(pixel)
		},
	}

	addPixelParamFlags(cmd, &params)

	return cmd
}

func newPixelGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a pixel by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			pixel, err := client.GetPixel(cmd.Context(), args[0])
			if err != nil {
				return wrapAPIError(err)
			}
			return printJSON(pixel)
		},
	}

	return cmd
}

func newPixelUpdateCmd() *cobra.Command {
	var params tly.PixelParams

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a pixel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			pixel, err := client.UpdatePixel(cmd.Context(), args[0], params)
			if err != nil {
				return wrapAPIError(err)
			}
			return printJSON(pixel)
		},
	}

	addPixelParamFlags(cmd, &params)

	return cmd
}

func newPixelDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a pixel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.DeletePixel(cmd.Context(), args[0])
			if err != nil {
				return wrapAPIError(err)
			}
			if len(raw) == 0 {
				fmt.Printf("Deleted pixel %s\n", args[0])
				return nil
			}
			return printRawJSON(raw)
		},
	}

	return cmd
}
