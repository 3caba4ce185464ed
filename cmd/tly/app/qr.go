package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tlyhq/tly-cli/pkg/logger"
	"github.com/tlyhq/tly-cli/pkg/tly"
)

func newQRCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Fetch or restyle QR codes for short links",
	}

	cmd.AddCommand(newQRGetCmd())
	cmd.AddCommand(newQRUpdateCmd())

	return cmd
}

func newQRGetCmd() *cobra.Command {
	var (
		shortURL string
		output   string
		qrFormat string
		outFile  string
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch the QR code of a short link",
		Long: `Fetch the QR code of a short link.

With --output image (the default) the raw image bytes are written to --out,
or to stdout when stdout is redirected. With --output base64 the API's JSON
response is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch output {
			case tly.QROutputImage, tly.QROutputBase64:
			default:
				return newUsageErrorf("invalid output %q: must be %s or %s",
					output, tly.QROutputImage, tly.QROutputBase64)
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if output == tly.QROutputBase64 {
				raw, err := client.GetQRCodeBase64(cmd.Context(), shortURL, qrFormat)
				if err != nil {
					return wrapAPIError(err)
				}
				return printRawJSON(raw)
			}

			image, err := client.GetQRCodeImage(cmd.Context(), shortURL, qrFormat)
			if err != nil {
				return wrapAPIError(err)
			}

			if outFile != "" {
				if err := os.WriteFile(outFile, image, 0644); err != nil { // #nosec G306 - QR images are not secrets
					return fmt.Errorf("failed to write %s: %w", outFile, err)
				}
				fmt.Fprintf(os.Stderr, "Wrote %d bytes to %s\n", len(image), outFile)
				return nil
			}

			// Refuse to dump binary image data onto an interactive terminal.
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return newUsageErrorf("stdout is a terminal; use --out FILE or redirect the output")
			}

			if _, err := os.Stdout.Write(image); err != nil {
				return fmt.Errorf("failed to write image: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shortURL, "short-url", "", "Short URL the QR code points at (required)")
	cmd.Flags().StringVar(&output, "output", tly.QROutputImage, "Output mode: image or base64")
	cmd.Flags().StringVar(&qrFormat, "qr-format", tly.QRFormatPNG, "Image format: png or eps")
	cmd.Flags().StringVar(&outFile, "out", "", "Write the image to this file instead of stdout")

	if err := cmd.MarkFlagRequired("short-url"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}

	return cmd
}

func newQRUpdateCmd() *cobra.Command {
	var params tly.UpdateQRCodeParams

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the styling of a short link's QR code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.UpdateQRCode(cmd.Context(), params)
			if err != nil {
				return wrapAPIError(err)
			}
			return printRawJSON(raw)
		},
	}

	cmd.Flags().StringVar(&params.ShortURL, "short-url", "", "Short URL the QR code points at (required)")
	cmd.Flags().StringVar(&params.Image, "image", "", "Center image URL")
	cmd.Flags().StringVar(&params.BackgroundColor, "background-color", "", "Background color, e.g. #ffffff")
	cmd.Flags().StringVar(&params.CornerDotsColor, "corner-dots-color", "", "Corner dots color")
	cmd.Flags().StringVar(&params.DotsColor, "dots-color", "", "Dots color")
	cmd.Flags().StringVar(&params.DotsStyle, "dots-style", "", "Dots style, e.g. rounded")
	cmd.Flags().StringVar(&params.CornerStyle, "corner-style", "", "Corner style")

	if err := cmd.MarkFlagRequired("short-url"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}

	return cmd
}
