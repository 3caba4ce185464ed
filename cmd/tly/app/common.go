package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/viper"

	"github.com/tlyhq/tly-cli/pkg/config"
	"github.com/tlyhq/tly-cli/pkg/tly"
)

// usageError marks a local input problem, as opposed to an API failure.
// The process exits with code 2 for usage errors and 1 for everything else.
type usageError struct {
	message string
}

func (u *usageError) Error() string {
	return u.message
}

func newUsageErrorf(format string, args ...any) error {
	return &usageError{message: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error returned from command execution to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		return 2
	}
	return 1
}

// newAPIClient builds a T.LY client from flags, environment and the config
// file. Token resolution order: --token flag, TLY_API_TOKEN, config file,
// then a token file (--token-file or TLY_API_TOKEN_FILE).
func newAPIClient() (*tly.Client, error) {
	cfg, err := config.LoadOrCreateConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	token := viper.GetString("token")
	if token == "" {
		token = cfg.APIToken
	}
	tokenFile := viper.GetString("token-file")
	if token == "" && tokenFile == "" {
		return nil, newUsageErrorf(
			"no API token provided; use --token, --token-file, set TLY_API_TOKEN, or run 'tly config set-token'")
	}

	opts := []tly.Option{
		tly.WithTimeout(viper.GetDuration("timeout")),
	}
	if token == "" {
		opts = append(opts, tly.WithTokenFromFile(tokenFile))
	}

	baseURL := viper.GetString("base-url")
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	if baseURL != "" {
		opts = append(opts, tly.WithBaseURL(baseURL))
	}
	if cfg.CACertificatePath != "" {
		opts = append(opts, tly.WithCABundle(cfg.CACertificatePath))
	}

	return tly.New(token, opts...)
}

// wrapAPIError attaches the raw response body to API failures so the user
// sees exactly what the server returned.
func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *tly.APIError
	if errors.As(err, &apiErr) && apiErr.Body != "" {
		return fmt.Errorf("%w\nresponse body: %s", apiErr, strings.TrimSpace(apiErr.Body))
	}
	return err
}

// printJSON pretty-prints a value as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printRawJSON re-indents a raw JSON response. Non-JSON payloads are printed
// as-is.
func printRawJSON(raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		fmt.Println(strings.TrimSpace(string(raw)))
		return nil
	}
	fmt.Println(buf.String())
	return nil
}

// renderTable draws a bordered, left-aligned table on stdout.
func renderTable(headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Options(
		tablewriter.WithHeader(headers),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(len(headers), tw.AlignLeft)),
	)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// validateFormat checks a --format flag value.
func validateFormat(format string) error {
	switch format {
	case FormatJSON, FormatText:
		return nil
	default:
		return newUsageErrorf("invalid format %q: must be %s or %s", format, FormatJSON, FormatText)
	}
}
