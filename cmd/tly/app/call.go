package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tlyhq/tly-cli/pkg/tly"
)

var callCmd = &cobra.Command{
	Use:   "call <operation>",
	Short: "Call any supported API operation by name",
	Long: `Call any supported API operation by name, passing parameters as a JSON object.

Path parameters (such as "id"), query parameters and body fields all go into
the same object; each operation routes them based on its HTTP method.

Example:
  tly call create_short_link --data '{"long_url": "https://example.com"}'
  tly call get_tag --data '{"id": 42}'

Run 'tly call --list' to see all supported operations.`,
	Args: func(_ *cobra.Command, args []string) error {
		if callList {
			return nil
		}
		if len(args) != 1 {
			return newUsageErrorf("expected exactly one operation name, got %d arguments", len(args))
		}
		return nil
	},
	RunE: callCmdFunc,
}

var (
	callData string
	callList bool
)

func init() {
	callCmd.Flags().StringVar(&callData, "data", "", "Operation parameters as a JSON object")
	callCmd.Flags().BoolVar(&callList, "list", false, "List all supported operations and exit")
}

func callCmdFunc(cmd *cobra.Command, args []string) error {
	if callList {
		return printOperations()
	}

	operation := args[0]
	if _, ok := tly.Endpoints[operation]; !ok {
		return newUsageErrorf("unknown operation %q; run 'tly call --list' to see supported operations", operation)
	}

	var params map[string]any
	if callData != "" {
		decoder := json.NewDecoder(strings.NewReader(callData))
		decoder.UseNumber()
		if err := decoder.Decode(&params); err != nil {
			return newUsageErrorf("--data must be a JSON object: %v", err)
		}
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	result, err := client.Call(cmd.Context(), operation, params)
	if err != nil {
		return wrapAPIError(err)
	}

	if result.Binary {
		if _, err := os.Stdout.Write(result.Body); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
		return nil
	}

	return printRawJSON(result.Body)
}

func printOperations() error {
	rows := make([][]string, 0, len(tly.Endpoints))
	for _, name := range tly.SupportedOperations() {
		endpoint := tly.Endpoints[name]
		rows = append(rows, []string{name, endpoint.Method, endpoint.Path, endpoint.Group})
	}
	return renderTable([]string{"Operation", "Method", "Path", "Group"}, rows)
}
