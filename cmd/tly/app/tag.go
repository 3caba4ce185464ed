package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tlyhq/tly-cli/pkg/logger"
)

func newTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}

	cmd.AddCommand(newTagListCmd())
	cmd.AddCommand(newTagCreateCmd())
	cmd.AddCommand(newTagGetCmd())
	cmd.AddCommand(newTagUpdateCmd())
	cmd.AddCommand(newTagDeleteCmd())

	return cmd
}

func newTagListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			tags, err := client.ListTags(cmd.Context())
			if err != nil {
				return wrapAPIError(err)
			}

			if format == FormatText {
				rows := make([][]string, 0, len(tags))
				for _, tag := range tags {
					rows = append(rows, []string{strconv.FormatInt(tag.ID, 10), tag.Tag})
				}
				return renderTable([]string{"ID", "Tag"}, rows)
			}
			return printJSON(tags)
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatJSON, "Output format: json or text")

	return cmd
}

func newTagCreateCmd() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			created, err := client.CreateTag(cmd.Context(), tag)
			if err != nil {
				return wrapAPIError(err)
			}
			return printJSON(created)
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Tag name (required)")
	if err := cmd.MarkFlagRequired("tag"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}

	return cmd
}

func newTagGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a tag by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			tag, err := client.GetTag(cmd.Context(), args[0])
			if err != nil {
				return wrapAPIError(err)
			}
			return printJSON(tag)
		},
	}

	return cmd
}

func newTagUpdateCmd() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			updated, err := client.UpdateTag(cmd.Context(), args[0], tag)
			if err != nil {
				return wrapAPIError(err)
			}
			return printJSON(updated)
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "New tag name (required)")
	if err := cmd.MarkFlagRequired("tag"); err != nil {
		logger.Warnf("Warning: Failed to mark flag as required: %v", err)
	}

	return cmd
}

func newTagDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.DeleteTag(cmd.Context(), args[0])
			if err != nil {
				return wrapAPIError(err)
			}
			if len(raw) == 0 {
				fmt.Printf("Deleted tag %s\n", args[0])
				return nil
			}
			return printRawJSON(raw)
		},
	}

	return cmd
}
