package cmd

import (
	"fmt"

	"github.com/noteshare/cli/internal/api"
	"github.com/noteshare/cli/internal/output"
	"github.com/spf13/cobra"
)

var sharedCmd = &cobra.Command{
	Use:   "shared",
	Short: "List notes shared with you",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		viewer, err := currentUser()
		if err != nil {
			return err
		}

		var resp api.Response[[]api.Note]
		if err := apiClient.Get("/notes/shared", nil, &resp); err != nil {
			return fmt.Errorf("listing shared notes: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}

		output.NoteTable(resp.Data, viewer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sharedCmd)
}
