package cmd

import (
	"fmt"

	"github.com/noteshare/cli/internal/api"
	"github.com/noteshare/cli/internal/output"
	"github.com/spf13/cobra"
)

var permsCmd = &cobra.Command{
	Use:   "perms <note-id>",
	Short: "Show your permissions on a note",
	Long: `Show the server's edit decision for a note: whether you are an
admin, the owner, or a shared recipient, and the resulting can-edit answer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		noteID, err := parseNoteID(args[0])
		if err != nil {
			return err
		}

		var resp api.Response[api.Permissions]
		if err := apiClient.Get(fmt.Sprintf("/notes/%d/permissions", noteID), nil, &resp); err != nil {
			return fmt.Errorf("fetching permissions: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}

		output.PermissionsInfo(resp.Data)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(permsCmd)
}
