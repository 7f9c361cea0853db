package cmd

import (
	"fmt"

	"github.com/noteshare/cli/internal/api"
	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share <note-id> <email>",
	Short: "Share a note with an email address",
	Long: `Add an email address to a note's recipient list. Recipients can
view and edit the note. Sharing an already-shared address is a no-op.

  noteshare share 42 bob@example.com`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		noteID, err := parseNoteID(args[0])
		if err != nil {
			return err
		}
		email := args[1]

		var resp api.Response[map[string]string]
		err = apiClient.Post(fmt.Sprintf("/notes/%d/share", noteID), map[string]string{
			"email": email,
		}, &resp)
		if err != nil {
			return describeAccessError(err, "sharing note")
		}

		fmt.Printf("Shared note %d with %s.\n", noteID, email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
}
