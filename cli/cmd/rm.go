package cmd

import (
	"fmt"
	"strings"

	"github.com/noteshare/cli/internal/api"
	"github.com/spf13/cobra"
)

var flagForce bool

var rmCmd = &cobra.Command{
	Use:   "rm <note-id>",
	Short: "Delete a note",
	Long: `Delete a note from the server. Requires edit rights on the note.

  noteshare rm 42
  noteshare rm 42 --force          Skip confirmation

This cannot be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		noteID, err := parseNoteID(args[0])
		if err != nil {
			return err
		}

		if !flagForce {
			answer, err := promptLine(fmt.Sprintf("Delete note %d? This cannot be undone. [y/N] ", noteID))
			if err != nil {
				return err
			}
			answer = strings.ToLower(answer)
			if answer != "y" && answer != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		var resp api.Response[map[string]string]
		if err := apiClient.Delete(fmt.Sprintf("/notes/%d", noteID), &resp); err != nil {
			return describeAccessError(err, "deleting note")
		}

		fmt.Printf("Deleted note %d.\n", noteID)
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Skip confirmation prompt")
	rootCmd.AddCommand(rmCmd)
}
