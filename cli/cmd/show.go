package cmd

import (
	"fmt"
	"strconv"

	"github.com/noteshare/cli/internal/api"
	"github.com/noteshare/cli/internal/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <note-id>",
	Short: "Show a note in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		noteID, err := parseNoteID(args[0])
		if err != nil {
			return err
		}

		viewer, err := currentUser()
		if err != nil {
			return err
		}

		// The API exposes no single-note read; pick the note out of the
		// visible listing, which enforces the same visibility rules.
		var resp api.Response[[]api.Note]
		if err := apiClient.Get("/notes", nil, &resp); err != nil {
			return fmt.Errorf("listing notes: %w", err)
		}

		for _, note := range resp.Data {
			if note.ID == noteID {
				if flagJSON {
					output.JSON(note)
					return nil
				}
				output.NoteDetail(note, viewer)
				return nil
			}
		}

		return fmt.Errorf("note %d not found or not visible to you", noteID)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func parseNoteID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid note id %q: must be a positive integer", raw)
	}
	return id, nil
}
