package cmd

import (
	"fmt"

	"github.com/noteshare/cli/internal/api"
	"github.com/noteshare/cli/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagSearch string
	flagFilter string
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the notes visible to you",
	Long: `List every note you can see: your own notes, public notes, and
notes shared with your email. Admins see all notes.

  noteshare ls                          Everything visible to you
  noteshare ls --filter mine            Only notes you own
  noteshare ls --filter public          Only public notes
  noteshare ls --search groceries       Title/content text search`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		viewer, err := currentUser()
		if err != nil {
			return err
		}

		var resp api.Response[[]api.Note]
		if err := apiClient.Get("/notes", nil, &resp); err != nil {
			return fmt.Errorf("listing notes: %w", err)
		}

		notes, err := api.FilterNotes(resp.Data, viewer, flagFilter, flagSearch)
		if err != nil {
			return err
		}

		if flagJSON {
			output.JSON(notes)
			return nil
		}

		output.NoteTable(notes, viewer)
		return nil
	},
}

func init() {
	lsCmd.Flags().StringVar(&flagSearch, "search", "", "Only show notes whose title or content contains this text")
	lsCmd.Flags().StringVar(&flagFilter, "filter", "all", "Which notes to show: all, mine, shared, public")
	rootCmd.AddCommand(lsCmd)
}
