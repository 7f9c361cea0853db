package cmd

import (
	"errors"
	"fmt"

	"github.com/noteshare/cli/internal/api"
	"github.com/noteshare/cli/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagEditTitle   string
	flagEditContent string
	flagEditPublic  bool
)

var editCmd = &cobra.Command{
	Use:   "edit <note-id>",
	Short: "Edit a note you can write to",
	Long: `Update a note's title, content, or visibility. Only the flags you
pass are changed. You can edit notes you own, notes shared with you, and
(as an admin) any note.

  noteshare edit 42 --title "New title"
  noteshare edit 42 --content "Rewritten" --public`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		noteID, err := parseNoteID(args[0])
		if err != nil {
			return err
		}

		body := map[string]any{}
		if cmd.Flags().Changed("title") {
			body["title"] = flagEditTitle
		}
		if cmd.Flags().Changed("content") {
			body["content"] = flagEditContent
		}
		if cmd.Flags().Changed("public") {
			body["isPublic"] = flagEditPublic
		}
		if len(body) == 0 {
			return fmt.Errorf("nothing to change — pass --title, --content, or --public")
		}

		var resp api.Response[api.Note]
		if err := apiClient.Put(fmt.Sprintf("/notes/%d", noteID), body, &resp); err != nil {
			return describeAccessError(err, "editing note")
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}

		fmt.Printf("Updated note %d: %s\n", resp.Data.ID, resp.Data.Title)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&flagEditTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&flagEditContent, "content", "", "New content")
	editCmd.Flags().BoolVar(&flagEditPublic, "public", false, "Set public visibility (use --public=false to make private)")
	rootCmd.AddCommand(editCmd)
}

// describeAccessError surfaces the server's denial diagnostics on 403
// instead of the bare status line.
func describeAccessError(err error, verb string) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Status == 403 {
		msg := apiErr.Message
		if owner, ok := apiErr.Details["note_owner_id"]; ok {
			msg = fmt.Sprintf("%s (note owner: %v)", msg, owner)
		}
		return fmt.Errorf("%s: %s", verb, msg)
	}
	return fmt.Errorf("%s: %w", verb, err)
}
