package cmd

import (
	"fmt"

	"github.com/noteshare/cli/internal/api"
	"github.com/noteshare/cli/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagTitle     string
	flagContent   string
	flagPublic    bool
	flagShareWith []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new note",
	Long: `Create a note. Notes are private by default.

  noteshare create --title "Groceries" --content "milk, eggs"
  noteshare create --title "Minutes" --content "..." --public
  noteshare create --title "Plan" --content "..." --share-with bob@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		title := flagTitle
		if title == "" {
			var err error
			if title, err = promptLine("Title: "); err != nil {
				return err
			}
		}

		content := flagContent
		if content == "" {
			var err error
			if content, err = promptLine("Content: "); err != nil {
				return err
			}
		}

		body := map[string]any{
			"title":    title,
			"content":  content,
			"isPublic": flagPublic,
		}
		if len(flagShareWith) > 0 {
			body["sharedWith"] = flagShareWith
		}

		var resp api.Response[api.Note]
		if err := apiClient.Post("/notes", body, &resp); err != nil {
			return fmt.Errorf("creating note: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}

		fmt.Printf("Created note %d: %s\n", resp.Data.ID, resp.Data.Title)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&flagTitle, "title", "", "Note title")
	createCmd.Flags().StringVar(&flagContent, "content", "", "Note content")
	createCmd.Flags().BoolVar(&flagPublic, "public", false, "Make the note visible to everyone")
	createCmd.Flags().StringSliceVar(&flagShareWith, "share-with", nil, "Email(s) to share the note with")
	rootCmd.AddCommand(createCmd)
}
