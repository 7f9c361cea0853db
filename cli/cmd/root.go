package cmd

import (
	"fmt"
	"os"

	"github.com/noteshare/cli/internal/api"
	"github.com/noteshare/cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagJSON      bool
	flagServerURL string

	cfg       *config.Config
	apiClient *api.Client
)

var rootCmd = &cobra.Command{
	Use:   "noteshare",
	Short: "NoteShare CLI — manage your notes from the terminal",
	Long: `NoteShare CLI lets you create, edit, share, and browse notes
on your NoteShare server without leaving the terminal.

Get started:
  noteshare register          Create an account
  noteshare login             Authenticate with email and password
  noteshare ls                List the notes you can see
  noteshare create            Write a new note`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagServerURL != "" {
			cfg.ServerURL = flagServerURL
		}
		apiClient = api.NewClient(cfg.ServerURL, cfg.Token)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server", "", "Override server URL (default: from config or http://localhost:8080)")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// requireAuth is a helper that returns an error if no token is configured.
func requireAuth() error {
	if cfg == nil || !cfg.HasToken() {
		return fmt.Errorf("not authenticated — run \"noteshare login\" first")
	}
	return nil
}

// currentUser fetches the authenticated user, used to compute the
// display-only can-edit column.
func currentUser() (api.User, error) {
	var resp api.Response[api.User]
	if err := apiClient.Get("/auth/me", nil, &resp); err != nil {
		return api.User{}, fmt.Errorf("fetching user: %w", err)
	}
	return resp.Data, nil
}
