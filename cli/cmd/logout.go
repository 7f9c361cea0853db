package cmd

import (
	"fmt"

	"github.com/noteshare/cli/internal/api"
	"github.com/noteshare/cli/internal/config"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Best effort: the server records the logout but cannot revoke the
		// stateless token. Discarding the local copy is what matters.
		if cfg.HasToken() {
			var resp api.Response[map[string]string]
			_ = apiClient.Post("/auth/logout", nil, &resp)
		}

		if err := config.Clear(); err != nil {
			return fmt.Errorf("clearing config: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
