package cmd

import (
	"github.com/noteshare/cli/internal/output"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		user, err := currentUser()
		if err != nil {
			return err
		}

		if flagJSON {
			output.JSON(user)
			return nil
		}

		output.UserInfo(user)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
