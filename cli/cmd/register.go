package cmd

import (
	"fmt"

	"github.com/noteshare/cli/internal/api"
	"github.com/noteshare/cli/internal/config"
	"github.com/spf13/cobra"
)

var flagName string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create an account on the server and log in with it.

  noteshare register --name "Ada Lovelace" --email ada@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := flagName
		if name == "" {
			var err error
			if name, err = promptLine("Name: "); err != nil {
				return err
			}
		}

		email := flagEmail
		if email == "" {
			var err error
			if email, err = promptLine("Email: "); err != nil {
				return err
			}
		}

		password := flagPassword
		if password == "" {
			var err error
			if password, err = promptLine("Password: "); err != nil {
				return err
			}
		}

		client := api.NewClient(cfg.ServerURL, "")
		var resp api.Response[api.LoginResponse]
		err := client.Post("/auth/register", map[string]string{
			"name":     name,
			"email":    email,
			"password": password,
		}, &resp)
		if err != nil {
			return fmt.Errorf("registering: %w", err)
		}

		cfg.Token = resp.Data.Token
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Printf("Account created. Logged in as %s (%s)\n", resp.Data.User.Name, resp.Data.User.Email)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&flagName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&flagEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&flagPassword, "password", "", "Account password (prompted when omitted)")
	rootCmd.AddCommand(registerCmd)
}
