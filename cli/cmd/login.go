package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/noteshare/cli/internal/api"
	"github.com/noteshare/cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagEmail    string
	flagPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with your NoteShare server",
	Long: `Authenticate with email and password and store the session token.

  noteshare login --email you@example.com
  noteshare login --email you@example.com --password secret

When --password is omitted the password is read from stdin.`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&flagEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "Account password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
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
	err := client.Post("/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 401 {
			return fmt.Errorf("invalid credentials")
		}
		return fmt.Errorf("logging in: %w", err)
	}

	cfg.Token = resp.Data.Token
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("Logged in as %s (%s)\n", resp.Data.User.Name, resp.Data.User.Email)
	return nil
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
