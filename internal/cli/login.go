package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/examdesk/examdesk/pkg/model"
)

func newLoginCmd() *cobra.Command {
	var (
		email    string
		password string
		asAdmin  bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the exam service",
		Long:  "Log in and store the session token for subsequent commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = prompt("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt("Password: "); err != nil {
					return err
				}
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			role := model.RoleStudent
			if asAdmin {
				role = model.RoleAdmin
			}

			res, err := controller.Login(cmd.Context(), email, password, role)
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", res.User.Name, res.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	cmd.Flags().BoolVar(&asAdmin, "admin", false, "Log in via the admin form")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			controller.Logout()
			fmt.Println("Logged out")
			return nil
		},
	}
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
