package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/examdesk/examdesk/pkg/model"
)

func newRegisterCmd() *cobra.Command {
	var (
		name     string
		email    string
		password string
		asAdmin  bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log it in",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if name == "" {
				if name, err = prompt("Name: "); err != nil {
					return err
				}
			}
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
			if name == "" || email == "" || password == "" {
				return fmt.Errorf("name, email, and password are required")
			}

			role := model.RoleStudent
			if asAdmin {
				role = model.RoleAdmin
			}

			res, err := controller.Register(cmd.Context(), name, email, password, role)
			if err != nil {
				return err
			}

			fmt.Printf("Registered and logged in as %s (%s)\n", res.User.Name, res.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account name (prompted if omitted)")
	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	cmd.Flags().BoolVar(&asAdmin, "admin", false, "Register an admin account")
	return cmd
}
