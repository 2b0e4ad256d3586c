package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account owning the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := controller.Initialize(cmd.Context()); err != nil {
				return err
			}
			user := controller.User()
			if user == nil {
				return fmt.Errorf("not logged in")
			}

			fmt.Printf("Name:   %s\n", user.Name)
			fmt.Printf("Email:  %s\n", user.Email)
			fmt.Printf("Role:   %s\n", user.Role)
			fmt.Printf("Active: %t\n", user.Enabled)
			return nil
		},
	}
}
