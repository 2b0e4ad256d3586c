package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExamsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "exams",
		Short: "List exams",
		Long:  "List the exams visible to the logged-in account. Admins can list every exam with --all.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := controller.Initialize(cmd.Context()); err != nil {
				return err
			}
			if !controller.IsAuthenticated() {
				return fmt.Errorf("not logged in")
			}

			list := api.AvailableExams
			if all {
				if !controller.IsAdmin() {
					return fmt.Errorf("--all requires an admin account")
				}
				list = api.ListExams
			}

			exams, err := list(cmd.Context())
			if err != nil {
				return fmt.Errorf("list exams: %w", err)
			}
			if len(exams) == 0 {
				fmt.Println("No exams found.")
				return nil
			}

			fmt.Printf("%-6s  %-30s  %-16s  %-10s  %-8s  %s\n", "ID", "TITLE", "SUBJECT", "STATUS", "MARKS", "STARTS")
			fmt.Printf("%-6s  %-30s  %-16s  %-10s  %-8s  %s\n", "--", "-----", "-------", "------", "-----", "------")
			for _, e := range exams {
				fmt.Printf("%-6d  %-30s  %-16s  %-10s  %-8d  %s\n",
					e.ID, e.Title, e.SubjectName(), e.Status(), e.TotalMarks, e.StartTime.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every exam (admin only)")
	return cmd
}
