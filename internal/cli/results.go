package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/examdesk/examdesk/pkg/model"
)

func newResultsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "results",
		Short: "List graded results",
		Long:  "List the logged-in student's results. Admins can list every result with --all.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := controller.Initialize(cmd.Context()); err != nil {
				return err
			}
			if !controller.IsAuthenticated() {
				return fmt.Errorf("not logged in")
			}

			var results []model.Result
			var err error
			if all {
				if !controller.IsAdmin() {
					return fmt.Errorf("--all requires an admin account")
				}
				results, err = api.AdminResults(cmd.Context())
			} else {
				results, err = api.StudentResults(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("list results: %w", err)
			}
			if len(results) == 0 {
				fmt.Println("No results found.")
				return nil
			}

			fmt.Printf("%-6s  %-30s  %-10s  %-8s  %s\n", "ID", "EXAM", "SCORE", "STATUS", "SUBMITTED")
			fmt.Printf("%-6s  %-30s  %-10s  %-8s  %s\n", "--", "----", "-----", "------", "---------")
			for _, res := range results {
				exam := "-"
				if res.Exam != nil {
					exam = res.Exam.Title
				}
				fmt.Printf("%-6d  %-30s  %3d/%-4d  %-8s  %s\n",
					res.ID, exam, res.Score, res.TotalMarks, res.Status, res.SubmittedAt.Format("2006-01-02 15:04"))
			}

			if all {
				if stats, err := api.ResultStatistics(cmd.Context()); err == nil {
					fmt.Printf("\n%d results, %d passed, %d failed, average %.1f\n",
						stats.TotalResults, stats.PassCount, stats.FailCount, stats.AverageScore)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every result (admin only)")
	return cmd
}
