package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/examdesk/examdesk/internal/auth"
	"github.com/examdesk/examdesk/internal/config"
	"github.com/examdesk/examdesk/internal/examapi"
	"github.com/examdesk/examdesk/internal/logging"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger     *slog.Logger
	api        *examapi.Client
	controller *auth.Controller
)

// defaultServer returns the default exam service URL, checking the
// EXAMDESK_API_URL env var first.
func defaultServer() string {
	if s := os.Getenv(config.EnvAPIBaseURL); s != "" {
		return s
	}
	return config.DefaultAPIBaseURL
}

// NewRootCmd creates the root cobra command for the examdesk CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "examdesk",
		Short: "ExamDesk — client for the online examination platform",
		Long:  "ExamDesk talks to the exam service: log in, browse exams, and review results from the terminal.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
			api = examapi.New(flagServer, logger)

			tokens, err := newFileTokenStore()
			if err != nil {
				return fmt.Errorf("locate credentials: %w", err)
			}
			controller = auth.NewController(api, tokens)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "Exam service URL (or EXAMDESK_API_URL env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newExamsCmd(),
		newResultsCmd(),
	)

	return root
}
