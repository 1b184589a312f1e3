package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tasklens/tasklens/internal/analytics/application/queries"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about your tasks",
	Long: `Ask a free-text question about your task data.

With GEMINI_API_KEY set the answer comes from the Gemini API, grounded
in your actual task data. Without it, a rule-based responder answers
common questions about time spent, overdue tasks, and completion.

Examples:
  tasklens ask "how much time have I spent on tasks?"
  tasklens ask "what's my completion rate this month?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := GetContainer()
		if c == nil {
			return fmt.Errorf("application not initialized")
		}

		question := strings.Join(args, " ")
		answer := c.QueryTaskDataHandler.Handle(cmd.Context(), queries.QueryTaskDataQuery{
			UserID: c.CurrentUserID,
			Query:  question,
		})

		fmt.Println(answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
