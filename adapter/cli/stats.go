package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tasklens/tasklens/internal/analytics/application/queries"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show rolling-window task statistics",
	Long: `Display aggregate task statistics for the recent window:
totals by status, overdue count, time spent, and completion rate.

Examples:
  tasklens stats             # Last 60 days
  tasklens stats --days 30   # Last 30 days`,
	Aliases: []string{"statistics"},
	RunE: func(cmd *cobra.Command, args []string) error {
		c := GetContainer()
		if c == nil {
			return fmt.Errorf("application not initialized")
		}

		stats := c.GetStatisticsHandler.Handle(cmd.Context(), queries.GetStatisticsQuery{
			UserID: c.CurrentUserID,
			Days:   statsDays,
		})

		days := statsDays
		if days <= 0 {
			days = queries.DefaultWindowDays
		}

		fmt.Printf("\n  Task Stats (last %d days)\n", days)
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("  Total tasks:      %d\n", stats.TotalTasks)
		fmt.Printf("  Completed:        %d\n", stats.CompletedTasks)
		fmt.Printf("  In progress:      %d\n", stats.InProgressTasks)
		fmt.Printf("  Todo:             %d\n", stats.TodoTasks)
		fmt.Printf("  Overdue:          %d\n", stats.OverdueTasks)
		fmt.Printf("  Time spent:       %.2fh\n", stats.TotalTimeSpentHours)
		fmt.Printf("  Avg per task:     %.2fh\n", stats.AvgTimePerTaskHours)
		fmt.Printf("  Completion rate:  %.1f%%\n", stats.CompletionRate)
		fmt.Println()
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 0, "window length in days")
	rootCmd.AddCommand(statsCmd)
}
