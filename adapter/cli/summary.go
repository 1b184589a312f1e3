package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tasklens/tasklens/internal/analytics/application/queries"
)

var (
	summaryMonthOffset int
	summaryJSON        bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a monthly task summary",
	Long: `Display the monthly summary: tasks created and completed, time
spent, completion rate, productivity score, completion streak, and a
per-category breakdown.

Examples:
  tasklens summary               # Current month
  tasklens summary --month 1     # Last month
  tasklens summary --json        # Raw JSON output`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := GetContainer()
		if c == nil {
			return fmt.Errorf("application not initialized")
		}

		summary := c.GetMonthlySummaryHandler.Handle(cmd.Context(), queries.GetMonthlySummaryQuery{
			UserID:      c.CurrentUserID,
			MonthOffset: summaryMonthOffset,
		})

		if summaryJSON {
			payload, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal summary: %w", err)
			}
			fmt.Println(string(payload))
			return nil
		}

		fmt.Printf("\n  %s", summary.MonthName)
		if summary.IsCurrentMonth {
			fmt.Print(" (current)")
		}
		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))

		if summary.Error != "" {
			fmt.Printf("  %s\n", summary.Error)
			return nil
		}

		o := summary.Overview
		fmt.Printf("  Tasks created:       %d\n", o.TasksCreated)
		fmt.Printf("  Tasks completed:     %d\n", o.TasksCompleted)
		fmt.Printf("  Completion rate:     %.1f%%\n", o.CompletionRate)
		fmt.Printf("  Time spent:          %dh\n", o.TotalTimeSpent)
		fmt.Printf("  Avg task time:       %.1fh\n", o.AvgTaskTime)
		fmt.Printf("  Productivity score:  %d/100\n", o.ProductivityScore)
		fmt.Printf("  Overdue tasks:       %d\n", o.OverdueTasks)
		fmt.Printf("  Completion streak:   %d days\n", o.StreakDays)

		if len(summary.Categories) > 0 {
			fmt.Println("\n  CATEGORIES")
			fmt.Println(strings.Repeat("-", 60))
			for _, cat := range summary.Categories {
				fmt.Printf("  %-14s %5.1fh (%4.1f%%)  %d tasks, %.1f%% done\n",
					cat.Name, cat.TimeSpent, cat.Percentage, cat.Tasks, cat.CompletionRate)
			}
		}

		fmt.Println()
		return nil
	},
}

func init() {
	summaryCmd.Flags().IntVarP(&summaryMonthOffset, "month", "m", 0, "months back from the current month")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "print raw JSON")
	rootCmd.AddCommand(summaryCmd)
}
