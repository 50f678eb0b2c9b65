package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shavzak/scheduler/pkg/core/allocator"
	"github.com/shavzak/scheduler/pkg/core/services"
)

// HistoryCmd creates the history command
func HistoryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history [count]",
		Short: "List recently finalised weeks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := services.DefaultHistoryCount
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("count must be a positive integer, got: %s", args[0])
				}
				count = n
			}

			history, err := services.ListScheduleHistory(app.Ctx, app.Database, app.Logger, count)
			if err != nil {
				return err
			}

			if len(history) == 0 {
				fmt.Println("\nNo schedules have been finalised yet.")
				return nil
			}

			fmt.Printf("\nLast %d finalised weeks:\n\n", len(history))
			fmt.Printf("%-12s %-38s %-20s %6s %9s\n", "Week", "ID", "Finalised", "Seats", "Unfilled")
			fmt.Println(strings.Repeat("-", 89))

			week := app.Cfg.Week()
			for _, h := range history {
				seats := 0
				unfilled := 0
				for _, slot := range week.Slots() {
					assigned := len(h.Schedule[slot.Name()])
					seats += assigned
					if assigned < allocator.SlotCapacity {
						unfilled++
					}
				}
				fmt.Printf("%-12s %-38s %-20s %6d %9d\n",
					h.WeekStart,
					h.ID,
					h.FinalisedAt.Local().Format("2006-01-02 15:04"),
					seats,
					unfilled,
				)
			}
			fmt.Println()

			return nil
		},
	}
}
