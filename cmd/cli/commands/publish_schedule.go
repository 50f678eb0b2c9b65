package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shavzak/scheduler/pkg/core/allocator"
	"github.com/shavzak/scheduler/pkg/core/services"
)

// PublishScheduleCmd creates the publishSchedule command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishSchedule",
		Short: "Publish the latest finalised schedule to the schedule sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Cfg.PublishSheetID == "" {
				return services.ErrPublishNotConfigured
			}

			client, err := app.SheetsClient()
			if err != nil {
				return err
			}

			published, err := services.PublishSchedule(app.Ctx, app.Database, client, app.Cfg, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Published the week of %s to spreadsheet %s\n\n", published.WeekStart, app.Cfg.PublishSheetID)
			week := allocator.Week{Days: published.Days, ShiftTypes: published.ShiftTypes}
			writeScheduleGrid(os.Stdout, week, published.Names)
			fmt.Println()

			return nil
		},
	}
}
