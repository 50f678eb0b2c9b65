package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shavzak/scheduler/pkg/core/services"
)

// FinalizeScheduleCmd creates the finalizeSchedule command
func FinalizeScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalizeSchedule <schedule.json>",
		Short: "Commit a schedule into the employees' shift counters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			publish, _ := cmd.Flags().GetBool("publish")

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			doc, err := services.ReadScheduleDocument(file)
			if err != nil {
				return err
			}

			result, err := services.FinalizeSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, doc, force)
			if err != nil {
				return err
			}

			if len(result.ValidationErrors) > 0 {
				fmt.Printf("\n⚠️  Schedule breaks %d scheduling rules:\n", len(result.ValidationErrors))
				for _, validationErr := range result.ValidationErrors {
					fmt.Printf("  - [%s] %s\n", validationErr.RuleName, validationErr.Description)
				}
			}

			if len(result.IgnoredEmployeeIDs) > 0 {
				fmt.Printf("\n⚠️  Ignoring %d unknown employee IDs:\n", len(result.IgnoredEmployeeIDs))
				for _, id := range result.IgnoredEmployeeIDs {
					fmt.Printf("  - %s\n", id)
				}
			}

			if !result.Saved {
				fmt.Printf("\n❌ Schedule not saved. Fix the file or re-run with --force.\n\n")
				return nil
			}

			fmt.Printf("\n✓ Schedule for the week of %s finalised (%s)\n\n", result.History.WeekStart, result.History.ID)
			writeEmployeeCounters(os.Stdout, result.UpdatedEmployees, nil)
			fmt.Println()

			if !publish {
				return nil
			}

			client, err := app.SheetsClient()
			if err != nil {
				return err
			}
			if _, err := services.PublishSchedule(app.Ctx, app.Database, client, app.Cfg, app.Logger); err != nil {
				return err
			}

			fmt.Printf("✓ Published to spreadsheet %s\n\n", app.Cfg.PublishSheetID)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Save even if the schedule breaks scheduling rules")
	cmd.Flags().Bool("publish", false, "Publish the schedule to the configured spreadsheet after saving")

	return cmd
}
