package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shavzak/scheduler/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule",
		Short: "Propose a schedule for the coming week (nothing is saved)",
		Long: `Propose a schedule for the coming week from the current roster and, optionally,
submitted preferences. The schedule is printed and can be written to a file with --out,
edited if needed, and committed with finalizeSchedule.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			csvPath, _ := cmd.Flags().GetString("csv")
			fromSheet, _ := cmd.Flags().GetBool("sheet")
			weekFlag, _ := cmd.Flags().GetString("week")
			outPath, _ := cmd.Flags().GetString("out")

			if csvPath != "" && fromSheet {
				return fmt.Errorf("--csv and --sheet cannot be used together")
			}

			from := time.Now()
			if weekFlag != "" {
				parsed, err := time.Parse("2006-01-02", weekFlag)
				if err != nil {
					return fmt.Errorf("--week must be a date in YYYY-MM-DD format, got: %s", weekFlag)
				}
				from = parsed
			}

			var loader services.PreferenceLoader
			switch {
			case csvPath != "":
				loader = services.CSVPreferences(csvPath)
			case fromSheet:
				if app.Cfg.PreferenceSheet == nil {
					return fmt.Errorf("--sheet requires preferenceSheet in the config file")
				}
				client, err := app.SheetsClient()
				if err != nil {
					return err
				}
				loader = services.SheetPreferences(client, app.Cfg.PreferenceSheet)
			}

			app.Logger.Debug("generateSchedule command",
				zap.String("csv", csvPath),
				zap.Bool("sheet", fromSheet),
				zap.Time("from", from),
				zap.String("out", outPath))

			result, err := services.GenerateSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, loader, from)
			if err != nil {
				return err
			}

			fmt.Printf("\nProposed schedule for the week of %s\n\n", result.WeekStart.Format("Mon Jan 02 2006"))
			writeScheduleGrid(os.Stdout, result.Week, result.Outcome.ScheduleNames)
			fmt.Println()

			if loader != nil {
				fmt.Printf("Preferences applied: %d\n", result.PreferencesApplied)
				if len(result.PreferenceWarnings) > 0 {
					fmt.Printf("⚠️  %d preference warnings:\n", len(result.PreferenceWarnings))
					for _, warning := range result.PreferenceWarnings {
						fmt.Printf("  - %s\n", warning)
					}
				}
				fmt.Println()
			}

			if len(result.Outcome.UnfilledSlots) > 0 {
				fmt.Printf("⚠️  %d slots could not be fully staffed:\n", len(result.Outcome.UnfilledSlots))
				for _, slot := range result.Outcome.UnfilledSlots {
					fmt.Printf("  - %s (%d/2)\n", slot, len(result.Outcome.Schedule[slot]))
				}
				fmt.Println()
			}

			fmt.Println("Shifts this week and counters after finalising:")
			fmt.Println()
			writeEmployeeCounters(os.Stdout, result.UpdatedEmployees, result.Outcome.WeeklyLoad)
			fmt.Println()

			if outPath == "" {
				fmt.Println("Nothing saved. Re-run with --out <file> and then finalizeSchedule <file> to commit.")
				fmt.Println()
				return nil
			}

			file, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			defer file.Close()

			if err := services.WriteScheduleDocument(file, services.NewScheduleDocument(result)); err != nil {
				return err
			}

			fmt.Printf("✓ Schedule written to %s\n", outPath)
			fmt.Printf("  Commit it with: finalizeSchedule %s\n\n", outPath)
			return nil
		},
	}

	cmd.Flags().String("csv", "", "Read preferences from a CSV file (see exportTemplate)")
	cmd.Flags().Bool("sheet", false, "Read preferences from the configured Google Sheet")
	cmd.Flags().String("week", "", "Schedule the week starting on or after this date (YYYY-MM-DD, default today)")
	cmd.Flags().String("out", "", "Write the schedule to this JSON file")

	return cmd
}
