package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shavzak/scheduler/pkg/core/services"
)

// ExportTemplateCmd creates the exportTemplate command
func ExportTemplateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "exportTemplate <file.csv>",
		Short: "Write an empty preference CSV for the current roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			defer file.Close()

			count, err := services.ExportTemplate(app.Ctx, app.Database, app.Cfg, app.Logger, file)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Wrote preference template for %d employees to %s\n", count, path)
			fmt.Println("  Fill cells with 1 (prefer), 0 (can't work) or leave them empty.")
			fmt.Println()
			return nil
		},
	}
}
