package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shavzak/scheduler/pkg/core/services"
)

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEmployees",
		Short: "List all employees with their historical shift counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := services.ListEmployees(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(employees) == 0 {
				fmt.Println("\nNo employees yet. Add one with 'addEmployee <name>'.")
				return nil
			}

			fmt.Printf("\nFound %d employees:\n\n", len(employees))
			fmt.Printf("%-38s %-24s %6s %6s %6s\n", "ID", "Name", "Total", "Day", "Night")
			fmt.Println(strings.Repeat("-", 84))
			for _, e := range employees {
				fmt.Printf("%-38s %-24s %6d %6d %6d\n",
					e.ID,
					e.Name,
					e.TotalShiftsAssigned,
					e.TotalDayShiftsAssigned,
					e.TotalNightShiftsAssigned,
				)
			}
			fmt.Println()

			return nil
		},
	}
}

// AddEmployeeCmd creates the addEmployee command
func AddEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addEmployee <name>",
		Short: "Add an employee to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee, err := services.AddEmployee(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Added %s (%s)\n\n", employee.Name, employee.ID)
			return nil
		},
	}
}

// RenameEmployeeCmd creates the renameEmployee command
func RenameEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "renameEmployee <id> <name>",
		Short: "Change an employee's name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee, err := services.RenameEmployee(app.Ctx, app.Database, app.Logger, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Renamed %s to %s\n\n", employee.ID, employee.Name)
			return nil
		},
	}
}

// DeleteEmployeeCmd creates the deleteEmployee command
func DeleteEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteEmployee <id>",
		Short: "Remove an employee from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee, err := services.DeleteEmployee(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Deleted %s (%s)\n\n", employee.Name, employee.ID)
			return nil
		},
	}
}
