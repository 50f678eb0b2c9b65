// Package prefgrid reads and writes preference grids: one row per employee, one
// column per slot, holding "1" (prefer), "0" (refuse) or an empty cell.
package prefgrid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shavzak/scheduler/pkg/core/allocator"
)

// EmployeeColumn is the expected title of the first header cell
const EmployeeColumn = "Employee"

var (
	// ErrTooFewRows is returned when the grid has no data row after the header
	ErrTooFewRows = errors.New("preference grid must have a header row and at least one data row")

	// ErrHeaderMismatch is returned when the first header cell is not EmployeeColumn
	ErrHeaderMismatch = errors.New("preference grid header mismatch")
)

// Result is the outcome of reading a preference grid
type Result struct {
	// Preferences holds a full slot map for every matched employee
	Preferences allocator.RawPreferences

	// Applied counts the non-empty values taken from the grid
	Applied int

	// Warnings describes every cell, column or row that was ignored or corrected
	Warnings []string
}

// parseRows maps grid rows onto preferences for the roster.
// Rows are compared against the header length; blank rows are skipped.
func parseRows(rows [][]string, roster []allocator.Employee, week allocator.Week) (*Result, error) {
	rows = dropBlankRows(rows)
	if len(rows) < 2 {
		return nil, ErrTooFewRows
	}

	header := trimCells(rows[0])
	if !strings.EqualFold(header[0], EmployeeColumn) {
		return nil, fmt.Errorf("%w: expected first column to be '%s', got '%s'", ErrHeaderMismatch, EmployeeColumn, header[0])
	}

	result := &Result{
		Preferences: make(allocator.RawPreferences),
		Warnings:    []string{},
	}

	slots := week.Slots()
	validSlots := make(map[string]bool, len(slots))
	for _, slot := range slots {
		validSlots[slot.Name()] = true
	}

	columns := make(map[int]string)
	for i := 1; i < len(header); i++ {
		if validSlots[header[i]] {
			columns[i] = header[i]
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Header '%s' is not a recognised shift slot and will be ignored", header[i]))
		}
	}

	idsByName := make(map[string]string, len(roster))
	for _, employee := range roster {
		idsByName[strings.ToLower(employee.Name)] = employee.ID
	}

	for i, row := range rows[1:] {
		rowNumber := i + 2
		cells := trimCells(row)

		if len(cells) != len(header) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Row %d has %d cells, expected %d. Skipping row", rowNumber, len(cells), len(header)))
			continue
		}

		name := cells[0]
		employeeID, ok := idsByName[strings.ToLower(name)]
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Employee '%s' (row %d) not found. Skipping their preferences", name, rowNumber))
			continue
		}

		prefs, exists := result.Preferences[employeeID]
		if !exists {
			prefs = make(map[string]string, len(slots))
			for _, slot := range slots {
				prefs[slot.Name()] = allocator.LiteralNeutral
			}
			result.Preferences[employeeID] = prefs
		}

		for j := 1; j < len(cells); j++ {
			slotName, ok := columns[j]
			if !ok {
				continue
			}

			value := cells[j]
			switch value {
			case allocator.LiteralPrefer, allocator.LiteralRefuse:
				prefs[slotName] = value
				result.Applied++
			case allocator.LiteralNeutral:
				prefs[slotName] = value
			default:
				result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid value '%s' for %s in %s. Setting to empty", value, name, slotName))
				prefs[slotName] = allocator.LiteralNeutral
			}
		}
	}

	return result, nil
}

func trimCells(row []string) []string {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

func dropBlankRows(rows [][]string) [][]string {
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}
