package services

import (
	"fmt"
	"os"

	"github.com/shavzak/scheduler/internal/config"
	"github.com/shavzak/scheduler/pkg/core/allocator"
	"github.com/shavzak/scheduler/pkg/core/prefgrid"
)

// PreferenceLoader reads preference submissions for the given roster and week
type PreferenceLoader func(roster []allocator.Employee, week allocator.Week) (*prefgrid.Result, error)

// PreferenceSheetReader reads the raw cells of a preference tab
type PreferenceSheetReader interface {
	ReadPreferenceGrid(sheet *config.PreferenceSheet) ([][]interface{}, error)
}

// CSVPreferences loads preferences from a CSV file
func CSVPreferences(path string) PreferenceLoader {
	return func(roster []allocator.Employee, week allocator.Week) (*prefgrid.Result, error) {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open preferences file: %w", err)
		}
		defer file.Close()

		return prefgrid.ParseCSV(file, roster, week)
	}
}

// SheetPreferences loads preferences from the configured Google Sheet tab
func SheetPreferences(client PreferenceSheetReader, sheet *config.PreferenceSheet) PreferenceLoader {
	return func(roster []allocator.Employee, week allocator.Week) (*prefgrid.Result, error) {
		if sheet == nil {
			return nil, fmt.Errorf("preferenceSheet is not configured")
		}

		values, err := client.ReadPreferenceGrid(sheet)
		if err != nil {
			return nil, err
		}

		return prefgrid.ParseSheetValues(values, roster, week)
	}
}
