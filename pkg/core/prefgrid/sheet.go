package prefgrid

import (
	"fmt"

	"github.com/shavzak/scheduler/pkg/core/allocator"
)

// ParseSheetValues reads a preference grid from spreadsheet cell values.
// The Sheets API drops trailing empty cells, so data rows shorter than the
// header are padded with empty cells before parsing.
func ParseSheetValues(values [][]interface{}, roster []allocator.Employee, week allocator.Week) (*Result, error) {
	rows := make([][]string, len(values))
	for i, row := range values {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			if cell == nil {
				continue
			}
			rows[i][j] = fmt.Sprint(cell)
		}
	}

	rows = dropBlankRows(rows)
	if len(rows) > 0 {
		width := len(rows[0])
		for i := 1; i < len(rows); i++ {
			for len(rows[i]) < width {
				rows[i] = append(rows[i], "")
			}
		}
	}

	return parseRows(rows, roster, week)
}
