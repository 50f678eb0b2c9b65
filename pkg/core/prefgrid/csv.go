package prefgrid

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/shavzak/scheduler/pkg/core/allocator"
)

// ParseCSV reads a preference grid from CSV. A leading UTF-8 BOM is ignored.
func ParseCSV(r io.Reader, roster []allocator.Employee, week allocator.Week) (*Result, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	// Row lengths are checked per row so mismatches become warnings
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return parseRows(rows, roster, week)
}

// WriteTemplate writes an empty grid with a UTF-8 BOM so spreadsheet tools
// detect the encoding. Employees appear in the given order.
func WriteTemplate(w io.Writer, employees []allocator.Employee, week allocator.Week) error {
	encoded := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	writer := csv.NewWriter(encoded)

	slots := week.Slots()
	header := make([]string, 0, len(slots)+1)
	header = append(header, EmployeeColumn)
	for _, slot := range slots {
		header = append(header, slot.Name())
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, employee := range employees {
		row := make([]string, len(header))
		row[0] = employee.Name
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", employee.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	if err := encoded.Close(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
