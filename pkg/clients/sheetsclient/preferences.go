package sheetsclient

import (
	"fmt"

	"github.com/shavzak/scheduler/internal/config"
)

// preferenceRange covers the employee column plus one column per slot of a full week
const preferenceRange = "A1:ZZ"

// ReadPreferenceGrid returns the raw cell values of the configured preference tab
func (c *Client) ReadPreferenceGrid(sheet *config.PreferenceSheet) ([][]interface{}, error) {
	if sheet == nil {
		return nil, fmt.Errorf("no preference sheet configured")
	}

	values, err := c.GetValues(sheet.SpreadsheetID, fmt.Sprintf("%s!%s", sheet.Tab, preferenceRange))
	if err != nil {
		return nil, fmt.Errorf("failed to read preference grid from tab %s: %w", sheet.Tab, err)
	}

	return values, nil
}
