package sheetsclient

import (
	"fmt"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/shavzak/scheduler/pkg/core/allocator"
)

// PublishedSchedule is a finalised week laid out for a spreadsheet
type PublishedSchedule struct {
	WeekStart  string // Format: "2006-01-02"
	Days       []string
	ShiftTypes []string
	// Names maps slot names to display names, e.g. "Sunday_Day" -> "Dana, Omer"
	Names map[string]string
}

// PublishSchedule writes a week to its own tab titled "Week of Sun Oct 18 2026".
// The tab is created if missing; an existing tab is cleared and rewritten.
func (c *Client) PublishSchedule(spreadsheetID string, schedule *PublishedSchedule) error {
	tabTitle, err := generateTabTitle(schedule.WeekStart)
	if err != nil {
		return fmt.Errorf("failed to generate tab title: %w", err)
	}

	rows, err := buildScheduleRows(schedule)
	if err != nil {
		return err
	}

	// Check if tab exists
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(c.ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet metadata: %w", err)
	}

	exists := false
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == tabTitle {
			exists = true
			break
		}
	}

	if exists {
		_, err = c.service.Spreadsheets.Values.Clear(spreadsheetID, tabTitle, &sheets.ClearValuesRequest{}).Context(c.ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to clear tab %s: %w", tabTitle, err)
		}
	} else if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
		return fmt.Errorf("failed to create tab: %w", err)
	}

	_, err = c.service.Spreadsheets.Values.Update(
		spreadsheetID,
		fmt.Sprintf("%s!A1", tabTitle),
		&sheets.ValueRange{Values: rows},
	).ValueInputOption("RAW").Context(c.ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write schedule to tab %s: %w", tabTitle, err)
	}

	return nil
}

// generateTabTitle creates a tab title in the format "Week of Sun Oct 18 2026"
func generateTabTitle(weekStart string) (string, error) {
	start, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		return "", fmt.Errorf("invalid week start: %w", err)
	}
	return "Week of " + start.Format("Mon Jan 02 2006"), nil
}

// buildScheduleRows lays the week out with one column per day and one row per shift type.
// Days are dated consecutively from the week start.
func buildScheduleRows(schedule *PublishedSchedule) ([][]interface{}, error) {
	start, err := time.Parse("2006-01-02", schedule.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("invalid week start: %w", err)
	}

	header := []interface{}{"Shift"}
	for i, day := range schedule.Days {
		header = append(header, fmt.Sprintf("%s %s", day, start.AddDate(0, 0, i).Format("Jan 02")))
	}

	rows := [][]interface{}{header}
	for _, shiftType := range schedule.ShiftTypes {
		row := []interface{}{shiftType}
		for _, day := range schedule.Days {
			row = append(row, schedule.Names[allocator.SlotName(day, shiftType)])
		}
		rows = append(rows, row)
	}

	return rows, nil
}
