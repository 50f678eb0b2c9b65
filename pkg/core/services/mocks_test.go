package services

import (
	"context"
	"slices"

	"github.com/shavzak/scheduler/internal/config"
	"github.com/shavzak/scheduler/pkg/clients/sheetsclient"
	"github.com/shavzak/scheduler/pkg/db"
)

// mockStore is an in-memory db.Database with injectable errors
type mockStore struct {
	employees []db.Employee
	history   []db.ScheduleHistory

	getEmployeesErr error
	insertErr       error
	updateErr       error
	deleteErr       error
	finalizeErr     error
	historyErr      error

	finalizeCalls      int
	finalizedEmployees []db.Employee
	finalizedHistory   *db.ScheduleHistory
}

func (m *mockStore) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	if m.getEmployeesErr != nil {
		return nil, m.getEmployeesErr
	}
	return slices.Clone(m.employees), nil
}

func (m *mockStore) GetEmployee(ctx context.Context, id string) (*db.Employee, error) {
	for _, employee := range m.employees {
		if employee.ID == id {
			found := employee
			return &found, nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *mockStore) InsertEmployee(ctx context.Context, employee *db.Employee) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.employees = append(m.employees, *employee)
	return nil
}

func (m *mockStore) UpdateEmployeeName(ctx context.Context, id string, name string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.employees {
		if m.employees[i].ID == id {
			m.employees[i].Name = name
			return nil
		}
	}
	return db.ErrNotFound
}

func (m *mockStore) DeleteEmployee(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i := range m.employees {
		if m.employees[i].ID == id {
			m.employees = slices.Delete(m.employees, i, i+1)
			return nil
		}
	}
	return db.ErrNotFound
}

func (m *mockStore) FinalizeSchedule(ctx context.Context, employees []db.Employee, history *db.ScheduleHistory) error {
	m.finalizeCalls++
	if m.finalizeErr != nil {
		return m.finalizeErr
	}
	m.finalizedEmployees = employees
	m.finalizedHistory = history
	return nil
}

func (m *mockStore) GetScheduleHistory(ctx context.Context, limit int) ([]db.ScheduleHistory, error) {
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	if limit < len(m.history) {
		return slices.Clone(m.history[:limit]), nil
	}
	return slices.Clone(m.history), nil
}

func (m *mockStore) Close() {}

var _ db.Database = (*mockStore)(nil)

type mockPublisher struct {
	spreadsheetID string
	published     *sheetsclient.PublishedSchedule
	err           error
}

func (m *mockPublisher) PublishSchedule(spreadsheetID string, schedule *sheetsclient.PublishedSchedule) error {
	if m.err != nil {
		return m.err
	}
	m.spreadsheetID = spreadsheetID
	m.published = schedule
	return nil
}

type mockSheetReader struct {
	values [][]interface{}
	err    error
	sheet  *config.PreferenceSheet
}

func (m *mockSheetReader) ReadPreferenceGrid(sheet *config.PreferenceSheet) ([][]interface{}, error) {
	m.sheet = sheet
	return m.values, m.err
}

// testConfig returns a two-day week so schedules stay small
func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:      "postgres://localhost/test",
		DaysOfWeek:       []string{"Mon", "Tue"},
		ShiftTypes:       []string{"Day", "Night"},
		MaxShiftsPerWeek: 3,
		WeekStartRule:    "FREQ=WEEKLY;BYDAY=SU",
	}
}

func testEmployees() []db.Employee {
	return []db.Employee{
		{ID: "E1", Name: "Alice"},
		{ID: "E2", Name: "bob"},
		{ID: "E3", Name: "Carol"},
		{ID: "E4", Name: "Dan"},
	}
}
