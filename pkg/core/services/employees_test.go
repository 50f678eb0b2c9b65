package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shavzak/scheduler/pkg/db"
)

func TestListEmployees_SortedCaseInsensitive(t *testing.T) {
	store := &mockStore{employees: []db.Employee{
		{ID: "E1", Name: "dan"},
		{ID: "E2", Name: "Alice"},
		{ID: "E3", Name: "bob"},
		{ID: "E4", Name: "Carol"},
	}}

	employees, err := ListEmployees(context.Background(), store, zap.NewNop())
	require.NoError(t, err)

	names := make([]string, len(employees))
	for i, employee := range employees {
		names[i] = employee.Name
	}
	assert.Equal(t, []string{"Alice", "bob", "Carol", "dan"}, names)
}

func TestAddEmployee(t *testing.T) {
	store := &mockStore{employees: testEmployees()}

	employee, err := AddEmployee(context.Background(), store, zap.NewNop(), "  Eve  ")
	require.NoError(t, err)

	assert.Equal(t, "Eve", employee.Name)
	assert.NotEmpty(t, employee.ID)
	assert.Zero(t, employee.TotalShiftsAssigned)
	assert.Zero(t, employee.TotalDayShiftsAssigned)
	assert.Zero(t, employee.TotalNightShiftsAssigned)
	require.Len(t, store.employees, 5)
	assert.Equal(t, *employee, store.employees[4])
}

func TestAddEmployee_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		insertErr   error
		expectedErr error
	}{
		{name: "empty name", input: "", expectedErr: ErrInvalidEmployeeName},
		{name: "whitespace name", input: "   ", expectedErr: ErrInvalidEmployeeName},
		{name: "duplicate name", input: "ALICE", expectedErr: ErrDuplicateEmployee},
		{name: "store conflict", input: "Eve", insertErr: db.ErrConflict, expectedErr: ErrDuplicateEmployee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{employees: testEmployees(), insertErr: tt.insertErr}

			_, err := AddEmployee(context.Background(), store, zap.NewNop(), tt.input)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Len(t, store.employees, 4)
		})
	}
}

func TestRenameEmployee(t *testing.T) {
	store := &mockStore{employees: testEmployees()}
	store.employees[1].TotalShiftsAssigned = 7

	employee, err := RenameEmployee(context.Background(), store, zap.NewNop(), "E2", " Bobby ")
	require.NoError(t, err)

	assert.Equal(t, "Bobby", employee.Name)
	assert.Equal(t, 7, employee.TotalShiftsAssigned)
	assert.Equal(t, "Bobby", store.employees[1].Name)
}

func TestRenameEmployee_ChangeCaseOfOwnName(t *testing.T) {
	store := &mockStore{employees: testEmployees()}

	employee, err := RenameEmployee(context.Background(), store, zap.NewNop(), "E2", "Bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", employee.Name)
}

func TestRenameEmployee_Errors(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		input       string
		updateErr   error
		expectedErr error
	}{
		{name: "missing employee", id: "E9", input: "Zed", expectedErr: ErrEmployeeNotFound},
		{name: "empty name", id: "E1", input: " ", expectedErr: ErrInvalidEmployeeName},
		{name: "name taken", id: "E1", input: "carol", expectedErr: ErrDuplicateEmployee},
		{name: "store conflict", id: "E1", input: "Zed", updateErr: db.ErrConflict, expectedErr: ErrDuplicateEmployee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{employees: testEmployees(), updateErr: tt.updateErr}

			_, err := RenameEmployee(context.Background(), store, zap.NewNop(), tt.id, tt.input)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, testEmployees(), store.employees)
		})
	}
}

func TestDeleteEmployee(t *testing.T) {
	store := &mockStore{employees: testEmployees()}

	employee, err := DeleteEmployee(context.Background(), store, zap.NewNop(), "E3")
	require.NoError(t, err)

	assert.Equal(t, "Carol", employee.Name)
	require.Len(t, store.employees, 3)
	for _, remaining := range store.employees {
		assert.NotEqual(t, "E3", remaining.ID)
	}
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	store := &mockStore{employees: testEmployees()}

	_, err := DeleteEmployee(context.Background(), store, zap.NewNop(), "E9")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestDeleteEmployee_StoreError(t *testing.T) {
	storeErr := errors.New("foreign key violation")
	store := &mockStore{employees: testEmployees(), deleteErr: storeErr}

	_, err := DeleteEmployee(context.Background(), store, zap.NewNop(), "E1")
	assert.ErrorIs(t, err, storeErr)
}
