package services

import (
	"github.com/shavzak/scheduler/pkg/core/allocator"
	"github.com/shavzak/scheduler/pkg/db"
)

// rosterFromRecords converts employee records into the allocator roster, keyed by ID
func rosterFromRecords(records []db.Employee) map[string]allocator.Employee {
	roster := make(map[string]allocator.Employee, len(records))
	for _, record := range records {
		roster[record.ID] = allocator.Employee{
			ID:                       record.ID,
			Name:                     record.Name,
			TotalShiftsAssigned:      record.TotalShiftsAssigned,
			TotalDayShiftsAssigned:   record.TotalDayShiftsAssigned,
			TotalNightShiftsAssigned: record.TotalNightShiftsAssigned,
		}
	}
	return roster
}

// recordFromEmployee converts an allocator employee back into a record for persistence
func recordFromEmployee(employee allocator.Employee) db.Employee {
	return db.Employee{
		ID:                       employee.ID,
		Name:                     employee.Name,
		TotalShiftsAssigned:      employee.TotalShiftsAssigned,
		TotalDayShiftsAssigned:   employee.TotalDayShiftsAssigned,
		TotalNightShiftsAssigned: employee.TotalNightShiftsAssigned,
	}
}

// employeeNames maps employee IDs to display names
func employeeNames(records []db.Employee) map[string]string {
	names := make(map[string]string, len(records))
	for _, record := range records {
		names[record.ID] = record.Name
	}
	return names
}
