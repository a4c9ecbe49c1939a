package utils

import (
	"strings"
	"time"

	"github.com/Sanchit24s/payslip-backend/models"
)

// FilterActiveEmployees keeps employees who joined on or before the cutoff.
// Unparseable join dates are excluded, same as the sheet-era behavior.
func FilterActiveEmployees(employees []models.EmployeeRecord, endOfMonth time.Time) []models.EmployeeRecord {
	active := make([]models.EmployeeRecord, 0, len(employees))
	for _, emp := range employees {
		joined, err := ParseJoinDate(emp.DateOfJoining)
		if err != nil {
			continue
		}
		if !joined.After(endOfMonth) {
			active = append(active, emp)
		}
	}
	return active
}

func FilterByDepartment(employees []models.EmployeeRecord, department string) []models.EmployeeRecord {
	if department == "" || department == "All" {
		return employees
	}
	filtered := make([]models.EmployeeRecord, 0, len(employees))
	for _, emp := range employees {
		if strings.EqualFold(emp.Department, department) {
			filtered = append(filtered, emp)
		}
	}
	return filtered
}

// FilterWithAttendance keeps employees that have an attendance row.
func FilterWithAttendance(employees []models.EmployeeRecord, attendance []models.AttendanceRecord) []models.EmployeeRecord {
	attended := make(map[string]bool, len(attendance))
	for _, row := range attendance {
		attended[row.EmployeeCode] = true
	}
	filtered := make([]models.EmployeeRecord, 0, len(employees))
	for _, emp := range employees {
		if attended[emp.Code] {
			filtered = append(filtered, emp)
		}
	}
	return filtered
}
