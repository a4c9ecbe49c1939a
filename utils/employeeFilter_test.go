package utils

import (
	"testing"
	"time"

	"github.com/Sanchit24s/payslip-backend/models"
)

func TestFilterActiveEmployees(t *testing.T) {
	endOfJuly := time.Date(2025, time.July, 31, 23, 59, 59, 0, time.UTC)
	employees := []models.EmployeeRecord{
		{Code: "EMP001", DateOfJoining: "15-Mar-2023"},
		{Code: "EMP002", DateOfJoining: "2025-07-31"},
		{Code: "EMP003", DateOfJoining: "01-Aug-2025"}, // joined after cutoff
		{Code: "EMP004", DateOfJoining: "someday"},     // unparseable, excluded
	}

	active := FilterActiveEmployees(employees, endOfJuly)
	if len(active) != 2 {
		t.Fatalf("expected 2 active employees, got %d", len(active))
	}
	if active[0].Code != "EMP001" || active[1].Code != "EMP002" {
		t.Fatalf("unexpected active set: %+v", active)
	}
}

func TestFilterByDepartment(t *testing.T) {
	employees := []models.EmployeeRecord{
		{Code: "EMP001", Department: "Engineering"},
		{Code: "EMP002", Department: "Sales"},
		{Code: "EMP003", Department: "engineering"},
	}

	if got := FilterByDepartment(employees, ""); len(got) != 3 {
		t.Fatalf("empty department should pass through, got %d", len(got))
	}
	if got := FilterByDepartment(employees, "All"); len(got) != 3 {
		t.Fatalf("All should pass through, got %d", len(got))
	}

	eng := FilterByDepartment(employees, "Engineering")
	if len(eng) != 2 {
		t.Fatalf("expected 2 engineering employees (case-insensitive), got %d", len(eng))
	}
}

func TestFilterWithAttendance(t *testing.T) {
	employees := []models.EmployeeRecord{
		{Code: "EMP001"},
		{Code: "EMP002"},
		{Code: "EMP003"},
	}
	attendance := []models.AttendanceRecord{
		{EmployeeCode: "EMP001"},
		{EmployeeCode: "EMP003"},
		{EmployeeCode: "EMP999"}, // no matching employee
	}

	got := FilterWithAttendance(employees, attendance)
	if len(got) != 2 {
		t.Fatalf("expected 2 employees with attendance, got %d", len(got))
	}
	if got[0].Code != "EMP001" || got[1].Code != "EMP003" {
		t.Fatalf("unexpected filtered set: %+v", got)
	}
}
