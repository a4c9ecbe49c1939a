package reports

import (
	"testing"
	"time"

	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/shopspring/decimal"
)

func statsEmployees() []models.EmployeeRecord {
	return []models.EmployeeRecord{
		{Code: "EMP001", Department: "Engineering", DateOfJoining: "15-Mar-2023",
			NetPay: decimal.NewFromInt(45000), ProfessionalTax: decimal.NewFromInt(200), TDS: decimal.NewFromInt(1500)},
		{Code: "EMP002", Department: "Sales", DateOfJoining: "2024-01-10",
			NetPay: decimal.NewFromInt(62000), ProfessionalTax: decimal.NewFromInt(200), TDS: decimal.NewFromInt(3100)},
		{Code: "EMP003", Department: "Engineering", DateOfJoining: "01-Sep-2025", // joined after the month
			NetPay: decimal.NewFromInt(70000)},
	}
}

func endOfAugust() time.Time {
	return time.Date(2025, time.August, 31, 23, 59, 59, 0, time.UTC)
}

func TestBuildMonthlyStats(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{EmployeeCode: "EMP001", PayslipLink: "https://storage.example.com/a.pdf", EmailSent: true},
		{EmployeeCode: "EMP002", PayslipLink: "https://storage.example.com/b.pdf"},
	}

	stats := BuildMonthlyStats(statsEmployees(), attendance, endOfAugust())
	if stats.TotalEmployees != 2 {
		t.Fatalf("expected 2 active employees, got %d", stats.TotalEmployees)
	}
	if stats.TotalSalaries.String() != "107000" {
		t.Fatalf("expected total salaries 107000, got %s", stats.TotalSalaries)
	}
	if stats.SlipsGenerated != 2 || stats.EmailsSent != 1 {
		t.Fatalf("expected 2 slips / 1 email, got %d / %d", stats.SlipsGenerated, stats.EmailsSent)
	}
}

func TestBuildSalaryReport(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{EmployeeCode: "EMP001"},
		{EmployeeCode: "EMP002"},
	}

	all := BuildSalaryReport(statsEmployees(), attendance, endOfAugust(), "")
	if all.TotalSalaries.String() != "107000" {
		t.Fatalf("expected 107000, got %s", all.TotalSalaries)
	}

	eng := BuildSalaryReport(statsEmployees(), attendance, endOfAugust(), "Engineering")
	if eng.TotalSalaries.String() != "45000" || eng.TDS.String() != "1500" {
		t.Fatalf("unexpected engineering stats: %+v", eng)
	}
}

func TestBuildSalaryReport_EmptyAttendanceIsZero(t *testing.T) {
	stats := BuildSalaryReport(statsEmployees(), nil, endOfAugust(), "")
	if !stats.TotalSalaries.IsZero() || !stats.ProfessionalTax.IsZero() || !stats.TDS.IsZero() {
		t.Fatalf("expected zero stats without attendance, got %+v", stats)
	}
}
