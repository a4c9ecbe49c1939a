// Package reports builds the dashboard figures and exports derived from the
// payroll sheet.
package reports

import (
	"time"

	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/Sanchit24s/payslip-backend/utils"
	"github.com/shopspring/decimal"
)

// MonthlyStats is the dashboard summary for one month.
type MonthlyStats struct {
	TotalEmployees int             `json:"totalEmployees"`
	TotalSalaries  decimal.Decimal `json:"totalSalaries"`
	SlipsGenerated int             `json:"slipsGenerated"`
	EmailsSent     int             `json:"emailsSent"`
}

// BuildMonthlyStats computes the dashboard counts from employees active at
// the end of the month and that month's attendance rows. Pure computation.
func BuildMonthlyStats(employees []models.EmployeeRecord, attendance []models.AttendanceRecord, endOfMonth time.Time) MonthlyStats {
	active := utils.FilterActiveEmployees(employees, endOfMonth)

	totalSalaries := decimal.Zero
	for _, emp := range active {
		totalSalaries = totalSalaries.Add(emp.NetPay)
	}

	stats := MonthlyStats{
		TotalEmployees: len(active),
		TotalSalaries:  totalSalaries,
	}
	for _, row := range attendance {
		if row.PayslipLink != "" {
			stats.SlipsGenerated++
		}
		if row.EmailSent {
			stats.EmailsSent++
		}
	}
	return stats
}

// BuildSalaryReport aggregates net pay, professional tax and TDS for active
// employees that have attendance, optionally narrowed to one department.
func BuildSalaryReport(employees []models.EmployeeRecord, attendance []models.AttendanceRecord, endOfMonth time.Time, department string) utils.SalaryStats {
	active := utils.FilterActiveEmployees(employees, endOfMonth)
	active = utils.FilterByDepartment(active, department)
	withAttendance := utils.FilterWithAttendance(active, attendance)
	return utils.CalculateSalaryStats(withAttendance)
}
