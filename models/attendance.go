package models

import "strings"

// Column names of the Monthly_Attendance range. The three status columns are
// created lazily by the status writer on first use.
const (
	ColMonth         = "Month"
	ColLeavesTaken   = "Leaves Taken"
	ColPayslipLink   = "Payslip Link"
	ColGeneratedDate = "Generated Date"
	ColEmailSent     = "Email Sent"
)

// AttendanceRecord is one logical row per employee per month. The status
// writer patches it in place; the pipeline never deletes it.
type AttendanceRecord struct {
	EmployeeCode  string `json:"employeeCode"`
	Month         string `json:"month"`
	LeavesTaken   int    `json:"leavesTaken"`
	PayslipLink   string `json:"payslipLink"`
	GeneratedDate string `json:"generatedDate"`
	EmailSent     bool   `json:"emailSent"`
}

func AttendanceFromRow(row Row) AttendanceRecord {
	return AttendanceRecord{
		EmployeeCode:  row[ColEmployeeCode],
		Month:         row[ColMonth],
		LeavesTaken:   row.Int(ColLeavesTaken),
		PayslipLink:   row[ColPayslipLink],
		GeneratedDate: row[ColGeneratedDate],
		EmailSent:     strings.EqualFold(row[ColEmailSent], "yes"),
	}
}
