package sheetstore

import (
	"context"

	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/Sanchit24s/payslip-backend/utils"
)

// GetMonthlyAttendance returns the attendance rows of one M/YYYY month.
// The label is normalized before comparison so 07/2025 and 7/2025 match.
func (s *Store) GetMonthlyAttendance(ctx context.Context, month string) ([]models.AttendanceRecord, error) {
	month = utils.NormalizeMonth(month)
	rows, err := s.readRows(ctx, attendanceRange)
	if err != nil {
		return nil, err
	}
	records := make([]models.AttendanceRecord, 0)
	for _, row := range rows {
		if utils.NormalizeMonth(row[models.ColMonth]) == month {
			records = append(records, models.AttendanceFromRow(row))
		}
	}
	return records, nil
}

// GetEmployeeAttendance returns one employee's attendance history across all
// months, in sheet order.
func (s *Store) GetEmployeeAttendance(ctx context.Context, code string) ([]models.AttendanceRecord, error) {
	rows, err := s.readRows(ctx, attendanceRange)
	if err != nil {
		return nil, err
	}
	records := make([]models.AttendanceRecord, 0)
	for _, row := range rows {
		if row[models.ColEmployeeCode] == code {
			records = append(records, models.AttendanceFromRow(row))
		}
	}
	return records, nil
}

// GetPayslipLink returns the stored document link for one employee and month.
func (s *Store) GetPayslipLink(ctx context.Context, code string, month string) (string, error) {
	records, err := s.GetMonthlyAttendance(ctx, month)
	if err != nil {
		return "", err
	}
	for _, rec := range records {
		if rec.EmployeeCode == code {
			if rec.PayslipLink == "" {
				return "", utils.ErrorRecordNotFound
			}
			return rec.PayslipLink, nil
		}
	}
	return "", utils.ErrorRecordNotFound
}

// GetAllPayslipLinks lists every stored payslip document for a month.
func (s *Store) GetAllPayslipLinks(ctx context.Context, month string) ([]models.PayslipLinkRef, error) {
	records, err := s.GetMonthlyAttendance(ctx, month)
	if err != nil {
		return nil, err
	}
	links := make([]models.PayslipLinkRef, 0, len(records))
	for _, rec := range records {
		if rec.PayslipLink == "" {
			continue
		}
		links = append(links, models.PayslipLinkRef{
			EmployeeCode: rec.EmployeeCode,
			Link:         rec.PayslipLink,
		})
	}
	return links, nil
}
