// Package workflow orchestrates the payslip pipeline: merging the two sheet
// ranges into payroll records and fanning out render/upload/email work.
package workflow

import (
	"context"

	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/Sanchit24s/payslip-backend/utils"
)

// DataStore is the slice of the sheet store the merge engine needs.
type DataStore interface {
	GetEmployees(ctx context.Context) ([]models.EmployeeRecord, error)
	GetMonthlyAttendance(ctx context.Context, month string) ([]models.AttendanceRecord, error)
}

// MergeEmployeeAttendance joins the employee master with one month's
// attendance on employee code. Employees without an attendance row get zero
// leaves and the full month's working days. An empty attendance set for the
// month fails with ErrorNoAttendanceData so callers can tell "nothing to
// process" apart from "everyone worked the full month".
//
// month is the sheet-internal M/YYYY form.
func MergeEmployeeAttendance(ctx context.Context, store DataStore, month string) ([]models.MergedPayrollRecord, error) {
	month = utils.NormalizeMonth(month)
	workingDays, err := utils.CalculateWorkingDays(month)
	if err != nil {
		return nil, err
	}

	employees, attendance, err := fetchBoth(ctx, store, month)
	if err != nil {
		return nil, err
	}
	if len(attendance) == 0 {
		return nil, utils.ErrorNoAttendanceData
	}

	attendanceByCode := make(map[string]models.AttendanceRecord, len(attendance))
	for _, row := range attendance {
		attendanceByCode[row.EmployeeCode] = row
	}

	display := utils.DisplayMonth(month)
	merged := make([]models.MergedPayrollRecord, 0, len(employees))
	for _, emp := range employees {
		leaves := attendanceByCode[emp.Code].LeavesTaken
		merged = append(merged, models.MergedPayrollRecord{
			EmployeeRecord: emp,
			Month:          display,
			Leaves:         leaves,
			// no floor at zero: excess leave propagates as-is
			WorkingDays: workingDays - leaves,
			NetPayWords: utils.AmountToWords(emp.NetPay.String()),
		})
	}
	return merged, nil
}

// MergeOne builds the merged record for a single employee. The attendance
// row is optional here: on-demand regeneration must work even before the
// month's attendance is filled in.
func MergeOne(ctx context.Context, store DataStore, code string, month string) (models.MergedPayrollRecord, error) {
	month = utils.NormalizeMonth(month)
	workingDays, err := utils.CalculateWorkingDays(month)
	if err != nil {
		return models.MergedPayrollRecord{}, err
	}

	employees, attendance, err := fetchBoth(ctx, store, month)
	if err != nil {
		return models.MergedPayrollRecord{}, err
	}

	var emp *models.EmployeeRecord
	for i := range employees {
		if employees[i].Code == code {
			emp = &employees[i]
			break
		}
	}
	if emp == nil {
		return models.MergedPayrollRecord{}, utils.ErrorRecordNotFound
	}

	leaves := 0
	for _, row := range attendance {
		if row.EmployeeCode == code {
			leaves = row.LeavesTaken
			break
		}
	}

	return models.MergedPayrollRecord{
		EmployeeRecord: *emp,
		Month:          utils.DisplayMonth(month),
		Leaves:         leaves,
		WorkingDays:    workingDays - leaves,
		NetPayWords:    utils.AmountToWords(emp.NetPay.String()),
	}, nil
}

// fetchBoth reads the two ranges concurrently; the sheet API round-trips
// dominate merge latency.
func fetchBoth(ctx context.Context, store DataStore, month string) ([]models.EmployeeRecord, []models.AttendanceRecord, error) {
	var (
		employees  []models.EmployeeRecord
		attendance []models.AttendanceRecord
		empErr     error
		attErr     error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		attendance, attErr = store.GetMonthlyAttendance(ctx, month)
	}()
	employees, empErr = store.GetEmployees(ctx)
	<-done

	if empErr != nil {
		return nil, nil, empErr
	}
	if attErr != nil {
		return nil, nil, attErr
	}
	return employees, attendance, nil
}
