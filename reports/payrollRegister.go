package reports

import (
	"fmt"
	"io"

	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/xuri/excelize/v2"
)

var registerHeadings = []string{
	"Employee Code", "Employee Name", "Department", "Designation",
	"Date of Joining", "Leaves Taken", "Working Days",
	"Basic Salary", "HRA", "LTA", "Special Allowance", "Gross Earning",
	"Professional Tax", "TDS", "Total Deductions", "Net Pay",
}

// WritePayrollRegister streams the monthly payroll register workbook. One row
// per merged record, amounts as numbers so the sheet stays filterable.
func WritePayrollRegister(w io.Writer, records []models.MergedPayrollRecord) error {
	f := excelize.NewFile()
	sheetName := "Payroll Register"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, h := range registerHeadings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, h)
	}

	for i, rec := range records {
		values := []interface{}{
			rec.Code, rec.Name, rec.Department, rec.Designation,
			rec.DateOfJoining, rec.Leaves, rec.WorkingDays,
			rec.BasicSalary.InexactFloat64(), rec.HRA.InexactFloat64(),
			rec.LTA.InexactFloat64(), rec.SpecialAllowance.InexactFloat64(),
			rec.GrossEarning.InexactFloat64(),
			rec.ProfessionalTax.InexactFloat64(), rec.TDS.InexactFloat64(),
			rec.TotalDeductions.InexactFloat64(), rec.NetPay.InexactFloat64(),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write payroll register: %w", err)
	}
	return nil
}
