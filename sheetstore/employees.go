package sheetstore

import (
	"context"
	"sort"

	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/Sanchit24s/payslip-backend/utils"
)

// GetEmployees reads the full employee master. Always fresh; nothing is
// cached across requests.
func (s *Store) GetEmployees(ctx context.Context) ([]models.EmployeeRecord, error) {
	rows, err := s.readRows(ctx, employeeRange)
	if err != nil {
		return nil, err
	}
	employees := make([]models.EmployeeRecord, 0, len(rows))
	for _, row := range rows {
		if row[models.ColEmployeeCode] == "" {
			continue
		}
		employees = append(employees, models.EmployeeFromRow(row))
	}
	return employees, nil
}

func (s *Store) GetEmployeeByCode(ctx context.Context, code string) (*models.EmployeeRecord, error) {
	employees, err := s.GetEmployees(ctx)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].Code == code {
			return &employees[i], nil
		}
	}
	return nil, utils.ErrorRecordNotFound
}

// GetDepartments returns the distinct department names, sorted.
func (s *Store) GetDepartments(ctx context.Context) ([]string, error) {
	employees, err := s.GetEmployees(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	departments := make([]string, 0)
	for _, emp := range employees {
		if emp.Department == "" || seen[emp.Department] {
			continue
		}
		seen[emp.Department] = true
		departments = append(departments, emp.Department)
	}
	sort.Strings(departments)
	return departments, nil
}
