package sheetstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sanchit24s/payslip-backend/config"
	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/sirupsen/logrus"
)

const (
	employeeRange   = "Employee_Details"
	attendanceRange = "Monthly_Attendance"
)

// Store reads and patches the payroll spreadsheet through a ValuesAPI.
type Store struct {
	api     ValuesAPI
	sheetId string
	logger  *logrus.Logger
}

func New(api ValuesAPI, sheetId string, logger *logrus.Logger) *Store {
	return &Store{api: api, sheetId: sheetId, logger: logger}
}

// NewDefault wires the store against the shared Sheets client and the
// configured spreadsheet.
func NewDefault(ctx context.Context) (*Store, error) {
	api, err := SharedValuesAPI(ctx)
	if err != nil {
		return nil, err
	}
	sheetId := config.GetSheetID()
	if sheetId == "" {
		return nil, fmt.Errorf("GOOGLE_SHEET_ID is required")
	}
	return New(api, sheetId, config.GetLogger()), nil
}

// readRows fetches a named range and maps it to header-keyed rows.
func (s *Store) readRows(ctx context.Context, rangeName string) ([]models.Row, error) {
	values, err := s.api.GetValues(ctx, s.sheetId, rangeName)
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", rangeName, err)
	}
	return models.MapRows(values), nil
}

// headerIndex locates a column in a raw header row, -1 when absent.
func headerIndex(headers []interface{}, column string) int {
	for i, h := range headers {
		if strings.TrimSpace(fmt.Sprint(h)) == column {
			return i
		}
	}
	return -1
}

// columnToLetter converts a zero-based column index to A1 notation (works
// beyond Z).
func columnToLetter(col int) string {
	letter := ""
	for col >= 0 {
		letter = string(rune('A'+col%26)) + letter
		col = col/26 - 1
	}
	return letter
}
