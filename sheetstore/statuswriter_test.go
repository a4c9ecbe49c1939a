package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/Sanchit24s/payslip-backend/utils"
	"github.com/sirupsen/logrus"
)

// fakeValuesAPI keeps named ranges in memory and applies A1 patches the way
// the Sheets API would.
type fakeValuesAPI struct {
	ranges       map[string][][]interface{}
	getErr       error
	batchCalls   int
	updateCalls  int
	patchedCells []string
}

func newFakeValuesAPI() *fakeValuesAPI {
	return &fakeValuesAPI{ranges: make(map[string][][]interface{})}
}

func (f *fakeValuesAPI) GetValues(ctx context.Context, spreadsheetId string, readRange string) ([][]interface{}, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.ranges[readRange], nil
}

func (f *fakeValuesAPI) UpdateValues(ctx context.Context, spreadsheetId string, writeRange string, values [][]interface{}) error {
	f.updateCalls++
	name, cell, ok := strings.Cut(writeRange, "!")
	if !ok {
		return fmt.Errorf("unexpected range %q", writeRange)
	}
	if cell == "A1" && len(values) == 1 {
		f.ranges[name][0] = values[0]
		return nil
	}
	return f.applyCell(name, cell, values[0][0])
}

func (f *fakeValuesAPI) BatchUpdateValues(ctx context.Context, spreadsheetId string, patches []ValueRangePatch) error {
	f.batchCalls++
	for _, patch := range patches {
		name, cell, ok := strings.Cut(patch.Range, "!")
		if !ok {
			return fmt.Errorf("unexpected range %q", patch.Range)
		}
		if err := f.applyCell(name, cell, patch.Values[0][0]); err != nil {
			return err
		}
		f.patchedCells = append(f.patchedCells, patch.Range)
	}
	return nil
}

// applyCell writes a single-letter-column A1 cell like "K3".
func (f *fakeValuesAPI) applyCell(name string, cell string, value interface{}) error {
	col := int(cell[0] - 'A')
	row, err := strconv.Atoi(cell[1:])
	if err != nil {
		return fmt.Errorf("unexpected cell %q", cell)
	}
	grid := f.ranges[name]
	for len(grid[row-1]) <= col {
		grid[row-1] = append(grid[row-1], "")
	}
	grid[row-1][col] = value
	return nil
}

func (f *fakeValuesAPI) cell(name string, row, col int) string {
	grid := f.ranges[name]
	if row >= len(grid) || col >= len(grid[row]) {
		return ""
	}
	return fmt.Sprint(grid[row][col])
}

func testStore(api *fakeValuesAPI) *Store {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(api, "sheet-1", logger)
}

func attendanceFixture() [][]interface{} {
	return [][]interface{}{
		{"Employee Code", "Month", "Leaves Taken"},
		{"EMP001", "07/2025", "2"},
		{"EMP002", "7/2025", "0"},
		{"EMP001", "8/2025", "1"},
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUpdatePayslipData_CreatesStatusColumns(t *testing.T) {
	api := newFakeValuesAPI()
	api.ranges[attendanceRange] = attendanceFixture()
	store := testStore(api)

	err := store.UpdatePayslipData(context.Background(), "7/2025", map[string]models.StatusUpdate{
		"EMP001": {
			Link:          strPtr("https://storage.example.com/a.pdf"),
			GeneratedDate: strPtr("15/07/2025"),
			EmailSent:     boolPtr(true),
		},
	})
	if err != nil {
		t.Fatalf("UpdatePayslipData error: %v", err)
	}

	// header grew by the three status columns, in one rewrite
	headers := api.ranges[attendanceRange][0]
	if len(headers) != 6 {
		t.Fatalf("expected 6 header columns, got %v", headers)
	}
	if api.updateCalls != 1 {
		t.Fatalf("expected 1 header rewrite, got %d", api.updateCalls)
	}
	if api.batchCalls != 1 {
		t.Fatalf("expected 1 batched write, got %d", api.batchCalls)
	}

	// leading-zero month label still matched row 2
	if got := api.cell(attendanceRange, 1, 3); got != "https://storage.example.com/a.pdf" {
		t.Fatalf("expected link in row 2, got %q", got)
	}
	if got := api.cell(attendanceRange, 1, 5); got != "Yes" {
		t.Fatalf("expected Email Sent Yes, got %q", got)
	}
	// the other month's row for the same employee is untouched
	if got := api.cell(attendanceRange, 3, 3); got != "" {
		t.Fatalf("row for 8/2025 must stay untouched, got %q", got)
	}
}

func TestUpdatePayslipData_Idempotent(t *testing.T) {
	api := newFakeValuesAPI()
	api.ranges[attendanceRange] = attendanceFixture()
	store := testStore(api)

	updates := map[string]models.StatusUpdate{
		"EMP001": {Link: strPtr("https://storage.example.com/a.pdf"), EmailSent: boolPtr(true)},
	}
	for i := 0; i < 2; i++ {
		if err := store.UpdatePayslipData(context.Background(), "7/2025", updates); err != nil {
			t.Fatalf("run %d error: %v", i+1, err)
		}
	}

	// second run finds the columns already present
	if api.updateCalls != 1 {
		t.Fatalf("expected columns created once, got %d header rewrites", api.updateCalls)
	}
	headers := api.ranges[attendanceRange][0]
	if len(headers) != 5 {
		t.Fatalf("expected 5 header columns after both runs, got %v", headers)
	}
	if got := api.cell(attendanceRange, 1, 3); got != "https://storage.example.com/a.pdf" {
		t.Fatalf("expected same link after rerun, got %q", got)
	}
}

func TestUpdatePayslipData_PartialPatchPreservesLink(t *testing.T) {
	api := newFakeValuesAPI()
	fixture := attendanceFixture()
	fixture[0] = append(fixture[0], models.ColPayslipLink, models.ColGeneratedDate, models.ColEmailSent)
	fixture[1] = append(fixture[1], "https://storage.example.com/old.pdf", "01/07/2025", "No")
	api.ranges[attendanceRange] = fixture
	store := testStore(api)

	err := store.UpdatePayslipData(context.Background(), "7/2025", map[string]models.StatusUpdate{
		"EMP001": {EmailSent: boolPtr(true)},
	})
	if err != nil {
		t.Fatalf("UpdatePayslipData error: %v", err)
	}

	if got := api.cell(attendanceRange, 1, 3); got != "https://storage.example.com/old.pdf" {
		t.Fatalf("existing link must survive an email-only patch, got %q", got)
	}
	if got := api.cell(attendanceRange, 1, 4); got != "01/07/2025" {
		t.Fatalf("existing generated date must survive, got %q", got)
	}
	if got := api.cell(attendanceRange, 1, 5); got != "Yes" {
		t.Fatalf("expected Email Sent flipped to Yes, got %q", got)
	}
	if len(api.patchedCells) != 1 {
		t.Fatalf("expected exactly 1 patched cell, got %v", api.patchedCells)
	}
}

func TestUpdatePayslipData_NoMatchingRowsIsNoop(t *testing.T) {
	api := newFakeValuesAPI()
	api.ranges[attendanceRange] = attendanceFixture()
	store := testStore(api)

	err := store.UpdatePayslipData(context.Background(), "12/2025", map[string]models.StatusUpdate{
		"EMP001": {EmailSent: boolPtr(true)},
	})
	if err != nil {
		t.Fatalf("expected no-op, got error: %v", err)
	}
	if api.batchCalls != 0 {
		t.Fatalf("expected no batched write, got %d", api.batchCalls)
	}
}

func TestUpdatePayslipData_EmptyUpdatesIsNoop(t *testing.T) {
	api := newFakeValuesAPI()
	store := testStore(api)
	if err := store.UpdatePayslipData(context.Background(), "7/2025", nil); err != nil {
		t.Fatalf("expected nil for empty updates, got %v", err)
	}
}

func TestUpdatePayslipData_SchemaErrors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]interface{}
		column string
	}{
		{"empty range", nil, models.ColMonth},
		{"missing month", [][]interface{}{{"Employee Code"}}, models.ColMonth},
		{"missing code", [][]interface{}{{"Month"}}, models.ColEmployeeCode},
	}
	for _, tc := range cases {
		api := newFakeValuesAPI()
		api.ranges[attendanceRange] = tc.values
		store := testStore(api)

		err := store.UpdatePayslipData(context.Background(), "7/2025", map[string]models.StatusUpdate{
			"EMP001": {EmailSent: boolPtr(true)},
		})
		var schemaErr *utils.SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("%s: expected SchemaError, got %v", tc.name, err)
		}
		if schemaErr.Column != tc.column {
			t.Fatalf("%s: expected column %q, got %q", tc.name, tc.column, schemaErr.Column)
		}
	}
}
