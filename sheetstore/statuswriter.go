package sheetstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/Sanchit24s/payslip-backend/utils"
)

// UpdatePayslipData patches per-employee delivery status into the attendance
// range: one batched write per call, field-level patches only. Destination
// columns are created the first time they are needed, so the sheet's schema
// can grow over the product's life.
//
// Idempotent: re-applying the same update map rewrites the same cells with
// the same values. There is no locking or version check against concurrent
// writers; two overlapping runs for one month can overwrite each other
// (known limitation of the sheet-backed store).
func (s *Store) UpdatePayslipData(ctx context.Context, month string, updates map[string]models.StatusUpdate) error {
	if len(updates) == 0 {
		s.logger.Warnf("no payslip updates to write for %s", month)
		return nil
	}
	month = utils.NormalizeMonth(month)

	values, err := s.api.GetValues(ctx, s.sheetId, attendanceRange)
	if err != nil {
		return fmt.Errorf("failed to read range %s: %w", attendanceRange, err)
	}
	if len(values) == 0 {
		return &utils.SchemaError{Column: models.ColMonth}
	}

	headers := values[0]
	monthIdx := headerIndex(headers, models.ColMonth)
	if monthIdx == -1 {
		return &utils.SchemaError{Column: models.ColMonth}
	}
	codeIdx := headerIndex(headers, models.ColEmployeeCode)
	if codeIdx == -1 {
		return &utils.SchemaError{Column: models.ColEmployeeCode}
	}

	columnIdx, err := s.ensureStatusColumns(ctx, headers, updates)
	if err != nil {
		return err
	}

	patches := make([]ValueRangePatch, 0, len(updates))
	for i := 1; i < len(values); i++ {
		row := values[i]
		if monthIdx >= len(row) || codeIdx >= len(row) {
			continue
		}
		rowMonth := utils.NormalizeMonth(strings.TrimSpace(fmt.Sprint(row[monthIdx])))
		code := strings.TrimSpace(fmt.Sprint(row[codeIdx]))
		if rowMonth != month {
			continue
		}
		update, ok := updates[code]
		if !ok {
			continue
		}

		rowNum := i + 1
		if update.Link != nil {
			patches = append(patches, cellPatch(columnIdx[models.ColPayslipLink], rowNum, *update.Link))
		}
		if update.GeneratedDate != nil {
			patches = append(patches, cellPatch(columnIdx[models.ColGeneratedDate], rowNum, *update.GeneratedDate))
		}
		if update.EmailSent != nil {
			sent := "No"
			if *update.EmailSent {
				sent = "Yes"
			}
			patches = append(patches, cellPatch(columnIdx[models.ColEmailSent], rowNum, sent))
		}
	}

	if len(patches) == 0 {
		s.logger.Warnf("no attendance rows match %s, nothing to update", month)
		return nil
	}

	if err := s.api.BatchUpdateValues(ctx, s.sheetId, patches); err != nil {
		return fmt.Errorf("failed to write payslip status for %s: %w", month, err)
	}
	s.logger.Infof("payslip status updated for %s (%d cells)", month, len(patches))
	return nil
}

// ensureStatusColumns resolves the index of each status column an update
// touches, appending missing ones to the header row in a single rewrite.
func (s *Store) ensureStatusColumns(ctx context.Context, headers []interface{}, updates map[string]models.StatusUpdate) (map[string]int, error) {
	var needsLink, needsDate, needsSent bool
	for _, update := range updates {
		needsLink = needsLink || update.Link != nil
		needsDate = needsDate || update.GeneratedDate != nil
		needsSent = needsSent || update.EmailSent != nil
	}

	needed := make([]string, 0, 3)
	if needsLink {
		needed = append(needed, models.ColPayslipLink)
	}
	if needsDate {
		needed = append(needed, models.ColGeneratedDate)
	}
	if needsSent {
		needed = append(needed, models.ColEmailSent)
	}

	columnIdx := make(map[string]int, len(needed))
	appended := false
	for _, column := range needed {
		idx := headerIndex(headers, column)
		if idx == -1 {
			headers = append(headers, column)
			idx = len(headers) - 1
			appended = true
			s.logger.Infof("adding new %q column to %s", column, attendanceRange)
		}
		columnIdx[column] = idx
	}

	if appended {
		if err := s.api.UpdateValues(ctx, s.sheetId, attendanceRange+"!A1", [][]interface{}{headers}); err != nil {
			return nil, fmt.Errorf("failed to append status columns: %w", err)
		}
	}
	return columnIdx, nil
}

func cellPatch(col int, rowNum int, value string) ValueRangePatch {
	return ValueRangePatch{
		Range:  fmt.Sprintf("%s!%s%d", attendanceRange, columnToLetter(col), rowNum),
		Values: [][]interface{}{{value}},
	}
}
