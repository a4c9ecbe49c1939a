package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one sheet row keyed by trimmed header name. It only exists at the
// data-access boundary; everything past sheetstore works on typed records.
type Row map[string]string

// MapRows pairs a header row with data rows. Cells beyond the header width
// are dropped, short rows read as empty strings.
func MapRows(values [][]interface{}) []Row {
	if len(values) == 0 {
		return nil
	}
	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = strings.TrimSpace(fmt.Sprint(h))
	}

	rows := make([]Row, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(raw) {
				row[header] = strings.TrimSpace(fmt.Sprint(raw[i]))
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (r Row) Int(column string) int {
	n, err := strconv.Atoi(r[column])
	if err != nil {
		return 0
	}
	return n
}

func (r Row) Decimal(column string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.ReplaceAll(r[column], ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}
