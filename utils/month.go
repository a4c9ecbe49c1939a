package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Months travel in two shapes: the HTTP layer exchanges YYYY-MM, the sheet
// stores M/YYYY without a leading zero. Every read and write path must go
// through FormatMonth/NormalizeMonth or joins against the sheet silently
// miss.

// ValidateMonth checks the external YYYY-MM form.
func ValidateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("month must be in YYYY-MM format (e.g., 2025-07)")
	}
	return nil
}

// FormatMonth converts the external YYYY-MM form to the sheet's M/YYYY form.
func FormatMonth(month string) string {
	parts := strings.SplitN(month, "-", 2)
	if len(parts) != 2 {
		return month
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return month
	}
	return fmt.Sprintf("%d/%s", m, parts[0])
}

// NormalizeMonth strips a leading zero from an M/YYYY label (07/2025 -> 7/2025).
func NormalizeMonth(label string) string {
	parts := strings.SplitN(label, "/", 2)
	if len(parts) != 2 {
		return label
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil {
		return label
	}
	return fmt.Sprintf("%d/%s", m, parts[1])
}

// MonthTime parses the sheet's M/YYYY label to the first day of that month.
func MonthTime(label string) (time.Time, error) {
	parts := strings.SplitN(label, "/", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid month label %q, expected M/YYYY", label)
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, fmt.Errorf("invalid month label %q, expected M/YYYY", label)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month label %q, expected M/YYYY", label)
	}
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC), nil
}

// DisplayMonth renders an M/YYYY label for the payslip header ("July - 2025").
func DisplayMonth(label string) string {
	t, err := MonthTime(label)
	if err != nil {
		return label
	}
	return t.Format("January - 2006")
}

// MonthName renders an M/YYYY or YYYY-MM label for responses ("July 2025").
func MonthName(month string) string {
	if t, err := time.Parse("2006-01", month); err == nil {
		return t.Format("January 2006")
	}
	if t, err := MonthTime(month); err == nil {
		return t.Format("January 2006")
	}
	return month
}

// EndOfMonth returns the last instant of the YYYY-MM month, for
// joined-on-or-before cutoffs.
func EndOfMonth(month string) (time.Time, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, err
	}
	return t.AddDate(0, 1, 0).Add(-time.Nanosecond), nil
}

// ParseJoinDate accepts the two formats seen in the Date of Joining column.
func ParseJoinDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"02-Jan-2006", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
