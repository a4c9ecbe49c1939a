package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PayslipHistoryEntry is one generated payslip in an employee's history.
type PayslipHistoryEntry struct {
	Version       string `json:"version"`
	Month         string `json:"month"`
	GeneratedDate string `json:"generatedDate,omitempty"`
	Status        string `json:"status"`
	Link          string `json:"link"`

	monthTime time.Time
}

const (
	historyStatusSent    = "Sent"
	historyStatusNotSent = "Not Sent"
)

// BuildPayslipHistory keeps only months with a generated document, newest
// first. Version numbers follow the chronological order of generation.
func BuildPayslipHistory(history []AttendanceRecord) []PayslipHistoryEntry {
	entries := make([]PayslipHistoryEntry, 0, len(history))
	version := 0
	for _, row := range history {
		if row.PayslipLink == "" {
			continue
		}
		version++
		status := historyStatusNotSent
		if row.EmailSent {
			status = historyStatusSent
		}
		monthTime, _ := parseMonthLabel(row.Month)
		entries = append(entries, PayslipHistoryEntry{
			Version:       fmt.Sprintf("v%d", version),
			Month:         displayMonthLabel(row.Month, monthTime),
			GeneratedDate: row.GeneratedDate,
			Status:        status,
			Link:          row.PayslipLink,
			monthTime:     monthTime,
		})
	}
	// newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

// EmployeeDetail is the single-employee view: master data plus delivery
// history. isSlipGenerated / isEmailSent stay independent booleans so a
// resend flow knows which step to retry.
type EmployeeDetail struct {
	EmployeeRecord
	Leaves          int                   `json:"leaves"`
	IsSlipGenerated bool                  `json:"isSlipGenerated"`
	IsEmailSent     bool                  `json:"isEmailSent"`
	PayslipHistory  []PayslipHistoryEntry `json:"payslipHistory"`
	LastGenerated   string                `json:"lastGenerated,omitempty"`
	LastSent        string                `json:"lastSent,omitempty"`
}

func BuildEmployeeDetail(emp EmployeeRecord, history []PayslipHistoryEntry) EmployeeDetail {
	detail := EmployeeDetail{
		EmployeeRecord:  emp,
		IsSlipGenerated: len(history) > 0,
		PayslipHistory:  history,
	}

	var lastGenerated, lastSent time.Time
	for _, entry := range history {
		if entry.Status == historyStatusSent {
			detail.IsEmailSent = true
		}
		if entry.monthTime.IsZero() {
			continue
		}
		if entry.monthTime.After(lastGenerated) {
			lastGenerated = entry.monthTime
		}
		if entry.Status != historyStatusSent {
			continue
		}
		sentAt := entry.monthTime
		if t, err := parseGeneratedDate(entry.GeneratedDate); err == nil {
			sentAt = t
		}
		if sentAt.After(lastSent) {
			lastSent = sentAt
		}
	}
	if !lastGenerated.IsZero() {
		detail.LastGenerated = lastGenerated.Format("January 2006")
	}
	if !lastSent.IsZero() {
		detail.LastSent = lastSent.Format("January 2, 2006")
	}
	return detail
}

func parseMonthLabel(label string) (time.Time, error) {
	parts := strings.SplitN(label, "/", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid month label %q", label)
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, fmt.Errorf("invalid month label %q", label)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month label %q", label)
	}
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC), nil
}

func displayMonthLabel(label string, t time.Time) string {
	if t.IsZero() {
		return label
	}
	return t.Format("January 2006")
}

func parseGeneratedDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"02/01/2006", "2/1/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
