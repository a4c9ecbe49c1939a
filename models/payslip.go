package models

// MergedPayrollRecord is an employee's master data joined with one month's
// attendance plus the derived payroll fields. Built per request, never
// cached.
type MergedPayrollRecord struct {
	EmployeeRecord

	// Month is the display label ("July - 2025").
	Month string `json:"month"`
	// Leaves taken in the month, 0 when no attendance row exists.
	Leaves int `json:"leaves"`
	// WorkingDays is calendar working days minus leaves. Deliberately
	// unclamped: leaves exceeding the month's working days produce a
	// negative value, matching the sheet-era behavior.
	WorkingDays int `json:"workingDays"`
	// NetPayWords is the net pay rendered in words ("... Rupees Only.").
	NetPayWords string `json:"netPayWords"`
}

// EmailStatus keeps "no address on file" distinguishable from a send
// failure; the sheet's boolean Email Sent column only sees sent/not-sent.
type EmailStatus string

const (
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusSkipped EmailStatus = "skipped"
	EmailStatusFailed  EmailStatus = "failed"
)

// StatusUpdate is a field-level patch for one attendance row. Nil fields are
// left untouched, so a resend flow can flip Email Sent without clobbering an
// existing link or generated date.
type StatusUpdate struct {
	Link          *string
	GeneratedDate *string
	EmailSent     *bool
}

// DeliveryOutcome is the per-employee result of a fan-out task.
type DeliveryOutcome struct {
	EmployeeCode string      `json:"employeeCode"`
	Success      bool        `json:"success"`
	URL          string      `json:"url,omitempty"`
	EmailStatus  EmailStatus `json:"emailStatus,omitempty"`
	Error        string      `json:"error,omitempty"`
}

// BatchResult aggregates a fan-out run. Results arrive in completion order;
// callers must not assume submission order.
type BatchResult struct {
	Total     int               `json:"total"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Results   []DeliveryOutcome `json:"results"`
}

func (b *BatchResult) Add(outcome DeliveryOutcome) {
	b.Total++
	if outcome.Success {
		b.Succeeded++
	} else {
		b.Failed++
	}
	b.Results = append(b.Results, outcome)
}

// PayslipLinkRef points at a stored payslip document for one employee.
type PayslipLinkRef struct {
	EmployeeCode string `json:"employeeCode"`
	Link         string `json:"link"`
}
