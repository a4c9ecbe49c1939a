package utils

import (
	"strings"
	"time"

	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/shopspring/decimal"
)

// CalculateWorkingDays counts the calendar days of an M/YYYY month excluding
// Saturdays and Sundays. Pure, no I/O.
func CalculateWorkingDays(monthYear string) (int, error) {
	start, err := MonthTime(monthYear)
	if err != nil {
		return 0, err
	}
	end := start.AddDate(0, 1, 0)

	workingDays := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			workingDays++
		}
	}
	return workingDays, nil
}

const (
	amountInvalid  = "Invalid amount"
	amountNegative = "Negative amounts not supported"
	amountZero     = "Zero Rupees Only."
	amountSuffix   = " Rupees Only."
)

var wordUnits = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var wordTens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty",
	"Seventy", "Eighty", "Ninety"}

// AmountToWords renders the integer part of a currency amount using the
// Indian numbering grouping (crore/lakh/thousand/hundred). It never fails
// hard: bad input yields a sentinel string, because this runs inside batch
// work that must not abort on one malformed cell.
func AmountToWords(amount string) string {
	amount = strings.TrimSpace(amount)
	d, err := decimal.NewFromString(amount)
	if err != nil || amount == "" {
		return amountInvalid
	}
	num := d.IntPart()
	if num < 0 {
		return amountNegative
	}
	if num == 0 {
		return amountZero
	}

	parts := []struct {
		value int64
		name  string
	}{
		{10000000, "Crore"},
		{100000, "Lakh"},
		{1000, "Thousand"},
		{100, "Hundred"},
	}

	var sb strings.Builder
	for _, part := range parts {
		quotient := num / part.value
		if quotient > 0 {
			sb.WriteString(wordsBelowThousand(quotient))
			sb.WriteString(" ")
			sb.WriteString(part.name)
			sb.WriteString(" ")
			num %= part.value
		}
	}

	if num > 0 {
		if sb.Len() > 0 {
			sb.WriteString("And ")
		}
		sb.WriteString(wordsBelowThousand(num))
	}

	return strings.Join(strings.Fields(sb.String()), " ") + amountSuffix
}

func wordsBelowThousand(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return wordUnits[n]
	case n < 100:
		s := wordTens[n/10]
		if n%10 > 0 {
			s += " " + wordUnits[n%10]
		}
		return s
	default:
		s := wordUnits[n/100] + " Hundred"
		if n%100 > 0 {
			s += " And " + wordsBelowThousand(n%100)
		}
		return s
	}
}

type SalaryStats struct {
	TotalSalaries   decimal.Decimal `json:"totalSalaries"`
	ProfessionalTax decimal.Decimal `json:"professionalTax"`
	TDS             decimal.Decimal `json:"tds"`
}

func CalculateSalaryStats(employees []models.EmployeeRecord) SalaryStats {
	stats := SalaryStats{
		TotalSalaries:   decimal.Zero,
		ProfessionalTax: decimal.Zero,
		TDS:             decimal.Zero,
	}
	for _, emp := range employees {
		stats.TotalSalaries = stats.TotalSalaries.Add(emp.NetPay)
		stats.ProfessionalTax = stats.ProfessionalTax.Add(emp.ProfessionalTax)
		stats.TDS = stats.TDS.Add(emp.TDS)
	}
	return stats
}
