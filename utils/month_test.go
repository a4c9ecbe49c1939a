package utils

import (
	"testing"
	"time"
)

func TestValidateMonth(t *testing.T) {
	if err := ValidateMonth("2025-07"); err != nil {
		t.Fatalf("ValidateMonth(2025-07) error: %v", err)
	}
	for _, month := range []string{"", "2025-13", "07/2025", "2025-7", "July 2025"} {
		if err := ValidateMonth(month); err == nil {
			t.Fatalf("ValidateMonth(%q) expected error", month)
		}
	}
}

func TestFormatMonth(t *testing.T) {
	cases := []struct{ in, expected string }{
		{"2025-07", "7/2025"},
		{"2025-12", "12/2025"},
		{"2024-01", "1/2024"},
	}
	for _, tc := range cases {
		if got := FormatMonth(tc.in); got != tc.expected {
			t.Fatalf("FormatMonth(%q) expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestNormalizeMonth(t *testing.T) {
	cases := []struct{ in, expected string }{
		{"07/2025", "7/2025"},
		{"7/2025", "7/2025"},
		{"12/2025", "12/2025"},
		{"garbage", "garbage"},
	}
	for _, tc := range cases {
		if got := NormalizeMonth(tc.in); got != tc.expected {
			t.Fatalf("NormalizeMonth(%q) expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestDisplayMonth(t *testing.T) {
	if got := DisplayMonth("7/2025"); got != "July - 2025" {
		t.Fatalf("DisplayMonth(7/2025) expected %q, got %q", "July - 2025", got)
	}
	// unknown labels pass through instead of breaking the render
	if got := DisplayMonth("bogus"); got != "bogus" {
		t.Fatalf("DisplayMonth(bogus) expected passthrough, got %q", got)
	}
}

func TestMonthName(t *testing.T) {
	cases := []struct{ in, expected string }{
		{"2025-07", "July 2025"},
		{"7/2025", "July 2025"},
		{"bogus", "bogus"},
	}
	for _, tc := range cases {
		if got := MonthName(tc.in); got != tc.expected {
			t.Fatalf("MonthName(%q) expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestEndOfMonth(t *testing.T) {
	end, err := EndOfMonth("2025-02")
	if err != nil {
		t.Fatalf("EndOfMonth error: %v", err)
	}
	if end.Day() != 28 || end.Month() != time.February || end.Year() != 2025 {
		t.Fatalf("EndOfMonth(2025-02) expected last day of February, got %v", end)
	}
}

func TestParseJoinDate(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"15-Mar-2023", "2023-03-15"},
		{"2023-03-15", "2023-03-15"},
		{" 01-Jan-2020 ", "2020-01-01"},
	}
	for _, tc := range cases {
		got, err := ParseJoinDate(tc.in)
		if err != nil {
			t.Fatalf("ParseJoinDate(%q) error: %v", tc.in, err)
		}
		if got.Format("2006-01-02") != tc.expected {
			t.Fatalf("ParseJoinDate(%q) expected %s, got %s", tc.in, tc.expected, got.Format("2006-01-02"))
		}
	}
	if _, err := ParseJoinDate("15/03/2023"); err == nil {
		t.Fatal("ParseJoinDate(15/03/2023) expected error")
	}
}
