package utils

import (
	"errors"
	"fmt"
)

var ErrorRecordNotFound = errors.New("record not found")

// ErrorNoAttendanceData distinguishes "no rows to process for this month"
// from "process everyone with zero leave".
var ErrorNoAttendanceData = errors.New("no attendance data found for the requested month")

// SchemaError reports a column the sheet is expected to carry but does not.
// Fatal for the current operation, never retried.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("sheet is missing required column %q", e.Column)
}
