package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrVaultNotFound = errors.New("vault directory not found")
	ErrInvalidDate   = errors.New("invalid date format")
	ErrSummaryExists = errors.New("monthly summary already exists")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SummaryExistsError signals that a monthly summary is already on disk
// and append mode was not requested. The existing file is left untouched.
type SummaryExistsError struct {
	Month string
	Path  string
}

func (e *SummaryExistsError) Error() string {
	return fmt.Sprintf("monthly summary %s already exists (use append mode to extend it)", e.Path)
}

func (e *SummaryExistsError) Is(target error) bool {
	return target == ErrSummaryExists
}

// DateFormatError signals a date or month string that failed to parse
// where parsing was required.
type DateFormatError struct {
	Value string
	Want  string // expected layout, e.g. YYYY-MM
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q (expected %s)", e.Value, e.Want)
}

func (e *DateFormatError) Is(target error) bool {
	return target == ErrInvalidDate
}
