package application

import (
	"fmt"
	"strings"

	"dailyroll/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateMonthKey checks that key has the YYYY-MM shape. Calendar
// correctness is checked separately where it matters.
func ValidateMonthKey(fieldName, key string) error {
	if !domain.IsMonthKey(key) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected YYYY-MM month key, got: %s", key),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"month":     "month",
		"notesDir":  "notes directory",
		"vaultPath": "vault path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}
