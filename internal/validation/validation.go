// Package validation checks user-submitted values before any write reaches
// the store. The first violated rule is reported; rule failures never carry
// backend detail.
package validation

import (
	"fmt"
	"strings"
	"time"
)

// MaxAmount caps monetary magnitude at 999,999,999 lev, expressed in
// stotinki. A sanity bound, not a business rule.
const MaxAmount int64 = 999_999_999 * 100

// Error is a single violated rule, attributed to a field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fail(field, message string) error {
	return &Error{Field: field, Message: message}
}

// Amount requires a positive amount within MaxAmount.
func Amount(field string, stotinki int64) error {
	if stotinki <= 0 {
		return fail(field, "must be a positive amount")
	}
	if stotinki > MaxAmount {
		return fail(field, "amount is too large")
	}
	return nil
}

// NonNegativeAmount allows zero but still enforces the magnitude cap.
func NonNegativeAmount(field string, stotinki int64) error {
	if stotinki < 0 {
		return fail(field, "must not be negative")
	}
	if stotinki > MaxAmount {
		return fail(field, "amount is too large")
	}
	return nil
}

// Text trims the value and enforces presence and a maximum length in runes.
func Text(field, value string, required bool, maxLen int) error {
	trimmed := strings.TrimSpace(value)
	if required && trimmed == "" {
		return fail(field, "is required")
	}
	if len([]rune(trimmed)) > maxLen {
		return fail(field, fmt.Sprintf("must not be longer than %d characters", maxLen))
	}
	return nil
}

// Date requires the YYYY-MM-DD format.
func Date(field, value string) error {
	if value == "" {
		return fail(field, "is required")
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fail(field, "must be a date in YYYY-MM-DD format")
	}
	return nil
}

// Month requires the YYYY-MM period key format.
func Month(field, value string) error {
	if value == "" {
		return fail(field, "is required")
	}
	if _, err := time.Parse("2006-01", value); err != nil {
		return fail(field, "must be a month in YYYY-MM format")
	}
	return nil
}

// First returns the first violated rule, or nil when all pass.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
