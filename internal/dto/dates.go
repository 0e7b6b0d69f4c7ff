package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/statement_ledger/internal/apperrors"
	"github.com/SscSPs/statement_ledger/internal/core/domain"
)

// DateLayout is the wire format of every calendar date in the API.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD value into a UTC calendar date.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date in YYYY-MM-DD format, got %q", apperrors.ErrValidation, field, value)
	}
	return domain.DateOnly(t), nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
