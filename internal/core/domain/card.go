package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/statement_ledger/internal/apperrors"
)

const (
	MinClosingDay = 1
	MaxClosingDay = 31
)

// Card is a credit card configured by an owner. Its closing day only affects
// entries created after it is set.
type Card struct {
	CardID     string `json:"cardID"`
	OwnerID    string `json:"ownerID"`
	Name       string `json:"name"`
	ClosingDay int    `json:"closingDay"`
	AuditFields
}

// ValidateClosingDay rejects days outside 1..31.
func ValidateClosingDay(day int) error {
	if day < MinClosingDay || day > MaxClosingDay {
		return fmt.Errorf("%w: closing day must be between %d and %d, got %d", apperrors.ErrValidation, MinClosingDay, MaxClosingDay, day)
	}
	return nil
}

// NormalizeCardName trims the name and rejects blank names.
func NormalizeCardName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: card name cannot be empty", apperrors.ErrValidation)
	}
	return trimmed, nil
}

// CardTemplate describes a starter card created for new owners.
type CardTemplate struct {
	Name       string `json:"name" yaml:"name"`
	ClosingDay int    `json:"closingDay" yaml:"closing_day"`
}

// DefaultCardTemplates are used when no starter-card file is configured.
func DefaultCardTemplates() []CardTemplate {
	return []CardTemplate{
		{Name: "Mi Tarjeta 1", ClosingDay: 28},
		{Name: "Mi Tarjeta 2", ClosingDay: 28},
	}
}
