package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/statement_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// YearMonthOf returns the month t falls in.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Before orders months chronologically.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// String renders the month as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Label renders the month the way the dashboard shows it, e.g. "Enero 2025".
func (ym YearMonth) Label() string {
	if ym.Month < time.January || ym.Month > time.December {
		return ym.String()
	}
	return fmt.Sprintf("%s %d", spanishMonths[ym.Month-1], ym.Year)
}

// MonthlySummary holds the per-kind totals of one payment month.
type MonthlySummary struct {
	Period     YearMonth       `json:"period"`
	Income     decimal.Decimal `json:"income"`
	Fixed      decimal.Decimal `json:"fixed"`
	Debit      decimal.Decimal `json:"debit"`
	Card       decimal.Decimal `json:"card"`
	NetBalance decimal.Decimal `json:"netBalance"`
}

// TotalExpenses is fixed + debit + card.
func (s MonthlySummary) TotalExpenses() decimal.Decimal {
	return s.Fixed.Add(s.Debit).Add(s.Card)
}

// MonthlyDashboard is everything the monthly view shows: the totals plus the
// month's card and cash rows, with card names resolved.
type MonthlyDashboard struct {
	Summary     MonthlySummary    `json:"summary"`
	CardEntries []LedgerEntry     `json:"cardEntries"`
	CashEntries []LedgerEntry     `json:"cashEntries"`
	CardNames   map[string]string `json:"cardNames"` // card ID -> name
}

// ValidateYearMonth rejects months outside 1..12 and years outside 1..9999.
func ValidateYearMonth(year int, month time.Month) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month must be between 1 and 12, got %d", apperrors.ErrValidation, int(month))
	}
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d out of range", apperrors.ErrValidation, year)
	}
	return nil
}
