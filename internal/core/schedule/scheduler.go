// Package schedule resolves credit-card statement cycles and expands purchases
// into dated installments. Everything here is pure and safe for concurrent use.
package schedule

import (
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GracePeriodDays is the fixed offset between a statement's close and its due date.
const GracePeriodDays = 10

// Installment is one scheduled payment of a purchase.
type Installment struct {
	PaymentDate time.Time       `json:"paymentDate"`
	Amount      decimal.Decimal `json:"amount"`
	Index       int             `json:"index"` // 1-based
}

// StatementMonth returns the month whose statement a purchase lands on: the
// purchase month when the purchase day is on or before closingDay, the next
// month otherwise.
func StatementMonth(purchaseDate time.Time, closingDay int) domain.YearMonth {
	y, m, d := purchaseDate.Date()
	if d > closingDay {
		m++
	}
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return domain.YearMonthOf(first)
}

// TechnicalCloseDate is closingDay placed in the resolved statement month,
// clamped to that month's last day.
func TechnicalCloseDate(purchaseDate time.Time, closingDay int) time.Time {
	sm := StatementMonth(purchaseDate, closingDay)
	return clampedDate(sm.Year, sm.Month, closingDay)
}

// PaymentDate returns the due date of a card purchase: the technical close
// date plus GracePeriodDays. closingDay must already be within 1..31.
func PaymentDate(purchaseDate time.Time, closingDay int) time.Time {
	return TechnicalCloseDate(purchaseDate, closingDay).AddDate(0, 0, GracePeriodDays)
}

// ExpandInstallments splits total into count monthly installments. The first
// is due on PaymentDate(purchaseDate, closingDay); installment i is due i
// calendar months after it. Amounts come from SplitAmount.
func ExpandInstallments(purchaseDate time.Time, closingDay int, total decimal.Decimal, count int) []Installment {
	base := PaymentDate(purchaseDate, closingDay)
	amounts := SplitAmount(total, count)

	installments := make([]Installment, count)
	for i := 0; i < count; i++ {
		installments[i] = Installment{
			PaymentDate: AddMonths(base, i),
			Amount:      amounts[i],
			Index:       i + 1,
		}
	}
	return installments
}

// SplitAmount divides total into count parts of whole cents that add up to
// total exactly. The leftover cents go one each to the earliest parts, so
// parts differ by at most one cent: 100.00 / 3 = 33.34, 33.33, 33.33.
func SplitAmount(total decimal.Decimal, count int) []decimal.Decimal {
	if count < 1 {
		return nil
	}
	cents := total.Shift(domain.AmountPlaces).Round(0).IntPart()
	base := cents / int64(count)
	remainder := cents % int64(count)

	parts := make([]decimal.Decimal, count)
	for i := range parts {
		c := base
		if int64(i) < remainder {
			c++
		}
		parts[i] = decimal.New(c, -domain.AmountPlaces)
	}
	return parts
}

// MinimumTotal is the smallest total that still gives every installment at least one cent.
func MinimumTotal(count int) decimal.Decimal {
	return decimal.New(int64(count), -domain.AmountPlaces)
}

// Plan is the full resolution of one purchase: its statement, close date and installments.
type Plan struct {
	StatementMonth     domain.YearMonth `json:"statementMonth"`
	TechnicalCloseDate time.Time        `json:"technicalCloseDate"`
	Installments       []Installment    `json:"installments"`
}

// PlanPurchase resolves the statement of a purchase and expands its installments.
func PlanPurchase(purchaseDate time.Time, closingDay int, total decimal.Decimal, count int) Plan {
	return Plan{
		StatementMonth:     StatementMonth(purchaseDate, closingDay),
		TechnicalCloseDate: TechnicalCloseDate(purchaseDate, closingDay),
		Installments:       ExpandInstallments(purchaseDate, closingDay, total, count),
	}
}
