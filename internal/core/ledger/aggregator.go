// Package ledger aggregates an owner's entries into monthly views. All
// aggregation is keyed by payment date, never by transaction date.
package ledger

import (
	"sort"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthRange returns the half-open interval [first of month, first of next month).
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func inMonth(e domain.LedgerEntry, start, end time.Time) bool {
	pd := domain.DateOnly(e.PaymentDate)
	return !pd.Before(start) && pd.Before(end)
}

// MonthsWithData lists the distinct payment months present in entries, newest first.
func MonthsWithData(entries []domain.LedgerEntry) []domain.YearMonth {
	seen := make(map[domain.YearMonth]struct{}, len(entries))
	months := make([]domain.YearMonth, 0)
	for _, e := range entries {
		ym := domain.YearMonthOf(e.PaymentDate)
		if _, ok := seen[ym]; ok {
			continue
		}
		seen[ym] = struct{}{}
		months = append(months, ym)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[j].Before(months[i])
	})
	return months
}

// AffectedMonths lists the distinct payment months of entries in the order they first appear.
func AffectedMonths(entries []domain.LedgerEntry) []domain.YearMonth {
	seen := make(map[domain.YearMonth]struct{})
	var months []domain.YearMonth
	for _, e := range entries {
		ym := domain.YearMonthOf(e.PaymentDate)
		if _, ok := seen[ym]; ok {
			continue
		}
		seen[ym] = struct{}{}
		months = append(months, ym)
	}
	return months
}

// MonthlySummary totals each kind over the entries paid in the given month.
// Entries of an unknown kind are ignored.
func MonthlySummary(entries []domain.LedgerEntry, year int, month time.Month) domain.MonthlySummary {
	start, end := MonthRange(year, month)
	summary := domain.MonthlySummary{
		Period:     domain.YearMonth{Year: year, Month: month},
		Income:     decimal.Zero,
		Fixed:      decimal.Zero,
		Debit:      decimal.Zero,
		Card:       decimal.Zero,
		NetBalance: decimal.Zero,
	}

	for _, e := range entries {
		if !inMonth(e, start, end) {
			continue
		}
		switch e.Kind {
		case domain.KindIncome:
			summary.Income = summary.Income.Add(e.Amount)
		case domain.KindFixed:
			summary.Fixed = summary.Fixed.Add(e.Amount)
		case domain.KindDebit:
			summary.Debit = summary.Debit.Add(e.Amount)
		case domain.KindCard:
			summary.Card = summary.Card.Add(e.Amount)
		}
	}

	summary.NetBalance = summary.Income.Sub(summary.TotalExpenses())
	return summary
}

// MonthlyTransactions returns the entries paid in the given month, optionally
// restricted to one kind, ordered by transaction date descending. Ties keep
// store insertion order.
func MonthlyTransactions(entries []domain.LedgerEntry, year int, month time.Month, kind *domain.EntryKind) []domain.LedgerEntry {
	start, end := MonthRange(year, month)

	out := make([]domain.LedgerEntry, 0)
	for _, e := range entries {
		if !inMonth(e, start, end) {
			continue
		}
		if kind != nil && e.Kind != *kind {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := domain.DateOnly(out[i].TransactionDate), domain.DateOnly(out[j].TransactionDate)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return out[i].Sequence < out[j].Sequence
	})
	return out
}

// SplitByKind separates card entries from cash entries, preserving order.
func SplitByKind(entries []domain.LedgerEntry) (card, cash []domain.LedgerEntry) {
	card = make([]domain.LedgerEntry, 0)
	cash = make([]domain.LedgerEntry, 0)
	for _, e := range entries {
		if e.Kind == domain.KindCard {
			card = append(card, e)
		} else {
			cash = append(cash, e)
		}
	}
	return card, cash
}
