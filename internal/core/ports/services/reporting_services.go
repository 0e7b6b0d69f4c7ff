package services

import (
	"context"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
)

// ReportingService defines the monthly views over an owner's ledger, all keyed by payment month
type ReportingService interface {
	// ListMonths returns the months that have entries, newest first.
	ListMonths(ctx context.Context, ownerID string) ([]domain.YearMonth, error)

	// MonthlySummary totals the month per kind.
	MonthlySummary(ctx context.Context, ownerID string, year int, month time.Month) (*domain.MonthlySummary, error)

	// MonthlyTransactions lists the month's entries, optionally of one kind.
	MonthlyTransactions(ctx context.Context, ownerID string, year int, month time.Month, kind *domain.EntryKind) ([]domain.LedgerEntry, error)

	// Dashboard combines the summary with the card and cash listings.
	Dashboard(ctx context.Context, ownerID string, year int, month time.Month) (*domain.MonthlyDashboard, error)
}
