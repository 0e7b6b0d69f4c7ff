package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/statement_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_ledger/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	entryRepo portsrepo.LedgerEntryReader
	cardRepo  portsrepo.CardReader
}

// NewReportingService creates a new reporting service
func NewReportingService(entryRepo portsrepo.LedgerEntryReader, cardRepo portsrepo.CardReader) portssvc.ReportingService {
	return &reportingService{
		entryRepo: entryRepo,
		cardRepo:  cardRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// ListMonths returns the months that have entries, newest first
func (s *reportingService) ListMonths(ctx context.Context, ownerID string) ([]domain.YearMonth, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListEntries(ctx, ownerID, portsrepo.EntryFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch entries for month list", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list months: %w", err)
	}
	return ledger.MonthsWithData(entries), nil
}

// MonthlySummary totals one payment month per kind
func (s *reportingService) MonthlySummary(ctx context.Context, ownerID string, year int, month time.Month) (*domain.MonthlySummary, error) {
	entries, err := s.monthEntries(ctx, ownerID, year, month, nil)
	if err != nil {
		return nil, err
	}

	summary := ledger.MonthlySummary(entries, year, month)
	s.LogDebug(ctx, "Monthly summary computed",
		slog.String("period", summary.Period.String()),
		slog.Int("entry_count", len(entries)))
	return &summary, nil
}

// MonthlyTransactions lists one payment month, optionally restricted to one kind
func (s *reportingService) MonthlyTransactions(ctx context.Context, ownerID string, year int, month time.Month, kind *domain.EntryKind) ([]domain.LedgerEntry, error) {
	entries, err := s.monthEntries(ctx, ownerID, year, month, kind)
	if err != nil {
		return nil, err
	}
	return ledger.MonthlyTransactions(entries, year, month, kind), nil
}

// Dashboard loads the month's entries and the owner's cards concurrently
func (s *reportingService) Dashboard(ctx context.Context, ownerID string, year int, month time.Month) (*domain.MonthlyDashboard, error) {
	var (
		entries []domain.LedgerEntry
		cards   []domain.Card
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.monthEntries(gctx, ownerID, year, month, nil)
		return err
	})
	g.Go(func() error {
		var err error
		cards, err = s.cardRepo.ListCardsByOwner(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("failed to list cards: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard",
			slog.Int("year", year),
			slog.Int("month", int(month)))
		return nil, err
	}

	names := make(map[string]string, len(cards))
	for _, c := range cards {
		names[c.CardID] = c.Name
	}

	listing := ledger.MonthlyTransactions(entries, year, month, nil)
	cardEntries, cashEntries := ledger.SplitByKind(listing)

	return &domain.MonthlyDashboard{
		Summary:     ledger.MonthlySummary(entries, year, month),
		CardEntries: cardEntries,
		CashEntries: cashEntries,
		CardNames:   names,
	}, nil
}

// monthEntries fetches the entries whose payment date falls in the month.
func (s *reportingService) monthEntries(ctx context.Context, ownerID string, year int, month time.Month, kind *domain.EntryKind) ([]domain.LedgerEntry, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	if err := domain.ValidateYearMonth(year, month); err != nil {
		return nil, err
	}

	from, to := ledger.MonthRange(year, month)
	entries, err := s.entryRepo.ListEntries(ctx, ownerID, portsrepo.EntryFilter{From: &from, To: &to, Kind: kind})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch month entries",
			slog.String("owner_id", ownerID),
			slog.String("period", domain.YearMonth{Year: year, Month: month}.String()))
		return nil, fmt.Errorf("failed to fetch entries: %w", err)
	}
	return entries, nil
}
