package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/statement_ledger/internal/apperrors"
	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/core/ledger"
	"github.com/SscSPs/statement_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/statement_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_ledger/internal/core/ports/services"
	"github.com/SscSPs/statement_ledger/internal/core/schedule"
	"github.com/SscSPs/statement_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	cardRepo  portsrepo.CardReader
	entryRepo portsrepo.LedgerEntryRepositoryFacade
	publisher events.Publisher
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithEventPublisher sets the publisher notified after each committed write.
func WithEventPublisher(p events.Publisher) LedgerServiceOption {
	return func(s *ledgerService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(cardRepo portsrepo.CardReader, entryRepo portsrepo.LedgerEntryRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		cardRepo:  cardRepo,
		entryRepo: entryRepo,
		publisher: events.NopPublisher{},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) RecordCashEntry(ctx context.Context, ownerID string, req dto.CreateCashEntryRequest) (*domain.LedgerEntry, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	kind, err := domain.ParseEntryKind(req.Kind)
	if err != nil {
		return nil, err
	}
	if !kind.IsCash() {
		return nil, fmt.Errorf("%w: card purchases must be recorded against a card", apperrors.ErrValidation)
	}
	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.LedgerEntry{
		EntryID:          uuid.NewString(),
		OwnerID:          ownerID,
		PurchaseID:       uuid.NewString(),
		Kind:             kind,
		TransactionDate:  date,
		PaymentDate:      date,
		Amount:           req.Amount,
		Category:         strings.TrimSpace(req.Category),
		Description:      strings.TrimSpace(req.Description),
		InstallmentCount: 1,
		InstallmentIndex: 1,
		CreatedAt:        now,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.entryRepo.SaveEntries(ctx, ownerID, []domain.LedgerEntry{entry})
	if err != nil {
		s.LogError(ctx, err, "Failed to save cash entry",
			slog.String("owner_id", ownerID),
			slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to record %s entry: %w", kind, err)
	}

	s.publishRecorded(ctx, ownerID, entry.PurchaseID, saved)
	s.LogInfo(ctx, "Cash entry recorded",
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(kind)))
	return &saved[0], nil
}

func (s *ledgerService) RecordCardPurchase(ctx context.Context, ownerID string, req dto.CreateCardPurchaseRequest) (*domain.RecordedPurchase, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	purchaseDate, err := dto.ParseDate("purchaseDate", req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	if err := validatePurchase(req.Amount, req.Installments); err != nil {
		return nil, err
	}

	card, err := s.cardRepo.FindCardByID(ctx, ownerID, req.CardID)
	if err != nil {
		s.LogError(ctx, err, "Card lookup failed", slog.String("card_id", req.CardID))
		return nil, fmt.Errorf("failed to resolve card %s: %w", req.CardID, err)
	}

	// The closing day is read once here; the resulting payment dates are stored
	// and never recomputed when the card changes later.
	installments := schedule.ExpandInstallments(purchaseDate, card.ClosingDay, req.Amount, req.Installments)

	now := time.Now()
	purchaseID := uuid.NewString()
	cardID := card.CardID
	entries := make([]domain.LedgerEntry, len(installments))
	for i, inst := range installments {
		entries[i] = domain.LedgerEntry{
			EntryID:          uuid.NewString(),
			OwnerID:          ownerID,
			PurchaseID:       purchaseID,
			Kind:             domain.KindCard,
			TransactionDate:  purchaseDate,
			PaymentDate:      inst.PaymentDate,
			Amount:           inst.Amount,
			Category:         strings.TrimSpace(req.Category),
			Description:      strings.TrimSpace(req.Description),
			CardID:           &cardID,
			InstallmentCount: req.Installments,
			InstallmentIndex: inst.Index,
			CreatedAt:        now,
		}
		if err := entries[i].Validate(); err != nil {
			return nil, err
		}
	}

	saved, err := s.entryRepo.SaveEntries(ctx, ownerID, entries)
	if err != nil {
		s.LogError(ctx, err, "Failed to save card purchase",
			slog.String("card_id", cardID),
			slog.Int("installments", req.Installments))
		return nil, fmt.Errorf("failed to record card purchase: %w", err)
	}

	s.publishRecorded(ctx, ownerID, purchaseID, saved)
	s.LogInfo(ctx, "Card purchase recorded",
		slog.String("purchase_id", purchaseID),
		slog.String("card_id", cardID),
		slog.Int("closing_day", card.ClosingDay),
		slog.Int("installments", len(saved)))

	return &domain.RecordedPurchase{
		PurchaseID:     purchaseID,
		Entries:        saved,
		AffectedMonths: ledger.AffectedMonths(saved),
	}, nil
}

func (s *ledgerService) DeleteEntry(ctx context.Context, ownerID, entryID string) error {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return err
	}
	if err := s.entryRepo.DeleteEntry(ctx, ownerID, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}

	s.publish(ctx, events.LedgerEvent{
		Type:       events.EntryDeleted,
		OwnerID:    ownerID,
		EntryIDs:   []string{entryID},
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

func (s *ledgerService) PreviewSchedule(ctx context.Context, req dto.SchedulePreviewRequest) (*schedule.Plan, error) {
	purchaseDate, err := dto.ParseDate("purchaseDate", req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateClosingDay(req.ClosingDay); err != nil {
		return nil, err
	}
	if err := validatePurchase(req.Amount, req.Installments); err != nil {
		return nil, err
	}

	plan := schedule.PlanPurchase(purchaseDate, req.ClosingDay, req.Amount, req.Installments)
	s.LogDebug(ctx, "Schedule previewed",
		slog.String("purchase_date", req.PurchaseDate),
		slog.Int("closing_day", req.ClosingDay),
		slog.Int("installments", req.Installments))
	return &plan, nil
}

// validatePurchase checks the amount and installment count of a card purchase.
func validatePurchase(amount decimal.Decimal, installments int) error {
	if err := domain.ValidateInstallmentCount(installments); err != nil {
		return err
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}
	if minimum := schedule.MinimumTotal(installments); amount.LessThan(minimum) {
		return fmt.Errorf("%w: amount %s is too small for %d installments (minimum %s)",
			apperrors.ErrValidation, amount.String(), installments, minimum.StringFixed(domain.AmountPlaces))
	}
	return nil
}

func (s *ledgerService) publishRecorded(ctx context.Context, ownerID, purchaseID string, entries []domain.LedgerEntry) {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
	}
	months := ledger.AffectedMonths(entries)
	keys := make([]string, len(months))
	for i, m := range months {
		keys[i] = m.String()
	}

	s.publish(ctx, events.LedgerEvent{
		Type:       events.EntriesRecorded,
		OwnerID:    ownerID,
		PurchaseID: purchaseID,
		EntryIDs:   ids,
		Months:     keys,
		OccurredAt: time.Now().UTC(),
	})
}

// publish never fails the caller: the write is already committed.
func (s *ledgerService) publish(ctx context.Context, event events.LedgerEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish ledger event",
			slog.String("event_type", string(event.Type)),
			slog.String("owner_id", event.OwnerID))
	}
}
