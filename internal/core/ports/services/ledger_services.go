package services

import (
	"context"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/core/schedule"
	"github.com/SscSPs/statement_ledger/internal/dto"
)

// LedgerWriterSvc defines the operations that add or remove ledger entries
type LedgerWriterSvc interface {
	// RecordCashEntry records an Income, Fixed or Debit entry paid on its date.
	RecordCashEntry(ctx context.Context, ownerID string, req dto.CreateCashEntryRequest) (*domain.LedgerEntry, error)

	// RecordCardPurchase expands a purchase into installments using the card's
	// current closing day and stores them atomically.
	RecordCardPurchase(ctx context.Context, ownerID string, req dto.CreateCardPurchaseRequest) (*domain.RecordedPurchase, error)

	// DeleteEntry removes one entry of the owner.
	DeleteEntry(ctx context.Context, ownerID, entryID string) error
}

// SchedulePreviewSvc computes schedules without persisting anything
type SchedulePreviewSvc interface {
	PreviewSchedule(ctx context.Context, req dto.SchedulePreviewRequest) (*schedule.Plan, error)
}

// LedgerSvcFacade combines all ledger write service interfaces
type LedgerSvcFacade interface {
	LedgerWriterSvc
	SchedulePreviewSvc
}
