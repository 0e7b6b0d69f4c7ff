package services

import (
	"context"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/dto"
)

// USDRateSvcFacade defines the operations on daily USD quotes
type USDRateSvcFacade interface {
	// GetUSDRate retrieves the quote of one day.
	GetUSDRate(ctx context.Context, date time.Time) (*domain.USDRate, error)

	// UpsertUSDRate stores the quote of one day, replacing any previous value.
	UpsertUSDRate(ctx context.Context, date time.Time, req dto.UpsertUSDRateRequest) (*domain.USDRate, error)
}
