package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
)

// USDRateReader defines read operations for USD quotes
type USDRateReader interface {
	// FindUSDRate retrieves the quote of one day.
	FindUSDRate(ctx context.Context, date time.Time) (*domain.USDRate, error)
}

// USDRateWriter defines write operations for USD quotes
type USDRateWriter interface {
	// SaveUSDRate inserts or replaces the quote of rate.RateDate.
	SaveUSDRate(ctx context.Context, rate domain.USDRate) error
}

// USDRateRepositoryFacade combines all USD quote repository interfaces
type USDRateRepositoryFacade interface {
	USDRateReader
	USDRateWriter
}
