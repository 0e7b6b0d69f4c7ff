package dto

import (
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertUSDRateRequest carries the quotes of one day.
type UpsertUSDRateRequest struct {
	Official decimal.Decimal `json:"official" swaggertype:"string" example:"1045.50"`
	Blue     decimal.Decimal `json:"blue" swaggertype:"string" example:"1210.00"`
}

// USDRateResponse defines the data returned for a USD quote.
type USDRateResponse struct {
	Date          string          `json:"date"`
	Official      decimal.Decimal `json:"official" swaggertype:"string"`
	Blue          decimal.Decimal `json:"blue" swaggertype:"string"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToUSDRateResponse converts a domain.USDRate.
func ToUSDRateResponse(r *domain.USDRate) USDRateResponse {
	return USDRateResponse{
		Date:          FormatDate(r.RateDate),
		Official:      r.Official,
		Blue:          r.Blue,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}
