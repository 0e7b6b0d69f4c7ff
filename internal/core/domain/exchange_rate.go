package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// USDRate holds the official and parallel ("blue") USD quotes for one day.
// Rates are shared reference data and are not scoped to an owner.
type USDRate struct {
	RateDate      time.Time       `json:"rateDate"`
	Official      decimal.Decimal `json:"official"`
	Blue          decimal.Decimal `json:"blue"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}
