package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// USDRate stores the official and blue USD quotes of one day.
type USDRate struct {
	RateDate      time.Time       `db:"rate_date"` // Primary Key
	Official      decimal.Decimal `db:"official"`
	Blue          decimal.Decimal `db:"blue"`
	CreatedAt     time.Time       `db:"created_at"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
