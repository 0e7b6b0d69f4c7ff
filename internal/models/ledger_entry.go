package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the persisted form of a ledger row.
type LedgerEntry struct {
	EntryID          string          `db:"entry_id"`
	OwnerID          string          `db:"owner_id"`
	PurchaseID       string          `db:"purchase_id"`
	Kind             string          `db:"kind"`
	TransactionDate  time.Time       `db:"transaction_date"`
	PaymentDate      time.Time       `db:"payment_date"`
	Amount           decimal.Decimal `db:"amount"`
	Category         string          `db:"category"`
	Description      string          `db:"description"`
	CardID           sql.NullString  `db:"card_id"` // Null for cash entries
	InstallmentCount int             `db:"installment_count"`
	InstallmentIndex int             `db:"installment_index"`
	Sequence         int64           `db:"sequence"`
	CreatedAt        time.Time       `db:"created_at"`
}
