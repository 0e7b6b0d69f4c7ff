package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/statement_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EntryKind classifies a ledger entry.
type EntryKind string

const (
	KindIncome EntryKind = "Income"
	KindFixed  EntryKind = "Fixed"
	KindDebit  EntryKind = "Debit"
	KindCard   EntryKind = "Card"
)

// AmountPlaces is the number of decimal places amounts are kept at.
const AmountPlaces = 2

// MaxAmount is the largest amount the ledger_entries.amount column holds.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// IsValid reports whether k is one of the known kinds.
func (k EntryKind) IsValid() bool {
	switch k {
	case KindIncome, KindFixed, KindDebit, KindCard:
		return true
	}
	return false
}

// IsCash reports whether k settles on the transaction date (everything but Card).
func (k EntryKind) IsCash() bool {
	return k == KindIncome || k == KindFixed || k == KindDebit
}

// ParseEntryKind converts a raw string into an EntryKind.
func ParseEntryKind(s string) (EntryKind, error) {
	k := EntryKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, s)
	}
	return k, nil
}

// LedgerEntry is one dated row of the ledger. Card purchases in N installments
// produce N entries sharing PurchaseID and InstallmentCount.
type LedgerEntry struct {
	EntryID          string          `json:"entryID"`
	OwnerID          string          `json:"ownerID"`
	PurchaseID       string          `json:"purchaseID"`
	Kind             EntryKind       `json:"kind"`
	TransactionDate  time.Time       `json:"transactionDate"`
	PaymentDate      time.Time       `json:"paymentDate"` // Stored at creation, never recomputed
	Amount           decimal.Decimal `json:"amount"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
	CardID           *string         `json:"cardID,omitempty"`
	InstallmentCount int             `json:"installmentCount"`
	InstallmentIndex int             `json:"installmentIndex"`
	Sequence         int64           `json:"sequence"` // Insertion order assigned by the store
	CreatedAt        time.Time       `json:"createdAt"`
}

// Validate checks the structural invariants of an entry.
func (e LedgerEntry) Validate() error {
	if !e.Kind.IsValid() {
		return fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, e.Kind)
	}
	if err := ValidateAmount(e.Amount); err != nil {
		return err
	}
	if e.TransactionDate.IsZero() || e.PaymentDate.IsZero() {
		return fmt.Errorf("%w: transaction and payment dates are required", apperrors.ErrValidation)
	}
	if e.InstallmentCount < 1 {
		return fmt.Errorf("%w: installment count must be at least 1", apperrors.ErrValidation)
	}
	if e.InstallmentIndex < 1 || e.InstallmentIndex > e.InstallmentCount {
		return fmt.Errorf("%w: installment index %d outside 1..%d", apperrors.ErrValidation, e.InstallmentIndex, e.InstallmentCount)
	}

	if e.Kind.IsCash() {
		if !DateOnly(e.PaymentDate).Equal(DateOnly(e.TransactionDate)) {
			return fmt.Errorf("%w: %s entries are paid on the transaction date", apperrors.ErrValidation, e.Kind)
		}
		if e.InstallmentCount != 1 {
			return fmt.Errorf("%w: %s entries cannot have installments", apperrors.ErrValidation, e.Kind)
		}
		if e.CardID != nil {
			return fmt.Errorf("%w: %s entries cannot reference a card", apperrors.ErrValidation, e.Kind)
		}
		return nil
	}

	if e.CardID == nil || *e.CardID == "" {
		return fmt.Errorf("%w: card entries must reference a card", apperrors.ErrValidation)
	}
	if DateOnly(e.PaymentDate).Before(DateOnly(e.TransactionDate)) {
		return fmt.Errorf("%w: card payment date cannot precede the purchase date", apperrors.ErrValidation)
	}
	return nil
}

// ValidateAmount requires a positive amount of at most MaxAmount with at most
// two decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if amount.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: amount %s exceeds the maximum of %s", apperrors.ErrValidation, amount.String(), MaxAmount.StringFixed(AmountPlaces))
	}
	if !amount.Equal(amount.Truncate(AmountPlaces)) {
		return fmt.Errorf("%w: amount %s has more than %d decimal places", apperrors.ErrValidation, amount.String(), AmountPlaces)
	}
	return nil
}

// ValidateInstallmentCount rejects counts below one.
func ValidateInstallmentCount(count int) error {
	if count < 1 {
		return fmt.Errorf("%w: installment count must be at least 1, got %d", apperrors.ErrValidation, count)
	}
	return nil
}

// RecordedPurchase is the outcome of recording one card purchase.
type RecordedPurchase struct {
	PurchaseID     string        `json:"purchaseID"`
	Entries        []LedgerEntry `json:"entries"`
	AffectedMonths []YearMonth   `json:"affectedMonths"`
}
