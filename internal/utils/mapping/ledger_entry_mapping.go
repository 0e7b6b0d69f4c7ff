package mapping

import (
	"database/sql"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	var cardID sql.NullString
	if d.CardID != nil {
		cardID = sql.NullString{String: *d.CardID, Valid: true}
	}
	return models.LedgerEntry{
		EntryID:          d.EntryID,
		OwnerID:          d.OwnerID,
		PurchaseID:       d.PurchaseID,
		Kind:             string(d.Kind),
		TransactionDate:  d.TransactionDate,
		PaymentDate:      d.PaymentDate,
		Amount:           d.Amount,
		Category:         d.Category,
		Description:      d.Description,
		CardID:           cardID,
		InstallmentCount: d.InstallmentCount,
		InstallmentIndex: d.InstallmentIndex,
		Sequence:         d.Sequence,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	var cardID *string
	if m.CardID.Valid {
		id := m.CardID.String
		cardID = &id
	}
	return domain.LedgerEntry{
		EntryID:          m.EntryID,
		OwnerID:          m.OwnerID,
		PurchaseID:       m.PurchaseID,
		Kind:             domain.EntryKind(m.Kind),
		TransactionDate:  domain.DateOnly(m.TransactionDate),
		PaymentDate:      domain.DateOnly(m.PaymentDate),
		Amount:           m.Amount,
		Category:         m.Category,
		Description:      m.Description,
		CardID:           cardID,
		InstallmentCount: m.InstallmentCount,
		InstallmentIndex: m.InstallmentIndex,
		Sequence:         m.Sequence,
		CreatedAt:        m.CreatedAt,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model entries to domain entries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
