package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
)

// EntryFilter narrows an entry listing. Nil fields are not applied.
// From is inclusive, To is exclusive, both compared against the payment date.
type EntryFilter struct {
	From *time.Time
	To   *time.Time
	Kind *domain.EntryKind
}

// LedgerEntryReader defines read operations for ledger entries
type LedgerEntryReader interface {
	// ListEntries retrieves the owner's entries matching filter, in insertion order.
	ListEntries(ctx context.Context, ownerID string, filter EntryFilter) ([]domain.LedgerEntry, error)
}

// LedgerEntryWriter defines write operations for ledger entries
type LedgerEntryWriter interface {
	// SaveEntries persists all entries or none of them. The store assigns Sequence.
	SaveEntries(ctx context.Context, ownerID string, entries []domain.LedgerEntry) ([]domain.LedgerEntry, error)

	// DeleteEntry removes one entry. Returns ErrNotFound when it is absent or foreign.
	DeleteEntry(ctx context.Context, ownerID, entryID string) error
}

// LedgerEntryRepositoryFacade combines all entry-related repository interfaces
type LedgerEntryRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}
