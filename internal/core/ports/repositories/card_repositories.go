package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
)

// CardReader defines read operations for card data. Every lookup is scoped to one owner.
type CardReader interface {
	// FindCardByID retrieves a card of the owner. Returns ErrNotFound when the card
	// does not exist or belongs to someone else.
	FindCardByID(ctx context.Context, ownerID, cardID string) (*domain.Card, error)

	// FindCardByName retrieves a card by its exact (trimmed) name.
	FindCardByName(ctx context.Context, ownerID, name string) (*domain.Card, error)

	// ListCardsByOwner retrieves all cards of the owner ordered by name.
	ListCardsByOwner(ctx context.Context, ownerID string) ([]domain.Card, error)
}

// CardWriter defines write operations for card data
type CardWriter interface {
	// SaveCard persists a new card. Returns ErrDuplicate when the owner already has a card with that name.
	SaveCard(ctx context.Context, card domain.Card) error

	// SaveCards persists several cards in one transaction.
	SaveCards(ctx context.Context, cards []domain.Card) error

	// UpdateClosingDay changes the closing day of a card. Existing entries are not touched.
	UpdateClosingDay(ctx context.Context, ownerID, cardID string, closingDay int, now time.Time) error

	// DeleteCard removes a card. Returns ErrHasDependentEntries while entries reference it.
	DeleteCard(ctx context.Context, ownerID, cardID string) error
}

// CardRepositoryFacade combines all card-related repository interfaces
type CardRepositoryFacade interface {
	CardReader
	CardWriter
}
