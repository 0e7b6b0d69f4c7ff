package services

import (
	"context"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/dto"
)

// CardReaderSvc defines read operations for cards
type CardReaderSvc interface {
	// GetCard retrieves one card of the owner.
	GetCard(ctx context.Context, ownerID, cardID string) (*domain.Card, error)

	// ListCards retrieves all cards of the owner.
	ListCards(ctx context.Context, ownerID string) ([]domain.Card, error)
}

// CardWriterSvc defines write operations for cards
type CardWriterSvc interface {
	// CreateCard registers a new card with a trimmed, unique name.
	CreateCard(ctx context.Context, ownerID string, req dto.CreateCardRequest) (*domain.Card, error)

	// UpdateClosingDay changes the closing day. Only purchases recorded afterwards use it.
	UpdateClosingDay(ctx context.Context, ownerID, cardID string, req dto.UpdateClosingDayRequest) (*domain.Card, error)

	// DeleteCard removes a card that no entry references.
	DeleteCard(ctx context.Context, ownerID, cardID string) error

	// EnsureDefaultCards creates the starter cards when the owner has none and
	// returns the owner's cards either way.
	EnsureDefaultCards(ctx context.Context, ownerID string) ([]domain.Card, error)
}

// CardSvcFacade combines all card-related service interfaces
type CardSvcFacade interface {
	CardReaderSvc
	CardWriterSvc
}
