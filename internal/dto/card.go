package dto

import (
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
)

// CreateCardRequest defines the data needed to register a credit card.
type CreateCardRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	ClosingDay int    `json:"closingDay" binding:"required,closing_day"`
}

// UpdateClosingDayRequest changes the closing day used for future purchases.
type UpdateClosingDayRequest struct {
	ClosingDay int `json:"closingDay" binding:"required,closing_day"`
}

// CardResponse defines the data returned for a card.
type CardResponse struct {
	CardID        string    `json:"cardID"`
	Name          string    `json:"name"`
	ClosingDay    int       `json:"closingDay"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListCardsResponse wraps a list of cards.
type ListCardsResponse struct {
	Cards []CardResponse `json:"cards"`
}

// ToCardResponse converts a domain.Card to CardResponse DTO.
func ToCardResponse(c *domain.Card) CardResponse {
	return CardResponse{
		CardID:        c.CardID,
		Name:          c.Name,
		ClosingDay:    c.ClosingDay,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCardsResponse converts a slice of domain.Card to ListCardsResponse.
func ToListCardsResponse(cards []domain.Card) ListCardsResponse {
	res := make([]CardResponse, len(cards))
	for i := range cards {
		res[i] = ToCardResponse(&cards[i])
	}
	return ListCardsResponse{Cards: res}
}
