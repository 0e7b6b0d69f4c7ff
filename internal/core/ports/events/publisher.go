// Package events declares the outbound notifications emitted after ledger writes.
package events

import (
	"context"
	"time"
)

// EventType names a ledger event.
type EventType string

const (
	EntriesRecorded EventType = "entries.recorded"
	EntryDeleted    EventType = "entry.deleted"
	CardDeleted     EventType = "card.deleted"
)

// LedgerEvent is published once per committed write.
type LedgerEvent struct {
	Type       EventType `json:"type"`
	OwnerID    string    `json:"ownerID"`
	PurchaseID string    `json:"purchaseID,omitempty"`
	EntryIDs   []string  `json:"entryIDs,omitempty"`
	CardID     string    `json:"cardID,omitempty"`
	Months     []string  `json:"months,omitempty"` // YYYY-MM payment months touched
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher delivers ledger events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, event LedgerEvent) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(context.Context, LedgerEvent) error { return nil }
