package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/statement_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock CardRepository ---
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) FindCardByID(ctx context.Context, ownerID, cardID string) (*domain.Card, error) {
	args := m.Called(ctx, ownerID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) FindCardByName(ctx context.Context, ownerID, name string) (*domain.Card, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) ListCardsByOwner(ctx context.Context, ownerID string) ([]domain.Card, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) SaveCards(ctx context.Context, cards []domain.Card) error {
	args := m.Called(ctx, cards)
	return args.Error(0)
}

func (m *MockCardRepository) UpdateClosingDay(ctx context.Context, ownerID, cardID string, closingDay int, now time.Time) error {
	args := m.Called(ctx, ownerID, cardID, closingDay, now)
	return args.Error(0)
}

func (m *MockCardRepository) DeleteCard(ctx context.Context, ownerID, cardID string) error {
	args := m.Called(ctx, ownerID, cardID)
	return args.Error(0)
}

// --- Mock LedgerEntryRepository ---
type MockLedgerEntryRepository struct {
	mock.Mock
}

func (m *MockLedgerEntryRepository) ListEntries(ctx context.Context, ownerID string, filter portsrepo.EntryFilter) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) SaveEntries(ctx context.Context, ownerID string, entries []domain.LedgerEntry) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, ownerID, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func([]domain.LedgerEntry) []domain.LedgerEntry); ok {
		return fn(entries), args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) DeleteEntry(ctx context.Context, ownerID, entryID string) error {
	args := m.Called(ctx, ownerID, entryID)
	return args.Error(0)
}

// --- Mock USDRateRepository ---
type MockUSDRateRepository struct {
	mock.Mock
}

func (m *MockUSDRateRepository) FindUSDRate(ctx context.Context, date time.Time) (*domain.USDRate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.USDRate), args.Error(1)
}

func (m *MockUSDRateRepository) SaveUSDRate(ctx context.Context, rate domain.USDRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock Publisher ---
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event events.LedgerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// passThroughSave makes SaveEntries return its input with store sequences assigned.
func passThroughSave(in []domain.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(in))
	for i, e := range in {
		e.Sequence = int64(i + 1)
		out[i] = e
	}
	return out
}
