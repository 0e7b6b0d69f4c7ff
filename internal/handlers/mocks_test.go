package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/statement_ledger/internal/core/ports/services"
	"github.com/SscSPs/statement_ledger/internal/core/schedule"
	"github.com/SscSPs/statement_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CardService ---
type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) GetCard(ctx context.Context, ownerID, cardID string) (*domain.Card, error) {
	args := m.Called(ctx, ownerID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}
func (m *MockCardService) ListCards(ctx context.Context, ownerID string) ([]domain.Card, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}
func (m *MockCardService) CreateCard(ctx context.Context, ownerID string, req dto.CreateCardRequest) (*domain.Card, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}
func (m *MockCardService) UpdateClosingDay(ctx context.Context, ownerID, cardID string, req dto.UpdateClosingDayRequest) (*domain.Card, error) {
	args := m.Called(ctx, ownerID, cardID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}
func (m *MockCardService) DeleteCard(ctx context.Context, ownerID, cardID string) error {
	args := m.Called(ctx, ownerID, cardID)
	return args.Error(0)
}
func (m *MockCardService) EnsureDefaultCards(ctx context.Context, ownerID string) ([]domain.Card, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

var _ portssvc.CardSvcFacade = (*MockCardService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordCashEntry(ctx context.Context, ownerID string, req dto.CreateCashEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) RecordCardPurchase(ctx context.Context, ownerID string, req dto.CreateCardPurchaseRequest) (*domain.RecordedPurchase, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecordedPurchase), args.Error(1)
}
func (m *MockLedgerService) DeleteEntry(ctx context.Context, ownerID, entryID string) error {
	args := m.Called(ctx, ownerID, entryID)
	return args.Error(0)
}
func (m *MockLedgerService) PreviewSchedule(ctx context.Context, req dto.SchedulePreviewRequest) (*schedule.Plan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.Plan), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) ListMonths(ctx context.Context, ownerID string) ([]domain.YearMonth, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YearMonth), args.Error(1)
}
func (m *MockReportingService) MonthlySummary(ctx context.Context, ownerID string, year int, month time.Month) (*domain.MonthlySummary, error) {
	args := m.Called(ctx, ownerID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySummary), args.Error(1)
}
func (m *MockReportingService) MonthlyTransactions(ctx context.Context, ownerID string, year int, month time.Month, kind *domain.EntryKind) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, ownerID, year, month, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
func (m *MockReportingService) Dashboard(ctx context.Context, ownerID string, year int, month time.Month) (*domain.MonthlyDashboard, error) {
	args := m.Called(ctx, ownerID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyDashboard), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock USDRateService ---
type MockUSDRateService struct {
	mock.Mock
}

func (m *MockUSDRateService) GetUSDRate(ctx context.Context, date time.Time) (*domain.USDRate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.USDRate), args.Error(1)
}
func (m *MockUSDRateService) UpsertUSDRate(ctx context.Context, date time.Time, req dto.UpsertUSDRateRequest) (*domain.USDRate, error) {
	args := m.Called(ctx, date, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.USDRate), args.Error(1)
}

var _ portssvc.USDRateSvcFacade = (*MockUSDRateService)(nil)
