package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/statement_ledger/internal/apperrors"
	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/core/ports/events"
	portssvc "github.com/SscSPs/statement_ledger/internal/core/ports/services"
	"github.com/SscSPs/statement_ledger/internal/core/services"
	"github.com/SscSPs/statement_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	cardRepo  *MockCardRepository
	entryRepo *MockLedgerEntryRepository
	publisher *MockPublisher
	service   portssvc.LedgerSvcFacade
	ctx       context.Context
	ownerID   string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.cardRepo = new(MockCardRepository)
	suite.entryRepo = new(MockLedgerEntryRepository)
	suite.publisher = new(MockPublisher)
	suite.service = services.NewLedgerService(suite.cardRepo, suite.entryRepo, services.WithEventPublisher(suite.publisher))
	suite.ctx = context.Background()
	suite.ownerID = uuid.NewString()
}

func (suite *LedgerServiceTestSuite) card(closingDay int) *domain.Card {
	return &domain.Card{CardID: "card-1", OwnerID: suite.ownerID, Name: "Visa", ClosingDay: closingDay}
}

func (suite *LedgerServiceTestSuite) TestRecordCardPurchase_ThreeInstallments() {
	req := dto.CreateCardPurchaseRequest{
		CardID:       "card-1",
		PurchaseDate: "2024-12-10",
		Amount:       decimal.NewFromInt(300),
		Installments: 3,
		Description:  "  TV  ",
	}

	suite.cardRepo.On("FindCardByID", suite.ctx, suite.ownerID, "card-1").Return(suite.card(5), nil).Once()
	suite.entryRepo.On("SaveEntries", suite.ctx, suite.ownerID, mock.MatchedBy(func(es []domain.LedgerEntry) bool {
		return len(es) == 3
	})).Return(passThroughSave, nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.MatchedBy(func(e events.LedgerEvent) bool {
		return e.Type == events.EntriesRecorded && len(e.EntryIDs) == 3 &&
			assert.ObjectsAreEqual([]string{"2025-01", "2025-02", "2025-03"}, e.Months)
	})).Return(nil).Once()

	result, err := suite.service.RecordCardPurchase(suite.ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Require().Len(result.Entries, 3)
	wantDates := []time.Time{
		domain.Date(2025, time.January, 15),
		domain.Date(2025, time.February, 15),
		domain.Date(2025, time.March, 15),
	}
	for i, e := range result.Entries {
		suite.Equal(domain.KindCard, e.Kind)
		suite.Equal(wantDates[i], e.PaymentDate)
		suite.Equal(domain.Date(2024, time.December, 10), e.TransactionDate)
		suite.True(e.Amount.Equal(decimal.NewFromInt(100)))
		suite.Equal(3, e.InstallmentCount)
		suite.Equal(i+1, e.InstallmentIndex)
		suite.Equal(result.PurchaseID, e.PurchaseID)
		suite.Equal("TV", e.Description)
		suite.Require().NotNil(e.CardID)
		suite.Equal("card-1", *e.CardID)
	}
	suite.Equal([]domain.YearMonth{
		{Year: 2025, Month: time.January},
		{Year: 2025, Month: time.February},
		{Year: 2025, Month: time.March},
	}, result.AffectedMonths)

	suite.cardRepo.AssertExpectations(suite.T())
	suite.entryRepo.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordCardPurchase_UsesCurrentClosingDay() {
	req := dto.CreateCardPurchaseRequest{
		CardID:       "card-1",
		PurchaseDate: "2024-12-10",
		Amount:       decimal.NewFromInt(50),
		Installments: 1,
	}

	// Closing day 28 puts a Dec 10 purchase on the December statement.
	suite.cardRepo.On("FindCardByID", suite.ctx, suite.ownerID, "card-1").Return(suite.card(28), nil).Once()
	suite.entryRepo.On("SaveEntries", suite.ctx, suite.ownerID, mock.Anything).Return(passThroughSave, nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.RecordCardPurchase(suite.ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Date(2025, time.January, 7), result.Entries[0].PaymentDate)
}

func (suite *LedgerServiceTestSuite) TestRecordCardPurchase_CardNotFound() {
	req := dto.CreateCardPurchaseRequest{
		CardID:       "foreign",
		PurchaseDate: "2024-12-10",
		Amount:       decimal.NewFromInt(50),
		Installments: 1,
	}
	suite.cardRepo.On("FindCardByID", suite.ctx, suite.ownerID, "foreign").Return(nil, apperrors.NewNotFoundError("card not found")).Once()

	result, err := suite.service.RecordCardPurchase(suite.ctx, suite.ownerID, req)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything, mock.Anything)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordCardPurchase_InvalidInput() {
	tests := []struct {
		name string
		req  dto.CreateCardPurchaseRequest
	}{
		{"zero installments", dto.CreateCardPurchaseRequest{CardID: "card-1", PurchaseDate: "2024-12-10", Amount: decimal.NewFromInt(10), Installments: 0}},
		{"negative amount", dto.CreateCardPurchaseRequest{CardID: "card-1", PurchaseDate: "2024-12-10", Amount: decimal.NewFromInt(-10), Installments: 1}},
		{"sub-cent amount", dto.CreateCardPurchaseRequest{CardID: "card-1", PurchaseDate: "2024-12-10", Amount: decimal.RequireFromString("10.001"), Installments: 1}},
		{"too small to split", dto.CreateCardPurchaseRequest{CardID: "card-1", PurchaseDate: "2024-12-10", Amount: decimal.RequireFromString("0.02"), Installments: 3}},
		{"bad date", dto.CreateCardPurchaseRequest{CardID: "card-1", PurchaseDate: "2024-13-10", Amount: decimal.NewFromInt(10), Installments: 1}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			result, err := suite.service.RecordCardPurchase(suite.ctx, suite.ownerID, tt.req)
			suite.Nil(result)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.cardRepo.AssertNotCalled(suite.T(), "FindCardByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordCardPurchase_SaveFailureIsNotPublished() {
	req := dto.CreateCardPurchaseRequest{
		CardID:       "card-1",
		PurchaseDate: "2024-12-10",
		Amount:       decimal.NewFromInt(90),
		Installments: 3,
	}
	storeErr := apperrors.NewPersistenceError("failed to insert entries", assert.AnError)

	suite.cardRepo.On("FindCardByID", suite.ctx, suite.ownerID, "card-1").Return(suite.card(5), nil).Once()
	suite.entryRepo.On("SaveEntries", suite.ctx, suite.ownerID, mock.Anything).Return(nil, storeErr).Once()

	result, err := suite.service.RecordCardPurchase(suite.ctx, suite.ownerID, req)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordCardPurchase_PublishFailureDoesNotFail() {
	req := dto.CreateCardPurchaseRequest{
		CardID:       "card-1",
		PurchaseDate: "2024-12-03",
		Amount:       decimal.NewFromInt(20),
		Installments: 1,
	}

	suite.cardRepo.On("FindCardByID", suite.ctx, suite.ownerID, "card-1").Return(suite.card(5), nil).Once()
	suite.entryRepo.On("SaveEntries", suite.ctx, suite.ownerID, mock.Anything).Return(passThroughSave, nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.Anything).Return(assert.AnError).Once()

	result, err := suite.service.RecordCardPurchase(suite.ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Date(2024, time.December, 15), result.Entries[0].PaymentDate)
}

func (suite *LedgerServiceTestSuite) TestRecordCashEntry_Success() {
	req := dto.CreateCashEntryRequest{
		Kind:     "Income",
		Date:     "2025-01-01",
		Amount:   decimal.RequireFromString("1500.00"),
		Category: "Sueldo",
	}

	suite.entryRepo.On("SaveEntries", suite.ctx, suite.ownerID, mock.MatchedBy(func(es []domain.LedgerEntry) bool {
		return len(es) == 1 && es[0].Kind == domain.KindIncome && es[0].CardID == nil &&
			es[0].PaymentDate.Equal(es[0].TransactionDate)
	})).Return(passThroughSave, nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.RecordCashEntry(suite.ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Date(2025, time.January, 1), entry.PaymentDate)
	suite.Equal(1, entry.InstallmentCount)
	suite.Equal(1, entry.InstallmentIndex)
	suite.Equal("Sueldo", entry.Category)
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordCashEntry_RejectsCardKind() {
	req := dto.CreateCashEntryRequest{Kind: "Card", Date: "2025-01-01", Amount: decimal.NewFromInt(10)}

	entry, err := suite.service.RecordCashEntry(suite.ctx, suite.ownerID, req)

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestRecordCashEntry_RequiresOwner() {
	req := dto.CreateCashEntryRequest{Kind: "Debit", Date: "2025-01-01", Amount: decimal.NewFromInt(10)}

	entry, err := suite.service.RecordCashEntry(suite.ctx, "", req)

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *LedgerServiceTestSuite) TestDeleteEntry() {
	suite.entryRepo.On("DeleteEntry", suite.ctx, suite.ownerID, "e1").Return(nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.MatchedBy(func(e events.LedgerEvent) bool {
		return e.Type == events.EntryDeleted && len(e.EntryIDs) == 1 && e.EntryIDs[0] == "e1"
	})).Return(nil).Once()

	suite.NoError(suite.service.DeleteEntry(suite.ctx, suite.ownerID, "e1"))
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteEntry_NotFound() {
	suite.entryRepo.On("DeleteEntry", suite.ctx, suite.ownerID, "missing").Return(apperrors.NewNotFoundError("entry not found")).Once()

	err := suite.service.DeleteEntry(suite.ctx, suite.ownerID, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPreviewSchedule() {
	req := dto.SchedulePreviewRequest{
		PurchaseDate: "2024-12-29",
		ClosingDay:   28,
		Amount:       decimal.NewFromInt(100),
		Installments: 3,
	}

	plan, err := suite.service.PreviewSchedule(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.YearMonth{Year: 2025, Month: time.January}, plan.StatementMonth)
	suite.Require().Len(plan.Installments, 3)
	suite.Equal(domain.Date(2025, time.February, 7), plan.Installments[0].PaymentDate)
	suite.Equal("33.34", plan.Installments[0].Amount.StringFixed(2))
	suite.Equal("33.33", plan.Installments[2].Amount.StringFixed(2))
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPreviewSchedule_InvalidClosingDay() {
	req := dto.SchedulePreviewRequest{PurchaseDate: "2024-12-29", ClosingDay: 32, Amount: decimal.NewFromInt(1), Installments: 1}

	plan, err := suite.service.PreviewSchedule(suite.ctx, req)

	suite.Nil(plan)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPreviewSchedule_AmountAboveMaximum() {
	req := dto.SchedulePreviewRequest{PurchaseDate: "2024-12-29", ClosingDay: 28, Amount: decimal.RequireFromString("1e20"), Installments: 2}

	plan, err := suite.service.PreviewSchedule(suite.ctx, req)

	suite.Nil(plan)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
