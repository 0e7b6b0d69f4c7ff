package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/statement_ledger/internal/apperrors"
	"github.com/SscSPs/statement_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_ledger/internal/core/ports/services"
	"github.com/SscSPs/statement_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	entryRepo *MockLedgerEntryRepository
	cardRepo  *MockCardRepository
	service   portssvc.ReportingService
	ctx       context.Context
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.entryRepo = new(MockLedgerEntryRepository)
	suite.cardRepo = new(MockCardRepository)
	suite.service = services.NewReportingService(suite.entryRepo, suite.cardRepo)
	suite.ctx = context.Background()
}

func januaryEntries() []domain.LedgerEntry {
	cardID := "c1"
	return []domain.LedgerEntry{
		{EntryID: "salary", Kind: domain.KindIncome, TransactionDate: domain.Date(2025, time.January, 1), PaymentDate: domain.Date(2025, time.January, 1), Amount: decimal.NewFromInt(1000), InstallmentCount: 1, InstallmentIndex: 1, Sequence: 1},
		{EntryID: "rent", Kind: domain.KindFixed, TransactionDate: domain.Date(2025, time.January, 5), PaymentDate: domain.Date(2025, time.January, 5), Amount: decimal.NewFromInt(300), InstallmentCount: 1, InstallmentIndex: 1, Sequence: 2},
		{EntryID: "tv-1", Kind: domain.KindCard, TransactionDate: domain.Date(2024, time.December, 10), PaymentDate: domain.Date(2025, time.January, 15), Amount: decimal.NewFromInt(100), CardID: &cardID, InstallmentCount: 3, InstallmentIndex: 1, Sequence: 3},
	}
}

func monthFilter(year int, month time.Month) interface{} {
	return mock.MatchedBy(func(f portsrepo.EntryFilter) bool {
		return f.From != nil && f.To != nil &&
			f.From.Equal(domain.Date(year, month, 1)) &&
			f.To.Equal(domain.Date(year, month, 1).AddDate(0, 1, 0))
	})
}

func (suite *ReportingServiceTestSuite) TestMonthlySummary() {
	suite.entryRepo.On("ListEntries", suite.ctx, "owner", monthFilter(2025, time.January)).Return(januaryEntries(), nil).Once()

	s, err := suite.service.MonthlySummary(suite.ctx, "owner", 2025, time.January)

	suite.Require().NoError(err)
	suite.True(s.Income.Equal(decimal.NewFromInt(1000)))
	suite.True(s.Card.Equal(decimal.NewFromInt(100)))
	suite.True(s.NetBalance.Equal(decimal.NewFromInt(600)))
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlySummary_InvalidMonth() {
	s, err := suite.service.MonthlySummary(suite.ctx, "owner", 2025, time.Month(13))

	suite.Nil(s)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.entryRepo.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestListMonths() {
	entries := append(januaryEntries(), domain.LedgerEntry{
		EntryID: "tv-2", Kind: domain.KindCard, PaymentDate: domain.Date(2025, time.February, 15), Amount: decimal.NewFromInt(100),
	})
	suite.entryRepo.On("ListEntries", suite.ctx, "owner", portsrepo.EntryFilter{}).Return(entries, nil).Once()

	months, err := suite.service.ListMonths(suite.ctx, "owner")

	suite.Require().NoError(err)
	suite.Equal([]domain.YearMonth{{Year: 2025, Month: time.February}, {Year: 2025, Month: time.January}}, months)
}

func (suite *ReportingServiceTestSuite) TestMonthlyTransactions_KindFilterGoesToStore() {
	card := domain.KindCard
	suite.entryRepo.On("ListEntries", suite.ctx, "owner", mock.MatchedBy(func(f portsrepo.EntryFilter) bool {
		return f.Kind != nil && *f.Kind == domain.KindCard
	})).Return(januaryEntries()[2:], nil).Once()

	got, err := suite.service.MonthlyTransactions(suite.ctx, "owner", 2025, time.January, &card)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("tv-1", got[0].EntryID)
}

func (suite *ReportingServiceTestSuite) TestDashboard() {
	suite.entryRepo.On("ListEntries", mock.Anything, "owner", monthFilter(2025, time.January)).Return(januaryEntries(), nil).Once()
	suite.cardRepo.On("ListCardsByOwner", mock.Anything, "owner").Return([]domain.Card{{CardID: "c1", Name: "Visa"}}, nil).Once()

	d, err := suite.service.Dashboard(suite.ctx, "owner", 2025, time.January)

	suite.Require().NoError(err)
	suite.Len(d.CardEntries, 1)
	suite.Equal([]string{"rent", "salary"}, []string{d.CashEntries[0].EntryID, d.CashEntries[1].EntryID})
	suite.Equal("Visa", d.CardNames["c1"])
	suite.True(d.Summary.NetBalance.Equal(decimal.NewFromInt(600)))
}

func (suite *ReportingServiceTestSuite) TestDashboard_CardFailure() {
	suite.entryRepo.On("ListEntries", mock.Anything, "owner", mock.Anything).Return(januaryEntries(), nil).Maybe()
	suite.cardRepo.On("ListCardsByOwner", mock.Anything, "owner").Return(nil, assert.AnError).Once()

	d, err := suite.service.Dashboard(suite.ctx, "owner", 2025, time.January)

	suite.Nil(d)
	suite.ErrorIs(err, assert.AnError)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
