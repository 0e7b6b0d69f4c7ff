package dto

import (
	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthsResponse lists the months that have entries, newest first.
type MonthsResponse struct {
	Months []MonthResponse `json:"months"`
}

// MonthlySummaryResponse defines the totals of one payment month.
type MonthlySummaryResponse struct {
	Period        MonthResponse   `json:"period"`
	Income        decimal.Decimal `json:"income" swaggertype:"string"`
	Fixed         decimal.Decimal `json:"fixed" swaggertype:"string"`
	Debit         decimal.Decimal `json:"debit" swaggertype:"string"`
	Card          decimal.Decimal `json:"card" swaggertype:"string"`
	TotalExpenses decimal.Decimal `json:"totalExpenses" swaggertype:"string"`
	NetBalance    decimal.Decimal `json:"netBalance" swaggertype:"string"`
}

// TransactionsResponse lists the entries of one payment month.
type TransactionsResponse struct {
	Period       MonthResponse         `json:"period"`
	Transactions []LedgerEntryResponse `json:"transactions"`
}

// DashboardResponse combines the summary with the card and cash listings.
type DashboardResponse struct {
	Summary          MonthlySummaryResponse `json:"summary"`
	CardTransactions []LedgerEntryResponse  `json:"cardTransactions"`
	CashTransactions []LedgerEntryResponse  `json:"cashTransactions"`
}

// ToMonthlySummaryResponse converts a domain.MonthlySummary.
func ToMonthlySummaryResponse(s domain.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Period:        ToMonthResponse(s.Period),
		Income:        s.Income,
		Fixed:         s.Fixed,
		Debit:         s.Debit,
		Card:          s.Card,
		TotalExpenses: s.TotalExpenses(),
		NetBalance:    s.NetBalance,
	}
}

// ToDashboardResponse converts a domain.MonthlyDashboard.
func ToDashboardResponse(d *domain.MonthlyDashboard) DashboardResponse {
	return DashboardResponse{
		Summary:          ToMonthlySummaryResponse(d.Summary),
		CardTransactions: ToLedgerEntryResponses(d.CardEntries, d.CardNames),
		CashTransactions: ToLedgerEntryResponses(d.CashEntries, d.CardNames),
	}
}
