package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/core/schedule"
	"github.com/shopspring/decimal"
)

// CreateCashEntryRequest records an Income, Fixed or Debit movement.
// Investments are recorded here too: a buy is Debit, a sale or yield is Income.
type CreateCashEntryRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=Income Fixed Debit"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"1500.00"`
	Category    string          `json:"category" binding:"max=100"`
	Description string          `json:"description" binding:"max=500"`
}

// CreateCardPurchaseRequest records a card purchase paid in one or more installments.
type CreateCardPurchaseRequest struct {
	CardID       string          `json:"cardID" binding:"required"`
	PurchaseDate string          `json:"purchaseDate" binding:"required,datetime=2006-01-02"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"300.00"`
	Installments int             `json:"installments" binding:"required,min=1,max=72"`
	Category     string          `json:"category" binding:"max=100"`
	Description  string          `json:"description" binding:"max=500"`
}

// SchedulePreviewRequest asks for the schedule of a hypothetical purchase.
type SchedulePreviewRequest struct {
	PurchaseDate string          `json:"purchaseDate" binding:"required,datetime=2006-01-02"`
	ClosingDay   int             `json:"closingDay" binding:"required,closing_day"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"300.00"`
	Installments int             `json:"installments" binding:"required,min=1,max=72"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID          string          `json:"entryID"`
	PurchaseID       string          `json:"purchaseID"`
	Kind             string          `json:"kind"`
	TransactionDate  string          `json:"transactionDate"`
	PaymentDate      string          `json:"paymentDate"`
	Amount           decimal.Decimal `json:"amount" swaggertype:"string"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
	CardID           *string         `json:"cardID,omitempty"`
	CardName         string          `json:"cardName,omitempty"`
	InstallmentCount int             `json:"installmentCount"`
	InstallmentIndex int             `json:"installmentIndex"`
	Installment      string          `json:"installment"` // e.g. "2/3"
	CreatedAt        time.Time       `json:"createdAt"`
}

// MonthResponse identifies a payment month.
type MonthResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Key   string `json:"key"`   // YYYY-MM
	Label string `json:"label"` // e.g. "Enero 2025"
}

// CardPurchaseResponse is returned after recording a card purchase.
type CardPurchaseResponse struct {
	PurchaseID     string                `json:"purchaseID"`
	Entries        []LedgerEntryResponse `json:"entries"`
	AffectedMonths []MonthResponse       `json:"affectedMonths"`
}

// InstallmentResponse is one row of a schedule.
type InstallmentResponse struct {
	Index       int             `json:"index"`
	PaymentDate string          `json:"paymentDate"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
}

// SchedulePreviewResponse describes how a purchase would be billed.
type SchedulePreviewResponse struct {
	StatementMonth     MonthResponse         `json:"statementMonth"`
	TechnicalCloseDate string                `json:"technicalCloseDate"`
	Installments       []InstallmentResponse `json:"installments"`
}

// ToMonthResponse converts a domain.YearMonth to MonthResponse.
func ToMonthResponse(ym domain.YearMonth) MonthResponse {
	return MonthResponse{
		Year:  ym.Year,
		Month: int(ym.Month),
		Key:   ym.String(),
		Label: ym.Label(),
	}
}

// ToMonthResponses converts a slice of months.
func ToMonthResponses(months []domain.YearMonth) []MonthResponse {
	res := make([]MonthResponse, len(months))
	for i, m := range months {
		res[i] = ToMonthResponse(m)
	}
	return res
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:          e.EntryID,
		PurchaseID:       e.PurchaseID,
		Kind:             string(e.Kind),
		TransactionDate:  FormatDate(e.TransactionDate),
		PaymentDate:      FormatDate(e.PaymentDate),
		Amount:           e.Amount,
		Category:         e.Category,
		Description:      e.Description,
		CardID:           e.CardID,
		InstallmentCount: e.InstallmentCount,
		InstallmentIndex: e.InstallmentIndex,
		Installment:      fmt.Sprintf("%d/%d", e.InstallmentIndex, e.InstallmentCount),
		CreatedAt:        e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts entries, filling CardName from cardNames when given.
func ToLedgerEntryResponses(entries []domain.LedgerEntry, cardNames map[string]string) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToLedgerEntryResponse(&entries[i])
		if entries[i].CardID != nil && cardNames != nil {
			res[i].CardName = cardNames[*entries[i].CardID]
		}
	}
	return res
}

// ToCardPurchaseResponse converts a recorded purchase.
func ToCardPurchaseResponse(p *domain.RecordedPurchase) CardPurchaseResponse {
	return CardPurchaseResponse{
		PurchaseID:     p.PurchaseID,
		Entries:        ToLedgerEntryResponses(p.Entries, nil),
		AffectedMonths: ToMonthResponses(p.AffectedMonths),
	}
}

// ToSchedulePreviewResponse converts a computed plan.
func ToSchedulePreviewResponse(p *schedule.Plan) SchedulePreviewResponse {
	installments := make([]InstallmentResponse, len(p.Installments))
	for i, inst := range p.Installments {
		installments[i] = InstallmentResponse{
			Index:       inst.Index,
			PaymentDate: FormatDate(inst.PaymentDate),
			Amount:      inst.Amount,
		}
	}
	return SchedulePreviewResponse{
		StatementMonth:     ToMonthResponse(p.StatementMonth),
		TechnicalCloseDate: FormatDate(p.TechnicalCloseDate),
		Installments:       installments,
	}
}
