// Package export renders monthly ledger views as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	SummarySheet = "Resumen"
	CardSheet    = "Tarjeta"
	CashSheet    = "Efectivo"
)

var entryHeaders = []string{"Fecha", "Pago", "Tipo", "Categoría", "Descripción", "Tarjeta", "Cuota", "Monto"}

// FileName returns the attachment name for a month, e.g. "ledger_2025-01.xlsx".
func FileName(period domain.YearMonth) string {
	return fmt.Sprintf("ledger_%s.xlsx", period.String())
}

// WriteDashboard writes the dashboard of one month as a workbook with a
// summary sheet and one sheet each for card and cash entries.
func WriteDashboard(w io.Writer, d *domain.MonthlyDashboard) error {
	f, err := BuildDashboard(d)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// BuildDashboard builds the workbook without writing it.
func BuildDashboard(d *domain.MonthlyDashboard) (*excelize.File, error) {
	f := excelize.NewFile()

	// Rename the default sheet instead of leaving an empty "Sheet1" behind.
	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeSummary(f, d.Summary); err != nil {
		f.Close()
		return nil, err
	}

	for _, sheet := range []struct {
		name    string
		entries []domain.LedgerEntry
	}{
		{CardSheet, d.CardEntries},
		{CashSheet, d.CashEntries},
	} {
		if _, err := f.NewSheet(sheet.name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
		}
		if err := writeEntries(f, sheet.name, sheet.entries, d.CardNames); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSummary(f *excelize.File, s domain.MonthlySummary) error {
	rows := [][]any{
		{"Mes", s.Period.Label()},
		{"Ingresos", s.Income.InexactFloat64()},
		{"Gastos fijos", s.Fixed.InexactFloat64()},
		{"Débito", s.Debit.InexactFloat64()},
		{"Tarjeta", s.Card.InexactFloat64()},
		{"Total gastos", s.TotalExpenses().InexactFloat64()},
		{"Balance", s.NetBalance.InexactFloat64()},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}
	return f.SetColWidth(SummarySheet, "A", "B", 18)
}

func writeEntries(f *excelize.File, sheet string, entries []domain.LedgerEntry, cardNames map[string]string) error {
	header := make([]any, len(entryHeaders))
	for i, h := range entryHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	for i, e := range entries {
		cardName := ""
		if e.CardID != nil {
			cardName = cardNames[*e.CardID]
		}
		row := []any{
			e.TransactionDate.Format("2006-01-02"),
			e.PaymentDate.Format("2006-01-02"),
			string(e.Kind),
			e.Category,
			e.Description,
			cardName,
			fmt.Sprintf("%d/%d", e.InstallmentIndex, e.InstallmentCount),
			e.Amount.InexactFloat64(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "C", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "D", "D", 15); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "E", "E", 30)
}
