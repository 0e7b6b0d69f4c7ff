// Package cli renders ledger data for terminal output.
package cli

import (
	"fmt"
	"io"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/core/schedule"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

// RenderPlan prints the statement header and one row per installment.
func RenderPlan(w io.Writer, plan *schedule.Plan) {
	fmt.Fprintf(w, "Statement: %s (closes %s)\n\n",
		plan.StatementMonth.Label(), plan.TechnicalCloseDate.Format("2006-01-02"))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Installment", "Payment date", "Month", "Amount"})

	total := decimal.Zero
	for _, inst := range plan.Installments {
		total = total.Add(inst.Amount)
		t.AppendRow(table.Row{
			inst.Index,
			fmt.Sprintf("%d/%d", inst.Index, len(plan.Installments)),
			inst.PaymentDate.Format("2006-01-02"),
			domain.YearMonthOf(inst.PaymentDate).Label(),
			inst.Amount.StringFixed(domain.AmountPlaces),
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{"", "", "", "Total", total.StringFixed(domain.AmountPlaces)})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	t.Render()
}
