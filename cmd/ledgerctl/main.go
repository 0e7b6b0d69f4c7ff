// Command ledgerctl prints the installment schedule of a card purchase
// without touching the database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/SscSPs/statement_ledger/internal/cli"
	"github.com/SscSPs/statement_ledger/internal/core/services"
	"github.com/SscSPs/statement_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

type Params struct {
	Date         string `descr:"Purchase date (YYYY-MM-DD)" positional:"true"`
	ClosingDay   int    `descr:"Card statement closing day (1-31)" short:"c"`
	Amount       string `descr:"Total amount of the purchase, e.g. 300.00" short:"a"`
	Installments int    `descr:"Number of monthly installments" short:"n" default:"1"`
}

func main() {
	boa.NewCmdT[Params]("ledgerctl").
		WithShort("Preview the installment schedule of a card purchase").
		WithLong("Resolves the statement a purchase lands on, its close date and the payment date of every installment. Payment is due ten days after the statement closes.").
		WithRunFunc(func(params *Params) {
			amount, err := decimal.NewFromString(params.Amount)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid amount %q\n", params.Amount)
				os.Exit(1)
			}

			// Preview never reaches the repositories.
			ledger := services.NewLedgerService(nil, nil)
			plan, err := ledger.PreviewSchedule(context.Background(), dto.SchedulePreviewRequest{
				PurchaseDate: params.Date,
				ClosingDay:   params.ClosingDay,
				Amount:       amount,
				Installments: params.Installments,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			cli.RenderPlan(os.Stdout, plan)
		}).
		Run()
}
