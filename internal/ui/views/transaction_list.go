package views

import (
	"time"

	"github.com/hance08/moneymgr/internal/logic/editlock"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/ui"
	"github.com/hance08/moneymgr/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	now time.Time
}

func NewTransactionListView(now time.Time) *TransactionListView {
	return &TransactionListView{now: now}
}

// Render prints at most limit rows in backend order. A limit of zero shows all.
func (v *TransactionListView) Render(txs []model.Transaction, filter model.Filter, limit int) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		if filter.IsActive() {
			pterm.Info.Println("Filters are active, try 'mm list' without flags")
		}
		return nil
	}

	shown := txs
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	if filter.IsActive() {
		pterm.DefaultSection.Printf("Transaction History (filtered, limit: %d)", limit)
	} else {
		pterm.DefaultSection.Printf("Transaction History (limit: %d)", limit)
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Category", "Description", "Division", "Account", "Amount", "Edit Window"},
	}

	for _, tx := range shown {
		tableData = append(tableData, []string{
			pterm.Gray(tx.ID),
			utils.FormatDate(tx.Date),
			model.CategoryIcon(tx.Category) + " " + model.CategoryLabel(tx.Category),
			tx.Description,
			model.DivisionLabel(tx.Division),
			accountCell(tx),
			ui.ColorByType(tx.Type, utils.FormatSignedINR(tx.SignedPrefix(), tx.Amount)),
			lockCell(editlock.Evaluate(tx, v.now)),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	if len(shown) < len(txs) {
		pterm.Info.Printf("Showing %d of %d transactions\n", len(shown), len(txs))
	} else {
		pterm.Info.Printf("Total: %d transactions\n", len(txs))
	}
	return nil
}
