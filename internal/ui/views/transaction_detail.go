package views

import (
	"github.com/hance08/moneymgr/internal/logic/editlock"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/ui"
	"github.com/hance08/moneymgr/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(tx *model.Transaction, status editlock.Status) error {
	createdAt := "-"
	if tx.CreatedAt.Valid {
		createdAt = utils.FormatDateTime(tx.CreatedAt.Time)
	}

	lock := pterm.Green("Editable, " + status.String() + " left")
	if !status.Editable {
		lock = pterm.Red(editlock.LockedLabel)
	}

	pterm.Println()
	ui.PrintL2Title("Transaction Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", tx.ID},
		{"Type", ui.ColorByType(tx.Type, model.TypeLabel(tx.Type))},
		{"Amount", ui.ColorByType(tx.Type, utils.FormatSignedINR(tx.SignedPrefix(), tx.Amount))},
		{"Category", model.CategoryIcon(tx.Category) + " " + model.CategoryLabel(tx.Category)},
		{"Division", model.DivisionLabel(tx.Division)},
		{"Account", accountCell(*tx)},
		{"Description", tx.Description},
		{"Date", utils.FormatDateTime(tx.Date)},
		{"Created", createdAt},
		{"Edit Window", lock},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
