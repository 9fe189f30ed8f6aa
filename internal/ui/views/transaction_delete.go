package views

import (
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDeletePreview(tx *model.Transaction) error {
	pterm.Warning.Printf("About to delete transaction %s:\n", tx.ID)

	deletionInfo := pterm.TableData{
		{"Date", utils.FormatDate(tx.Date)},
		{"Category", model.CategoryIcon(tx.Category) + " " + model.CategoryLabel(tx.Category)},
		{"Description", tx.Description},
		{"Amount", utils.FormatSignedINR(tx.SignedPrefix(), tx.Amount)},
	}

	if err := pterm.DefaultTable.WithData(deletionInfo).Render(); err != nil {
		return err
	}
	pterm.Warning.Println("This action cannot be undone!")
	return nil
}
