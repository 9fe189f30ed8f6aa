package views

import (
	"github.com/hance08/moneymgr/internal/form"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/ui"
	"github.com/hance08/moneymgr/internal/utils"
	"github.com/pterm/pterm"
)

// RenderDraftSummary shows a validated payload before it is sent.
func RenderDraftSummary(mode form.Mode, in *model.TransactionInput) error {
	pterm.DefaultSection.Println(mode.String())

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Type", ui.ColorByType(in.Type, model.TypeLabel(in.Type))},
		{"Amount", utils.FormatINR(in.Amount)},
		{"Category", model.CategoryIcon(in.Category) + " " + model.CategoryLabel(in.Category)},
		{"Division", model.DivisionLabel(in.Division)},
		{"Account", model.AccountLabel(in.Account)},
	}
	if in.Type == model.TypeTransfer {
		tableData = append(tableData, []string{"Transfer To", model.AccountLabel(in.TransferTo)})
	}
	tableData = append(tableData,
		[]string{"Description", in.Description},
		[]string{"Date", utils.FormatDateTime(in.Date)},
	)

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
