package views

import (
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/ui"
	"github.com/pterm/pterm"
)

type TaxonomyView struct{}

func NewTaxonomyView() *TaxonomyView {
	return &TaxonomyView{}
}

func (v *TaxonomyView) Render(t model.Taxonomy) error {
	sections := []struct {
		title   string
		options []model.Option
		color   func(a ...interface{}) string
	}{
		{"Income Categories", t.IncomeCategories, pterm.Green},
		{"Expense Categories", t.ExpenseCategories, pterm.Red},
		{"Divisions", t.Divisions, pterm.Cyan},
		{"Accounts", t.Accounts, pterm.Blue},
	}

	for _, s := range sections {
		ui.PrintL2Title("%s", s.title)
		tableData := pterm.TableData{{"Key", "Label"}}
		for _, o := range s.options {
			label := o.Label
			if o.Icon != "" {
				label = o.Icon + " " + label
			}
			tableData = append(tableData, []string{s.color(o.Value), label})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
			return err
		}
		pterm.Println()
	}

	pterm.Info.Println("Transfers use the expense category list")
	return nil
}
