package views

import (
	"fmt"

	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/service"
	"github.com/hance08/moneymgr/internal/ui"
	"github.com/hance08/moneymgr/internal/utils"
	"github.com/pterm/pterm"
)

func RenderDashboard(d *model.Dashboard, filter model.Filter) error {
	title := "Dashboard · " + periodLabel(d.Period)
	if filter.IsActive() {
		title += " (filtered)"
	}
	ui.PrintL1Title("%s", title)
	pterm.Println()

	if err := renderSummaryCards(d.Summary); err != nil {
		return err
	}
	if err := renderTopCategories(d.Categories); err != nil {
		return err
	}
	return renderMonthly(d.Year, d.Monthly)
}

func renderSummaryCards(s model.Summary) error {
	balance := pterm.Green(utils.FormatINR(s.Balance))
	if s.Balance.IsNegative() {
		balance = pterm.Red(utils.FormatINR(s.Balance))
	}

	panels := pterm.Panels{{
		{Data: pterm.DefaultBox.WithTitle("Total Income").Sprint(pterm.Green(utils.FormatINR(s.TotalIncome)))},
		{Data: pterm.DefaultBox.WithTitle("Total Expense").Sprint(pterm.Red(utils.FormatINR(s.TotalExpense)))},
		{Data: pterm.DefaultBox.WithTitle("Balance").Sprint(balance)},
	}}

	return pterm.DefaultPanel.WithPanels(panels).WithPadding(2).Render()
}

func renderTopCategories(stats []model.CategoryStat) error {
	ui.PrintL2Title("Top Expense Categories")

	top := service.TopCategories(stats, service.TopCategoryCount)
	if len(top) == 0 {
		pterm.Info.Println("No expenses in this period")
		return nil
	}

	tableData := pterm.TableData{{"Category", "Total", "Transactions"}}
	for _, c := range top {
		tableData = append(tableData, []string{
			model.CategoryIcon(c.Category) + " " + model.CategoryLabel(c.Category),
			pterm.Red(utils.FormatINR(c.TotalAmount)),
			fmt.Sprintf("%d", c.Count),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func renderMonthly(year int, monthly []model.MonthlyStat) error {
	pterm.Println()
	ui.PrintL2Title("Monthly Overview %d", year)

	if len(monthly) == 0 {
		pterm.Info.Println("No data for this year")
		return nil
	}

	income := pterm.NewStyle(pterm.FgGreen)
	expense := pterm.NewStyle(pterm.FgRed)

	var bars pterm.Bars
	for _, m := range monthly {
		name := utils.MonthName(m.Month)
		bars = append(bars,
			pterm.Bar{Label: name + " in", Value: int(m.Income.Round(0).IntPart()), Style: income},
			pterm.Bar{Label: name + " out", Value: int(m.Expense.Round(0).IntPart()), Style: expense},
		)
	}

	return pterm.DefaultBarChart.
		WithBars(bars).
		WithHorizontal().
		WithShowValue().
		WithWidth(60).
		Render()
}

func periodLabel(p model.Period) string {
	for _, o := range model.Periods {
		if o.Value == string(p) {
			return o.Label
		}
	}
	return string(p)
}
