package cmd

import (
	"github.com/hance08/moneymgr/cmd/transaction"
	"github.com/hance08/moneymgr/internal/app"
	"github.com/hance08/moneymgr/internal/constants"
	"github.com/hance08/moneymgr/internal/errhandler"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/ui/views"
	"github.com/spf13/cobra"
)

type dashboardRunner struct {
	app    *app.App
	period string
	flags  *transaction.FilterFlags
	cmd    *cobra.Command
}

func NewDashboardCmd(a *app.App) *cobra.Command {
	runner := &dashboardRunner{app: a, flags: &transaction.FilterFlags{}}

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show income, expenses and balance",
		Long: `Show totals for the selected period, the top expense categories and
the monthly income/expense chart for the current year.`,
		Example: `  mm dashboard
  mm dash --period year --division office`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.cmd = cmd
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&runner.period, "period", "p", "", "week, month or year (default from config)")
	runner.flags.Bind(cmd)

	return cmd
}

func (r *dashboardRunner) Run() error {
	svc := r.app.Service

	period := svc.Config.DefaultPeriod()
	if r.period != "" {
		p, err := model.ParsePeriod(r.period)
		if err != nil {
			return err
		}
		period = p
	}

	filter, err := r.flags.Filter()
	if err != nil {
		return err
	}

	dash, err := svc.Dashboard.Load(r.cmd.Context(), period, filter)
	if err != nil {
		if errhandler.IsInterrupt(err) {
			return err
		}
		return errhandler.Wrap(err, constants.MsgStatsFailed)
	}

	return views.RenderDashboard(dash, filter)
}
