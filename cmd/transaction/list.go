package transaction

import (
	"github.com/hance08/moneymgr/internal/app"
	"github.com/hance08/moneymgr/internal/constants"
	"github.com/hance08/moneymgr/internal/errhandler"
	"github.com/hance08/moneymgr/internal/ui/views"
	"github.com/spf13/cobra"
)

type listRunner struct {
	app   *app.App
	flags *FilterFlags
	limit int
	cmd   *cobra.Command
}

func NewListCmd(a *app.App) *cobra.Command {
	runner := &listRunner{app: a, flags: &FilterFlags{}}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transaction history",
		Long: `List transactions from the backend, newest first.

Each row shows the remaining edit window, or Locked once 12 hours have passed
since the transaction was created.`,
		Example: `  # Recent transactions
  mm list

  # Office expenses in January
  mm list --type expense --division office --start 2025-01-01 --end 2025-01-31

  # Show more rows
  mm ls --limit 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.cmd = cmd
			return runner.Run()
		},
	}

	runner.flags.Bind(cmd)
	cmd.Flags().IntVarP(&runner.limit, "limit", "l", 0, "Maximum number of transactions to display (default from config)")

	return cmd
}

func (r *listRunner) Run() error {
	svc := r.app.Service

	filter, err := r.flags.Filter()
	if err != nil {
		return err
	}

	limit := r.limit
	if limit <= 0 {
		limit = svc.Config.Defaults.Limit
	}

	txs, err := svc.Transaction.List(r.cmd.Context(), filter)
	if err != nil {
		if errhandler.IsInterrupt(err) {
			return err
		}
		return errhandler.Wrap(err, constants.MsgLoadFailed)
	}

	return views.NewTransactionListView(svc.Transaction.Now()).Render(txs, filter, limit)
}
