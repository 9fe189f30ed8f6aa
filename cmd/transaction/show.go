package transaction

import (
	"fmt"

	"github.com/hance08/moneymgr/internal/app"
	"github.com/hance08/moneymgr/internal/ui/views"
	"github.com/spf13/cobra"
)

type showRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &showRunner{
				app: a,
				cmd: cmd,
			}
			return runner.Run(args)
		},
	}
}

func (r *showRunner) Run(args []string) error {
	svc := r.app.Service

	tx, err := svc.Transaction.Get(r.cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	return views.RenderTransactionDetail(tx, svc.Transaction.LockStatus(*tx))
}
