package transaction

import (
	"fmt"

	"github.com/hance08/moneymgr/internal/app"
	"github.com/hance08/moneymgr/internal/constants"
	"github.com/hance08/moneymgr/internal/errhandler"
	"github.com/hance08/moneymgr/internal/ui"
	"github.com/hance08/moneymgr/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteRunner struct {
	app *app.App
	yes bool
	cmd *cobra.Command
}

func NewDeleteCmd(a *app.App) *cobra.Command {
	runner := &deleteRunner{app: a}

	cmd := &cobra.Command{
		Use:     "delete <transaction-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Long:    `Delete a transaction created less than 12 hours ago. This action cannot be undone.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.cmd = cmd
			return runner.Run(args)
		},
	}
	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *deleteRunner) Run(args []string) error {
	svc := r.app.Service
	ctx := r.cmd.Context()

	tx, err := svc.Transaction.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	if !svc.Transaction.LockStatus(*tx).Editable {
		pterm.Error.Println(constants.MsgLocked)
		return nil
	}

	if err := views.RenderTransactionDeletePreview(tx); err != nil {
		return err
	}

	if !r.yes {
		if !ui.IsInteractive() {
			return fmt.Errorf("refusing to delete without confirmation, pass --yes")
		}
		confirmation, err := ui.Confirm("Do you want to delete this transaction?")
		if err != nil {
			return err
		}
		if !confirmation {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := svc.Transaction.Delete(ctx, *tx); err != nil {
		if errhandler.IsInterrupt(err) {
			return err
		}
		return errhandler.Wrap(err, constants.MsgDeleteFailed)
	}

	pterm.Success.Println(constants.MsgDeleted)
	ui.Separator()
	return nil
}
