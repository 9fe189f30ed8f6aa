package transaction

import (
	"context"
	"fmt"

	"github.com/hance08/moneymgr/internal/app"
	"github.com/hance08/moneymgr/internal/constants"
	"github.com/hance08/moneymgr/internal/form"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/ui"
	"github.com/hance08/moneymgr/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editRunner struct {
	app   *app.App
	flags *draftFlags
	cmd   *cobra.Command
}

func NewEditCmd(a *app.App) *cobra.Command {
	flags := &draftFlags{}

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit a transaction created less than 12 hours ago.

Without flags the interactive form opens pre-filled. With flags only the given
fields change; the rest keep their current values.`,
		Example: `  mm edit 65f1c0a2e4b0 --amount 120
  mm edit 65f1c0a2e4b0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &editRunner{
				app:   a,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args)
		},
	}
	flags.bind(cmd)

	return cmd
}

func (r *editRunner) Run(args []string) error {
	svc := r.app.Service
	ctx := r.cmd.Context()

	tx, err := svc.Transaction.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	status := svc.Transaction.LockStatus(*tx)
	if !status.Editable {
		pterm.Error.Println(constants.MsgLocked)
		return nil
	}

	pterm.DefaultSection.Printf("Editing Transaction %s (%s left)", tx.ID, status)
	if err := views.RenderTransactionDetail(tx, status); err != nil {
		return err
	}

	f := form.NewEdit(*tx)

	hasFlags := changed(r.cmd)
	if hasFlags {
		if f, err = r.flags.apply(r.cmd, f, svc.Transaction.Now()); err != nil {
			return err
		}
	} else if !ui.IsInteractive() {
		return fmt.Errorf("no flags given and no terminal for the interactive form, see 'mm edit --help'")
	}

	original := *tx
	session := &authoring{
		svc:         svc,
		interactive: !hasFlags,
		save: func(ctx context.Context, d model.Draft) (*model.Transaction, error) {
			return svc.Transaction.Update(ctx, original, d)
		},
		failMsg: constants.MsgUpdateFailed,
	}

	updated, err := session.Run(ctx, f, !hasFlags)
	if err != nil || updated == nil {
		return err
	}

	pterm.Success.Println(constants.MsgUpdated)
	ui.Separator()
	return nil
}
