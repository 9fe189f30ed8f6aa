package transaction

import (
	"fmt"

	"github.com/hance08/moneymgr/internal/app"
	"github.com/hance08/moneymgr/internal/constants"
	"github.com/hance08/moneymgr/internal/form"
	"github.com/hance08/moneymgr/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addRunner struct {
	app   *app.App
	flags *draftFlags
	cmd   *cobra.Command
}

func NewAddCmd(a *app.App) *cobra.Command {
	flags := &draftFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long: `Add an income, expense or transfer.

Without flags an interactive form is shown. With flags the transaction is
validated and sent in one go; every invalid field is reported.`,
		Example: `  # Interactive mode
  mm add

  # Quick mode with flags
  mm add --type expense --amount 100 --category food --desc "lunch"

  # Move money between accounts
  mm add -t transfer -a 5000 -C other-expense --account main --to savings -d "monthly savings"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				app:   a,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	flags.bind(cmd)

	return cmd
}

func (r *addRunner) Run() error {
	svc := r.app.Service
	now := svc.Transaction.Now()

	f := form.NewCreate(now, form.Defaults{
		Division: svc.Config.DefaultDivision(),
		Account:  svc.Config.DefaultAccount(),
	})

	hasFlags := changed(r.cmd)
	if hasFlags {
		var err error
		if f, err = r.flags.apply(r.cmd, f, now); err != nil {
			return err
		}
	} else if !ui.IsInteractive() {
		return fmt.Errorf("no flags given and no terminal for the interactive form, see 'mm add --help'")
	}

	session := &authoring{
		svc:         svc,
		interactive: !hasFlags,
		save:        svc.Transaction.Create,
		failMsg:     constants.MsgAddFailed,
	}

	tx, err := session.Run(r.cmd.Context(), f, !hasFlags)
	if err != nil || tx == nil {
		return err
	}

	pterm.Success.Printf("%s (ID: %s)\n", constants.MsgAdded, tx.ID)
	ui.Separator()
	return nil
}
