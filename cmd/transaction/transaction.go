package transaction

import (
	"github.com/hance08/moneymgr/internal/app"
	"github.com/spf13/cobra"
)

// NewTransactionCmd groups the transaction commands under one parent.
// The same commands are also registered at the top level.
func NewTransactionCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Manage transactions: add, list, view details, edit or delete within the 12-hour edit window.",
	}

	cmd.AddCommand(NewAddCmd(a))
	cmd.AddCommand(NewListCmd(a))
	cmd.AddCommand(NewShowCmd(a))
	cmd.AddCommand(NewEditCmd(a))
	cmd.AddCommand(NewDeleteCmd(a))

	return cmd
}
