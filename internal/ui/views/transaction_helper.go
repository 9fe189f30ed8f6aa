package views

import (
	"sort"

	"github.com/hance08/moneymgr/internal/logic/editlock"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/validation"
	"github.com/pterm/pterm"
)

func accountCell(tx model.Transaction) string {
	if tx.Type == model.TypeTransfer && tx.TransferTo != "" {
		return model.AccountLabel(tx.Account) + " → " + model.AccountLabel(tx.TransferTo)
	}
	return model.AccountLabel(tx.Account)
}

func lockCell(status editlock.Status) string {
	if !status.Editable {
		return pterm.Gray("🔒 " + editlock.LockedLabel)
	}
	return pterm.Yellow(status.String() + " left")
}

var fieldOrder = []validation.Field{
	validation.FieldType,
	validation.FieldAmount,
	validation.FieldCategory,
	validation.FieldDivision,
	validation.FieldAccount,
	validation.FieldTransferTo,
	validation.FieldDescription,
}

// RenderFieldErrors prints one line per invalid field in form order.
func RenderFieldErrors(errs validation.Errors) {
	if len(errs) == 0 {
		return
	}

	seen := make(map[validation.Field]bool, len(errs))
	for _, f := range fieldOrder {
		if msg, ok := errs[f]; ok {
			pterm.Error.Printf("%s: %s\n", f, msg)
			seen[f] = true
		}
	}

	var rest []string
	for f := range errs {
		if !seen[f] {
			rest = append(rest, string(f))
		}
	}
	sort.Strings(rest)
	for _, f := range rest {
		pterm.Error.Printf("%s: %s\n", f, errs[validation.Field(f)])
	}
}
