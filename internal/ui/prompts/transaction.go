package prompts

import (
	"errors"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/moneymgr/internal/constants"
	"github.com/hance08/moneymgr/internal/form"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/utils"
	"github.com/hance08/moneymgr/internal/validation"
)

// PromptTransactionType asks for the type tab, starting on current.
func PromptTransactionType(current model.TransactionType) (model.TransactionType, error) {
	selected := current

	err := huh.NewSelect[model.TransactionType]().
		Title("Choose the transaction type:").
		Options(typedOptions[model.TransactionType](model.TransactionTypes)...).
		Value(&selected).
		Run()

	return selected, err
}

// PromptDraft walks the user through every field of f and returns the
// updated form. Switching the type clears the category, as on the form tabs.
func PromptDraft(f form.Form, taxonomy model.Taxonomy, now time.Time) (form.Form, error) {
	txType, err := PromptTransactionType(f.Draft.Type)
	if err != nil {
		return f, err
	}
	if txType != f.Draft.Type || f.Draft.Type == "" {
		f = f.WithType(txType)
	}

	var (
		amount      = f.Draft.Amount
		category    = f.Draft.Category
		division    = f.Draft.Division
		account     = f.Draft.Account
		transferTo  = f.Draft.TransferTo
		description = f.Draft.Description
		date        = f.Draft.Date.Local().Format(constants.DateTimeFormat)
	)

	details := huh.NewGroup(
		huh.NewInput().
			Title("Amount (₹):").
			Value(&amount).
			Validate(func(s string) error {
				return validation.ValidateAmount(utils.ParseAmountInput(s))
			}),
		huh.NewSelect[model.Category]().
			Title("Category:").
			Options(typedOptions[model.Category](taxonomy.CategoriesFor(txType))...).
			Value(&category).
			Height(10),
		huh.NewSelect[model.Division]().
			Title("Division:").
			Options(typedOptions[model.Division](taxonomy.Divisions)...).
			Value(&division),
		huh.NewSelect[model.Account]().
			Title("Account:").
			Options(typedOptions[model.Account](taxonomy.Accounts)...).
			Value(&account),
	)

	transfer := huh.NewGroup(
		huh.NewSelect[model.Account]().
			Title("Transfer to:").
			Options(typedOptions[model.Account](taxonomy.Accounts)...).
			Value(&transferTo).
			Validate(func(a model.Account) error {
				if a == account {
					return errors.New(validation.MsgTransferToSame)
				}
				return nil
			}),
	).WithHideFunc(func() bool { return txType != model.TypeTransfer })

	notes := huh.NewGroup(
		huh.NewInput().
			Title("Description:").
			CharLimit(model.MaxDescriptionLen).
			Value(&description).
			Validate(validation.ValidateDescription),
		huh.NewInput().
			Title("Date:").
			Description("YYYY-MM-DD or YYYY-MM-DD HH:MM, 'today' or 'yesterday'").
			Value(&date).
			Validate(func(s string) error {
				_, err := utils.ParseDateInput(s, now)
				return err
			}),
	)

	if err := huh.NewForm(details, transfer, notes).Run(); err != nil {
		return f, err
	}

	when, err := utils.ParseDateInput(date, now)
	if err != nil {
		return f, err
	}

	f = f.WithAmount(utils.ParseAmountInput(amount)).
		WithCategory(category).
		WithDivision(division).
		WithAccount(account).
		WithDescription(description).
		WithDate(when)
	if txType == model.TypeTransfer {
		f = f.WithTransferTo(transferTo)
	}

	return f, nil
}

// PromptPickTransaction lets the user choose one row of txs.
func PromptPickTransaction(message string, txs []model.Transaction) (*model.Transaction, error) {
	if len(txs) == 0 {
		return nil, errors.New("no transactions to choose from")
	}

	opts := make([]huh.Option[int], 0, len(txs))
	for i, tx := range txs {
		label := utils.FormatDate(tx.Date) + "  " +
			tx.SignedPrefix() + utils.FormatINR(tx.Amount) + "  " +
			model.CategoryIcon(tx.Category) + " " + tx.Description
		opts = append(opts, huh.NewOption(label, i))
	}

	var idx int
	err := huh.NewSelect[int]().
		Title(message).
		Options(opts...).
		Value(&idx).
		Height(15).
		Run()
	if err != nil {
		return nil, err
	}

	tx := txs[idx]
	return &tx, nil
}
