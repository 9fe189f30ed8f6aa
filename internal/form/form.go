// Package form holds the authoring state for creating or editing a transaction.
//
// A Form is a value. Every operation returns a new Form and leaves the
// receiver untouched, so the interactive session can keep the previous
// state around while a request is in flight.
package form

import (
	"time"

	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/validation"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "Edit Transaction"
	}
	return "Add Transaction"
}

// Defaults seeds a blank create draft.
type Defaults struct {
	Division model.Division
	Account  model.Account
}

type Form struct {
	Mode Mode
	// Editing is the record being changed; nil in create mode.
	Editing *model.Transaction
	Tab     model.TransactionType
	Draft   model.Draft
	Errors  validation.Errors
	// SubmitError holds the last backend failure message.
	SubmitError string
}

// NewCreate starts a blank income draft dated now.
func NewCreate(now time.Time, defaults Defaults) Form {
	division := defaults.Division
	if division == "" {
		division = model.DivisionPersonal
	}
	account := defaults.Account
	if account == "" {
		account = model.AccountMain
	}

	return Form{
		Mode: ModeCreate,
		Tab:  model.TypeIncome,
		Draft: model.Draft{
			Type:     model.TypeIncome,
			Division: division,
			Account:  account,
			Date:     now,
		},
		Errors: validation.Errors{},
	}
}

// NewEdit copies tx into a draft and opens the tab matching its type.
func NewEdit(tx model.Transaction) Form {
	editing := tx
	return Form{
		Mode:    ModeEdit,
		Editing: &editing,
		Tab:     tx.Type,
		Draft:   model.DraftFromTransaction(tx),
		Errors:  validation.Errors{},
	}
}

// WithType switches the type tab. The category is cleared because the valid
// set depends on the type; every other field is kept.
func (f Form) WithType(t model.TransactionType) Form {
	f.Tab = t
	f.Draft.Type = t
	f.Draft.Category = ""
	f.Errors = f.Errors.Without(validation.FieldCategory)
	return f
}

func (f Form) WithAmount(amount string) Form {
	f.Draft.Amount = amount
	f.Errors = f.Errors.Without(validation.FieldAmount)
	return f
}

func (f Form) WithCategory(c model.Category) Form {
	f.Draft.Category = c
	f.Errors = f.Errors.Without(validation.FieldCategory)
	return f
}

func (f Form) WithDivision(d model.Division) Form {
	f.Draft.Division = d
	f.Errors = f.Errors.Without(validation.FieldDivision)
	return f
}

func (f Form) WithAccount(a model.Account) Form {
	f.Draft.Account = a
	f.Errors = f.Errors.Without(validation.FieldAccount)
	return f
}

func (f Form) WithTransferTo(a model.Account) Form {
	f.Draft.TransferTo = a
	f.Errors = f.Errors.Without(validation.FieldTransferTo)
	return f
}

func (f Form) WithDescription(desc string) Form {
	f.Draft.Description = desc
	f.Errors = f.Errors.Without(validation.FieldDescription)
	return f
}

func (f Form) WithDate(date time.Time) Form {
	f.Draft.Date = date
	return f
}

// Submit validates the draft. It returns the payload only when the draft is
// valid; otherwise the returned form carries the field errors.
func (f Form) Submit(v *validation.TransactionValidator) (Form, *model.TransactionInput) {
	errs := v.Validate(f.Draft)
	f.Errors = errs
	f.SubmitError = ""
	if len(errs) > 0 {
		return f, nil
	}

	in, err := f.Draft.Input()
	if err != nil {
		f.Errors = validation.Errors{validation.FieldAmount: validation.MsgAmount}
		return f, nil
	}
	return f, &in
}

// Failed records a backend rejection and keeps the draft intact.
func (f Form) Failed(message string) Form {
	f.SubmitError = message
	return f
}
