package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hance08/moneymgr/internal/model"
)

// Field names a draft input that can carry an error.
type Field string

const (
	FieldType        Field = "type"
	FieldAmount      Field = "amount"
	FieldCategory    Field = "category"
	FieldDivision    Field = "division"
	FieldAccount     Field = "account"
	FieldTransferTo  Field = "transferTo"
	FieldDescription Field = "description"
)

const (
	MsgAmount              = "Amount must be greater than 0"
	MsgCategoryRequired    = "Please select a category"
	MsgDescriptionRequired = "Description is required"
	MsgTransferToRequired  = "Please select transfer destination"
	MsgTransferToSame      = "Transfer destination must differ from source account"
	MsgTypeRequired        = "Please select a transaction type"
	MsgDivisionRequired    = "Please select a division"
	MsgAccountRequired     = "Please select an account"
)

var MsgDescriptionTooLong = fmt.Sprintf("Description must be %d characters or less", model.MaxDescriptionLen)

// Errors maps each offending field to a user-facing message.
// An empty map means the draft is valid.
type Errors map[Field]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[Field(f)]))
	}
	return strings.Join(parts, "; ")
}

func (e Errors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Err returns nil for an empty set so callers can use the usual err != nil check.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// TransactionValidator checks drafts against a taxonomy.
type TransactionValidator struct {
	taxonomy model.Taxonomy
}

func NewTransactionValidator(taxonomy model.Taxonomy) *TransactionValidator {
	return &TransactionValidator{taxonomy: taxonomy}
}

// Validate evaluates every rule and collects all failures.
func (v *TransactionValidator) Validate(d model.Draft) Errors {
	errs := Errors{}

	typeKnown := d.Type.IsValid()
	if !typeKnown {
		errs[FieldType] = MsgTypeRequired
	}

	if err := ValidateAmount(d.Amount); err != nil {
		errs[FieldAmount] = MsgAmount
	}

	switch {
	case d.Category == "":
		errs[FieldCategory] = MsgCategoryRequired
	case typeKnown && !v.taxonomy.HasCategory(d.Type, d.Category):
		errs[FieldCategory] = fmt.Sprintf("Please select a valid %s category", d.Type)
	}

	if !v.taxonomy.HasDivision(d.Division) {
		errs[FieldDivision] = MsgDivisionRequired
	}

	if !v.taxonomy.HasAccount(d.Account) {
		errs[FieldAccount] = MsgAccountRequired
	}

	if err := ValidateDescription(d.Description); err != nil {
		errs[FieldDescription] = err.Error()
	}

	if d.Type == model.TypeTransfer {
		switch {
		case d.TransferTo == "" || !v.taxonomy.HasAccount(d.TransferTo):
			errs[FieldTransferTo] = MsgTransferToRequired
		case d.TransferTo == d.Account:
			errs[FieldTransferTo] = MsgTransferToSame
		}
	}

	return errs
}

// ValidateAmount accepts only numeric input strictly above zero.
// The signature matches huh input validators.
func ValidateAmount(s string) error {
	amount, err := model.ParseAmount(s)
	if err != nil || !amount.IsPositive() {
		return errors.New(MsgAmount)
	}
	return nil
}

// ValidateDescription requires non-blank text of at most MaxDescriptionLen characters.
func ValidateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New(MsgDescriptionRequired)
	}
	if utf8.RuneCountInString(s) > model.MaxDescriptionLen {
		return errors.New(MsgDescriptionTooLong)
	}
	return nil
}

// Without returns a copy of e lacking f.
func (e Errors) Without(f Field) Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		if k != f {
			out[k] = v
		}
	}
	return out
}
