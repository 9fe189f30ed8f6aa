package transaction

import (
	"testing"
	"time"

	"github.com/hance08/moneymgr/internal/form"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/validation"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 14, 30, 0, 0, time.UTC)

func parsedDraftCmd(t *testing.T, args ...string) (*cobra.Command, *draftFlags) {
	t.Helper()
	flags := &draftFlags{}
	cmd := &cobra.Command{Use: "add"}
	flags.bind(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, flags
}

func TestDraftFlags_Apply(t *testing.T) {
	cmd, flags := parsedDraftCmd(t,
		"--type", " Expense ", "--amount", "₹1,250", "--category", "FOOD",
		"--desc", "team lunch", "--date", "2025-03-10")
	require.True(t, changed(cmd))

	f, err := flags.apply(cmd, form.NewCreate(now, form.Defaults{}), now)
	require.NoError(t, err)

	assert.Equal(t, model.TypeExpense, f.Draft.Type)
	assert.Equal(t, "1250", f.Draft.Amount)
	assert.Equal(t, model.CategoryFood, f.Draft.Category)
	assert.Equal(t, model.DivisionPersonal, f.Draft.Division)
	assert.Equal(t, model.AccountMain, f.Draft.Account)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC), f.Draft.Date)

	_, in := f.Submit(validation.NewTransactionValidator(model.DefaultTaxonomy()))
	require.NotNil(t, in)
}

func TestDraftFlags_ApplyKeepsUnsetFieldsOnEdit(t *testing.T) {
	tx := model.Transaction{
		ID: "a", Type: model.TypeIncome, Category: model.CategorySalary,
		Division: model.DivisionOffice, Account: model.AccountSavings,
		Description: "march payout", Date: now,
	}

	cmd, flags := parsedDraftCmd(t, "--desc", "march salary")
	f, err := flags.apply(cmd, form.NewEdit(tx), now)
	require.NoError(t, err)

	assert.Equal(t, "march salary", f.Draft.Description)
	assert.Equal(t, model.CategorySalary, f.Draft.Category)
	assert.Equal(t, model.AccountSavings, f.Draft.Account)
}

func TestDraftFlags_UnknownValuesReachTheValidator(t *testing.T) {
	cmd, flags := parsedDraftCmd(t,
		"--type", "transfer", "--amount", "0", "--category", "food",
		"--account", "main", "--to", "main", "--desc", "x")

	f, err := flags.apply(cmd, form.NewCreate(now, form.Defaults{}), now)
	require.NoError(t, err)

	f, in := f.Submit(validation.NewTransactionValidator(model.DefaultTaxonomy()))
	assert.Nil(t, in)
	assert.Equal(t, validation.MsgAmount, f.Errors[validation.FieldAmount])
	assert.Equal(t, validation.MsgTransferToSame, f.Errors[validation.FieldTransferTo])
}

func TestDraftFlags_BadDate(t *testing.T) {
	cmd, flags := parsedDraftCmd(t, "--date", "14/03/2025")
	_, err := flags.apply(cmd, form.NewCreate(now, form.Defaults{}), now)
	require.Error(t, err)
}

func TestChanged(t *testing.T) {
	cmd, _ := parsedDraftCmd(t)
	assert.False(t, changed(cmd))
}

func TestFilterFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   FilterFlags
		want    model.Filter
		wantErr bool
	}{
		{name: "empty", flags: FilterFlags{}, want: model.Filter{}},
		{
			name:  "all fields",
			flags: FilterFlags{Type: "Expense", Category: "Food", Division: "office", Account: "cash", Start: "2025-01-01", End: "2025-01-31"},
			want: model.Filter{
				Type: model.TypeExpense, Category: model.CategoryFood, Division: model.DivisionOffice,
				Account: model.AccountCash, StartDate: "2025-01-01", EndDate: "2025-01-31",
			},
		},
		{name: "unknown type", flags: FilterFlags{Type: "refund"}, wantErr: true},
		{name: "unknown category", flags: FilterFlags{Category: "yacht"}, wantErr: true},
		{name: "unknown account", flags: FilterFlags{Account: "wallet"}, wantErr: true},
		{name: "reversed range", flags: FilterFlags{Start: "2025-02-01", End: "2025-01-01"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.flags.Filter()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDraftFlags_TransferExample(t *testing.T) {
	cmd, flags := parsedDraftCmd(t,
		"-t", "transfer", "-a", "5000", "-C", "other-expense",
		"--account", "main", "--to", "savings", "-d", "monthly savings")

	f, err := flags.apply(cmd, form.NewCreate(now, form.Defaults{}), now)
	require.NoError(t, err)
	assert.Equal(t, model.TypeTransfer, f.Draft.Type)
	assert.Equal(t, model.CategoryOtherExpense, f.Draft.Category)
	assert.Equal(t, model.AccountSavings, f.Draft.TransferTo)

	_, in := f.Submit(validation.NewTransactionValidator(model.DefaultTaxonomy()))
	require.NotNil(t, in)
}
