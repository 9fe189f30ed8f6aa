package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaxonomyValues(t *testing.T) {
	typ, err := ParseTransactionType(" Expense ")
	require.NoError(t, err)
	assert.Equal(t, TypeExpense, typ)

	_, err = ParseTransactionType("refund")
	assert.Error(t, err)

	c, err := ParseCategory(TypeIncome, "salary")
	require.NoError(t, err)
	assert.Equal(t, CategorySalary, c)

	_, err = ParseCategory(TypeIncome, "food")
	assert.Error(t, err)

	c, err = ParseCategory(TypeTransfer, "other-expense")
	require.NoError(t, err)
	assert.Equal(t, CategoryOtherExpense, c)

	d, err := ParseDivision("OFFICE")
	require.NoError(t, err)
	assert.Equal(t, DivisionOffice, d)

	_, err = ParseDivision("home")
	assert.Error(t, err)

	a, err := ParseAccount("credit-card")
	require.NoError(t, err)
	assert.Equal(t, AccountCreditCard, a)

	_, err = ParseAccount("wallet")
	assert.ErrorContains(t, err, "main, savings, cash, credit-card")

	p, err := ParsePeriod("year")
	require.NoError(t, err)
	assert.Equal(t, PeriodYear, p)
}

func TestCategoryLookupsFallBack(t *testing.T) {
	assert.Equal(t, "🍔", CategoryIcon(CategoryFood))
	assert.Equal(t, "Other Income", CategoryLabel(CategoryOtherIncome))
	assert.Equal(t, UnknownCategoryIcon, CategoryIcon("gifts"))
	assert.Equal(t, "gifts", CategoryLabel("gifts"))
	assert.Equal(t, "🏢 Office", DivisionLabel(DivisionOffice))
	assert.Equal(t, "Main Account", AccountLabel(AccountMain))
}

func TestTaxonomyCategoriesFor(t *testing.T) {
	tax := DefaultTaxonomy()
	assert.Len(t, tax.CategoriesFor(TypeIncome), 4)
	assert.Len(t, tax.CategoriesFor(TypeExpense), 13)
	assert.Equal(t, tax.CategoriesFor(TypeExpense), tax.CategoriesFor(TypeTransfer))
	assert.Len(t, tax.AllCategories(), 17)
	assert.False(t, tax.HasAccount(""))
}

func TestTimestampDecoding(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantValid bool
	}{
		{"mongo iso", `{"createdAt":"2025-03-14T09:00:00.000Z"}`, true},
		{"rfc3339 offset", `{"createdAt":"2025-03-14T14:30:00+05:30"}`, true},
		{"missing", `{}`, false},
		{"null", `{"createdAt":null}`, false},
		{"garbage string", `{"createdAt":"not a date"}`, false},
		{"number", `{"createdAt":1710406800}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tx Transaction
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &tx))
			assert.Equal(t, tt.wantValid, tx.CreatedAt.Valid)
			if tt.wantValid {
				assert.True(t, tx.CreatedAt.Time.Equal(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)))
			}
		})
	}
}

func TestTransactionDecoding(t *testing.T) {
	payload := `{
		"_id": "65f2c0ffee",
		"type": "transfer",
		"amount": 2500.5,
		"category": "other-expense",
		"division": "office",
		"account": "main",
		"transferTo": "savings",
		"description": "move to savings",
		"date": "2025-03-14T08:00:00.000Z",
		"createdAt": "2025-03-14T09:00:00.000Z"
	}`

	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(payload), &tx))
	assert.Equal(t, "65f2c0ffee", tx.ID)
	assert.Equal(t, TypeTransfer, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("2500.5")))
	assert.Equal(t, AccountSavings, tx.TransferTo)
	assert.Equal(t, "-", tx.SignedPrefix())
	assert.False(t, tx.UpdatedAt.Valid)
}

func TestDraftInput(t *testing.T) {
	date := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	d := Draft{
		Type:        TypeExpense,
		Amount:      " 99.90 ",
		Category:    CategoryFuel,
		Division:    DivisionOffice,
		Account:     AccountCash,
		TransferTo:  AccountSavings,
		Description: "  petrol ",
		Date:        date,
	}

	in, err := d.Input()
	require.NoError(t, err)
	assert.True(t, in.Amount.Equal(decimal.RequireFromString("99.9")))
	assert.Equal(t, "petrol", in.Description)
	assert.Empty(t, in.TransferTo, "only transfers carry a destination")

	d.Amount = "lots"
	_, err = d.Input()
	assert.Error(t, err)
}

func TestDraftFromTransaction(t *testing.T) {
	tx := Transaction{
		ID:          "a1",
		Type:        TypeIncome,
		Amount:      decimal.RequireFromString("1200"),
		Category:    CategorySalary,
		Division:    DivisionOffice,
		Account:     AccountMain,
		Description: "march salary",
	}
	d := DraftFromTransaction(tx)
	assert.Equal(t, "1200", d.Amount)
	assert.Equal(t, TypeIncome, d.Type)
	assert.Equal(t, "march salary", d.Description)
}

func TestFilter(t *testing.T) {
	assert.False(t, Filter{}.IsActive())

	f := Filter{Type: TypeExpense, Account: AccountCash, StartDate: "2025-01-01", EndDate: "2025-01-31"}
	require.NoError(t, f.Validate())
	assert.True(t, f.IsActive())
	assert.Equal(t, "account=cash&endDate=2025-01-31&startDate=2025-01-01&type=expense", f.Query().Encode())

	assert.Error(t, Filter{Category: "gifts"}.Validate())
	assert.Error(t, Filter{Division: "home"}.Validate())
	assert.Error(t, Filter{StartDate: "01/01/2025"}.Validate())
	assert.Error(t, Filter{StartDate: "2025-02-01", EndDate: "2025-01-01"}.Validate())
}
