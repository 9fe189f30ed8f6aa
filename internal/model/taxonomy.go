package model

import (
	"fmt"
	"strings"
)

type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

type Category string

const (
	CategorySalary      Category = "salary"
	CategoryBusiness    Category = "business"
	CategoryInvestment  Category = "investment"
	CategoryOtherIncome Category = "other-income"

	CategoryFuel           Category = "fuel"
	CategoryMovie          Category = "movie"
	CategoryFood           Category = "food"
	CategoryLoan           Category = "loan"
	CategoryMedical        Category = "medical"
	CategoryShopping       Category = "shopping"
	CategoryUtilities      Category = "utilities"
	CategoryRent           Category = "rent"
	CategoryTransportation Category = "transportation"
	CategoryEntertainment  Category = "entertainment"
	CategoryEducation      Category = "education"
	CategoryTravel         Category = "travel"
	CategoryOtherExpense   Category = "other-expense"
)

type Division string

const (
	DivisionOffice   Division = "office"
	DivisionPersonal Division = "personal"
)

type Account string

const (
	AccountMain       Account = "main"
	AccountSavings    Account = "savings"
	AccountCash       Account = "cash"
	AccountCreditCard Account = "credit-card"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Option is one selectable entry of a taxonomy table.
type Option struct {
	Value string
	Label string
	Icon  string
}

// Taxonomy holds the fixed tables a draft is checked against.
type Taxonomy struct {
	IncomeCategories  []Option
	ExpenseCategories []Option
	Divisions         []Option
	Accounts          []Option
}

// UnknownCategoryIcon is shown for categories outside the taxonomy.
const UnknownCategoryIcon = "📝"

var (
	IncomeCategories = []Option{
		{Value: string(CategorySalary), Label: "Salary", Icon: "💰"},
		{Value: string(CategoryBusiness), Label: "Business", Icon: "💼"},
		{Value: string(CategoryInvestment), Label: "Investment", Icon: "📈"},
		{Value: string(CategoryOtherIncome), Label: "Other Income", Icon: "💵"},
	}

	ExpenseCategories = []Option{
		{Value: string(CategoryFuel), Label: "Fuel", Icon: "⛽"},
		{Value: string(CategoryMovie), Label: "Movie", Icon: "🎬"},
		{Value: string(CategoryFood), Label: "Food", Icon: "🍔"},
		{Value: string(CategoryLoan), Label: "Loan", Icon: "🏦"},
		{Value: string(CategoryMedical), Label: "Medical", Icon: "🏥"},
		{Value: string(CategoryShopping), Label: "Shopping", Icon: "🛍️"},
		{Value: string(CategoryUtilities), Label: "Utilities", Icon: "💡"},
		{Value: string(CategoryRent), Label: "Rent", Icon: "🏠"},
		{Value: string(CategoryTransportation), Label: "Transportation", Icon: "🚗"},
		{Value: string(CategoryEntertainment), Label: "Entertainment", Icon: "🎮"},
		{Value: string(CategoryEducation), Label: "Education", Icon: "📚"},
		{Value: string(CategoryTravel), Label: "Travel", Icon: "✈️"},
		{Value: string(CategoryOtherExpense), Label: "Other Expense", Icon: "💳"},
	}

	Divisions = []Option{
		{Value: string(DivisionOffice), Label: "Office", Icon: "🏢"},
		{Value: string(DivisionPersonal), Label: "Personal", Icon: "👤"},
	}

	Accounts = []Option{
		{Value: string(AccountMain), Label: "Main Account", Icon: "🏦"},
		{Value: string(AccountSavings), Label: "Savings", Icon: "💰"},
		{Value: string(AccountCash), Label: "Cash", Icon: "💵"},
		{Value: string(AccountCreditCard), Label: "Credit Card", Icon: "💳"},
	}

	TransactionTypes = []Option{
		{Value: string(TypeIncome), Label: "Income"},
		{Value: string(TypeExpense), Label: "Expense"},
		{Value: string(TypeTransfer), Label: "Transfer"},
	}

	Periods = []Option{
		{Value: string(PeriodWeek), Label: "This Week"},
		{Value: string(PeriodMonth), Label: "This Month"},
		{Value: string(PeriodYear), Label: "This Year"},
	}
)

// DefaultTaxonomy returns the built-in taxonomy tables.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		IncomeCategories:  IncomeCategories,
		ExpenseCategories: ExpenseCategories,
		Divisions:         Divisions,
		Accounts:          Accounts,
	}
}

// CategoriesFor returns the categories offered for a transaction type.
// Transfers are offered the expense list.
func (t Taxonomy) CategoriesFor(txType TransactionType) []Option {
	if txType == TypeIncome {
		return t.IncomeCategories
	}
	return t.ExpenseCategories
}

// AllCategories returns income categories followed by expense categories.
func (t Taxonomy) AllCategories() []Option {
	all := make([]Option, 0, len(t.IncomeCategories)+len(t.ExpenseCategories))
	all = append(all, t.IncomeCategories...)
	return append(all, t.ExpenseCategories...)
}

// HasCategory reports whether category is valid for txType.
func (t Taxonomy) HasCategory(txType TransactionType, category Category) bool {
	return contains(t.CategoriesFor(txType), string(category))
}

func (t Taxonomy) HasDivision(d Division) bool {
	return contains(t.Divisions, string(d))
}

func (t Taxonomy) HasAccount(a Account) bool {
	return contains(t.Accounts, string(a))
}

func contains(opts []Option, value string) bool {
	if value == "" {
		return false
	}
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

func find(opts []Option, value string) (Option, bool) {
	for _, o := range opts {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// CategoryIcon returns the icon for a category or UnknownCategoryIcon.
func CategoryIcon(c Category) string {
	if o, ok := find(DefaultTaxonomy().AllCategories(), string(c)); ok {
		return o.Icon
	}
	return UnknownCategoryIcon
}

// CategoryLabel returns the label for a category or the raw value.
func CategoryLabel(c Category) string {
	if o, ok := find(DefaultTaxonomy().AllCategories(), string(c)); ok {
		return o.Label
	}
	return string(c)
}

func DivisionLabel(d Division) string {
	if o, ok := find(Divisions, string(d)); ok {
		return o.Icon + " " + o.Label
	}
	return string(d)
}

func AccountLabel(a Account) string {
	if o, ok := find(Accounts, string(a)); ok {
		return o.Label
	}
	return string(a)
}

func TypeLabel(t TransactionType) string {
	if o, ok := find(TransactionTypes, string(t)); ok {
		return o.Label
	}
	return string(t)
}

func (t TransactionType) IsValid() bool {
	return contains(TransactionTypes, string(t))
}

func (p Period) IsValid() bool {
	return contains(Periods, string(p))
}

// ParseTransactionType parses user input into a closed TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(normalize(s))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown transaction type '%s' (must be income, expense or transfer)", s)
	}
	return t, nil
}

// ParseCategory parses a category key and checks it against txType.
func ParseCategory(txType TransactionType, s string) (Category, error) {
	c := Category(normalize(s))
	if !DefaultTaxonomy().HasCategory(txType, c) {
		return "", fmt.Errorf("unknown %s category '%s'", txType, s)
	}
	return c, nil
}

func ParseDivision(s string) (Division, error) {
	d := Division(normalize(s))
	if !DefaultTaxonomy().HasDivision(d) {
		return "", fmt.Errorf("unknown division '%s' (must be office or personal)", s)
	}
	return d, nil
}

func ParseAccount(s string) (Account, error) {
	a := Account(normalize(s))
	if !DefaultTaxonomy().HasAccount(a) {
		return "", fmt.Errorf("unknown account '%s' (must be one of %s)", s, strings.Join(values(Accounts), ", "))
	}
	return a, nil
}

func ParsePeriod(s string) (Period, error) {
	p := Period(normalize(s))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown period '%s' (must be week, month or year)", s)
	}
	return p, nil
}

func values(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
