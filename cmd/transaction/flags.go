package transaction

import (
	"strings"
	"time"

	"github.com/hance08/moneymgr/internal/form"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/utils"
	"github.com/spf13/cobra"
)

type draftFlags struct {
	Type     string
	Amount   string
	Category string
	Division string
	Account  string
	To       string
	Desc     string
	Date     string
}

func (f *draftFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Type, "type", "t", "", "Transaction type: income, expense or transfer")
	cmd.Flags().StringVarP(&f.Amount, "amount", "a", "", "Amount in rupees (e.g., 150 or 1250.50)")
	cmd.Flags().StringVarP(&f.Category, "category", "C", "", "Category key (see 'mm categories')")
	cmd.Flags().StringVar(&f.Division, "division", "", "Division: office or personal")
	cmd.Flags().StringVar(&f.Account, "account", "", "Account: main, savings, cash or credit-card")
	cmd.Flags().StringVar(&f.To, "to", "", "Destination account for transfers")
	cmd.Flags().StringVarP(&f.Desc, "desc", "d", "", "Description")
	cmd.Flags().StringVar(&f.Date, "date", "", "Date (YYYY-MM-DD or YYYY-MM-DD HH:MM), default is now")
}

var draftFlagNames = []string{"type", "amount", "category", "division", "account", "to", "desc", "date"}

// changed reports whether any draft flag was given on the command line.
func changed(cmd *cobra.Command) bool {
	for _, name := range draftFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// apply copies the given flags onto f. Values are only normalized here;
// membership is left to the validator so every bad field is reported.
func (f *draftFlags) apply(cmd *cobra.Command, fm form.Form, now time.Time) (form.Form, error) {
	set := cmd.Flags().Changed

	if set("type") {
		fm = fm.WithType(model.TransactionType(normalize(f.Type)))
	}
	if set("amount") {
		fm = fm.WithAmount(utils.ParseAmountInput(f.Amount))
	}
	if set("category") {
		fm = fm.WithCategory(model.Category(normalize(f.Category)))
	}
	if set("division") {
		fm = fm.WithDivision(model.Division(normalize(f.Division)))
	}
	if set("account") {
		fm = fm.WithAccount(model.Account(normalize(f.Account)))
	}
	if set("to") {
		fm = fm.WithTransferTo(model.Account(normalize(f.To)))
	}
	if set("desc") {
		fm = fm.WithDescription(f.Desc)
	}
	if set("date") {
		when, err := utils.ParseDateInput(f.Date, now)
		if err != nil {
			return fm, err
		}
		fm = fm.WithDate(when)
	}
	return fm, nil
}

// FilterFlags are the history filters shared by list and dashboard.
type FilterFlags struct {
	Type     string
	Category string
	Division string
	Account  string
	Start    string
	End      string
}

func (f *FilterFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Type, "type", "t", "", "Only this type: income, expense or transfer")
	cmd.Flags().StringVarP(&f.Category, "category", "C", "", "Only this category")
	cmd.Flags().StringVar(&f.Division, "division", "", "Only this division")
	cmd.Flags().StringVar(&f.Account, "account", "", "Only this account")
	cmd.Flags().StringVar(&f.Start, "start", "", "From this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.End, "end", "", "Up to this date (YYYY-MM-DD)")
}

// Filter parses the flags. Unknown values are rejected before any request.
func (f *FilterFlags) Filter() (model.Filter, error) {
	var filter model.Filter

	if f.Type != "" {
		t, err := model.ParseTransactionType(f.Type)
		if err != nil {
			return filter, err
		}
		filter.Type = t
	}
	filter.Category = model.Category(normalize(f.Category))
	if f.Division != "" {
		d, err := model.ParseDivision(f.Division)
		if err != nil {
			return filter, err
		}
		filter.Division = d
	}
	if f.Account != "" {
		a, err := model.ParseAccount(f.Account)
		if err != nil {
			return filter, err
		}
		filter.Account = a
	}
	filter.StartDate = strings.TrimSpace(f.Start)
	filter.EndDate = strings.TrimSpace(f.End)

	if err := filter.Validate(); err != nil {
		return filter, err
	}
	return filter, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
