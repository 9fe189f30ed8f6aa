package prompts

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/moneymgr/internal/model"
)

// PromptFilter edits every filter field, starting from current.
func PromptFilter(current model.Filter, taxonomy model.Taxonomy) (model.Filter, error) {
	var (
		txType    = string(current.Type)
		category  = string(current.Category)
		division  = string(current.Division)
		account   = string(current.Account)
		startDate = current.StartDate
		endDate   = current.EndDate
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Type:").
				Options(optionList(model.TransactionTypes, true)...).Value(&txType),
			huh.NewSelect[string]().Title("Category:").
				Options(optionList(taxonomy.AllCategories(), true)...).Value(&category).Height(10),
			huh.NewSelect[string]().Title("Division:").
				Options(optionList(taxonomy.Divisions, true)...).Value(&division),
			huh.NewSelect[string]().Title("Account:").
				Options(optionList(taxonomy.Accounts, true)...).Value(&account),
		),
		huh.NewGroup(
			huh.NewInput().Title("Start date (YYYY-MM-DD, blank for none):").
				Value(&startDate).Validate(validateOptionalDate),
			huh.NewInput().Title("End date (YYYY-MM-DD, blank for none):").
				Value(&endDate).Validate(validateOptionalDate),
		),
	).Run()
	if err != nil {
		return current, err
	}

	f := model.Filter{
		Type:      model.TransactionType(txType),
		Category:  model.Category(category),
		Division:  model.Division(division),
		Account:   model.Account(account),
		StartDate: strings.TrimSpace(startDate),
		EndDate:   strings.TrimSpace(endDate),
	}
	if err := f.Validate(); err != nil {
		return current, err
	}
	return f, nil
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(model.DateFormat, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func PromptPeriod(current model.Period) (model.Period, error) {
	selected := current

	err := huh.NewSelect[model.Period]().
		Title("Period:").
		Options(typedOptions[model.Period](model.Periods)...).
		Value(&selected).
		Run()

	return selected, err
}
