package model

import (
	"fmt"
	"net/url"
	"time"
)

const DateFormat = "2006-01-02"

// Filter narrows the transaction history. Empty fields mean "all".
type Filter struct {
	Type      TransactionType
	Category  Category
	Division  Division
	Account   Account
	StartDate string
	EndDate   string
}

func (f Filter) IsActive() bool {
	return f != Filter{}
}

// Validate checks every set field against the taxonomy and the date layout.
func (f Filter) Validate() error {
	if f.Type != "" && !f.Type.IsValid() {
		return fmt.Errorf("unknown transaction type '%s'", f.Type)
	}
	if f.Category != "" && !contains(DefaultTaxonomy().AllCategories(), string(f.Category)) {
		return fmt.Errorf("unknown category '%s'", f.Category)
	}
	if f.Division != "" && !DefaultTaxonomy().HasDivision(f.Division) {
		return fmt.Errorf("unknown division '%s'", f.Division)
	}
	if f.Account != "" && !DefaultTaxonomy().HasAccount(f.Account) {
		return fmt.Errorf("unknown account '%s'", f.Account)
	}

	var start, end time.Time
	var err error
	if f.StartDate != "" {
		if start, err = time.Parse(DateFormat, f.StartDate); err != nil {
			return fmt.Errorf("invalid start date, use YYYY-MM-DD: %w", err)
		}
	}
	if f.EndDate != "" {
		if end, err = time.Parse(DateFormat, f.EndDate); err != nil {
			return fmt.Errorf("invalid end date, use YYYY-MM-DD: %w", err)
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", f.EndDate, f.StartDate)
	}
	return nil
}

// Query encodes the set fields using the backend's parameter names.
func (f Filter) Query() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("type", string(f.Type))
	set("category", string(f.Category))
	set("division", string(f.Division))
	set("account", string(f.Account))
	set("startDate", f.StartDate)
	set("endDate", f.EndDate)
	return q
}
