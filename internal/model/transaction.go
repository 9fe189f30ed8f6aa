package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const MaxDescriptionLen = 500

// Transaction is the client copy of a backend record.
type Transaction struct {
	ID          string          `json:"_id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Division    Division        `json:"division"`
	Account     Account         `json:"account"`
	TransferTo  Account         `json:"transferTo,omitempty"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   Timestamp       `json:"createdAt"`
	UpdatedAt   Timestamp       `json:"updatedAt"`
}

// Draft is an unvalidated transaction being authored.
// Amount stays as typed so the validator can report bad input.
type Draft struct {
	Type        TransactionType
	Amount      string
	Category    Category
	Division    Division
	Account     Account
	TransferTo  Account
	Description string
	Date        time.Time
}

// TransactionInput is the create/update payload sent after validation.
type TransactionInput struct {
	Type        TransactionType
	Amount      decimal.Decimal
	Category    Category
	Division    Division
	Account     Account
	TransferTo  Account
	Description string
	Date        time.Time
}

// DraftFromTransaction seeds an edit draft from an existing record.
func DraftFromTransaction(tx Transaction) Draft {
	return Draft{
		Type:        tx.Type,
		Amount:      tx.Amount.String(),
		Category:    tx.Category,
		Division:    tx.Division,
		Account:     tx.Account,
		TransferTo:  tx.TransferTo,
		Description: tx.Description,
		Date:        tx.Date,
	}
}

// ParseAmount parses a typed amount. Blank input is an error.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s'", s)
	}
	return d, nil
}

// Input converts the draft into a request payload. Callers validate first.
func (d Draft) Input() (TransactionInput, error) {
	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return TransactionInput{}, err
	}

	in := TransactionInput{
		Type:        d.Type,
		Amount:      amount,
		Category:    d.Category,
		Division:    d.Division,
		Account:     d.Account,
		Description: strings.TrimSpace(d.Description),
		Date:        d.Date,
	}
	if d.Type == TypeTransfer {
		in.TransferTo = d.TransferTo
	}
	return in, nil
}

// SignedPrefix returns the sign shown before the amount in history listings.
func (tx Transaction) SignedPrefix() string {
	if tx.Type == TypeIncome {
		return "+"
	}
	return "-"
}
