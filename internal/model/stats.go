package model

import "github.com/shopspring/decimal"

type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

type CategoryStat struct {
	Category    Category        `json:"_id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int             `json:"count"`
}

// MonthlyStat is one month (1-12) of the yearly income/expense series.
type MonthlyStat struct {
	Month   int             `json:"_id"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// StatsQuery scopes the summary and category statistics.
type StatsQuery struct {
	Filter Filter
	Period Period
	Type   TransactionType
}

// Dashboard is the joined result of the three statistics requests.
type Dashboard struct {
	Period     Period
	Year       int
	Summary    Summary
	Categories []CategoryStat
	Monthly    []MonthlyStat
}
