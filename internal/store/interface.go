package store

import (
	"context"

	"github.com/hance08/moneymgr/internal/model"
)

type TransactionRepository interface {
	ListTransactions(ctx context.Context, filter model.Filter) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	CreateTransaction(ctx context.Context, in model.TransactionInput) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, in model.TransactionInput) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// StatsRepository reads aggregates computed by the backend.
type StatsRepository interface {
	GetSummary(ctx context.Context, q model.StatsQuery) (*model.Summary, error)
	GetCategoryStats(ctx context.Context, q model.StatsQuery) ([]model.CategoryStat, error)
	GetMonthlyStats(ctx context.Context, year int) ([]model.MonthlyStat, error)
}

type Repository interface {
	TransactionRepository
	StatsRepository

	Close() error
}
