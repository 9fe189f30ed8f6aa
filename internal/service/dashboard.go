package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TopCategoryCount is how many expense categories the dashboard breaks out.
const TopCategoryCount = 6

type DashboardService struct {
	repo   store.StatsRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewDashboardService(repo store.StatsRepository, logger *zap.Logger, now func() time.Time) *DashboardService {
	return &DashboardService{repo: repo, logger: logger.Named("dashboard"), now: now}
}

// Load fetches the summary, the expense category breakdown and the monthly
// series for the current year concurrently. It returns all three or the
// first error; the remaining requests are cancelled.
func (ds *DashboardService) Load(ctx context.Context, period model.Period, filter model.Filter) (*model.Dashboard, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("unknown period '%s'", period)
	}
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}

	year := ds.now().Year()
	query := model.StatsQuery{Filter: filter, Period: period}
	categoryQuery := query
	categoryQuery.Type = model.TypeExpense

	var (
		summary    *model.Summary
		categories []model.CategoryStat
		monthly    []model.MonthlyStat
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := ds.repo.GetSummary(gctx, query)
		if err != nil {
			ds.logger.Warn("summary request failed", zap.Error(err))
			return err
		}
		summary = s
		return nil
	})

	g.Go(func() error {
		c, err := ds.repo.GetCategoryStats(gctx, categoryQuery)
		if err != nil {
			ds.logger.Warn("category stats request failed", zap.Error(err))
			return err
		}
		categories = c
		return nil
	})

	g.Go(func() error {
		m, err := ds.repo.GetMonthlyStats(gctx, year)
		if err != nil {
			ds.logger.Warn("monthly stats request failed", zap.Error(err), zap.Int("year", year))
			return err
		}
		monthly = m
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	return &model.Dashboard{
		Period:     period,
		Year:       year,
		Summary:    *summary,
		Categories: categories,
		Monthly:    monthly,
	}, nil
}

// TopCategories returns at most n entries in backend order.
func TopCategories(stats []model.CategoryStat, n int) []model.CategoryStat {
	if len(stats) <= n {
		return stats
	}
	return stats[:n]
}

// CheckBackend issues one cheap statistics read to see whether the API answers.
func (ds *DashboardService) CheckBackend(ctx context.Context) error {
	_, err := ds.repo.GetSummary(ctx, model.StatsQuery{Period: model.PeriodMonth})
	return err
}
