package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hance08/moneymgr/internal/model"
)

func statsQuery(q model.StatsQuery) url.Values {
	values := q.Filter.Query()
	if q.Period != "" {
		values.Set("period", string(q.Period))
	}
	if q.Type != "" {
		values.Set("type", string(q.Type))
	}
	return values
}

func (s *Store) GetSummary(ctx context.Context, q model.StatsQuery) (*model.Summary, error) {
	var summary model.Summary
	target := s.endpoint(statsQuery(q), "transactions", "stats", "summary")
	if err := s.do(ctx, http.MethodGet, target, nil, &summary); err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return &summary, nil
}

func (s *Store) GetCategoryStats(ctx context.Context, q model.StatsQuery) ([]model.CategoryStat, error) {
	var stats []model.CategoryStat
	target := s.endpoint(statsQuery(q), "transactions", "stats", "category")
	if err := s.do(ctx, http.MethodGet, target, nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to get category stats: %w", err)
	}
	return stats, nil
}

func (s *Store) GetMonthlyStats(ctx context.Context, year int) ([]model.MonthlyStat, error) {
	var stats []model.MonthlyStat
	query := url.Values{"year": []string{strconv.Itoa(year)}}
	target := s.endpoint(query, "transactions", "stats", "monthly")
	if err := s.do(ctx, http.MethodGet, target, nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to get monthly stats: %w", err)
	}
	return stats, nil
}
