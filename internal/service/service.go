package service

import (
	"time"

	"github.com/hance08/moneymgr/internal/config"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/store"
	"github.com/hance08/moneymgr/internal/validation"
	"go.uber.org/zap"
)

type Service struct {
	Transaction *TransactionService
	Dashboard   *DashboardService
	Config      *config.Config
	Taxonomy    model.Taxonomy
	BaseURL     string
}

// NewService wires the services over one backend repository.
// now is the clock used by the edit-lock checks; pass time.Now outside tests.
func NewService(repo store.Repository, cfg *config.Config, logger *zap.Logger, now func() time.Time) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}

	taxonomy := model.DefaultTaxonomy()
	validator := validation.NewTransactionValidator(taxonomy)

	svc := &Service{
		Transaction: NewTransactionService(repo, validator, logger, now),
		Dashboard:   NewDashboardService(repo, logger, now),
		Config:      cfg,
		Taxonomy:    taxonomy,
	}
	if s, ok := repo.(*store.Store); ok {
		svc.BaseURL = s.BaseURL()
	}
	return svc
}
