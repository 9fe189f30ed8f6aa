package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/moneymgr/internal/logic/editlock"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/store"
	"github.com/hance08/moneymgr/internal/validation"
	"go.uber.org/zap"
)

var ErrTransactionLocked = errors.New("transaction is locked")

type TransactionService struct {
	repo      store.TransactionRepository
	validator *validation.TransactionValidator
	logger    *zap.Logger
	now       func() time.Time
}

func NewTransactionService(repo store.TransactionRepository, validator *validation.TransactionValidator, logger *zap.Logger, now func() time.Time) *TransactionService {
	return &TransactionService{
		repo:      repo,
		validator: validator,
		logger:    logger.Named("transactions"),
		now:       now,
	}
}

func (ts *TransactionService) Now() time.Time {
	return ts.now()
}

func (ts *TransactionService) Validator() *validation.TransactionValidator {
	return ts.validator
}

// Validate runs the draft validator without contacting the backend.
func (ts *TransactionService) Validate(d model.Draft) validation.Errors {
	return ts.validator.Validate(d)
}

// LockStatus evaluates the edit lock of tx at the current instant.
func (ts *TransactionService) LockStatus(tx model.Transaction) editlock.Status {
	return editlock.Evaluate(tx, ts.now())
}

// List returns the history matching filter, in backend order.
func (ts *TransactionService) List(ctx context.Context, filter model.Filter) ([]model.Transaction, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	txs, err := ts.repo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (ts *TransactionService) Get(ctx context.Context, id string) (*model.Transaction, error) {
	if id == "" {
		return nil, fmt.Errorf("transaction id can't be empty")
	}
	return ts.repo.GetTransaction(ctx, id)
}

// Create validates the draft and submits it. Validation failures are
// returned as validation.Errors and never reach the backend.
func (ts *TransactionService) Create(ctx context.Context, d model.Draft) (*model.Transaction, error) {
	in, err := ts.prepare(d)
	if err != nil {
		return nil, err
	}

	tx, err := ts.repo.CreateTransaction(ctx, in)
	if err != nil {
		return nil, err
	}
	ts.logger.Info("transaction created", zap.String("id", tx.ID), zap.String("type", string(tx.Type)))
	return tx, nil
}

// Update refuses locked transactions before validating or sending anything.
func (ts *TransactionService) Update(ctx context.Context, tx model.Transaction, d model.Draft) (*model.Transaction, error) {
	if err := ts.ensureEditable(tx); err != nil {
		return nil, err
	}

	in, err := ts.prepare(d)
	if err != nil {
		return nil, err
	}

	updated, err := ts.repo.UpdateTransaction(ctx, tx.ID, in)
	if err != nil {
		return nil, err
	}
	ts.logger.Info("transaction updated", zap.String("id", tx.ID))
	return updated, nil
}

func (ts *TransactionService) Delete(ctx context.Context, tx model.Transaction) error {
	if err := ts.ensureEditable(tx); err != nil {
		return err
	}

	if err := ts.repo.DeleteTransaction(ctx, tx.ID); err != nil {
		return err
	}
	ts.logger.Info("transaction deleted", zap.String("id", tx.ID))
	return nil
}

func (ts *TransactionService) prepare(d model.Draft) (model.TransactionInput, error) {
	if errs := ts.validator.Validate(d); len(errs) > 0 {
		return model.TransactionInput{}, errs
	}
	return d.Input()
}

func (ts *TransactionService) ensureEditable(tx model.Transaction) error {
	if editlock.IsEditable(tx, ts.now()) {
		return nil
	}
	if !tx.CreatedAt.Valid {
		ts.logger.Warn("transaction has no usable createdAt, treating as locked",
			zap.String("id", tx.ID), zap.String("raw", tx.CreatedAt.Raw))
	}
	return fmt.Errorf("%w: %s is past the %d-hour edit window",
		ErrTransactionLocked, tx.ID, int(editlock.Window.Hours()))
}
