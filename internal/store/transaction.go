package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hance08/moneymgr/internal/model"
)

// isoMillis matches JavaScript's Date.toISOString, which the backend stores.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type transactionPayload struct {
	Type        model.TransactionType `json:"type"`
	Amount      json.Number           `json:"amount"`
	Category    model.Category        `json:"category"`
	Division    model.Division        `json:"division"`
	Account     model.Account         `json:"account"`
	TransferTo  model.Account         `json:"transferTo,omitempty"`
	Description string                `json:"description"`
	Date        string                `json:"date"`
}

func newTransactionPayload(in model.TransactionInput) transactionPayload {
	return transactionPayload{
		Type:        in.Type,
		Amount:      json.Number(in.Amount.String()),
		Category:    in.Category,
		Division:    in.Division,
		Account:     in.Account,
		TransferTo:  in.TransferTo,
		Description: in.Description,
		Date:        FormatDate(in.Date),
	}
}

func (s *Store) ListTransactions(ctx context.Context, filter model.Filter) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := s.do(ctx, http.MethodGet, s.endpoint(filter.Query(), "transactions"), nil, &txs); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (s *Store) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	var tx model.Transaction
	if err := s.do(ctx, http.MethodGet, s.endpoint(nil, "transactions", id), nil, &tx); err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}
	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, in model.TransactionInput) (*model.Transaction, error) {
	var tx model.Transaction
	if err := s.do(ctx, http.MethodPost, s.endpoint(nil, "transactions"), newTransactionPayload(in), &tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &tx, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, id string, in model.TransactionInput) (*model.Transaction, error) {
	var tx model.Transaction
	if err := s.do(ctx, http.MethodPut, s.endpoint(nil, "transactions", id), newTransactionPayload(in), &tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", id, err)
	}
	return &tx, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.do(ctx, http.MethodDelete, s.endpoint(nil, "transactions", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	return nil
}

// FormatDate renders t the way the backend expects dates on the wire.
func FormatDate(t time.Time) string {
	return t.UTC().Format(isoMillis)
}
