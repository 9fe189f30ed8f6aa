package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recorded struct {
	method    string
	path      string
	query     string
	requestID string
	body      map[string]any
}

type fakeBackend struct {
	t        *testing.T
	mu       sync.Mutex
	requests []recorded
	router   *mux.Router
}

func newFakeBackend(t *testing.T) *fakeBackend {
	fb := &fakeBackend{t: t, router: mux.NewRouter()}
	api := fb.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/transactions", fb.record(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{
				"_id": "t1", "type": "expense", "amount": 120, "category": "food",
				"division": "personal", "account": "main", "description": "dosa",
				"date": "2025-03-14T08:00:00.000Z", "createdAt": "2025-03-14T08:05:00.000Z",
			},
			{
				"_id": "t2", "type": "income", "amount": "5000.50", "category": "salary",
				"division": "office", "account": "savings", "description": "payout",
				"date": "2025-03-13T08:00:00.000Z", "createdAt": "garbage",
			},
		})
	})).Methods(http.MethodGet)

	api.HandleFunc("/transactions", fb.record(func(w http.ResponseWriter, r *http.Request) {
		body := fb.last().body
		body["_id"] = "new-1"
		body["createdAt"] = "2025-03-14T09:00:00.000Z"
		writeJSON(w, http.StatusCreated, body)
	})).Methods(http.MethodPost)

	api.HandleFunc("/transactions/stats/summary", fb.record(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"totalIncome": 50000, "totalExpense": 12500.75, "balance": 37499.25})
	})).Methods(http.MethodGet)

	api.HandleFunc("/transactions/stats/category", fb.record(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"_id": "rent", "totalAmount": 9000, "count": 1},
			{"_id": "food", "totalAmount": 3500.75, "count": 12},
		})
	})).Methods(http.MethodGet)

	api.HandleFunc("/transactions/stats/monthly", fb.record(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"_id": 1, "income": 50000, "expense": 20000},
			{"_id": 3, "income": 50000},
		})
	})).Methods(http.MethodGet)

	api.HandleFunc("/transactions/{id}", fb.record(func(w http.ResponseWriter, r *http.Request) {
		switch mux.Vars(r)["id"] {
		case "t1":
			writeJSON(w, http.StatusOK, map[string]any{
				"_id": "t1", "type": "expense", "amount": 120, "category": "food",
				"division": "personal", "account": "main", "description": "dosa",
				"date": "2025-03-14T08:00:00.000Z", "createdAt": "2025-03-14T08:05:00.000Z",
			})
		default:
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Transaction not found"})
		}
	})).Methods(http.MethodGet)

	api.HandleFunc("/transactions/{id}", fb.record(func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["id"] == "old" {
			writeJSON(w, http.StatusForbidden, map[string]any{"message": "Transactions can only be edited within 12 hours"})
			return
		}
		body := fb.last().body
		body["_id"] = mux.Vars(r)["id"]
		writeJSON(w, http.StatusOK, body)
	})).Methods(http.MethodPut)

	api.HandleFunc("/transactions/{id}", fb.record(func(w http.ResponseWriter, r *http.Request) {
		switch mux.Vars(r)["id"] {
		case "boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			writeJSON(w, http.StatusOK, map[string]any{"message": "Transaction deleted"})
		}
	})).Methods(http.MethodDelete)

	return fb
}

func (fb *fakeBackend) record(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{
			method:    r.Method,
			path:      r.URL.Path,
			query:     r.URL.RawQuery,
			requestID: r.Header.Get(HeaderRequestID),
		}
		if r.Body != nil && r.ContentLength != 0 {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			rec.body = body
		}
		fb.mu.Lock()
		fb.requests = append(fb.requests, rec)
		fb.mu.Unlock()
		next(w, r)
	}
}

func (fb *fakeBackend) last() recorded {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if len(fb.requests) == 0 {
		fb.t.Fatal("no request recorded")
	}
	return fb.requests[len(fb.requests)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestStore(t *testing.T) (*Store, *fakeBackend) {
	fb := newFakeBackend(t)
	srv := httptest.NewServer(fb.router)
	t.Cleanup(srv.Close)

	s, err := NewStore(srv.URL+"/api/", 5*time.Second, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, fb
}

func TestNewStoreRejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:5000", "ftp://example.com", "http://"} {
		_, err := NewStore(raw, time.Second, nil)
		assert.Error(t, err, raw)
	}
}

func TestListTransactions(t *testing.T) {
	s, fb := newTestStore(t)

	filter := model.Filter{Type: model.TypeExpense, Division: model.DivisionPersonal, StartDate: "2025-03-01"}
	txs, err := s.ListTransactions(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	req := fb.last()
	assert.Equal(t, "/api/transactions", req.path)
	assert.Equal(t, "division=personal&startDate=2025-03-01&type=expense", req.query)
	_, err = uuid.Parse(req.requestID)
	assert.NoError(t, err, "request id must be a uuid")

	assert.Equal(t, "t1", txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromInt(120)))
	assert.True(t, txs[0].CreatedAt.Valid)
	assert.True(t, txs[1].Amount.Equal(decimal.RequireFromString("5000.50")))
	assert.False(t, txs[1].CreatedAt.Valid, "unparsable createdAt must not fail the list")
}

func TestGetTransaction(t *testing.T) {
	s, _ := newTestStore(t)

	tx, err := s.GetTransaction(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFood, tx.Category)

	_, err = s.GetTransaction(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Transaction not found", apiErr.Message)
}

func TestCreateTransactionPayload(t *testing.T) {
	s, fb := newTestStore(t)

	in := model.TransactionInput{
		Type:        model.TypeTransfer,
		Amount:      decimal.RequireFromString("2500.50"),
		Category:    model.CategoryOtherExpense,
		Division:    model.DivisionOffice,
		Account:     model.AccountMain,
		TransferTo:  model.AccountSavings,
		Description: "move",
		Date:        time.Date(2025, 3, 14, 14, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)),
	}

	tx, err := s.CreateTransaction(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "new-1", tx.ID)
	assert.True(t, tx.CreatedAt.Valid)

	body := fb.last().body
	assert.Equal(t, http.MethodPost, fb.last().method)
	assert.Equal(t, 2500.5, body["amount"], "amount must be sent as a JSON number")
	assert.Equal(t, "2025-03-14T09:00:00.000Z", body["date"])
	assert.Equal(t, "savings", body["transferTo"])
	assert.Equal(t, "transfer", body["type"])
}

func TestCreateOmitsEmptyTransferTo(t *testing.T) {
	s, fb := newTestStore(t)

	_, err := s.CreateTransaction(context.Background(), model.TransactionInput{
		Type:        model.TypeIncome,
		Amount:      decimal.NewFromInt(10),
		Category:    model.CategorySalary,
		Division:    model.DivisionPersonal,
		Account:     model.AccountMain,
		Description: "tip",
		Date:        time.Now(),
	})
	require.NoError(t, err)
	_, present := fb.last().body["transferTo"]
	assert.False(t, present)
}

func TestUpdateTransactionRejected(t *testing.T) {
	s, fb := newTestStore(t)

	in := model.TransactionInput{Type: model.TypeExpense, Amount: decimal.NewFromInt(1), Date: time.Now()}

	tx, err := s.UpdateTransaction(context.Background(), "t1", in)
	require.NoError(t, err)
	assert.Equal(t, "t1", tx.ID)
	assert.Equal(t, http.MethodPut, fb.last().method)

	_, err = s.UpdateTransaction(context.Background(), "old", in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstraintViolation)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Transactions can only be edited within 12 hours", apiErr.Error())
}

func TestDeleteTransaction(t *testing.T) {
	s, fb := newTestStore(t)

	require.NoError(t, s.DeleteTransaction(context.Background(), "t1"))
	assert.Equal(t, http.MethodDelete, fb.last().method)
	assert.Equal(t, "/api/transactions/t1", fb.last().path)

	err := s.DeleteTransaction(context.Background(), "boom")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "backend returned 500 Internal Server Error", apiErr.Error())
}

func TestStatsEndpoints(t *testing.T) {
	s, fb := newTestStore(t)
	ctx := context.Background()
	q := model.StatsQuery{Filter: model.Filter{Division: model.DivisionOffice}, Period: model.PeriodMonth}

	summary, err := s.GetSummary(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "division=office&period=month", fb.last().query)
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("37499.25")))

	q.Type = model.TypeExpense
	cats, err := s.GetCategoryStats(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "division=office&period=month&type=expense", fb.last().query)
	require.Len(t, cats, 2)
	assert.Equal(t, model.CategoryRent, cats[0].Category)
	assert.Equal(t, 12, cats[1].Count)

	monthly, err := s.GetMonthlyStats(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, "year=2025", fb.last().query)
	require.Len(t, monthly, 2)
	assert.Equal(t, 3, monthly[1].Month)
	assert.True(t, monthly[1].Expense.IsZero())
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	s, err := NewStore(url, time.Second, nil)
	require.NoError(t, err)

	_, err = s.ListTransactions(context.Background(), model.Filter{})
	assert.ErrorIs(t, err, ErrUnavailable)
}
