package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/byanarant-ctrl/tgmoney/internal/budget"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-credential", zerolog.Nop())
}

func TestPostInjectsCredential(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{"balance": 10}`))
	})

	_, err := c.CreateTransaction(context.Background(), budget.Expense, 5, "coffee", "food")
	require.NoError(t, err)

	assert.Equal(t, "test-credential", got["initData"])
	assert.Equal(t, "expense", got["t_type"])
	assert.Equal(t, 5.0, got["amount"])
}

func TestInitDecodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"telegram_id": 42,
			"balance": 120.5,
			"is_owner": true,
			"mode": "shared",
			"has_shared": true
		}`))
	})

	res, err := c.Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.TelegramID)
	assert.Equal(t, 120.5, res.Balance)
	assert.True(t, res.IsOwner)
	assert.Equal(t, budget.Shared, res.Mode)
	assert.True(t, res.HasShared)
}

func TestErrorDetailSurfaces(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Amount must be positive"}`))
	})

	_, err := c.Leave(context.Background())
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
	assert.Equal(t, "Amount must be positive", reqErr.Detail)
	assert.Equal(t, "Amount must be positive", err.Error())
}

func TestErrorWithoutDetailFallsBack(t *testing.T) {
	bodies := []string{`{}`, `not json`, `{"message": "nope"}`, ``}
	for _, body := range bodies {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(body))
		})

		_, err := c.Init(context.Background())
		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr, "body %q", body)
		assert.Equal(t, genericFailure, reqErr.Detail, "body %q", body)
	}
}

func TestTransportFailureIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	c := New(srv.URL, "cred", zerolog.Nop())

	_, err := c.ListPlans(context.Background())
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, genericFailure, reqErr.Detail)
	assert.Zero(t, reqErr.Status)
}

func TestListTransactionsWireFormat(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"items": [
			{"id": 1, "amount": 3.5, "description": "bus", "category": "transport", "added_by": "Ann", "created_at": "2025-06-15T10:00:00"}
		]}`))
	})

	start := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 6, 15, 23, 59, 59, 0, time.Local)
	items, err := c.ListTransactions(context.Background(), budget.Income, start, end)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-15T00:00:00", got["start"])
	assert.Equal(t, "2025-06-15T23:59:59", got["end"])
	assert.Equal(t, "income", got["t_type"])

	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "Ann", items[0].AddedBy)
}

func TestSwitchModeReturnsBalance(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "personal", got["mode"])
		_, _ = w.Write([]byte(`{"balance": 77.25}`))
	})

	balance, err := c.SwitchMode(context.Background(), budget.Personal)
	require.NoError(t, err)
	assert.Equal(t, 77.25, balance)
}
