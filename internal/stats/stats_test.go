package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/byanarant-ctrl/tgmoney/internal/api"
	"github.com/byanarant-ctrl/tgmoney/internal/budget"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCombinesBothReads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/summary/range":
			_, _ = w.Write([]byte(`{"total": 340.5, "count": 12}`))
		case "/api/categories/summary":
			_, _ = w.Write([]byte(`{"items": [
				{"category": "food", "total": 200},
				{"category": "transport", "total": 140.5}
			]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)

	client := api.New(srv.URL, "cred", zerolog.Nop())
	start, end := DayWindow(time.Now())

	report, err := Fetch(context.Background(), client, budget.Expense, start, end)
	require.NoError(t, err)

	assert.Equal(t, budget.Expense, report.Type)
	assert.Equal(t, 340.5, report.Summary.Total)
	assert.Equal(t, 12, report.Summary.Count)
	require.Len(t, report.Breakdown, 2)
	assert.Equal(t, "food", report.Breakdown[0].Category)
}

func TestFetchFailsWhenEitherReadFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/categories/summary" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail": "breakdown unavailable"}`))
			return
		}
		_, _ = w.Write([]byte(`{"total": 10, "count": 1}`))
	}))
	t.Cleanup(srv.Close)

	client := api.New(srv.URL, "cred", zerolog.Nop())
	start, end := DayWindow(time.Now())

	_, err := Fetch(context.Background(), client, budget.Income, start, end)
	require.Error(t, err)
	assert.Equal(t, "breakdown unavailable", err.Error())
}
