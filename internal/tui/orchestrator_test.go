package tui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/byanarant-ctrl/tgmoney/internal/api"
	"github.com/byanarant-ctrl/tgmoney/internal/budget"
	"github.com/byanarant-ctrl/tgmoney/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathRecorder serves canned JSON and records request paths in order.
type pathRecorder struct {
	mu    sync.Mutex
	paths []string
	fail  map[string]string // path -> error detail
}

func (r *pathRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		r.paths = append(r.paths, req.URL.Path)
		r.mu.Unlock()

		if detail, ok := r.fail[req.URL.Path]; ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail": "` + detail + `"}`))
			return
		}
		_, _ = w.Write([]byte(`{"balance": 50, "items": [], "code": "ZX1", "mode": "personal"}`))
	}
}

func (r *pathRecorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func newRecordedClient(t *testing.T, rec *pathRecorder) *api.Client {
	t.Helper()
	srv := httptest.NewServer(rec.handler())
	t.Cleanup(srv.Close)
	return api.New(srv.URL, "cred", zerolog.Nop())
}

func testScope() refreshScope {
	return refreshScope{
		txType: budget.Expense,
		start:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local),
		end:    time.Date(2025, 6, 15, 23, 59, 59, 0, time.Local),
	}
}

func TestAddTransactionCascadeOrder(t *testing.T) {
	rec := &pathRecorder{}
	client := newRecordedClient(t, rec)

	msg := executeMutation(context.Background(), client, mutAddTransaction, PanelExpense,
		mutationInput{Type: budget.Expense, Amount: "12,50", Description: "lunch"}, testScope())

	require.Empty(t, msg.errMsg)
	assert.Equal(t, []string{
		"/api/transaction",
		"/api/categories",
		"/api/transactions/list",
	}, rec.recorded(), "categories must refresh before transactions, after the write")

	require.NotNil(t, msg.updates.balance)
	assert.Equal(t, 50.0, *msg.updates.balance)
	assert.True(t, msg.updates.catDone)
	assert.True(t, msg.updates.txDone)
}

func TestFailedCallSkipsCascade(t *testing.T) {
	rec := &pathRecorder{fail: map[string]string{"/api/transaction": "Budget is closed"}}
	client := newRecordedClient(t, rec)

	msg := executeMutation(context.Background(), client, mutAddTransaction, PanelExpense,
		mutationInput{Type: budget.Expense, Amount: "5"}, testScope())

	assert.Equal(t, "Budget is closed", msg.errMsg)
	assert.Equal(t, []string{"/api/transaction"}, rec.recorded(), "no refresh after a failed call")
}

func TestDepositCascadeRefreshesDetailThenList(t *testing.T) {
	rec := &pathRecorder{}
	client := newRecordedClient(t, rec)

	scope := testScope()
	scope.planID = 7
	msg := executeMutation(context.Background(), client, mutDepositPlan, PanelPlanDetail,
		mutationInput{PlanID: 7, Amount: "30"}, scope)

	require.Empty(t, msg.errMsg)
	assert.Equal(t, []string{
		"/api/plan/deposit",
		"/api/plan/get",
		"/api/plans",
	}, rec.recorded())
}

func TestLeaveCascadeOrder(t *testing.T) {
	rec := &pathRecorder{}
	client := newRecordedClient(t, rec)

	msg := executeMutation(context.Background(), client, mutLeave, PanelSettings,
		mutationInput{}, testScope())

	require.Empty(t, msg.errMsg)
	assert.Equal(t, []string{
		"/api/leave",
		"/api/plans",
		"/api/users",
	}, rec.recorded())
}

func newTestApp(t *testing.T, rec *pathRecorder, credential string) App {
	t.Helper()
	client := newRecordedClient(t, rec)
	return NewApp(config.DefaultConfig(), client, credential)
}

func TestSubmitValidationShortCircuits(t *testing.T) {
	rec := &pathRecorder{}
	a := newTestApp(t, rec, "cred")
	a.panel = PanelExpense

	next, cmd := a.submitMutation(mutAddTransaction, mutationInput{Type: budget.Expense, Amount: "abc"})

	assert.Nil(t, cmd, "rejected input must not start a command")
	assert.Empty(t, rec.recorded(), "rejected input must not touch the network")
	assert.Equal(t, "Enter a positive amount.", next.results[PanelExpense])
	assert.Equal(t, PanelExpense, next.panel)
}

func TestSwitchToSharedWithoutSharedBudget(t *testing.T) {
	rec := &pathRecorder{}
	a := newTestApp(t, rec, "cred")
	a.panel = PanelSettings

	next, cmd := a.submitMutation(mutSwitchMode, mutationInput{Mode: budget.Shared, HasShared: false})

	assert.Nil(t, cmd)
	assert.Empty(t, rec.recorded(), "guarded switch must issue no network call")
	assert.Contains(t, next.results[PanelSettings], "join one first")
}

func TestSubmitWithoutCredentialIsFatal(t *testing.T) {
	rec := &pathRecorder{}
	a := newTestApp(t, rec, "")
	a.panel = PanelExpense

	next, cmd := a.submitMutation(mutAddTransaction, mutationInput{Type: budget.Expense, Amount: "5"})

	assert.Nil(t, cmd)
	assert.Equal(t, PanelError, next.panel)
	assert.Empty(t, rec.recorded())
}

func TestFinishMutationFailureStaysOnPanel(t *testing.T) {
	rec := &pathRecorder{}
	a := newTestApp(t, rec, "cred")
	a.panel = PanelExpense

	model, _ := a.finishMutation(mutationDoneMsg{
		kind:   mutAddTransaction,
		panel:  PanelExpense,
		errMsg: "Amount must be positive",
	})

	next := model.(App)
	assert.Equal(t, PanelExpense, next.panel)
	assert.Equal(t, "Amount must be positive", next.results[PanelExpense])
}

func TestFinishMutationAppliesBalanceAndClearsInputs(t *testing.T) {
	rec := &pathRecorder{}
	a := newTestApp(t, rec, "cred")
	a.panel = PanelExpense
	a.amountIn.SetValue("12,50")
	a.descIn.SetValue("lunch")

	balance := 88.0
	model, _ := a.finishMutation(mutationDoneMsg{
		kind:    mutAddTransaction,
		panel:   PanelExpense,
		outcome: mutationOutcome{message: "Expense added."},
		updates: storeUpdates{balance: &balance},
	})

	next := model.(App)
	assert.Equal(t, 88.0, next.sess.Balance)
	assert.Empty(t, next.amountIn.Value())
	assert.Empty(t, next.descIn.Value())
	assert.Equal(t, "Expense added.", next.results[PanelExpense])
}

func TestFinishMutationCreatePlanNavigates(t *testing.T) {
	rec := &pathRecorder{}
	a := newTestApp(t, rec, "cred")
	a.panel = PanelPlanCreate

	model, _ := a.finishMutation(mutationDoneMsg{
		kind:    mutCreatePlan,
		panel:   PanelPlanCreate,
		outcome: mutationOutcome{message: "Plan created."},
	})

	next := model.(App)
	assert.Equal(t, PanelPlans, next.panel)
	assert.Equal(t, "Plan created.", next.results[PanelPlans])
}
