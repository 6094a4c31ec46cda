package tui

import (
	"testing"

	"github.com/byanarant-ctrl/tgmoney/internal/budget"

	"github.com/stretchr/testify/assert"
)

func TestTransitionEntersWithRefreshes(t *testing.T) {
	next, ops := Transition(PanelHome, PanelExpense)
	assert.Equal(t, PanelExpense, next)
	assert.Equal(t, []refreshOp{refreshTransactions, refreshCategories}, ops)

	next, ops = Transition(PanelHome, PanelPlans)
	assert.Equal(t, PanelPlans, next)
	assert.Equal(t, []refreshOp{refreshPlans}, ops)

	next, ops = Transition(PanelPlans, PanelPlanDetail)
	assert.Equal(t, PanelPlanDetail, next)
	assert.Equal(t, []refreshOp{refreshPlanDetail}, ops)

	next, ops = Transition(PanelHome, PanelSettings)
	assert.Equal(t, PanelSettings, next)
	assert.Equal(t, []refreshOp{refreshMembers}, ops)
}

func TestTransitionHomeLoadsNothing(t *testing.T) {
	next, ops := Transition(PanelSettings, PanelHome)
	assert.Equal(t, PanelHome, next)
	assert.Empty(t, ops)
}

func TestTransitionErrorIsTerminal(t *testing.T) {
	for _, to := range []Panel{PanelHome, PanelIncome, PanelStats, PanelSettings} {
		next, ops := Transition(PanelError, to)
		assert.Equal(t, PanelError, next, "to %v", to)
		assert.Nil(t, ops)
	}
}

func TestBackTarget(t *testing.T) {
	assert.Equal(t, PanelPlans, backTarget(PanelPlanDetail, budget.Expense))
	assert.Equal(t, PanelPlans, backTarget(PanelPlanCreate, budget.Expense))
	assert.Equal(t, PanelIncome, backTarget(PanelTransactionEdit, budget.Income))
	assert.Equal(t, PanelExpense, backTarget(PanelTransactionEdit, budget.Expense))
	assert.Equal(t, PanelHome, backTarget(PanelStats, budget.Expense))
}

func TestPanelTxType(t *testing.T) {
	assert.Equal(t, budget.Income, PanelIncome.txType())
	assert.Equal(t, budget.Expense, PanelExpense.txType())
}
