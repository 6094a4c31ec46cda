package tui

import "github.com/byanarant-ctrl/tgmoney/internal/budget"

// Panel is one mutually-exclusive top-level UI region. Exactly one panel
// is visible at any time.
type Panel int

const (
	PanelHome Panel = iota
	PanelIncome
	PanelExpense
	PanelPlans
	PanelPlanCreate
	PanelPlanDetail
	PanelSettings
	PanelTransactionEdit
	PanelStats
	PanelError
)

// Title returns the header title for a panel.
func (p Panel) Title() string {
	switch p {
	case PanelHome:
		return "Home"
	case PanelIncome:
		return "Income"
	case PanelExpense:
		return "Expenses"
	case PanelPlans:
		return "Savings Plans"
	case PanelPlanCreate:
		return "New Plan"
	case PanelPlanDetail:
		return "Plan"
	case PanelSettings:
		return "Settings"
	case PanelTransactionEdit:
		return "Edit Entry"
	case PanelStats:
		return "Statistics"
	case PanelError:
		return "Error"
	}
	return ""
}

// txType returns the transaction type an income/expense panel scopes to.
func (p Panel) txType() budget.TxType {
	if p == PanelIncome {
		return budget.Income
	}
	return budget.Expense
}

// refreshOp is one step of a refresh cascade or a panel-entry refresh.
type refreshOp int

const (
	refreshBalance refreshOp = iota
	refreshCategories
	refreshTransactions
	refreshPlans
	refreshPlanDetail
	refreshMembers
	refreshModeLabel
)

// entryRefreshes declares the entity refreshes triggered by entering
// each panel. Scope (type, window, plan id) comes from the current
// selection context at transition time.
var entryRefreshes = map[Panel][]refreshOp{
	PanelIncome:     {refreshTransactions, refreshCategories},
	PanelExpense:    {refreshTransactions, refreshCategories},
	PanelPlans:      {refreshPlans},
	PanelPlanDetail: {refreshPlanDetail},
	PanelSettings:   {refreshMembers},
}

// Transition is the pure panel transition function. The error panel is
// terminal for the session: once entered, only a relaunch leaves it.
// Every other panel may move to any panel directly.
func Transition(cur, to Panel) (Panel, []refreshOp) {
	if cur == PanelError {
		return PanelError, nil
	}
	return to, entryRefreshes[to]
}

// backTarget returns where esc leads from a panel.
func backTarget(p Panel, rememberedType budget.TxType) Panel {
	switch p {
	case PanelPlanCreate, PanelPlanDetail:
		return PanelPlans
	case PanelTransactionEdit:
		if rememberedType == budget.Income {
			return PanelIncome
		}
		return PanelExpense
	default:
		return PanelHome
	}
}
