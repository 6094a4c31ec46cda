package tui

import (
	"context"
	"time"

	"github.com/byanarant-ctrl/tgmoney/internal/api"
	"github.com/byanarant-ctrl/tgmoney/internal/budget"
	"github.com/byanarant-ctrl/tgmoney/internal/stats"
)

// emptyPlaceholder renders instead of an empty collection.
const emptyPlaceholder = "nothing here yet"

// Entity stores. Each caches one collection in memory and remembers the
// last fetch error so the panel can render it in place of the list
// without escalating to the global error panel.

type txStore struct {
	typ    budget.TxType
	items  []budget.Transaction
	errMsg string
	loaded bool
	cursor int
}

type catStore struct {
	typ    budget.TxType
	items  []budget.Category
	errMsg string
	loaded bool
	cursor int
}

type planStore struct {
	items  []budget.Plan
	errMsg string
	loaded bool
	cursor int
}

type memberStore struct {
	members   []budget.Member
	mode      budget.Mode
	hasShared bool
	errMsg    string
	loaded    bool
	cursor    int
}

// names returns the category names for input suggestions.
func (s catStore) names() []string {
	out := make([]string, 0, len(s.items))
	for _, c := range s.items {
		out = append(out, c.Name)
	}
	return out
}

func (s catStore) selected() (budget.Category, bool) {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return budget.Category{}, false
	}
	return s.items[s.cursor], true
}

func (s txStore) selected() (budget.Transaction, bool) {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return budget.Transaction{}, false
	}
	return s.items[s.cursor], true
}

func (s planStore) selected() (budget.Plan, bool) {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return budget.Plan{}, false
	}
	return s.items[s.cursor], true
}

func (s memberStore) selected() (budget.Member, bool) {
	if s.cursor < 0 || s.cursor >= len(s.members) {
		return budget.Member{}, false
	}
	return s.members[s.cursor], true
}

// refreshScope carries the parameters a refresh cascade needs: the
// transaction type, its absolute window, and the selected plan.
type refreshScope struct {
	txType budget.TxType
	start  time.Time
	end    time.Time
	planID int64
}

// storeUpdates is the result of a sequentially-executed refresh set.
// Nil fields were not part of the cascade. Per-store fetch failures are
// recorded as error text, never escalated.
type storeUpdates struct {
	balance *float64
	mode    *budget.Mode

	txDone  bool
	txType  budget.TxType
	txItems []budget.Transaction
	txErr   string

	catDone  bool
	catType  budget.TxType
	catItems []budget.Category
	catErr   string

	plansDone bool
	planItems []budget.Plan
	plansErr  string

	detailDone bool
	detail     *budget.Plan
	detailErr  string

	membersDone bool
	members     *api.MembersResult
	membersErr  string
}

// runRefreshOps executes a refresh set strictly in order, each fetch
// awaited before the next starts, so a later refresh never observes
// state from before an earlier one took effect. Individual fetch
// failures are captured per store and do not stop the sequence.
func runRefreshOps(ctx context.Context, client *api.Client, ops []refreshOp, scope refreshScope, out *storeUpdates) {
	for _, op := range ops {
		switch op {
		case refreshBalance, refreshModeLabel:
			// Applied from the mutation response that triggered the
			// cascade; the service returns the recomputed balance and
			// mode with the mutation itself.
		case refreshTransactions:
			items, err := client.ListTransactions(ctx, scope.txType, scope.start, scope.end)
			out.txDone = true
			out.txType = scope.txType
			if err != nil {
				out.txErr = err.Error()
			} else {
				out.txItems = items
			}
		case refreshCategories:
			items, err := client.ListCategories(ctx, scope.txType)
			out.catDone = true
			out.catType = scope.txType
			if err != nil {
				out.catErr = err.Error()
			} else {
				out.catItems = items
			}
		case refreshPlans:
			items, err := client.ListPlans(ctx)
			out.plansDone = true
			if err != nil {
				out.plansErr = err.Error()
			} else {
				out.planItems = items
			}
		case refreshPlanDetail:
			plan, err := client.GetPlan(ctx, scope.planID)
			out.detailDone = true
			if err != nil {
				out.detailErr = err.Error()
			} else {
				out.detail = plan
			}
		case refreshMembers:
			res, err := client.ListMembers(ctx)
			out.membersDone = true
			if err != nil {
				out.membersErr = err.Error()
			} else {
				out.members = res
			}
		}
	}
}

// scopeFor builds the refresh scope from the current selection context.
func (a App) scopeFor(typ budget.TxType) refreshScope {
	start, end := stats.DayWindow(time.Now())
	return refreshScope{
		txType: typ,
		start:  start,
		end:    end,
		planID: a.selectedPlanID,
	}
}

// applyUpdates writes a completed refresh set into the stores and the
// session-level balance and mode.
func (a *App) applyUpdates(u storeUpdates) {
	if u.balance != nil {
		a.sess.Balance = *u.balance
	}
	if u.mode != nil {
		a.sess.Mode = *u.mode
	}

	if u.txDone {
		a.tx.typ = u.txType
		a.tx.loaded = true
		a.tx.errMsg = u.txErr
		if u.txErr == "" {
			a.tx.items = u.txItems
		}
		if a.tx.cursor >= len(a.tx.items) {
			a.tx.cursor = len(a.tx.items) - 1
		}
		if a.tx.cursor < 0 {
			a.tx.cursor = 0
		}
	}

	if u.catDone {
		a.cats.typ = u.catType
		a.cats.loaded = true
		a.cats.errMsg = u.catErr
		if u.catErr == "" {
			a.cats.items = u.catItems
		}
		if a.cats.cursor >= len(a.cats.items) {
			a.cats.cursor = len(a.cats.items) - 1
		}
		if a.cats.cursor < 0 {
			a.cats.cursor = 0
		}
		a.categoryIn.SetSuggestions(a.cats.names())
	}

	if u.plansDone {
		a.plans.loaded = true
		a.plans.errMsg = u.plansErr
		if u.plansErr == "" {
			a.plans.items = u.planItems
		}
		if a.plans.cursor >= len(a.plans.items) {
			a.plans.cursor = len(a.plans.items) - 1
		}
		if a.plans.cursor < 0 {
			a.plans.cursor = 0
		}
	}

	if u.detailDone {
		if u.detailErr != "" {
			a.planDetailErr = u.detailErr
		} else {
			a.planDetail = u.detail
			a.planDetailErr = ""
		}
	}

	if u.membersDone {
		a.members.loaded = true
		a.members.errMsg = u.membersErr
		if u.membersErr == "" && u.members != nil {
			a.members.members = u.members.Users
			a.members.mode = u.members.Mode
			a.members.hasShared = u.members.HasShared
			a.sess.Mode = u.members.Mode
			a.sess.HasShared = u.members.HasShared
		}
		if a.members.cursor >= len(a.members.members) {
			a.members.cursor = len(a.members.members) - 1
		}
		if a.members.cursor < 0 {
			a.members.cursor = 0
		}
	}
}
