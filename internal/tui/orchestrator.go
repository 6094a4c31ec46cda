package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/byanarant-ctrl/tgmoney/internal/api"
	"github.com/byanarant-ctrl/tgmoney/internal/budget"
	"github.com/byanarant-ctrl/tgmoney/internal/money"

	tea "github.com/charmbracelet/bubbletea"
)

// mutationKind names every user-initiated mutation.
type mutationKind string

const (
	mutAddTransaction    mutationKind = "transaction.add"
	mutUpdateTransaction mutationKind = "transaction.update"
	mutAddCategory       mutationKind = "category.add"
	mutUpdateCategory    mutationKind = "category.update"
	mutDeleteCategory    mutationKind = "category.delete"
	mutCreatePlan        mutationKind = "plan.create"
	mutUpdatePlan        mutationKind = "plan.update"
	mutDepositPlan       mutationKind = "plan.deposit"
	mutCreateInvite      mutationKind = "invite.create"
	mutJoin              mutationKind = "invite.join"
	mutLeave             mutationKind = "budget.leave"
	mutKick              mutationKind = "members.kick"
	mutSwitchMode        mutationKind = "budget.switch"
)

// mutationInput carries raw user input into validation and the call.
// Amount-like fields stay strings until validation parses them.
type mutationInput struct {
	Type         budget.TxType
	Amount       string
	Description  string
	Category     string
	Name         string
	CategoryID   int64
	TxID         int64
	PlanID       int64
	Title        string
	TargetAmount string
	Code         string
	TargetID     string
	Mode         budget.Mode
	HasShared    bool
}

// mutationOutcome is what a successful call produced beyond the cascade.
type mutationOutcome struct {
	balance    *float64
	mode       *budget.Mode
	inviteCode string
	message    string
}

// mutationSpec is one row of the orchestrator table: client-side
// validation, the network call, and the ordered refresh cascade that
// must follow success.
type mutationSpec struct {
	validate func(in mutationInput) string
	call     func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error)
	cascade  []refreshOp
	// successPanel, when set, is navigated to after the cascade.
	successPanel *Panel
}

func panelPtr(p Panel) *Panel { return &p }

func validAmount(s string) string {
	if _, err := money.Parse(s); err != nil {
		return "Enter a positive amount."
	}
	return ""
}

// mutationTable declares every mutation's pipeline. Cascade order is
// load-bearing: a later refresh must never read state from before an
// earlier refresh's effect.
var mutationTable = map[mutationKind]mutationSpec{
	mutAddTransaction: {
		validate: func(in mutationInput) string { return validAmount(in.Amount) },
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			amount, _ := money.Parse(in.Amount)
			balance, err := c.CreateTransaction(ctx, in.Type, amount, strings.TrimSpace(in.Description), strings.TrimSpace(in.Category))
			if err != nil {
				return mutationOutcome{}, err
			}
			msg := "Income added."
			if in.Type == budget.Expense {
				msg = "Expense added."
			}
			return mutationOutcome{balance: &balance, message: msg}, nil
		},
		cascade: []refreshOp{refreshBalance, refreshCategories, refreshTransactions},
	},

	mutUpdateTransaction: {
		validate: func(in mutationInput) string { return validAmount(in.Amount) },
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			amount, _ := money.Parse(in.Amount)
			balance, err := c.UpdateTransaction(ctx, in.TxID, amount, strings.TrimSpace(in.Description), strings.TrimSpace(in.Category))
			if err != nil {
				return mutationOutcome{}, err
			}
			return mutationOutcome{balance: &balance, message: "Entry updated."}, nil
		},
		cascade: []refreshOp{refreshBalance, refreshTransactions},
	},

	mutAddCategory: {
		validate: func(in mutationInput) string {
			if strings.TrimSpace(in.Name) == "" {
				return "Enter a category name."
			}
			return ""
		},
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			if err := c.AddCategory(ctx, in.Type, strings.TrimSpace(in.Name)); err != nil {
				return mutationOutcome{}, err
			}
			return mutationOutcome{message: "Category added."}, nil
		},
		cascade: []refreshOp{refreshCategories},
	},

	mutUpdateCategory: {
		validate: func(in mutationInput) string {
			if strings.TrimSpace(in.Name) == "" {
				return "Enter a category name."
			}
			return ""
		},
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			if err := c.UpdateCategory(ctx, in.Type, in.CategoryID, strings.TrimSpace(in.Name)); err != nil {
				return mutationOutcome{}, err
			}
			return mutationOutcome{message: "Category renamed."}, nil
		},
		cascade: []refreshOp{refreshCategories},
	},

	mutDeleteCategory: {
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			if err := c.DeleteCategory(ctx, in.Type, in.CategoryID); err != nil {
				return mutationOutcome{}, err
			}
			return mutationOutcome{message: "Category removed."}, nil
		},
		cascade: []refreshOp{refreshCategories},
	},

	mutCreatePlan: {
		validate: func(in mutationInput) string {
			if strings.TrimSpace(in.Title) == "" {
				return "Enter a title."
			}
			return validAmount(in.TargetAmount)
		},
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			target, _ := money.Parse(in.TargetAmount)
			if err := c.CreatePlan(ctx, strings.TrimSpace(in.Title), strings.TrimSpace(in.Description), target); err != nil {
				return mutationOutcome{}, err
			}
			return mutationOutcome{message: "Plan created."}, nil
		},
		cascade:      []refreshOp{refreshPlans},
		successPanel: panelPtr(PanelPlans),
	},

	mutUpdatePlan: {
		validate: func(in mutationInput) string {
			if strings.TrimSpace(in.Title) == "" {
				return "Enter a title."
			}
			return validAmount(in.TargetAmount)
		},
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			target, _ := money.Parse(in.TargetAmount)
			if err := c.UpdatePlan(ctx, in.PlanID, strings.TrimSpace(in.Title), strings.TrimSpace(in.Description), target); err != nil {
				return mutationOutcome{}, err
			}
			return mutationOutcome{message: "Plan updated."}, nil
		},
		cascade: []refreshOp{refreshPlans},
	},

	mutDepositPlan: {
		validate: func(in mutationInput) string { return validAmount(in.Amount) },
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			amount, _ := money.Parse(in.Amount)
			if err := c.DepositPlan(ctx, in.PlanID, amount); err != nil {
				return mutationOutcome{}, err
			}
			return mutationOutcome{message: "Deposit added."}, nil
		},
		cascade: []refreshOp{refreshPlanDetail, refreshPlans},
	},

	mutCreateInvite: {
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			code, err := c.CreateInvite(ctx)
			if err != nil {
				return mutationOutcome{}, err
			}
			return mutationOutcome{inviteCode: code, message: "Code: " + code}, nil
		},
	},

	mutJoin: {
		validate: func(in mutationInput) string {
			if strings.TrimSpace(in.Code) == "" {
				return "Enter an invite code."
			}
			return ""
		},
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			balance, err := c.Join(ctx, strings.TrimSpace(in.Code))
			if err != nil {
				return mutationOutcome{}, err
			}
			return mutationOutcome{balance: &balance, message: "Budgets merged."}, nil
		},
		cascade: []refreshOp{refreshBalance, refreshMembers},
	},

	mutLeave: {
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			balance, err := c.Leave(ctx)
			if err != nil {
				return mutationOutcome{}, err
			}
			return mutationOutcome{balance: &balance, message: "You left the shared budget."}, nil
		},
		cascade: []refreshOp{refreshBalance, refreshPlans, refreshMembers},
	},

	mutKick: {
		validate: func(in mutationInput) string {
			if _, err := strconv.ParseInt(strings.TrimSpace(in.TargetID), 10, 64); err != nil {
				return "Select a member to remove."
			}
			return ""
		},
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			id, _ := strconv.ParseInt(strings.TrimSpace(in.TargetID), 10, 64)
			if err := c.Kick(ctx, id); err != nil {
				return mutationOutcome{}, err
			}
			return mutationOutcome{message: "Member removed."}, nil
		},
		cascade: []refreshOp{refreshMembers},
	},

	mutSwitchMode: {
		validate: func(in mutationInput) string {
			if in.Mode == budget.Shared && !in.HasShared {
				return "No shared budget yet — join one first."
			}
			return ""
		},
		call: func(ctx context.Context, c *api.Client, in mutationInput) (mutationOutcome, error) {
			balance, err := c.SwitchMode(ctx, in.Mode)
			if err != nil {
				return mutationOutcome{}, err
			}
			mode := in.Mode
			return mutationOutcome{balance: &balance, mode: &mode, message: "Switched to " + string(mode) + " budget."}, nil
		},
		cascade: []refreshOp{refreshBalance, refreshMembers, refreshModeLabel},
	},
}

// mutationDoneMsg reports a finished mutation: either the outcome plus
// the cascade's store updates, or the failure detail for the issuing
// panel's result region.
type mutationDoneMsg struct {
	kind    mutationKind
	panel   Panel // issuing panel; failures display here
	outcome mutationOutcome
	updates storeUpdates
	errMsg  string
}

// executeMutation runs call → cascade synchronously. The cascade runs
// only after a successful call, sequentially, in declared order.
func executeMutation(ctx context.Context, client *api.Client, kind mutationKind, panel Panel, in mutationInput, scope refreshScope) mutationDoneMsg {
	spec := mutationTable[kind]

	outcome, err := spec.call(ctx, client, in)
	if err != nil {
		return mutationDoneMsg{kind: kind, panel: panel, errMsg: err.Error()}
	}

	updates := storeUpdates{balance: outcome.balance, mode: outcome.mode}
	runRefreshOps(ctx, client, spec.cascade, scope, &updates)

	return mutationDoneMsg{kind: kind, panel: panel, outcome: outcome, updates: updates}
}

// submitMutation validates input and, if it passes, starts the mutation
// command. Validation failures short-circuit with a local message and
// issue no network call. A missing credential aborts to the error panel.
func (a App) submitMutation(kind mutationKind, in mutationInput) (App, tea.Cmd) {
	if !a.guard.Ensure() {
		return a.fatal(), nil
	}

	spec, ok := mutationTable[kind]
	if !ok {
		return a, nil
	}
	if spec.validate != nil {
		if msg := spec.validate(in); msg != "" {
			a.results[a.panel] = msg
			return a, nil
		}
	}

	panel := a.panel
	scope := a.scopeFor(in.Type)
	if in.PlanID != 0 {
		scope.planID = in.PlanID
	}
	client := a.client

	a.busy = true
	return a, func() tea.Msg {
		return executeMutation(context.Background(), client, kind, panel, in, scope)
	}
}
