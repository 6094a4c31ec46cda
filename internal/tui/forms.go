package tui

import (
	"github.com/byanarant-ctrl/tgmoney/internal/budget"
	"github.com/byanarant-ctrl/tgmoney/internal/money"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// newPlanForm builds the create/update plan form. For updates the
// fields arrive prefilled from the selected plan.
func newPlanForm(vals *planFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&vals.title),
			huh.NewInput().
				Title("Description").
				Value(&vals.description),
			huh.NewInput().
				Title("Target amount").
				Value(&vals.target),
		),
	)
}

// newEditForm builds the transaction edit form, preloaded with the
// selected entry's current values. Type and id are not editable.
func newEditForm(vals *editFormValues, categories []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Value(&vals.amount),
			huh.NewInput().
				Title("Description").
				Value(&vals.description),
			huh.NewInput().
				Title("Category").
				Suggestions(categories).
				Value(&vals.category),
		),
	)
}

// openPlanCreate switches to the plan form panel in create mode.
func (a App) openPlanCreate() (App, tea.Cmd) {
	a.planEditID = 0
	a.planVals = planFormValues{}
	a.planForm = newPlanForm(&a.planVals)
	if a.width > 0 {
		a.planForm = a.planForm.WithWidth(a.width)
	}
	a.panel = PanelPlanCreate
	delete(a.results, PanelPlanCreate)
	return a, a.planForm.Init()
}

// openPlanEdit switches to the plan form panel prefilled from the
// currently loaded plan detail.
func (a App) openPlanEdit(p budget.Plan) (App, tea.Cmd) {
	a.planEditID = p.ID
	a.planVals = planFormValues{
		title:       p.Title,
		description: p.Description,
		target:      money.Format(p.TargetAmount),
	}
	a.planForm = newPlanForm(&a.planVals)
	if a.width > 0 {
		a.planForm = a.planForm.WithWidth(a.width)
	}
	a.panel = PanelPlanCreate
	delete(a.results, PanelPlanCreate)
	return a, a.planForm.Init()
}

// openTransactionEdit switches to the edit panel with the selected
// entry preloaded.
func (a App) openTransactionEdit(tx budget.Transaction) (App, tea.Cmd) {
	cp := tx
	a.editingTx = &cp
	a.editVals = editFormValues{
		amount:      money.Format(tx.Amount),
		description: tx.Description,
		category:    tx.Category,
	}
	a.editForm = newEditForm(&a.editVals, a.cats.names())
	if a.width > 0 {
		a.editForm = a.editForm.WithWidth(a.width)
	}
	a.panel = PanelTransactionEdit
	delete(a.results, PanelTransactionEdit)
	return a, a.editForm.Init()
}

// updatePlanForm drives the plan form. Completion submits the create or
// update mutation; abort returns to the plan list.
func (a App) updatePlanForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.planForm == nil {
		// Form already submitted; a rejected submission leaves its
		// message in the result region until the user backs out.
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			a.panel = PanelPlans
		}
		return a, nil
	}

	form, cmd := a.planForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.planForm = f
	}

	if a.planForm.State == huh.StateCompleted {
		in := mutationInput{
			Title:        a.planVals.title,
			Description:  a.planVals.description,
			TargetAmount: a.planVals.target,
		}
		a.planForm = nil
		if a.planEditID != 0 {
			in.PlanID = a.planEditID
			return a.submitMutation(mutUpdatePlan, in)
		}
		return a.submitMutation(mutCreatePlan, in)
	}

	if a.planForm.State == huh.StateAborted {
		a.planForm = nil
		a.panel = PanelPlans
		return a, nil
	}

	return a, cmd
}

// updateEditForm drives the transaction edit form.
func (a App) updateEditForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.editForm == nil || a.editingTx == nil {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			return a.navigate(backTarget(PanelTransactionEdit, a.rememberedType))
		}
		return a, nil
	}

	form, cmd := a.editForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.editForm = f
	}

	if a.editForm.State == huh.StateCompleted {
		in := mutationInput{
			Type:        a.rememberedType,
			TxID:        a.editingTx.ID,
			Amount:      a.editVals.amount,
			Description: a.editVals.description,
			Category:    a.editVals.category,
		}
		a.editForm = nil
		return a.submitMutation(mutUpdateTransaction, in)
	}

	if a.editForm.State == huh.StateAborted {
		a.editForm = nil
		a.editingTx = nil
		return a.navigate(backTarget(PanelTransactionEdit, a.rememberedType))
	}

	return a, cmd
}
