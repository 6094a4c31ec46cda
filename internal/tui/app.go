// Package tui implements the panel UI: navigation, entity stores, and
// the mutation orchestration that keeps every visible panel consistent
// with the remote budget.
package tui

import (
	"context"

	"github.com/byanarant-ctrl/tgmoney/internal/api"
	"github.com/byanarant-ctrl/tgmoney/internal/budget"
	"github.com/byanarant-ctrl/tgmoney/internal/config"
	"github.com/byanarant-ctrl/tgmoney/internal/session"
	"github.com/byanarant-ctrl/tgmoney/internal/stats"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// initDoneMsg carries the session bootstrap result.
type initDoneMsg struct {
	res *api.InitResult
	err error
}

// refreshDoneMsg carries a completed panel-entry refresh set.
type refreshDoneMsg struct {
	updates storeUpdates
}

// statsDoneMsg carries a completed stats fetch.
type statsDoneMsg struct {
	report *stats.Report
	errMsg string
}

// entryFocus is the focused control zone on the income/expense panels.
type entryFocus int

const (
	focusAmount entryFocus = iota
	focusDesc
	focusCategory
	focusCatList
	focusTxList
)

// catEditMode is the inline category editor state.
type catEditMode int

const (
	catEditNone catEditMode = iota
	catEditAdd
	catEditRename
)

// statsView holds the stats panel state.
type statsView struct {
	typ     budget.TxType
	period  string
	custom  bool
	editing bool // typing in the date inputs
	startIn textinput.Model
	endIn   textinput.Model
	report  *stats.Report
	errMsg  string
}

// App is the root Bubble Tea model. It owns the application context:
// the visible panel, the session record, and the selection state the
// orchestrator scopes its cascades by.
type App struct {
	cfg    config.Config
	client *api.Client
	guard  *session.Guard
	sess   *session.Session

	panel  Panel
	errMsg string // global error panel text
	busy   bool

	width  int
	height int

	initialized bool
	spinner     spinner.Model

	// Entity stores
	tx      txStore
	cats    catStore
	plans   planStore
	members memberStore

	// Selection context
	selectedPlanID int64
	planDetail     *budget.Plan
	planDetailErr  string
	editingTx      *budget.Transaction
	rememberedType budget.TxType

	// Per-panel result/status regions
	results map[Panel]string

	// Home menu
	menuCursor int

	// Income/expense panel controls
	focus      entryFocus
	amountIn   textinput.Model
	descIn     textinput.Model
	categoryIn textinput.Model
	catEdit       catEditMode
	catEditIn     textinput.Model
	catEditTarget int64

	// Plan panels
	planForm   *huh.Form
	planVals   planFormValues
	planEditID int64 // 0 = creating
	depositIn  textinput.Model
	depositing bool

	// Transaction edit form
	editForm *huh.Form
	editVals editFormValues

	// Settings panel
	joinIn     textinput.Model
	joining    bool
	inviteCode string

	statsView statsView
}

type planFormValues struct {
	title       string
	description string
	target      string
}

type editFormValues struct {
	amount      string
	description string
	category    string
}

// NewApp creates the root model. The credential comes from config or
// environment; its presence is checked before every panel action.
func NewApp(cfg config.Config, client *api.Client, credential string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AA99F"))

	amount := textinput.New()
	amount.Placeholder = "0,00"
	amount.CharLimit = 16
	amount.Width = 16

	desc := textinput.New()
	desc.Placeholder = "description"
	desc.CharLimit = 120
	desc.Width = 32

	category := textinput.New()
	category.Placeholder = "category (optional)"
	category.CharLimit = 60
	category.Width = 32
	category.ShowSuggestions = true

	deposit := textinput.New()
	deposit.Placeholder = "amount"
	deposit.CharLimit = 16
	deposit.Width = 16

	join := textinput.New()
	join.Placeholder = "invite code"
	join.CharLimit = 32
	join.Width = 24

	catEditIn := textinput.New()
	catEditIn.CharLimit = 60
	catEditIn.Width = 32

	startIn := textinput.New()
	startIn.Placeholder = "YYYY-MM-DD"
	startIn.CharLimit = 10
	startIn.Width = 12

	endIn := textinput.New()
	endIn.Placeholder = "YYYY-MM-DD"
	endIn.CharLimit = 10
	endIn.Width = 12

	a := App{
		cfg:     cfg,
		client:  client,
		guard:   session.NewGuard(credential),
		sess:    &session.Session{Credential: credential},
		panel:   PanelHome,
		spinner: sp,
		results: make(map[Panel]string),

		amountIn:   amount,
		descIn:     desc,
		categoryIn: category,
		depositIn:  deposit,
		joinIn:     join,
		catEditIn:  catEditIn,
		statsView: statsView{
			typ:     budget.Expense,
			period:  cfg.Stats.DefaultPeriod,
			startIn: startIn,
			endIn:   endIn,
		},
	}

	// No credential means no session: straight to the terminal error
	// panel, no bootstrap attempted.
	if credential == "" {
		a.panel = PanelError
		a.errMsg = session.RelaunchMessage
	}
	return a
}

// Init implements tea.Model. The bootstrap call must complete before
// any other panel action; a missing credential skips it entirely.
func (a App) Init() tea.Cmd {
	if !a.guard.Ensure() {
		return nil
	}
	client := a.client
	return tea.Batch(
		a.spinner.Tick,
		func() tea.Msg {
			res, err := client.Init(context.Background())
			return initDoneMsg{res: res, err: err}
		},
	)
}

// fatal routes to the terminal error panel for the credential-missing
// and bootstrap-failure cases. Only a relaunch recovers.
func (a App) fatal() App {
	a.panel = PanelError
	if a.errMsg == "" {
		a.errMsg = session.RelaunchMessage
	}
	return a
}

// navigate applies the panel transition and starts its declared entry
// refreshes. Every data load is guarded by the credential check first.
func (a App) navigate(to Panel) (App, tea.Cmd) {
	next, ops := Transition(a.panel, to)
	a.panel = next
	delete(a.results, next)

	if next == PanelIncome || next == PanelExpense {
		a.rememberedType = next.txType()
		a.focus = focusAmount
		a.catEdit = catEditNone
		a.amountIn.Focus()
		a.descIn.Blur()
		a.categoryIn.Blur()
	}

	if len(ops) == 0 {
		return a, nil
	}
	if !a.guard.Ensure() {
		return a.fatal(), nil
	}

	scope := a.scopeFor(next.txType())
	client := a.client
	a.busy = true
	return a, func() tea.Msg {
		var u storeUpdates
		runRefreshOps(context.Background(), client, ops, scope, &u)
		return refreshDoneMsg{updates: u}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.planForm != nil {
			a.planForm = a.planForm.WithWidth(msg.Width)
		}
		if a.editForm != nil {
			a.editForm = a.editForm.WithWidth(msg.Width)
		}
		return a, nil

	case initDoneMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a.fatal(), nil
		}
		a.initialized = true
		a.sess = session.FromInit(a.sess.Credential, msg.res)
		return a, nil

	case refreshDoneMsg:
		a.busy = false
		a.applyUpdates(msg.updates)
		return a, nil

	case mutationDoneMsg:
		return a.finishMutation(msg)

	case summaryDoneMsg:
		a.busy = false
		a.results[msg.panel] = msg.text
		return a, nil

	case statsDoneMsg:
		a.busy = false
		a.statsView.report = msg.report
		a.statsView.errMsg = msg.errMsg
		return a, nil

	case spinner.TickMsg:
		if !a.initialized && a.panel != PanelError {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Forward everything else (cursor blinks) to the active form.
	if a.panel == PanelPlanCreate && a.planForm != nil {
		return a.updatePlanForm(msg)
	}
	if a.panel == PanelTransactionEdit && a.editForm != nil {
		return a.updateEditForm(msg)
	}
	return a, nil
}

// finishMutation applies a completed mutation: failure detail to the
// issuing panel's result region, or the cascade's updates plus the
// success message and optional navigation.
func (a App) finishMutation(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	a.busy = false

	if msg.errMsg != "" {
		a.results[msg.panel] = msg.errMsg
		return a, nil
	}

	a.applyUpdates(msg.updates)
	if msg.outcome.inviteCode != "" {
		a.inviteCode = msg.outcome.inviteCode
	}

	target := msg.panel
	if sp := mutationTable[msg.kind].successPanel; sp != nil {
		a.panel = *sp
		target = *sp
	}
	if msg.outcome.message != "" {
		a.results[target] = msg.outcome.message
	}

	switch msg.kind {
	case mutAddTransaction:
		a.amountIn.SetValue("")
		a.descIn.SetValue("")
		a.categoryIn.SetValue("")
	case mutUpdateTransaction:
		a.editingTx = nil
		a.editForm = nil
		back := backTarget(PanelTransactionEdit, a.rememberedType)
		a.panel = back
		a.results[back] = msg.outcome.message
	case mutDepositPlan:
		a.depositing = false
		a.depositIn.SetValue("")
	case mutJoin:
		a.joining = false
		a.joinIn.SetValue("")
	case mutUpdatePlan:
		a.planForm = nil
		a.panel = PanelPlans
		a.results[PanelPlans] = msg.outcome.message
	}

	return a, nil
}

// handleKey dispatches keys: global bindings first, then the active
// panel's own handler.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.panel == PanelError {
		if key == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	if !a.initialized {
		return a, nil
	}

	switch a.panel {
	case PanelHome:
		return a.updateHome(key)
	case PanelIncome, PanelExpense:
		return a.updateEntryPanel(msg)
	case PanelPlans:
		return a.updatePlans(key)
	case PanelPlanCreate:
		return a.updatePlanForm(msg)
	case PanelPlanDetail:
		return a.updatePlanDetail(msg)
	case PanelSettings:
		return a.updateSettings(msg)
	case PanelTransactionEdit:
		return a.updateEditForm(msg)
	case PanelStats:
		return a.updateStats(msg)
	}
	return a, nil
}
