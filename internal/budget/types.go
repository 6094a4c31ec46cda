// Package budget defines the entities the client synchronizes with the
// tgmoney service: transactions, categories, savings plans, and membership.
package budget

// TxType is a transaction direction.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// Valid reports whether t is one of the two known types.
func (t TxType) Valid() bool {
	return t == Income || t == Expense
}

// Mode is the active budget mode for a session.
type Mode string

const (
	Personal Mode = "personal"
	Shared   Mode = "shared"
)

// Transaction is one income or expense entry. Type and ID are immutable
// after creation; amount, description, and category change via update.
type Transaction struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	AddedBy     string  `json:"added_by"`
	CreatedAt   string  `json:"created_at"`
}

// Category is a named grouping scoped to one transaction type.
// Name uniqueness per type is enforced by the service, not here.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Plan is a savings goal. CurrentAmount only grows, via deposits.
type Plan struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	CreatedBy     string  `json:"created_by"`
	CreatedAt     string  `json:"created_at"`
}

// Progress returns the saved fraction clamped to [0, 1].
// Deposits past the target keep displaying as complete, never over.
func (p Plan) Progress() float64 {
	if p.TargetAmount <= 0 {
		return 0
	}
	frac := p.CurrentAmount / p.TargetAmount
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// Remaining returns the amount still to save, never negative.
func (p Plan) Remaining() float64 {
	rem := p.TargetAmount - p.CurrentAmount
	if rem < 0 {
		return 0
	}
	return rem
}

// Member is one participant of a shared budget.
type Member struct {
	TelegramID  int64  `json:"telegram_id"`
	DisplayName string `json:"display_name"`
}

// CategoryTotal is one slice of a per-category spending breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
