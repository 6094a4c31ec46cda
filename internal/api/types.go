package api

import "github.com/byanarant-ctrl/tgmoney/internal/budget"

// InitResult is the session bootstrap response. It must be fetched once
// before any other call.
type InitResult struct {
	TelegramID int64       `json:"telegram_id"`
	Balance    float64     `json:"balance"`
	IsOwner    bool        `json:"is_owner"`
	Mode       budget.Mode `json:"mode"`
	HasShared  bool        `json:"has_shared"`
}

// Summary is a scalar total-and-count aggregate for one type and window.
type Summary struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// MembersResult is the membership snapshot: who shares the budget, the
// caller's active mode, and whether a shared budget exists at all.
type MembersResult struct {
	TelegramID int64           `json:"telegram_id"`
	Users      []budget.Member `json:"users"`
	Mode       budget.Mode     `json:"mode"`
	HasShared  bool            `json:"has_shared"`
}

// balanceResult is the shape of every mutation response that returns the
// recomputed balance.
type balanceResult struct {
	Balance float64 `json:"balance"`
}

type inviteResult struct {
	Code string `json:"code"`
}

type transactionItems struct {
	Items []budget.Transaction `json:"items"`
}

type categoryItems struct {
	Items []budget.Category `json:"items"`
}

type planItems struct {
	Items []budget.Plan `json:"items"`
}

type categoryTotals struct {
	Items []budget.CategoryTotal `json:"items"`
}
