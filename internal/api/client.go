// Package api provides the typed client for the tgmoney budgeting service.
// Every call carries the host credential; every error response surfaces the
// service's detail message for in-panel display.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/byanarant-ctrl/tgmoney/internal/budget"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	maxBodySize = 1 << 20 // 1 MB

	// wireTime is how the service stores and compares timestamps.
	wireTime = "2006-01-02T15:04:05"
)

// genericFailure is shown when an error response carries no usable detail.
const genericFailure = "request failed"

// RequestError is a non-success response from the service. Detail is the
// human-readable message to display in the panel's result region.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	return e.Detail
}

// Client talks to the tgmoney service. Calls are fire-once: no retries,
// no queueing — idempotence is the service's responsibility.
type Client struct {
	base     string
	initData string
	http     *http.Client
	log      zerolog.Logger
}

// New creates a client for the given service URL and host credential.
func New(baseURL, initData string, log zerolog.Logger) *Client {
	return &Client{
		base:     baseURL,
		initData: initData,
		http:     &http.Client{},
		log:      log,
	}
}

// post sends one authenticated request and decodes the response into out.
// payload must marshal to a JSON object; the credential is injected as its
// initData field.
func (c *Client) post(ctx context.Context, path string, payload map[string]any, out any) error {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["initData"] = c.initData

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("api: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("api: creating request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Str("request_id", reqID).Str("path", path).Err(err).Msg("transport failure")
		return &RequestError{Detail: genericFailure}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.log.Error().Str("request_id", reqID).Str("path", path).Err(err).Msg("reading response")
		return &RequestError{Status: resp.StatusCode, Detail: genericFailure}
	}

	c.log.Debug().
		Str("request_id", reqID).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{Status: resp.StatusCode, Detail: extractDetail(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &RequestError{Status: resp.StatusCode, Detail: genericFailure}
	}
	return nil
}

// extractDetail pulls the service's detail message out of an error body,
// falling back to the generic message when absent or unparseable.
func extractDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Detail == "" {
		return genericFailure
	}
	return body.Detail
}

// Init bootstraps the session: balance, identity, ownership, budget mode.
func (c *Client) Init(ctx context.Context) (*InitResult, error) {
	var res InitResult
	if err := c.post(ctx, "/api/init", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateTransaction records a new income or expense entry and returns the
// recomputed balance.
func (c *Client) CreateTransaction(ctx context.Context, typ budget.TxType, amount float64, description, category string) (float64, error) {
	var res balanceResult
	err := c.post(ctx, "/api/transaction", map[string]any{
		"t_type":      string(typ),
		"amount":      amount,
		"description": description,
		"category":    category,
	}, &res)
	return res.Balance, err
}

// UpdateTransaction changes the amount, description, and category of an
// existing entry. Type and ID are immutable.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, amount float64, description, category string) (float64, error) {
	var res balanceResult
	err := c.post(ctx, "/api/transaction/update", map[string]any{
		"transaction_id": id,
		"amount":         amount,
		"description":    description,
		"category":       category,
	}, &res)
	return res.Balance, err
}

// ListTransactions loads entries of one type within an absolute window.
func (c *Client) ListTransactions(ctx context.Context, typ budget.TxType, start, end time.Time) ([]budget.Transaction, error) {
	var res transactionItems
	err := c.post(ctx, "/api/transactions/list", map[string]any{
		"t_type": string(typ),
		"start":  start.Format(wireTime),
		"end":    end.Format(wireTime),
	}, &res)
	return res.Items, err
}

// Summary returns total and count for a service-resolved named period.
func (c *Client) Summary(ctx context.Context, typ budget.TxType, period string) (*Summary, error) {
	var res Summary
	err := c.post(ctx, "/api/summary", map[string]any{
		"t_type": string(typ),
		"period": period,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SummaryRange returns total and count for an explicit window.
func (c *Client) SummaryRange(ctx context.Context, typ budget.TxType, start, end time.Time) (*Summary, error) {
	var res Summary
	err := c.post(ctx, "/api/summary/range", map[string]any{
		"t_type": string(typ),
		"start":  start.Format(wireTime),
		"end":    end.Format(wireTime),
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ListCategories loads the categories of one type.
func (c *Client) ListCategories(ctx context.Context, typ budget.TxType) ([]budget.Category, error) {
	var res categoryItems
	err := c.post(ctx, "/api/categories", map[string]any{
		"t_type": string(typ),
	}, &res)
	return res.Items, err
}

// AddCategory creates a category. Name uniqueness per type is enforced by
// the service; a duplicate comes back as a RequestError detail.
func (c *Client) AddCategory(ctx context.Context, typ budget.TxType, name string) error {
	return c.post(ctx, "/api/categories/add", map[string]any{
		"t_type": string(typ),
		"name":   name,
	}, nil)
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, typ budget.TxType, id int64, name string) error {
	return c.post(ctx, "/api/categories/update", map[string]any{
		"t_type":      string(typ),
		"category_id": id,
		"name":        name,
	}, nil)
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, typ budget.TxType, id int64) error {
	return c.post(ctx, "/api/categories/delete", map[string]any{
		"t_type":      string(typ),
		"category_id": id,
	}, nil)
}

// CategorySummary returns per-category totals for one type and window.
func (c *Client) CategorySummary(ctx context.Context, typ budget.TxType, start, end time.Time) ([]budget.CategoryTotal, error) {
	var res categoryTotals
	err := c.post(ctx, "/api/categories/summary", map[string]any{
		"t_type": string(typ),
		"start":  start.Format(wireTime),
		"end":    end.Format(wireTime),
	}, &res)
	return res.Items, err
}

// CreatePlan creates a savings plan.
func (c *Client) CreatePlan(ctx context.Context, title, description string, target float64) error {
	return c.post(ctx, "/api/plan", map[string]any{
		"title":         title,
		"description":   description,
		"target_amount": target,
	}, nil)
}

// GetPlan loads one plan's full detail.
func (c *Client) GetPlan(ctx context.Context, id int64) (*budget.Plan, error) {
	var res budget.Plan
	err := c.post(ctx, "/api/plan/get", map[string]any{
		"plan_id": id,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdatePlan changes a plan's title, description, and target.
func (c *Client) UpdatePlan(ctx context.Context, id int64, title, description string, target float64) error {
	return c.post(ctx, "/api/plan/update", map[string]any{
		"plan_id":       id,
		"title":         title,
		"description":   description,
		"target_amount": target,
	}, nil)
}

// DepositPlan adds to a plan's current amount. Deposits only increase it.
func (c *Client) DepositPlan(ctx context.Context, id int64, amount float64) error {
	return c.post(ctx, "/api/plan/deposit", map[string]any{
		"plan_id": id,
		"amount":  amount,
	}, nil)
}

// ListPlans loads all plans.
func (c *Client) ListPlans(ctx context.Context) ([]budget.Plan, error) {
	var res planItems
	err := c.post(ctx, "/api/plans", nil, &res)
	return res.Items, err
}

// CreateInvite returns a fresh invite code for the shared budget.
func (c *Client) CreateInvite(ctx context.Context) (string, error) {
	var res inviteResult
	if err := c.post(ctx, "/api/invite", nil, &res); err != nil {
		return "", err
	}
	return res.Code, nil
}

// Join redeems an invite code, merging into the shared budget, and
// returns the merged balance.
func (c *Client) Join(ctx context.Context, code string) (float64, error) {
	var res balanceResult
	err := c.post(ctx, "/api/join", map[string]any{
		"code": code,
	}, &res)
	return res.Balance, err
}

// Leave exits the shared budget and returns the personal balance.
func (c *Client) Leave(ctx context.Context) (float64, error) {
	var res balanceResult
	err := c.post(ctx, "/api/leave", nil, &res)
	return res.Balance, err
}

// Kick removes a member from the shared budget. Owner only; the service
// rejects self-removal and non-owner callers.
func (c *Client) Kick(ctx context.Context, targetID int64) error {
	return c.post(ctx, "/api/kick", map[string]any{
		"target_id": targetID,
	}, nil)
}

// ListMembers loads the membership set plus mode and shared-budget state.
func (c *Client) ListMembers(ctx context.Context) (*MembersResult, error) {
	var res MembersResult
	if err := c.post(ctx, "/api/users", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SwitchMode activates the personal or shared budget and returns the
// balance of the newly active one.
func (c *Client) SwitchMode(ctx context.Context, mode budget.Mode) (float64, error) {
	var res balanceResult
	err := c.post(ctx, "/api/budget/switch", map[string]any{
		"mode": string(mode),
	}, &res)
	return res.Balance, err
}
