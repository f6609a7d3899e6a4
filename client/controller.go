// Package client is the dashboard's state controller: it mirrors the
// user's categories and expenses, keeps them synchronized with the REST
// API, and falls back to a fixed demo dataset when the initial load fails
// so the UI stays usable while degraded.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/correia-jilson/pennywise-tracker/models"
	"github.com/correia-jilson/pennywise-tracker/stats"

	"golang.org/x/sync/errgroup"
)

// State is the controller lifecycle state. After the first Load (successful
// or fallback) the controller is Ready and never regresses; later failures
// only surface through LastError.
type State int

const (
	StateLoading State = iota
	StateReady
)

// Dataset is a categories+expenses snapshot, used for the fallback data.
type Dataset struct {
	Categories []models.Category
	Expenses   []models.Expense
}

// FallbackProvider supplies the dataset shown when the backend is
// unreachable at load time.
type FallbackProvider func() Dataset

// APIError is a non-2xx response decoded from the server's error body. Its
// message is the server-provided error text verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Option configures a Controller.
type Option func(*Controller)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Controller) { c.http = hc }
}

// WithFallback overrides the fallback dataset provider.
func WithFallback(fp FallbackProvider) Option {
	return func(c *Controller) { c.fallback = fp }
}

// Controller owns the client-side mirror of one user's data.
type Controller struct {
	baseURL  string
	userID   string
	http     *http.Client
	fallback FallbackProvider

	mu         sync.Mutex
	state      State
	categories []models.Category
	expenses   []models.Expense
	lastErr    string
}

// New creates a controller in the Loading state for the given API base URL
// and user.
func New(baseURL, userID string, opts ...Option) *Controller {
	c := &Controller{
		baseURL:  baseURL,
		userID:   userID,
		http:     &http.Client{Timeout: 10 * time.Second},
		fallback: DemoDataset,
		state:    StateLoading,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches categories and expenses concurrently and replaces both
// collections. The join is all-or-nothing: if either leg fails, both
// collections are replaced by the fallback dataset and the error is
// surfaced. Either way the controller ends up Ready.
func (c *Controller) Load(ctx context.Context) error {
	var (
		categories []models.Category
		expenses   []models.Expense
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.get(ctx, "/api/categories", &categories)
	})
	g.Go(func() error {
		return c.get(ctx, "/api/expenses", &expenses)
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateReady
	if err != nil {
		c.lastErr = "Failed to load data. Please refresh the page."
		fb := c.fallback()
		c.categories = fb.Categories
		c.expenses = fb.Expenses
		return err
	}
	c.lastErr = ""
	c.categories = categories
	c.expenses = expenses
	return nil
}

// ExpenseInput is the Add Expense form payload.
type ExpenseInput struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	CategoryID  string  `json:"categoryId"`
}

// AddExpense creates an expense and prepends the server-confirmed record.
// On failure local state is untouched; there is no optimistic insert.
func (c *Controller) AddExpense(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	payload := struct {
		ExpenseInput
		UserID string `json:"userId"`
	}{in, c.userID}

	var created models.Expense
	if err := c.post(ctx, "/api/expenses", payload, &created); err != nil {
		c.setError("Failed to add expense. Please try again.")
		return nil, err
	}

	c.mu.Lock()
	c.expenses = append([]models.Expense{created}, c.expenses...)
	c.mu.Unlock()
	return &created, nil
}

// DeleteExpense removes an expense server-side and, on success, drops the
// matching entry from the local list.
func (c *Controller) DeleteExpense(ctx context.Context, id string) error {
	u := fmt.Sprintf("%s/api/expenses?id=%s", c.baseURL, url.QueryEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		c.setError("Failed to delete expense. Please try again.")
		return err
	}

	c.mu.Lock()
	kept := c.expenses[:0:0]
	for _, e := range c.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	c.expenses = kept
	c.mu.Unlock()
	return nil
}

// CategoryInput is the Add Category form payload.
type CategoryInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// AddCategory creates a category and appends the server-confirmed record.
// On failure the server's error text is surfaced verbatim (a 409 conflict
// message included) and local state is untouched.
func (c *Controller) AddCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	payload := struct {
		CategoryInput
		UserID string `json:"userId"`
	}{in, c.userID}

	var created models.Category
	if err := c.post(ctx, "/api/categories", payload, &created); err != nil {
		msg := "Failed to add category. Please try again."
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		c.setError(msg)
		return nil, err
	}

	c.mu.Lock()
	c.categories = append(c.categories, created)
	c.mu.Unlock()
	return &created, nil
}

// State returns the controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Categories returns a copy of the current category list.
func (c *Controller) Categories() []models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Expenses returns a copy of the current expense list.
func (c *Controller) Expenses() []models.Expense {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Expense, len(c.expenses))
	copy(out, c.expenses)
	return out
}

// LastError returns the advisory error banner text, empty when none.
func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// ClearError dismisses the error banner.
func (c *Controller) ClearError() {
	c.setError("")
}

// Total is the sum over the currently loaded expenses.
func (c *Controller) Total() float64 {
	return stats.Total(c.Expenses())
}

// MonthToDateTotal is the sum over the currently loaded expenses falling in
// ref's calendar month.
func (c *Controller) MonthToDateTotal(ref time.Time) float64 {
	return stats.MonthlyTotal(c.Expenses(), ref)
}

func (c *Controller) setError(msg string) {
	c.mu.Lock()
	c.lastErr = msg
	c.mu.Unlock()
}

func (c *Controller) get(ctx context.Context, path string, out interface{}) error {
	u := fmt.Sprintf("%s%s?userId=%s", c.baseURL, path, url.QueryEscape(c.userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Controller) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Controller) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Error == "" {
			body.Error = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: body.Error}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
