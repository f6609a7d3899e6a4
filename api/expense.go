package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/correia-jilson/pennywise-tracker/models"
	"github.com/correia-jilson/pennywise-tracker/store"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves the expense endpoints.
type ExpenseHandler struct {
	store *store.Store
}

// NewExpenseHandler creates an expense handler.
func NewExpenseHandler(s *store.Store) *ExpenseHandler {
	return &ExpenseHandler{store: s}
}

// ExpenseCreateRequest is the create-expense request body.
type ExpenseCreateRequest struct {
	Amount      float64 `json:"amount" example:"25.50"`
	Description string  `json:"description" example:"Lunch at cafe"`
	Date        string  `json:"date" example:"2024-01-15"`
	CategoryID  string  `json:"categoryId" example:"food-category"`
	UserID      string  `json:"userId" example:"demo-user"`
}

// parseExpenseDate accepts the dashboard's plain date form value as well as
// full timestamps, normalized to day granularity in UTC.
func parseExpenseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return models.Day(t), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return models.Day(t), nil
}

// List returns the user's expenses.
// @Summary List expenses
// @Description Returns all expenses owned by the user, newest first, each with its category id/name/color snapshot.
// @Tags expenses
// @Produce json
// @Param userId query string false "Owning user id" default(demo-user)
// @Success 200 {array} models.Expense "Expense list"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := requestUserID(c)

	list, err := h.store.ListExpenses(userID)
	if err != nil {
		FailWithDetails(c, http.StatusInternalServerError, "Failed to fetch expenses", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create adds an expense for the user, provisioning the user on first
// contact. The referenced category must exist.
// @Summary Create expense
// @Description Creates an expense. Fails when the referenced category does not exist; the store writes nothing in that case.
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body ExpenseCreateRequest true "Expense fields"
// @Success 201 {object} models.Expense "Created expense with category snapshot"
// @Failure 400 {object} ErrorResponse "Missing or malformed fields"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req ExpenseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if req.Amount <= 0 || req.Description == "" || req.Date == "" || req.CategoryID == "" {
		Fail(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.UserID == "" {
		req.UserID = models.DefaultUserID
	}

	date, err := parseExpenseDate(req.Date)
	if err != nil {
		Fail(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	expense, err := h.store.CreateExpense(req.UserID, req.Amount, req.Description, date, req.CategoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			Fail(c, http.StatusNotFound, "Category not found")
			return
		}
		FailWithDetails(c, http.StatusInternalServerError, "Failed to create expense", err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// Delete removes an expense by id.
// @Summary Delete expense
// @Description Deletes the expense with the given id. Deletion is unconditional, no ownership check is applied.
// @Tags expenses
// @Produce json
// @Param id query string true "Expense id"
// @Success 200 {object} MessageResponse "Confirmation"
// @Failure 400 {object} ErrorResponse "Missing id"
// @Failure 404 {object} ErrorResponse "No such expense"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Router /api/expenses [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		Fail(c, http.StatusBadRequest, "Expense ID is required")
		return
	}

	if err := h.store.DeleteExpense(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			Fail(c, http.StatusNotFound, "Expense not found")
			return
		}
		FailWithDetails(c, http.StatusInternalServerError, "Failed to delete expense", err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Expense deleted successfully"})
}
