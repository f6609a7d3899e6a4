package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/correia-jilson/pennywise-tracker/models"
	"github.com/correia-jilson/pennywise-tracker/store"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	store *store.Store
}

// NewCategoryHandler creates a category handler.
func NewCategoryHandler(s *store.Store) *CategoryHandler {
	return &CategoryHandler{store: s}
}

// CategoryCreateRequest is the create-category request body.
type CategoryCreateRequest struct {
	Name   string `json:"name" example:"Food & Dining"`
	Color  string `json:"color" example:"#EF4444"`
	Icon   string `json:"icon" example:"Utensils"`
	UserID string `json:"userId" example:"demo-user"`
}

// List returns the user's categories.
// @Summary List categories
// @Description Returns all categories owned by the user, sorted by name ascending.
// @Tags categories
// @Produce json
// @Param userId query string false "Owning user id" default(demo-user)
// @Success 200 {array} models.Category "Category list"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	userID := requestUserID(c)

	list, err := h.store.ListCategories(userID)
	if err != nil {
		FailWithDetails(c, http.StatusInternalServerError, "Failed to fetch categories", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create adds a category for the user, provisioning the user on first
// contact.
// @Summary Create category
// @Description Creates a category. The owning user is provisioned implicitly when unknown. Name must be unique per user.
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "Category fields"
// @Success 201 {object} models.Category "Created category"
// @Failure 400 {object} ErrorResponse "Missing name or color"
// @Failure 409 {object} ErrorResponse "Duplicate name"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Name and color are required")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Color == "" {
		Fail(c, http.StatusBadRequest, "Name and color are required")
		return
	}
	if req.UserID == "" {
		req.UserID = models.DefaultUserID
	}

	cat, err := h.store.CreateCategory(req.UserID, req.Name, req.Color, req.Icon)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			Fail(c, http.StatusConflict, "Category with this name already exists")
			return
		}
		FailWithDetails(c, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	c.JSON(http.StatusCreated, cat)
}
