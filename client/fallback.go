package client

import (
	"time"

	"github.com/correia-jilson/pennywise-tracker/models"
)

// DemoDataset is the default fallback: a small fixed dataset shown when the
// backend cannot be reached, so the dashboard renders something instead of
// a blank screen. It is a literal substitute, not derived from prior state.
func DemoDataset() Dataset {
	now := time.Now()
	today := models.Day(now)
	yesterday := today.AddDate(0, 0, -1)

	categories := []models.Category{
		{ID: "1", Name: "Food", Color: "#EF4444", Icon: "Utensils", UserID: models.DefaultUserID, CreatedAt: now, UpdatedAt: now},
		{ID: "2", Name: "Transport", Color: "#3B82F6", Icon: "Car", UserID: models.DefaultUserID, CreatedAt: now, UpdatedAt: now},
		{ID: "3", Name: "Entertainment", Color: "#8B5CF6", Icon: "Music", UserID: models.DefaultUserID, CreatedAt: now, UpdatedAt: now},
		{ID: "4", Name: "Shopping", Color: "#10B981", Icon: "ShoppingBag", UserID: models.DefaultUserID, CreatedAt: now, UpdatedAt: now},
	}

	expenses := []models.Expense{
		{
			ID:          "1",
			Amount:      25.50,
			Description: "Lunch at cafe",
			Date:        today,
			CategoryID:  "1",
			UserID:      models.DefaultUserID,
			CreatedAt:   now,
			UpdatedAt:   now,
			Category:    models.CategoryRef{ID: "1", Name: "Food", Color: "#EF4444"},
		},
		{
			ID:          "2",
			Amount:      15.00,
			Description: "Bus ticket",
			Date:        yesterday,
			CategoryID:  "2",
			UserID:      models.DefaultUserID,
			CreatedAt:   now,
			UpdatedAt:   now,
			Category:    models.CategoryRef{ID: "2", Name: "Transport", Color: "#3B82F6"},
		},
	}

	return Dataset{Categories: categories, Expenses: expenses}
}
