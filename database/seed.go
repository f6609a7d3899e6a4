package database

import (
	"log"
	"time"

	"github.com/correia-jilson/pennywise-tracker/models"

	"gorm.io/gorm"
)

// Seed inserts the demo user, a default category set and a handful of
// sample expenses. It only runs against an empty table, so restarting the
// server never duplicates data.
func Seed(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		user := models.User{
			ID:    models.DefaultUserID,
			Email: "demo@pennywise.com",
			Name:  "Demo User",
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("seeded user: %s", user.Email)
	}

	var catCount int64
	db.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		cats := []models.Category{
			{ID: "food-category", Name: "Food & Dining", Color: "#EF4444", Icon: "Utensils", UserID: models.DefaultUserID},
			{ID: "transport-category", Name: "Transportation", Color: "#3B82F6", Icon: "Car", UserID: models.DefaultUserID},
			{ID: "entertainment-category", Name: "Entertainment", Color: "#8B5CF6", Icon: "Music", UserID: models.DefaultUserID},
			{ID: "shopping-category", Name: "Shopping", Color: "#10B981", Icon: "ShoppingBag", UserID: models.DefaultUserID},
			{ID: "health-category", Name: "Health & Fitness", Color: "#F59E0B", Icon: "Heart", UserID: models.DefaultUserID},
			{ID: "bills-category", Name: "Bills & Utilities", Color: "#6B7280", Icon: "Receipt", UserID: models.DefaultUserID},
		}
		if err := db.Create(&cats).Error; err != nil {
			return err
		}
		log.Printf("seeded categories: %d", len(cats))
	}

	var expCount int64
	db.Model(&models.Expense{}).Count(&expCount)
	if expCount == 0 {
		today := models.Day(time.Now())
		daysAgo := func(n int) time.Time { return today.AddDate(0, 0, -n) }

		expenses := []models.Expense{
			{Amount: 12.50, Description: "Coffee and pastry", Date: today, CategoryID: "food-category", UserID: models.DefaultUserID},
			{Amount: 8.00, Description: "Bus ticket", Date: today, CategoryID: "transport-category", UserID: models.DefaultUserID},
			{Amount: 45.99, Description: "Grocery shopping", Date: daysAgo(1), CategoryID: "food-category", UserID: models.DefaultUserID},
			{Amount: 15.00, Description: "Movie ticket", Date: daysAgo(1), CategoryID: "entertainment-category", UserID: models.DefaultUserID},
			{Amount: 89.99, Description: "New running shoes", Date: daysAgo(2), CategoryID: "shopping-category", UserID: models.DefaultUserID},
			{Amount: 25.00, Description: "Gym membership", Date: daysAgo(2), CategoryID: "health-category", UserID: models.DefaultUserID},
			{Amount: 120.00, Description: "Electricity bill", Date: daysAgo(3), CategoryID: "bills-category", UserID: models.DefaultUserID},
			{Amount: 32.50, Description: "Lunch with friends", Date: daysAgo(3), CategoryID: "food-category", UserID: models.DefaultUserID},
			{Amount: 67.89, Description: "Online shopping - electronics", Date: daysAgo(7), CategoryID: "shopping-category", UserID: models.DefaultUserID},
			{Amount: 18.50, Description: "Taxi ride", Date: daysAgo(8), CategoryID: "transport-category", UserID: models.DefaultUserID},
		}
		if err := db.Create(&expenses).Error; err != nil {
			return err
		}
		log.Printf("seeded expenses: %d", len(expenses))
	}

	return nil
}
