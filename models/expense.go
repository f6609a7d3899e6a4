package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRef is the category snapshot embedded in expense responses so the
// client can render name and color without a second lookup.
type CategoryRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Expense is a single spend record. Date carries day granularity only and
// is stored as midnight UTC.
type Expense struct {
	ID          string      `json:"id" gorm:"primaryKey;size:36"`
	Amount      float64     `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description string      `json:"description" gorm:"size:255"`
	Date        time.Time   `json:"date" gorm:"not null;index"`
	CategoryID  string      `json:"categoryId" gorm:"size:36;not null;index"`
	UserID      string      `json:"userId" gorm:"size:64;not null;index"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Category    CategoryRef `json:"category" gorm:"-"`
}

// TableName sets the table name
func (Expense) TableName() string {
	return "expenses"
}

// BeforeCreate generates the identifier when absent.
func (e *Expense) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// Day normalizes a timestamp to midnight UTC, the granularity expenses are
// stored and grouped at.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
