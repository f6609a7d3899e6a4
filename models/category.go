package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups expenses for one user. Name is unique per user; the
// color is a hex code like #EF4444 and the icon is a client-side icon name.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:50;not null;uniqueIndex:idx_categories_user_name"`
	Color     string    `json:"color" gorm:"size:20;not null"`
	Icon      string    `json:"icon" gorm:"size:50;default:DollarSign"`
	UserID    string    `json:"userId" gorm:"size:64;not null;uniqueIndex:idx_categories_user_name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the table name
func (Category) TableName() string {
	return "categories"
}

// BeforeCreate generates the identifier when the caller did not supply one
// (seed data carries fixed ids).
func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// DefaultIcon is used when a create request omits the icon field.
const DefaultIcon = "DollarSign"
