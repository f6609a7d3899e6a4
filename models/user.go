package models

import (
	"time"
)

// DefaultUserID is the demo account every request falls back to when no
// userId is supplied. There is no authentication in this app.
const DefaultUserID = "demo-user"

// User owns categories and expenses. Users are provisioned implicitly on
// first write, never through a dedicated endpoint.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Email     string    `json:"email" gorm:"size:100;not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"size:100"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the table name
func (User) TableName() string {
	return "users"
}
