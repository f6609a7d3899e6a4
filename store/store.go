// Package store implements the persistence contract on top of gorm: user
// upsert, category and expense CRUD, and the typed errors handlers map to
// HTTP status codes.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/correia-jilson/pennywise-tracker/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound marks a referenced record that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict marks a uniqueness violation.
	ErrConflict = errors.New("record already exists")
)

// Store wraps the database connection.
type Store struct {
	db *gorm.DB
}

// New creates a Store on the given connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// EnsureUser provisions the user record if it does not exist yet. Existing
// users are left untouched, so the call never fails on a known id.
func (s *Store) EnsureUser(id string) error {
	return ensureUser(s.db, id)
}

func ensureUser(tx *gorm.DB, id string) error {
	user := models.User{
		ID:    id,
		Email: fmt.Sprintf("%s@demo.com", id),
		Name:  "Demo User",
	}
	var existing models.User
	err := tx.Where("id = ?", id).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&user).Error
}

// ListCategories returns the user's categories ordered by name ascending.
func (s *Store) ListCategories(userID string) ([]models.Category, error) {
	var list []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CreateCategory inserts a category for the user, provisioning the user
// first. The user upsert and the insert share one transaction so a failed
// insert never leaves a stray user behind. A duplicate name for the same
// user fails with ErrConflict.
func (s *Store) CreateCategory(userID, name, color, icon string) (*models.Category, error) {
	if icon == "" {
		icon = models.DefaultIcon
	}
	cat := models.Category{
		Name:   name,
		Color:  color,
		Icon:   icon,
		UserID: userID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, userID); err != nil {
			return err
		}
		var existing models.Category
		err := tx.Where("user_id = ? AND name = ?", userID, name).First(&existing).Error
		if err == nil {
			return fmt.Errorf("category %q: %w", name, ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&cat).Error
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// expenseRow carries the category snapshot columns joined onto an expense.
type expenseRow struct {
	models.Expense
	CategoryName  string
	CategoryColor string
}

func (r expenseRow) toExpense() models.Expense {
	e := r.Expense
	e.Category = models.CategoryRef{
		ID:    r.CategoryID,
		Name:  r.CategoryName,
		Color: r.CategoryColor,
	}
	return e
}

// ListExpenses returns the user's expenses, newest first, each joined with
// its category's id/name/color snapshot.
func (s *Store) ListExpenses(userID string) ([]models.Expense, error) {
	return s.ListExpensesRange(userID, time.Time{}, time.Time{})
}

// ListExpensesRange is ListExpenses restricted to [start, end]. Zero times
// leave the corresponding bound open.
func (s *Store) ListExpensesRange(userID string, start, end time.Time) ([]models.Expense, error) {
	query := s.db.Model(&models.Expense{}).
		Select("expenses.*, categories.name AS category_name, categories.color AS category_color").
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ?", userID)
	if !start.IsZero() {
		query = query.Where("expenses.date >= ?", start)
	}
	if !end.IsZero() {
		query = query.Where("expenses.date <= ?", end)
	}

	var rows []expenseRow
	if err := query.Order("expenses.date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	expenses := make([]models.Expense, 0, len(rows))
	for _, r := range rows {
		expenses = append(expenses, r.toExpense())
	}
	return expenses, nil
}

// CreateExpense inserts an expense for the user, provisioning the user
// first, inside one transaction. The category is resolved up front and a
// missing category fails the whole create with ErrNotFound; nothing is
// inserted in that case. The returned expense carries the category
// snapshot.
func (s *Store) CreateExpense(userID string, amount float64, description string, date time.Time, categoryID string) (*models.Expense, error) {
	expense := models.Expense{
		Amount:      amount,
		Description: description,
		Date:        models.Day(date),
		CategoryID:  categoryID,
		UserID:      userID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, userID); err != nil {
			return err
		}
		var cat models.Category
		if err := tx.Where("id = ?", categoryID).First(&cat).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("category %q: %w", categoryID, ErrNotFound)
			}
			return err
		}
		expense.Category = models.CategoryRef{ID: cat.ID, Name: cat.Name, Color: cat.Color}
		return tx.Create(&expense).Error
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes an expense by id, failing with ErrNotFound when no
// row matches. No ownership check is applied.
func (s *Store) DeleteExpense(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Expense{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("expense %q: %w", id, ErrNotFound)
	}
	return nil
}
