package stats

import (
	"math/rand"
	"testing"
	"time"

	"github.com/correia-jilson/pennywise-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func expense(amount float64, date time.Time, catName, catColor string) models.Expense {
	return models.Expense{
		Amount:   amount,
		Date:     date,
		Category: models.CategoryRef{Name: catName, Color: catColor},
	}
}

func sampleExpenses() []models.Expense {
	return []models.Expense{
		expense(12.50, day(2024, 1, 15), "Food", "#EF4444"),
		expense(8.00, day(2024, 1, 15), "Transport", "#3B82F6"),
		expense(45.99, day(2024, 1, 14), "Food", "#EF4444"),
		expense(15.00, day(2024, 1, 13), "Entertainment", "#8B5CF6"),
		expense(89.99, day(2024, 1, 10), "Shopping", "#10B981"),
		expense(25.00, day(2023, 12, 28), "Food", "#EF4444"),
	}
}

func TestTotal(t *testing.T) {
	expenses := sampleExpenses()
	want := 12.50 + 8.00 + 45.99 + 15.00 + 89.99 + 25.00
	assert.InDelta(t, want, Total(expenses), 1e-9)

	// order independence
	shuffled := append([]models.Expense(nil), expenses...)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	assert.InDelta(t, Total(expenses), Total(shuffled), 1e-9)

	assert.Zero(t, Total(nil))
}

func TestMonthlyTotal(t *testing.T) {
	expenses := sampleExpenses()

	jan := time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC)
	assert.InDelta(t, 12.50+8.00+45.99+15.00+89.99, MonthlyTotal(expenses, jan), 1e-9)

	dec := time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)
	assert.InDelta(t, 25.00, MonthlyTotal(expenses, dec), 1e-9)

	// month math is pinned to UTC regardless of the reference's zone
	tokyo := time.FixedZone("JST", 9*3600)
	newYearsEveUTC := time.Date(2024, 1, 1, 8, 0, 0, 0, tokyo) // 2023-12-31 23:00 UTC
	assert.InDelta(t, 25.00, MonthlyTotal(expenses, newYearsEveUTC), 1e-9)

	assert.Zero(t, MonthlyTotal(expenses, time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthTotal(t *testing.T) {
	expenses := sampleExpenses()
	assert.InDelta(t, 25.00, MonthTotal(expenses, 2023, time.December), 1e-9)
	assert.Zero(t, MonthTotal(expenses, 2024, time.February))
}

func TestDailyBuckets(t *testing.T) {
	expenses := sampleExpenses()
	buckets := DailyBuckets(expenses)

	// partition law: bucket totals re-sum to the grand total
	var sum float64
	for _, b := range buckets {
		sum += b.Total
	}
	assert.InDelta(t, Total(expenses), sum, 1e-9)

	// chronologically ascending
	for i := 1; i < len(buckets); i++ {
		assert.True(t, buckets[i-1].Date.Before(buckets[i].Date))
	}

	// same-day expenses merge into one bucket
	require.Len(t, buckets, 5)
	assert.Equal(t, day(2024, 1, 15), buckets[len(buckets)-1].Date)
	assert.InDelta(t, 12.50+8.00, buckets[len(buckets)-1].Total, 1e-9)
}

func TestDailyBuckets_CapsAtSevenDays(t *testing.T) {
	var expenses []models.Expense
	for i := 0; i < 30; i++ {
		expenses = append(expenses, expense(1, day(2024, 3, 1).AddDate(0, 0, i), "Food", "#EF4444"))
	}
	buckets := DailyBuckets(expenses)

	require.Len(t, buckets, MaxChartDays)
	// the retained buckets are the most recent days
	assert.Equal(t, day(2024, 3, 24), buckets[0].Date)
	assert.Equal(t, day(2024, 3, 30), buckets[len(buckets)-1].Date)
}

func TestDailyBuckets_Empty(t *testing.T) {
	assert.Empty(t, DailyBuckets(nil))
}

func TestCategoryBuckets(t *testing.T) {
	expenses := sampleExpenses()
	buckets := CategoryBuckets(expenses)

	// partition law
	var sum float64
	for _, b := range buckets {
		sum += b.Total
	}
	assert.InDelta(t, Total(expenses), sum, 1e-9)

	// first-appearance order, colors taken from the member expenses
	require.Len(t, buckets, 4)
	assert.Equal(t, "Food", buckets[0].Name)
	assert.Equal(t, "#EF4444", buckets[0].Color)
	assert.InDelta(t, 12.50+45.99+25.00, buckets[0].Total, 1e-9)
	assert.Equal(t, "Transport", buckets[1].Name)
	assert.Equal(t, "Entertainment", buckets[2].Name)
	assert.Equal(t, "Shopping", buckets[3].Name)
}

func TestAggregationDoesNotMutateInput(t *testing.T) {
	expenses := sampleExpenses()
	snapshot := append([]models.Expense(nil), expenses...)

	Total(expenses)
	MonthlyTotal(expenses, time.Now())
	DailyBuckets(expenses)
	CategoryBuckets(expenses)

	assert.Equal(t, snapshot, expenses)
}
