// Package stats provides the pure aggregation helpers the dashboard charts
// and summary cards are fed with. Every function is a single pass over an
// already-loaded expense slice, leaves its input untouched and is
// deterministic given the same input and reference time. All calendar math
// is pinned to UTC.
package stats

import (
	"sort"
	"time"

	"github.com/correia-jilson/pennywise-tracker/models"
)

// MaxChartDays caps the daily chart feed at the most recent days.
const MaxChartDays = 7

// DayBucket is one bar of the daily trend chart.
type DayBucket struct {
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

// CategoryBucket is one slice of the category pie chart.
type CategoryBucket struct {
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Total float64 `json:"total"`
}

// Total sums all expense amounts.
func Total(expenses []models.Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}

// MonthlyTotal sums the expenses falling in the same calendar month and
// year as ref (month-to-date when ref is now).
func MonthlyTotal(expenses []models.Expense, ref time.Time) float64 {
	ref = ref.UTC()
	return MonthTotal(expenses, ref.Year(), ref.Month())
}

// MonthTotal sums the expenses of an explicit month and year.
func MonthTotal(expenses []models.Expense, year int, month time.Month) float64 {
	var sum float64
	for _, e := range expenses {
		d := e.Date.UTC()
		if d.Year() == year && d.Month() == month {
			sum += e.Amount
		}
	}
	return sum
}

// DailyBuckets partitions expenses by calendar day and returns the most
// recent MaxChartDays buckets in chronological order.
func DailyBuckets(expenses []models.Expense) []DayBucket {
	totals := make(map[time.Time]float64)
	for _, e := range expenses {
		day := models.Day(e.Date)
		totals[day] += e.Amount
	}

	buckets := make([]DayBucket, 0, len(totals))
	for day, total := range totals {
		buckets = append(buckets, DayBucket{Date: day, Total: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})

	if len(buckets) > MaxChartDays {
		buckets = buckets[len(buckets)-MaxChartDays:]
	}
	return buckets
}

// CategoryBuckets partitions expenses by category name, each bucket
// carrying the category color and its running total. Buckets appear in
// first-appearance order of the input; consumers may re-sort.
func CategoryBuckets(expenses []models.Expense) []CategoryBucket {
	index := make(map[string]int)
	buckets := make([]CategoryBucket, 0)
	for _, e := range expenses {
		name := e.Category.Name
		i, ok := index[name]
		if !ok {
			i = len(buckets)
			index[name] = i
			buckets = append(buckets, CategoryBucket{Name: name, Color: e.Category.Color})
		}
		buckets[i].Total += e.Amount
	}
	return buckets
}
