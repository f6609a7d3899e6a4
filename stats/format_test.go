package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$0.50", FormatCurrency(0.5))
	assert.Equal(t, "$25.50", FormatCurrency(25.5))
	assert.Equal(t, "$1,234.56", FormatCurrency(1234.56))
	assert.Equal(t, "$1,234,567.89", FormatCurrency(1234567.89))
	assert.Equal(t, "-$99.99", FormatCurrency(-99.99))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Jan 15", FormatDate(d, false))
	assert.Equal(t, "January 15, 2024", FormatDate(d, true))
}

func TestRelativeDate(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	at := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	assert.Equal(t, "Today", RelativeDate(now, now))
	assert.Equal(t, "Yesterday", RelativeDate(at(1), now))
	assert.Equal(t, "3 days ago", RelativeDate(at(3), now))
	assert.Equal(t, "2 weeks ago", RelativeDate(at(15), now))
	assert.Equal(t, "2 months ago", RelativeDate(at(70), now))
	assert.Equal(t, "2 years ago", RelativeDate(at(800), now))
}
