package report

import (
	"testing"
	"time"

	"github.com/domakasa/domakasa/pkg/category"
	"github.com/domakasa/domakasa/pkg/expense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyTotals(t *testing.T) {
	t.Run("should bucket expenses by the month of their date", func(t *testing.T) {
		// given
		expenses := []expense.Expense{
			{Amount: 100, IncurredAt: "2025-07-01"},
			{Amount: 250, IncurredAt: "2025-07-31"},
			{Amount: 999, IncurredAt: "2025-08-15"},
		}

		// when
		totals := MonthlyTotals(expenses)

		// then
		assert.Equal(t, int64(350), totals["2025-07"])
		assert.Equal(t, int64(999), totals["2025-08"])
		assert.Len(t, totals, 2)
	})
}

func TestPeriodsBetween(t *testing.T) {
	t.Run("should list periods inclusive across a year boundary", func(t *testing.T) {
		assert.Equal(t, []string{"2024-11", "2024-12", "2025-01"}, PeriodsBetween("2024-11", "2025-01"))
	})

	t.Run("should return nothing for a reversed range", func(t *testing.T) {
		assert.Empty(t, PeriodsBetween("2025-03", "2025-01"))
	})
}

func TestLastMonths(t *testing.T) {
	t.Run("should end at the month of the given time", func(t *testing.T) {
		now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, []string{"2025-06", "2025-07", "2025-08"}, LastMonths(now, 3))
	})
}

func TestCategoryTotals(t *testing.T) {
	categories := []category.Category{
		{ID: 1, Name: "Ток"},
		{ID: 2, Name: "Вода"},
		{ID: 3, Name: "Асансьор"},
	}

	t.Run("should keep the caller's category order and sum per category", func(t *testing.T) {
		// given
		expenses := []expense.Expense{
			{Amount: 100, CategoryID: 2},
			{Amount: 300, CategoryID: 1},
			{Amount: 200, CategoryID: 2},
		}

		// when
		totals := CategoryTotals(expenses, categories)

		// then
		require.Len(t, totals, 2)
		assert.Equal(t, CategoryTotal{Label: "Ток", Total: 300, Count: 1}, totals[0])
		assert.Equal(t, CategoryTotal{Label: "Вода", Total: 300, Count: 2}, totals[1])
	})

	t.Run("should put uncategorized spending last under the fallback label", func(t *testing.T) {
		// given
		expenses := []expense.Expense{
			{Amount: 500},
			{Amount: 100, CategoryID: 1},
		}

		// when
		totals := CategoryTotals(expenses, categories)

		// then
		require.Len(t, totals, 2)
		assert.Equal(t, UncategorizedLabel, totals[1].Label)
		assert.Equal(t, int64(500), totals[1].Total)
	})

	t.Run("should produce one entry per spending category summing to the input", func(t *testing.T) {
		// given
		four := []category.Category{
			{ID: 1, Name: "Ток"},
			{ID: 2, Name: "Вода"},
			{ID: 3, Name: "Асансьор"},
			{ID: 4, Name: "Ремонти"},
		}
		expenses := []expense.Expense{
			{Amount: 68000, CategoryID: 1},
			{Amount: 24000, CategoryID: 2},
			{Amount: 72000, CategoryID: 3},
			{Amount: 14000, CategoryID: 4},
		}

		// when
		totals := CategoryTotals(expenses, four)

		// then
		require.Len(t, totals, 4)
		var sum int64
		for _, entry := range totals {
			sum += entry.Total
		}
		assert.Equal(t, int64(178000), sum)
	})

	t.Run("should fold spending on a vanished category into the fallback", func(t *testing.T) {
		// given
		expenses := []expense.Expense{
			{Amount: 700, CategoryID: 99},
		}

		// when
		totals := CategoryTotals(expenses, categories)

		// then
		require.Len(t, totals, 1)
		assert.Equal(t, UncategorizedLabel, totals[0].Label)
		assert.Equal(t, int64(700), totals[0].Total)
	})
}

func TestTrendPercent(t *testing.T) {
	t.Run("should report the month-over-month change rounded to whole percent", func(t *testing.T) {
		percent, ok := TrendPercent(15500, 10000)
		require.True(t, ok)
		assert.Equal(t, 55, percent)
	})

	t.Run("should report a drop as a negative percentage", func(t *testing.T) {
		percent, ok := TrendPercent(5000, 10000)
		require.True(t, ok)
		assert.Equal(t, -50, percent)
	})

	t.Run("should report no trend without previous spending", func(t *testing.T) {
		_, ok := TrendPercent(15500, 0)
		assert.False(t, ok)
	})
}

func TestForecast(t *testing.T) {
	t.Run("should average the three completed months before the period", func(t *testing.T) {
		// given
		totals := map[string]int64{
			"2025-05": 9000,
			"2025-06": 12000,
			"2025-07": 15000,
			"2025-08": 500,
		}

		// when
		forecast, ok := Forecast(totals, "2025-08")

		// then
		require.True(t, ok)
		assert.Equal(t, int64(12000), forecast)
	})

	t.Run("should report insufficient data when a month is missing", func(t *testing.T) {
		// given
		totals := map[string]int64{
			"2025-06": 12000,
			"2025-07": 15000,
		}

		// when
		_, ok := Forecast(totals, "2025-08")

		// then
		assert.False(t, ok)
	})

	t.Run("should report insufficient data for a malformed period", func(t *testing.T) {
		_, ok := Forecast(map[string]int64{}, "август")
		assert.False(t, ok)
	})
}
