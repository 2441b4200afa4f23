package report

import (
	"time"

	"github.com/domakasa/domakasa/pkg/category"
	"github.com/domakasa/domakasa/pkg/expense"
)

// UncategorizedLabel groups spending that has no category attached.
const UncategorizedLabel = "Без категория"

type MonthTotal struct {
	Period string // YYYY-MM
	Total  int64
}

type CategoryTotal struct {
	Label string
	Total int64
	Count int
}

// MonthlyTotals buckets expenses into calendar months by the date prefix
// of their incurred date.
func MonthlyTotals(expenses []expense.Expense) map[string]int64 {
	totals := make(map[string]int64)
	for _, e := range expenses {
		if len(e.IncurredAt) < 7 {
			continue
		}
		totals[e.IncurredAt[:7]] += e.Amount
	}
	return totals
}

// PeriodsBetween lists the YYYY-MM keys from one period to another,
// inclusive and ascending. A reversed range is empty.
func PeriodsBetween(from, to string) []string {
	start, err := time.Parse("2006-01", from)
	if err != nil {
		return nil
	}
	end, err := time.Parse("2006-01", to)
	if err != nil {
		return nil
	}

	var periods []string
	for t := start; !t.After(end); t = t.AddDate(0, 1, 0) {
		periods = append(periods, t.Format("2006-01"))
	}
	return periods
}

// LastMonths lists the n most recent period keys ending at the given
// time's month, ascending.
func LastMonths(now time.Time, n int) []string {
	return PeriodsBetween(now.AddDate(0, -(n-1), 0).Format("2006-01"), now.Format("2006-01"))
}

// CategoryTotals sums spending per category, keeping the caller's category
// order. Categories without spending are left out; spending without a
// category lands under UncategorizedLabel at the end.
func CategoryTotals(expenses []expense.Expense, categories []category.Category) []CategoryTotal {
	totalById := make(map[int]*CategoryTotal)
	uncategorized := CategoryTotal{Label: UncategorizedLabel}
	for _, e := range expenses {
		if e.CategoryID == 0 {
			uncategorized.Total += e.Amount
			uncategorized.Count++
			continue
		}
		if t, ok := totalById[e.CategoryID]; ok {
			t.Total += e.Amount
			t.Count++
		} else {
			totalById[e.CategoryID] = &CategoryTotal{Total: e.Amount, Count: 1}
		}
	}

	var totals []CategoryTotal
	for _, c := range categories {
		if t, ok := totalById[c.ID]; ok {
			t.Label = c.Name
			totals = append(totals, *t)
			delete(totalById, c.ID)
		}
	}
	// spending on a category that no longer exists is still spending
	for _, t := range totalById {
		t.Label = UncategorizedLabel
		uncategorized.Total += t.Total
		uncategorized.Count += t.Count
	}
	if uncategorized.Count > 0 {
		totals = append(totals, uncategorized)
	}
	return totals
}

// TrendPercent reports the month-over-month change as a whole percentage.
// With no previous spending there is no meaningful trend and ok is false.
func TrendPercent(current, previous int64) (int, bool) {
	if previous == 0 {
		return 0, false
	}
	diff := current - previous
	percent := int((diff*200 + sign(diff)*previous) / (2 * previous))
	return percent, true
}

// Forecast predicts next month's spending as the mean of the three
// completed months before the given period. Months without any recorded
// spending make the estimate unreliable, reported through ok.
func Forecast(totals map[string]int64, period string) (int64, bool) {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return 0, false
	}

	var sum int64
	for i := 1; i <= 3; i++ {
		monthTotal, ok := totals[t.AddDate(0, -i, 0).Format("2006-01")]
		if !ok {
			return 0, false
		}
		sum += monthTotal
	}
	return sum / 3, true
}

func sign(v int64) int64 {
	if v < 0 {
		return -1
	}
	return 1
}
