package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/domakasa/domakasa/internal/storage"
	"github.com/domakasa/domakasa/internal/utils"
	"github.com/domakasa/domakasa/pkg/apartment"
	"github.com/domakasa/domakasa/pkg/budget"
	"github.com/domakasa/domakasa/pkg/category"
	"github.com/domakasa/domakasa/pkg/dailycash"
	"github.com/domakasa/domakasa/pkg/expense"
	"github.com/domakasa/domakasa/pkg/goal"
	"github.com/domakasa/domakasa/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{Id: 1})

type fixture struct {
	service    Service
	expenses   expense.Service
	budgets    budget.Service
	goals      goal.Service
	apartments apartment.Service
	dailyCash  dailycash.Service
	categories category.Service
}

func newFixture() fixture {
	clock := &utils.MockClock{FixedNow: time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)}
	expenseService := expense.NewExpenseService(expense.NewStubExpenseRepo(), storage.NewMemStorage(), clock)
	budgetService := budget.NewBudgetService(budget.NewStubBudgetRepo())
	goalService := goal.NewGoalService(goal.NewStubGoalRepo())
	apartmentService := apartment.NewApartmentService(apartment.NewStubApartmentRepo(), apartment.NewStubPaymentRepo())
	dailyCashService := dailycash.NewDailyCashService(dailycash.NewStubDailyCashRepo())
	categoryService := category.NewCategoryService(category.NewStubCategoryRepo())

	return fixture{
		service: NewReportService(
			expenseService, budgetService, goalService,
			apartmentService, dailyCashService, categoryService,
		),
		expenses:   expenseService,
		budgets:    budgetService,
		goals:      goalService,
		apartments: apartmentService,
		dailyCash:  dailyCashService,
		categories: categoryService,
	}
}

func TestServiceImpl_GetDashboard(t *testing.T) {
	t.Run("should join spending, fund, goals, collection and cash for the month", func(t *testing.T) {
		// given
		f := newFixture()
		electricity, err := f.categories.Create(ctx, category.Category{Name: "Ток"})
		require.NoError(t, err)

		for _, e := range []expense.Expense{
			{Amount: 9000, IncurredAt: "2025-05-10"},
			{Amount: 12000, IncurredAt: "2025-06-10"},
			{Amount: 15000, IncurredAt: "2025-07-10", CategoryID: electricity.ID},
			{Amount: 10000, IncurredAt: "2025-08-05", CategoryID: electricity.ID},
			{Amount: 2000, IncurredAt: "2025-08-12"},
		} {
			_, err := f.expenses.Create(ctx, e, nil)
			require.NoError(t, err)
		}
		_, err = f.budgets.Create(ctx, budget.Budget{Amount: 60000, Note: "вноски"})
		require.NoError(t, err)
		_, err = f.goals.Create(ctx, goal.Goal{Title: "Ремонт", Target: 50000, Saved: 15000})
		require.NoError(t, err)
		flat, err := f.apartments.Create(ctx, apartment.Apartment{Name: "Ап. 1", MonthlyFee: 3500, Active: true})
		require.NoError(t, err)
		require.NoError(t, f.apartments.MarkPaid(ctx, flat.ID, "2025-08"))
		require.NoError(t, f.dailyCash.Record(ctx, dailycash.Entry{Date: "2025-08-14", Amount: 7700}))

		// when
		dashboard, err := f.service.GetDashboard(ctx, "2025-08")

		// then
		require.NoError(t, err)
		assert.Equal(t, int64(12000), dashboard.ExpenseTotal)
		assert.Equal(t, int64(15000), dashboard.PreviousTotal)
		assert.Equal(t, int64(60000), dashboard.BudgetTotal)
		assert.Equal(t, int64(60000-48000), dashboard.Balance)
		assert.Equal(t, int64(7700), dashboard.CashOnHand)
		assert.Equal(t, "2025-08-14", dashboard.CashDate)

		require.True(t, dashboard.TrendDefined)
		assert.Equal(t, -20, dashboard.TrendPercent)
		require.True(t, dashboard.ForecastDefined)
		assert.Equal(t, int64(12000), dashboard.Forecast)

		require.Len(t, dashboard.History, 6)
		assert.Equal(t, MonthTotal{Period: "2025-03", Total: 0}, dashboard.History[0])
		assert.Equal(t, MonthTotal{Period: "2025-05", Total: 9000}, dashboard.History[2])
		assert.Equal(t, MonthTotal{Period: "2025-07", Total: 15000}, dashboard.History[4])
		assert.Equal(t, MonthTotal{Period: "2025-08", Total: 12000}, dashboard.History[5])

		require.Len(t, dashboard.ByCategory, 2)
		assert.Equal(t, "Ток", dashboard.ByCategory[0].Label)
		assert.Equal(t, int64(10000), dashboard.ByCategory[0].Total)
		assert.Equal(t, UncategorizedLabel, dashboard.ByCategory[1].Label)

		require.Len(t, dashboard.Goals, 1)
		assert.Equal(t, 30, dashboard.Goals[0].Progress())
		assert.Equal(t, int64(3500), dashboard.Collection.Collected)
		assert.Equal(t, 100, dashboard.Collection.Progress)
	})

	t.Run("should leave trend and forecast undefined on an empty history", func(t *testing.T) {
		// given
		f := newFixture()

		// when
		dashboard, err := f.service.GetDashboard(ctx, "2025-08")

		// then
		require.NoError(t, err)
		assert.False(t, dashboard.TrendDefined)
		assert.False(t, dashboard.ForecastDefined)
		assert.Zero(t, dashboard.Balance)
		require.Len(t, dashboard.History, 6)
		for _, m := range dashboard.History {
			assert.Zero(t, m.Total, m.Period)
		}
	})

	t.Run("should reject a malformed period", func(t *testing.T) {
		// given
		f := newFixture()

		// when
		_, err := f.service.GetDashboard(ctx, "08-2025")

		// then
		assert.Error(t, err)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		// given
		f := newFixture()

		// when
		_, err := f.service.GetDashboard(context.Background(), "2025-08")

		// then
		assert.Error(t, err)
	})
}

func TestServiceImpl_GetMonthlyReportCSV(t *testing.T) {
	t.Run("should render only the requested month", func(t *testing.T) {
		// given
		f := newFixture()
		_, err := f.expenses.Create(ctx, expense.Expense{Amount: 999, IncurredAt: "2025-08-10"}, nil)
		require.NoError(t, err)
		_, err = f.expenses.Create(ctx, expense.Expense{Amount: 5000, IncurredAt: "2025-07-10"}, nil)
		require.NoError(t, err)

		// when
		csv, err := f.service.GetMonthlyReportCSV(ctx, "2025-08")

		// then
		require.NoError(t, err)
		assert.Contains(t, csv, "Месец,2025-08")
		assert.Contains(t, csv, "Общо,1,9.99")
		assert.NotContains(t, csv, "50.00")
	})
}

func TestServiceImpl_GetExpensesXLSX(t *testing.T) {
	t.Run("should export the range with category labels resolved", func(t *testing.T) {
		// given
		f := newFixture()
		electricity, err := f.categories.Create(ctx, category.Category{Name: "Ток"})
		require.NoError(t, err)
		_, err = f.expenses.Create(ctx, expense.Expense{
			Amount: 30000, IncurredAt: "2025-08-10", Description: "фактура август", CategoryID: electricity.ID,
		}, nil)
		require.NoError(t, err)

		// when
		file, err := f.service.GetExpensesXLSX(ctx, "2025-08-01", "2025-08-31")

		// then
		require.NoError(t, err)
		rows, err := file.GetRows("Разходи")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"Дата", "Описание", "Получател", "Категория", "Сума (лв.)"}, rows[0])
		assert.Equal(t, "2025-08-10", rows[1][0])
		assert.Equal(t, "Ток", rows[1][3])
		assert.Equal(t, "300.00", rows[1][4])
	})

	t.Run("should label uncategorized rows with the fallback", func(t *testing.T) {
		// given
		f := newFixture()
		_, err := f.expenses.Create(ctx, expense.Expense{Amount: 999, IncurredAt: "2025-08-10"}, nil)
		require.NoError(t, err)

		// when
		file, err := f.service.GetExpensesXLSX(ctx, "2025-08-01", "2025-08-31")

		// then
		require.NoError(t, err)
		rows, err := file.GetRows("Разходи")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.True(t, strings.Contains(rows[1][3], UncategorizedLabel))
	})
}
