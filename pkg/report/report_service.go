package report

import (
	"context"
	"time"

	"github.com/domakasa/domakasa/internal/validation"
	"github.com/domakasa/domakasa/pkg/apartment"
	"github.com/domakasa/domakasa/pkg/budget"
	"github.com/domakasa/domakasa/pkg/category"
	"github.com/domakasa/domakasa/pkg/dailycash"
	"github.com/domakasa/domakasa/pkg/expense"
	"github.com/domakasa/domakasa/pkg/goal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// historyMonths is how far back the dashboard's month series reaches,
// ending at the requested period.
const historyMonths = 6

// Dashboard is the joined month view: spending for the period against the
// fund, collection progress, goals, the latest cash snapshot and the
// month-by-month spending history behind the line chart.
type Dashboard struct {
	Period          string
	ExpenseTotal    int64
	PreviousTotal   int64
	History         []MonthTotal
	BudgetTotal     int64
	Balance         int64
	CashOnHand      int64
	CashDate        string
	TrendPercent    int
	TrendDefined    bool
	Forecast        int64
	ForecastDefined bool
	ByCategory      []CategoryTotal
	Goals           []goal.Goal
	Collection      apartment.MonthSummary
}

type Service interface {
	GetDashboard(ctx context.Context, period string) (Dashboard, error)
	GetMonthlyReportCSV(ctx context.Context, period string) (string, error)
	GetExpensesXLSX(ctx context.Context, from, to string) (*excelize.File, error)
}

type ServiceImpl struct {
	expenseService   expense.Service
	budgetService    budget.Service
	goalService      goal.Service
	apartmentService apartment.Service
	dailyCashService dailycash.Service
	categoryService  category.Service
	csvRenderer      *CsvReportRendererImpl
	xlsxRenderer     *XlsxReportRendererImpl
}

func NewReportService(
	expenseService expense.Service,
	budgetService budget.Service,
	goalService goal.Service,
	apartmentService apartment.Service,
	dailyCashService dailycash.Service,
	categoryService category.Service,
) *ServiceImpl {
	return &ServiceImpl{
		expenseService:   expenseService,
		budgetService:    budgetService,
		goalService:      goalService,
		apartmentService: apartmentService,
		dailyCashService: dailyCashService,
		categoryService:  categoryService,
		csvRenderer:      NewCsvReportRenderer(),
		xlsxRenderer:     NewXlsxReportRenderer(),
	}
}

func (s *ServiceImpl) GetDashboard(ctx context.Context, period string) (Dashboard, error) {
	if err := validation.Month("period", period); err != nil {
		return Dashboard{}, err
	}

	var (
		expenses   []expense.Expense
		budgets    []budget.Budget
		goals      []goal.Goal
		collection apartment.MonthSummary
		cash       []dailycash.Entry
		categories []category.Category
	)

	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.expenseService.GetAll(groupCtx)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.budgetService.GetAll(groupCtx)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.goalService.GetAll(groupCtx)
		return err
	})
	g.Go(func() error {
		var err error
		collection, err = s.apartmentService.GetMonthSummary(groupCtx, period)
		return err
	})
	g.Go(func() error {
		var err error
		cash, err = s.dailyCashService.GetAll(groupCtx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryService.GetAll(groupCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	totalsByMonth := MonthlyTotals(expenses)
	periodStart, _ := time.Parse("2006-01", period)
	previousPeriod := periodStart.AddDate(0, -1, 0).Format("2006-01")

	dashboard := Dashboard{
		Period:        period,
		ExpenseTotal:  totalsByMonth[period],
		PreviousTotal: totalsByMonth[previousPeriod],
		ByCategory:    CategoryTotals(filterPeriod(expenses, period), categories),
		Goals:         goals,
		Collection:    collection,
	}
	dashboard.TrendPercent, dashboard.TrendDefined = TrendPercent(dashboard.ExpenseTotal, dashboard.PreviousTotal)
	dashboard.Forecast, dashboard.ForecastDefined = Forecast(totalsByMonth, period)

	for _, p := range LastMonths(periodStart, historyMonths) {
		dashboard.History = append(dashboard.History, MonthTotal{Period: p, Total: totalsByMonth[p]})
	}

	for _, b := range budgets {
		dashboard.BudgetTotal += b.Amount
	}
	var allTimeExpenses int64
	for _, total := range totalsByMonth {
		allTimeExpenses += total
	}
	dashboard.Balance = dashboard.BudgetTotal - allTimeExpenses

	if len(cash) > 0 {
		// entries come back newest first
		dashboard.CashOnHand = cash[0].Amount
		dashboard.CashDate = cash[0].Date
	}

	return dashboard, nil
}

func (s *ServiceImpl) GetMonthlyReportCSV(ctx context.Context, period string) (string, error) {
	if err := validation.Month("period", period); err != nil {
		return "", err
	}

	var (
		expenses   []expense.Expense
		categories []category.Category
	)
	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.expenseService.GetForRange(groupCtx, period+"-01", endOfMonth(period))
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryService.GetAll(groupCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	report := MonthlyReport{
		Period:     period,
		Categories: CategoryTotals(expenses, categories),
	}
	for _, e := range expenses {
		report.Total += e.Amount
	}
	return s.csvRenderer.RenderMonthlyReport(report)
}

func (s *ServiceImpl) GetExpensesXLSX(ctx context.Context, from, to string) (*excelize.File, error) {
	var (
		expenses   []expense.Expense
		categories []category.Category
	)
	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.expenseService.GetForRange(groupCtx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryService.GetAll(groupCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[int]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return s.xlsxRenderer.RenderExpenses(expenses, names)
}

func filterPeriod(expenses []expense.Expense, period string) []expense.Expense {
	var filtered []expense.Expense
	for _, e := range expenses {
		if len(e.IncurredAt) >= 7 && e.IncurredAt[:7] == period {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func endOfMonth(period string) string {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return period + "-31"
	}
	return t.AddDate(0, 1, -1).Format("2006-01-02")
}
