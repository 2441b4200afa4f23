package app

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/domakasa/domakasa/internal/config"
	"github.com/domakasa/domakasa/internal/storage"
	"github.com/domakasa/domakasa/internal/utils"
	"github.com/domakasa/domakasa/pkg/apartment"
	"github.com/domakasa/domakasa/pkg/budget"
	"github.com/domakasa/domakasa/pkg/category"
	"github.com/domakasa/domakasa/pkg/currency"
	"github.com/domakasa/domakasa/pkg/dailycash"
	"github.com/domakasa/domakasa/pkg/expense"
	"github.com/domakasa/domakasa/pkg/goal"
	"github.com/domakasa/domakasa/pkg/qa"
	"github.com/domakasa/domakasa/pkg/report"
	"github.com/domakasa/domakasa/pkg/template"
	"github.com/domakasa/domakasa/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	ReceiptStorage *storage.LocalStorage

	UserService user.Service
	UserHandler *user.Handler

	CategoryService category.Service
	CategoryHandler *category.Handler

	ExpenseService expense.Service
	ExpenseHandler *expense.Handler

	TemplateService template.Service
	TemplateHandler *template.Handler

	GoalService goal.Service
	GoalHandler *goal.Handler

	ApartmentService apartment.Service
	ApartmentHandler *apartment.Handler

	DailyCashService dailycash.Service
	DailyCashHandler *dailycash.Handler

	BudgetService budget.Service
	BudgetHandler *budget.Handler

	CurrencyService currency.Service
	CurrencyHandler *currency.Handler

	ReportService report.Service
	ReportHandler *report.Handler

	QAService qa.Service
	QAHandler *qa.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}
	deps.Clock = &utils.SystemClock{}

	deps.ReceiptStorage = storage.NewLocalStorage(cfg.Storage.Dir, "/receipts/")

	tokenTTL := time.Duration(cfg.Auth.TokenTTL) * time.Hour
	deps.UserService = user.NewUserService(user.NewUserRepo(db), cfg.Auth.Secret, tokenTTL)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.CategoryService = category.NewCategoryService(category.NewCategoryRepo(db))
	deps.CategoryHandler = category.NewHandler(deps.CategoryService)

	deps.ExpenseService = expense.NewExpenseService(expense.NewExpenseRepo(db), deps.ReceiptStorage, deps.Clock)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.TemplateService = template.NewTemplateService(template.NewTemplateRepo(db))
	deps.TemplateHandler = template.NewHandler(deps.TemplateService)

	deps.GoalService = goal.NewGoalService(goal.NewGoalRepo(db))
	deps.GoalHandler = goal.NewHandler(deps.GoalService)

	deps.ApartmentService = apartment.NewApartmentService(apartment.NewApartmentRepo(db), apartment.NewPaymentRepo(db))
	deps.ApartmentHandler = apartment.NewHandler(deps.ApartmentService)

	deps.DailyCashService = dailycash.NewDailyCashService(dailycash.NewDailyCashRepo(db))
	deps.DailyCashHandler = dailycash.NewHandler(deps.DailyCashService)

	deps.BudgetService = budget.NewBudgetService(budget.NewBudgetRepo(db))
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)

	httpClient := &http.Client{Timeout: 10 * time.Second}
	rateSources := []currency.RateSource{
		currency.NewBNBSource(cfg.Rates.PrimaryURL, httpClient),
		currency.NewExchangeRateAPISource(cfg.Rates.FallbackURL, httpClient),
	}
	deps.CurrencyService = currency.NewCurrencyService(deps.UserService, rateSources, deps.Clock)
	deps.CurrencyHandler = currency.NewHandler(deps.CurrencyService)

	deps.ReportService = report.NewReportService(
		deps.ExpenseService,
		deps.BudgetService,
		deps.GoalService,
		deps.ApartmentService,
		deps.DailyCashService,
		deps.CategoryService,
	)
	deps.ReportHandler = report.NewHandler(deps.ReportService)

	deps.QAService = qa.NewQAService(deps.BudgetService, deps.GoalService, deps.ExpenseService, deps.CategoryService, deps.Clock)
	deps.QAHandler = qa.NewHandler(deps.QAService)

	return deps
}
