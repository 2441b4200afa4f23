package app

import (
	"net/http"

	"github.com/domakasa/domakasa/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Health
	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	// Auth
	r.HandleFunc("/api/auth/signup", deps.UserHandler.SignUp).Methods("POST")
	r.HandleFunc("/api/auth/signin", deps.UserHandler.SignIn).Methods("POST")
	r.HandleFunc("/api/auth/signout", deps.UserHandler.SignOut).Methods("POST")
	r.HandleFunc("/api/auth/session", deps.UserHandler.Session).Methods("GET")

	// Categories
	r.HandleFunc("/api/categories", deps.CategoryHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/categories", deps.CategoryHandler.Create).Methods("POST")
	r.HandleFunc("/api/categories/{id}", deps.CategoryHandler.Update).Methods("PUT")
	r.HandleFunc("/api/categories/{id}", deps.CategoryHandler.Delete).Methods("DELETE")

	// Expenses
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expenses/{id}", deps.ExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/expenses/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/expenses/{id}/receipt", deps.ExpenseHandler.GetReceipt).Methods("GET")

	// Expense templates
	r.HandleFunc("/api/templates", deps.TemplateHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/templates", deps.TemplateHandler.Create).Methods("POST")
	r.HandleFunc("/api/templates/{id}", deps.TemplateHandler.Update).Methods("PUT")
	r.HandleFunc("/api/templates/{id}", deps.TemplateHandler.Delete).Methods("DELETE")

	// Goals
	r.HandleFunc("/api/goals", deps.GoalHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/goals", deps.GoalHandler.Create).Methods("POST")
	r.HandleFunc("/api/goals/{id}", deps.GoalHandler.Update).Methods("PUT")
	r.HandleFunc("/api/goals/{id}", deps.GoalHandler.Delete).Methods("DELETE")

	// Apartments and fee collection
	r.HandleFunc("/api/apartments", deps.ApartmentHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/apartments", deps.ApartmentHandler.Create).Methods("POST")
	r.HandleFunc("/api/apartments/summary", deps.ApartmentHandler.GetMonthSummary).Queries("period", "{period}").Methods("GET")
	r.HandleFunc("/api/apartments/{id}", deps.ApartmentHandler.Update).Methods("PUT")
	r.HandleFunc("/api/apartments/{id}", deps.ApartmentHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/apartments/{id}/payments", deps.ApartmentHandler.MarkPaid).Methods("POST")
	r.HandleFunc("/api/apartments/{id}/payments", deps.ApartmentHandler.MarkUnpaid).Queries("period", "{period}").Methods("DELETE")

	// Daily cash
	r.HandleFunc("/api/daily-cash", deps.DailyCashHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/daily-cash", deps.DailyCashHandler.Record).Methods("POST")
	r.HandleFunc("/api/daily-cash/{id}", deps.DailyCashHandler.Delete).Methods("DELETE")

	// Fund records
	r.HandleFunc("/api/budgets", deps.BudgetHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/budgets", deps.BudgetHandler.Create).Methods("POST")
	r.HandleFunc("/api/budgets/{id}", deps.BudgetHandler.Delete).Methods("DELETE")

	// Currency settings
	r.HandleFunc("/api/settings/currency", deps.CurrencyHandler.GetCurrency).Methods("GET")
	r.HandleFunc("/api/settings/currency", deps.CurrencyHandler.UpdateCurrency).Methods("PUT")
	r.HandleFunc("/api/settings/rate", deps.CurrencyHandler.GetRate).Methods("GET")

	// Reports
	r.HandleFunc("/api/dashboard", deps.ReportHandler.GetDashboard).Queries("period", "{period}").Methods("GET")
	r.HandleFunc("/api/reports/monthly", deps.ReportHandler.GetMonthlyReport).Queries("period", "{period}").Methods("GET")
	r.HandleFunc("/api/reports/expenses", deps.ReportHandler.ExportExpenses).Queries("from", "{from}", "to", "{to}").Methods("GET")

	// QA smoke suites
	r.HandleFunc("/api/qa/run", deps.QAHandler.Run).Methods("POST")
	r.HandleFunc("/api/qa/cleanup", deps.QAHandler.Cleanup).Methods("POST")

	// Stored receipt files
	r.PathPrefix("/receipts/").Handler(
		http.StripPrefix("/receipts/", http.FileServer(http.Dir(deps.ReceiptStorage.Dir()))),
	)
}
