package report

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/domakasa/domakasa/internal/money"
	"github.com/domakasa/domakasa/internal/rest"
	"github.com/domakasa/domakasa/internal/validation"
	"github.com/domakasa/domakasa/pkg/user"
	log "github.com/sirupsen/logrus"
)

type MonthTotalDTO struct {
	Period string  `json:"period"`
	Total  float64 `json:"total"`
}

type CategoryTotalDTO struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type GoalSummaryDTO struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Target   float64 `json:"target"`
	Saved    float64 `json:"saved"`
	Progress int     `json:"progress"`
}

type CollectionDTO struct {
	Collected  float64 `json:"collected"`
	Total      float64 `json:"total"`
	Progress   int     `json:"progress"`
	PaidCount  int     `json:"paidCount"`
	TotalCount int     `json:"totalCount"`
}

type DashboardDTO struct {
	Period          string             `json:"period"`
	ExpenseTotal    float64            `json:"expenseTotal"`
	PreviousTotal   float64            `json:"previousTotal"`
	History         []MonthTotalDTO    `json:"history"`
	BudgetTotal     float64            `json:"budgetTotal"`
	Balance         float64            `json:"balance"`
	CashOnHand      float64            `json:"cashOnHand"`
	CashDate        string             `json:"cashDate,omitempty"`
	TrendPercent    int                `json:"trendPercent"`
	TrendDefined    bool               `json:"trendDefined"`
	Forecast        float64            `json:"forecast"`
	ForecastDefined bool               `json:"forecastDefined"`
	ByCategory      []CategoryTotalDTO `json:"byCategory"`
	Goals           []GoalSummaryDTO   `json:"goals"`
	Collection      CollectionDTO      `json:"collection"`
}

type Handler struct {
	reportService Service
}

func NewHandler(reportService Service) *Handler {
	return &Handler{reportService}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	dashboard, err := h.reportService.GetDashboard(r.Context(), period)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto := DashboardDTO{
		Period:          dashboard.Period,
		ExpenseTotal:    money.ToLev(dashboard.ExpenseTotal),
		PreviousTotal:   money.ToLev(dashboard.PreviousTotal),
		BudgetTotal:     money.ToLev(dashboard.BudgetTotal),
		Balance:         money.ToLev(dashboard.Balance),
		CashOnHand:      money.ToLev(dashboard.CashOnHand),
		CashDate:        dashboard.CashDate,
		TrendPercent:    dashboard.TrendPercent,
		TrendDefined:    dashboard.TrendDefined,
		Forecast:        money.ToLev(dashboard.Forecast),
		ForecastDefined: dashboard.ForecastDefined,
		History:         make([]MonthTotalDTO, 0, len(dashboard.History)),
		ByCategory:      make([]CategoryTotalDTO, 0, len(dashboard.ByCategory)),
		Goals:           make([]GoalSummaryDTO, 0, len(dashboard.Goals)),
		Collection: CollectionDTO{
			Collected:  money.ToLev(dashboard.Collection.Collected),
			Total:      money.ToLev(dashboard.Collection.Total),
			Progress:   dashboard.Collection.Progress,
			PaidCount:  dashboard.Collection.PaidCount,
			TotalCount: dashboard.Collection.TotalCount,
		},
	}
	for _, m := range dashboard.History {
		dto.History = append(dto.History, MonthTotalDTO{Period: m.Period, Total: money.ToLev(m.Total)})
	}
	for _, c := range dashboard.ByCategory {
		dto.ByCategory = append(dto.ByCategory, CategoryTotalDTO{Label: c.Label, Total: money.ToLev(c.Total), Count: c.Count})
	}
	for _, g := range dashboard.Goals {
		dto.Goals = append(dto.Goals, GoalSummaryDTO{
			ID:       g.ID,
			Title:    g.Title,
			Target:   money.ToLev(g.Target),
			Saved:    money.ToLev(g.Saved),
			Progress: g.Progress(),
		})
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}

func (h *Handler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	csv, err := h.reportService.GetMonthlyReportCSV(r.Context(), period)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"report_%s.csv\"", period))
	if _, err := w.Write([]byte(csv)); err != nil {
		log.Errorf("failed to write csv response: %v", err)
	}
}

func (h *Handler) ExportExpenses(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if err := validation.First(validation.Date("from", from), validation.Date("to", to)); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, err := h.reportService.GetExpensesXLSX(r.Context(), from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s_%s.xlsx\"", from, to))
	if err := file.Write(w); err != nil {
		log.Errorf("failed to write xlsx response: %v", err)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *validation.Error
	switch {
	case errors.Is(err, user.ErrNoUser):
		rest.WriteError(w, http.StatusUnauthorized, "Authentication required")
	case errors.As(err, &validationErr):
		rest.WriteError(w, http.StatusBadRequest, validationErr.Error())
	default:
		rest.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
