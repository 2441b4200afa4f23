package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/domakasa/domakasa/internal/money"
	"github.com/domakasa/domakasa/internal/rest"
	"github.com/domakasa/domakasa/internal/validation"
	"github.com/domakasa/domakasa/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type BudgetDTO struct {
	ID     int     `json:"id"`
	Amount float64 `json:"amount"`
	Note   string  `json:"note,omitempty"`
}

type Handler struct {
	budgetService Service
}

func NewHandler(budgetService Service) *Handler {
	return &Handler{budgetService}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.budgetService.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]BudgetDTO, 0, len(budgets))
	for _, b := range budgets {
		dtos = append(dtos, BudgetDTO{ID: b.ID, Amount: money.ToLev(b.Amount), Note: b.Note})
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new budget record")

	var dto BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	created, err := h.budgetService.Create(r.Context(), Budget{Amount: money.FromLev(dto.Amount), Note: dto.Note})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, BudgetDTO{ID: created.ID, Amount: money.ToLev(created.Amount), Note: created.Note})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	budgetId, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid budget id")
		return
	}

	ok, err := h.budgetService.Delete(r.Context(), budgetId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Budget not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
