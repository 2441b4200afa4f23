package currency

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/domakasa/domakasa/internal/rest"
	"github.com/domakasa/domakasa/internal/validation"
	"github.com/domakasa/domakasa/pkg/user"
)

type CurrencyDTO struct {
	Currency string `json:"currency"`
}

type RateDTO struct {
	Rate   float64 `json:"rate"`
	Source string  `json:"source"`
}

type Handler struct {
	currencyService Service
}

func NewHandler(currencyService Service) *Handler {
	return &Handler{currencyService}
}

func (h *Handler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	currency, err := h.currencyService.GetDisplayCurrency(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, CurrencyDTO{Currency: string(currency)})
}

func (h *Handler) UpdateCurrency(w http.ResponseWriter, r *http.Request) {
	var dto CurrencyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	updated, err := h.currencyService.SetDisplayCurrency(r.Context(), user.Currency(dto.Currency))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, CurrencyDTO{Currency: string(updated)})
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

func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	rate := h.currencyService.GetRate(r.Context())
	rest.WriteJSON(w, http.StatusOK, RateDTO{Rate: rate.Value, Source: rate.Source})
}
