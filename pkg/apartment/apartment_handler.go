package apartment

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

type ApartmentDTO struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	MonthlyFee float64 `json:"monthlyFee"`
	Active     bool    `json:"active"`
}

type StatusDTO struct {
	Apartment ApartmentDTO `json:"apartment"`
	Paid      bool         `json:"paid"`
	Amount    float64      `json:"amount"`
}

type MonthSummaryDTO struct {
	Period     string      `json:"period"`
	Statuses   []StatusDTO `json:"statuses"`
	Collected  float64     `json:"collected"`
	Total      float64     `json:"total"`
	Progress   int         `json:"progress"`
	PaidCount  int         `json:"paidCount"`
	TotalCount int         `json:"totalCount"`
}

type PaymentRequestDTO struct {
	Period string `json:"period"`
}

type Handler struct {
	apartmentService Service
}

func NewHandler(apartmentService Service) *Handler {
	return &Handler{apartmentService}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	apartments, err := h.apartmentService.GetAll(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	dtos := make([]ApartmentDTO, 0, len(apartments))
	for _, a := range apartments {
		dtos = append(dtos, apartmentToDTO(a))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new apartment")

	var dto ApartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	created, err := h.apartmentService.Create(r.Context(), dtoToApartment(dto))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, apartmentToDTO(created))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	apartmentId, ok := pathId(w, r)
	if !ok {
		return
	}

	var dto ApartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}
	dto.ID = apartmentId

	updated, err := h.apartmentService.Update(r.Context(), dtoToApartment(dto))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !updated {
		rest.WriteError(w, http.StatusNotFound, "Apartment not found")
		return
	}

	rest.WriteJSON(w, http.StatusOK, dto)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	apartmentId, ok := pathId(w, r)
	if !ok {
		return
	}

	deleted, err := h.apartmentService.Delete(r.Context(), apartmentId)
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		rest.WriteError(w, http.StatusNotFound, "Apartment not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	apartmentId, ok := pathId(w, r)
	if !ok {
		return
	}

	var dto PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	if err := h.apartmentService.MarkPaid(r.Context(), apartmentId, dto.Period); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MarkUnpaid(w http.ResponseWriter, r *http.Request) {
	apartmentId, ok := pathId(w, r)
	if !ok {
		return
	}

	period := r.URL.Query().Get("period")
	if err := h.apartmentService.MarkUnpaid(r.Context(), apartmentId, period); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetMonthSummary(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	summary, err := h.apartmentService.GetMonthSummary(r.Context(), period)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto := MonthSummaryDTO{
		Period:     summary.Period,
		Statuses:   make([]StatusDTO, 0, len(summary.Statuses)),
		Collected:  money.ToLev(summary.Collected),
		Total:      money.ToLev(summary.Total),
		Progress:   summary.Progress,
		PaidCount:  summary.PaidCount,
		TotalCount: summary.TotalCount,
	}
	for _, s := range summary.Statuses {
		dto.Statuses = append(dto.Statuses, StatusDTO{
			Apartment: apartmentToDTO(s.Apartment),
			Paid:      s.Paid,
			Amount:    money.ToLev(s.Amount),
		})
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}

func pathId(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid apartment id")
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *validation.Error
	switch {
	case errors.Is(err, user.ErrNoUser):
		rest.WriteError(w, http.StatusUnauthorized, "Authentication required")
	case errors.As(err, &validationErr):
		rest.WriteError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, ErrNotFound):
		rest.WriteError(w, http.StatusNotFound, "Apartment not found")
	default:
		rest.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

func apartmentToDTO(a Apartment) ApartmentDTO {
	return ApartmentDTO{
		ID:         a.ID,
		Name:       a.Name,
		MonthlyFee: money.ToLev(a.MonthlyFee),
		Active:     a.Active,
	}
}

func dtoToApartment(dto ApartmentDTO) Apartment {
	return Apartment{
		ID:         dto.ID,
		Name:       dto.Name,
		MonthlyFee: money.FromLev(dto.MonthlyFee),
		Active:     dto.Active,
	}
}
