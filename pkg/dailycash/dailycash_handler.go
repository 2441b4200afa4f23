package dailycash

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

type EntryDTO struct {
	ID     int     `json:"id"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Notes  string  `json:"notes,omitempty"`
}

type Handler struct {
	dailyCashService Service
}

func NewHandler(dailyCashService Service) *Handler {
	return &Handler{dailyCashService}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	var entries []Entry
	var err error
	if from != "" || to != "" {
		entries, err = h.dailyCashService.GetForRange(r.Context(), from, to)
	} else {
		entries, err = h.dailyCashService.GetAll(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, entryToDTO(e))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	log.Debug("Recording daily cash entry")

	var dto EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	entry := Entry{Date: dto.Date, Amount: money.FromLev(dto.Amount), Notes: dto.Notes}
	if err := h.dailyCashService.Record(r.Context(), entry); err != nil {
		writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, dto)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	entryId, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid entry id")
		return
	}

	ok, err := h.dailyCashService.Delete(r.Context(), entryId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Entry not found")
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

func entryToDTO(e Entry) EntryDTO {
	return EntryDTO{
		ID:     e.ID,
		Date:   e.Date,
		Amount: money.ToLev(e.Amount),
		Notes:  e.Notes,
	}
}
