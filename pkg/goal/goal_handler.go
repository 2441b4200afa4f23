package goal

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

type GoalDTO struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Target   float64 `json:"target"`
	Saved    float64 `json:"saved"`
	Deadline string  `json:"deadline,omitempty"`
	Progress int     `json:"progress"`
}

type Handler struct {
	goalService Service
}

func NewHandler(goalService Service) *Handler {
	return &Handler{goalService}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]GoalDTO, 0, len(goals))
	for _, g := range goals {
		dtos = append(dtos, goalToDTO(g))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new goal")

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	created, err := h.goalService.Create(r.Context(), dtoToGoal(dto))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, goalToDTO(created))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	goalId, err := strconv.Atoi(vars["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid goal id")
		return
	}

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}
	dto.ID = goalId

	goal := dtoToGoal(dto)
	ok, err := h.goalService.Update(r.Context(), goal)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Goal not found")
		return
	}

	rest.WriteJSON(w, http.StatusOK, goalToDTO(goal))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	goalId, err := strconv.Atoi(vars["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid goal id")
		return
	}

	ok, err := h.goalService.Delete(r.Context(), goalId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Goal not found")
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

func goalToDTO(g Goal) GoalDTO {
	return GoalDTO{
		ID:       g.ID,
		Title:    g.Title,
		Target:   money.ToLev(g.Target),
		Saved:    money.ToLev(g.Saved),
		Deadline: g.Deadline,
		Progress: g.Progress(),
	}
}

func dtoToGoal(dto GoalDTO) Goal {
	return Goal{
		ID:       dto.ID,
		Title:    dto.Title,
		Target:   money.FromLev(dto.Target),
		Saved:    money.FromLev(dto.Saved),
		Deadline: dto.Deadline,
	}
}
