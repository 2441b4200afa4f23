package template

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

type TemplateDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	CategoryID  int     `json:"categoryId,omitempty"`
}

type Handler struct {
	templateService Service
}

func NewHandler(templateService Service) *Handler {
	return &Handler{templateService}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateService.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]TemplateDTO, 0, len(templates))
	for _, t := range templates {
		dtos = append(dtos, templateToDTO(t))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new expense template")

	var dto TemplateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	created, err := h.templateService.Create(r.Context(), dtoToTemplate(dto))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, templateToDTO(created))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateId, err := strconv.Atoi(vars["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid template id")
		return
	}

	var dto TemplateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}
	dto.ID = templateId

	ok, err := h.templateService.Update(r.Context(), dtoToTemplate(dto))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Template not found")
		return
	}

	rest.WriteJSON(w, http.StatusOK, dto)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateId, err := strconv.Atoi(vars["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid template id")
		return
	}

	ok, err := h.templateService.Delete(r.Context(), templateId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Template not found")
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

func templateToDTO(t Template) TemplateDTO {
	return TemplateDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Amount:      money.ToLev(t.Amount),
		CategoryID:  t.CategoryID,
	}
}

func dtoToTemplate(dto TemplateDTO) Template {
	return Template{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Amount:      money.FromLev(dto.Amount),
		CategoryID:  dto.CategoryID,
	}
}
