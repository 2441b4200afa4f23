package category

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/domakasa/domakasa/internal/rest"
	"github.com/domakasa/domakasa/internal/validation"
	"github.com/domakasa/domakasa/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CategoryDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Handler struct {
	categoryService Service
}

func NewHandler(categoryService Service) *Handler {
	return &Handler{categoryService}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, CategoryDTO{ID: c.ID, Name: c.Name})
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new category")

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	created, err := h.categoryService.Create(r.Context(), Category{Name: dto.Name})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, CategoryDTO{ID: created.ID, Name: created.Name})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryId, err := strconv.Atoi(vars["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	ok, err := h.categoryService.Update(r.Context(), Category{ID: categoryId, Name: dto.Name})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Category not found")
		return
	}

	rest.WriteJSON(w, http.StatusOK, CategoryDTO{ID: categoryId, Name: dto.Name})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryId, err := strconv.Atoi(vars["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	ok, err := h.categoryService.Delete(r.Context(), categoryId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Category not found")
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
	case errors.Is(err, ErrNameTaken):
		rest.WriteError(w, http.StatusConflict, "Category already exists")
	default:
		rest.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
