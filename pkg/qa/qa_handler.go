package qa

import (
	"errors"
	"net/http"

	"github.com/domakasa/domakasa/internal/rest"
	"github.com/domakasa/domakasa/pkg/user"
)

type StepDTO struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type SuiteResultDTO struct {
	Suite      string    `json:"suite"`
	Passed     bool      `json:"passed"`
	Steps      []StepDTO `json:"steps"`
	CreatedIds []int     `json:"createdIds,omitempty"`
}

type CleanupResultDTO struct {
	Suite   string `json:"suite"`
	Removed int    `json:"removed"`
}

type Handler struct {
	qaService Service
}

func NewHandler(qaService Service) *Handler {
	return &Handler{qaService}
}

func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	suite := r.URL.Query().Get("suite")

	var results []SuiteResult
	if suite == "" {
		var err error
		results, err = h.qaService.RunAll(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
	} else {
		result, err := h.qaService.Run(r.Context(), suite)
		if errors.Is(err, ErrUnknownSuite) {
			rest.WriteError(w, http.StatusBadRequest, "Unknown suite: "+suite)
			return
		} else if err != nil {
			writeServiceError(w, err)
			return
		}
		results = []SuiteResult{result}
	}

	dtos := make([]SuiteResultDTO, 0, len(results))
	for _, result := range results {
		dtos = append(dtos, resultToDTO(result))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Cleanup(w http.ResponseWriter, r *http.Request) {
	suite := r.URL.Query().Get("suite")

	suites := Suites
	if suite != "" {
		suites = []string{suite}
	}

	dtos := make([]CleanupResultDTO, 0, len(suites))
	for _, name := range suites {
		removed, err := h.qaService.Cleanup(r.Context(), name)
		if errors.Is(err, ErrUnknownSuite) {
			rest.WriteError(w, http.StatusBadRequest, "Unknown suite: "+name)
			return
		} else if err != nil {
			writeServiceError(w, err)
			return
		}
		dtos = append(dtos, CleanupResultDTO{Suite: name, Removed: removed})
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, user.ErrNoUser) {
		rest.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	rest.WriteError(w, http.StatusInternalServerError, err.Error())
}

func resultToDTO(result SuiteResult) SuiteResultDTO {
	dto := SuiteResultDTO{
		Suite:      result.Suite,
		Passed:     result.Passed,
		Steps:      make([]StepDTO, 0, len(result.Steps)),
		CreatedIds: result.CreatedIds,
	}
	for _, s := range result.Steps {
		dto.Steps = append(dto.Steps, StepDTO{Name: s.Name, Status: string(s.Status), Detail: s.Detail})
	}
	return dto
}
