package expense

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/domakasa/domakasa/internal/money"
	"github.com/domakasa/domakasa/internal/rest"
	"github.com/domakasa/domakasa/internal/validation"
	"github.com/domakasa/domakasa/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ExpenseDTO struct {
	ID          int     `json:"id"`
	Amount      float64 `json:"amount"`
	IncurredAt  string  `json:"incurredAt"`
	Description string  `json:"description,omitempty"`
	Recipient   string  `json:"recipient,omitempty"`
	CategoryID  int     `json:"categoryId,omitempty"`
	ReceiptPath string  `json:"receiptPath,omitempty"`
}

type Handler struct {
	expenseService Service
}

func NewHandler(expenseService Service) *Handler {
	return &Handler{expenseService}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseService.GetAll(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		dtos = append(dtos, ExpenseToDTO(e))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// Create accepts either a JSON body or a multipart form with an optional
// "receipt" file part alongside the expense fields.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new expense")

	var dto ExpenseDTO
	var receipt *ReceiptUpload

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		parsed, parsedReceipt, err := parseMultipartExpense(r)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		dto = parsed
		receipt = parsedReceipt
	} else {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
			return
		}
	}

	created, err := h.expenseService.Create(r.Context(), DTOToExpense(dto), receipt)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, ExpenseToDTO(created))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	expenseId, err := pathId(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}
	dto.ID = expenseId

	updated, err := h.expenseService.Update(r.Context(), DTOToExpense(dto))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, ExpenseToDTO(updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	expenseId, err := pathId(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	ok, err := h.expenseService.Delete(r.Context(), expenseId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Expense not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	expenseId, err := pathId(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	url, err := h.expenseService.ReceiptURL(r.Context(), expenseId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if url == "" {
		rest.WriteError(w, http.StatusNotFound, "Expense has no receipt")
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

func parseMultipartExpense(r *http.Request) (ExpenseDTO, *ReceiptUpload, error) {
	if err := r.ParseMultipartForm(MaxReceiptSize + 1024*1024); err != nil {
		return ExpenseDTO{}, nil, errors.New("invalid multipart form")
	}

	var dto ExpenseDTO
	amount, err := strconv.ParseFloat(r.FormValue("amount"), 64)
	if err != nil {
		return ExpenseDTO{}, nil, errors.New("invalid amount")
	}
	dto.Amount = amount
	dto.IncurredAt = r.FormValue("incurredAt")
	dto.Description = r.FormValue("description")
	dto.Recipient = r.FormValue("recipient")
	if v := r.FormValue("categoryId"); v != "" {
		categoryId, err := strconv.Atoi(v)
		if err != nil {
			return ExpenseDTO{}, nil, errors.New("invalid categoryId")
		}
		dto.CategoryID = categoryId
	}

	file, header, err := r.FormFile("receipt")
	if errors.Is(err, http.ErrMissingFile) {
		return dto, nil, nil
	} else if err != nil {
		return ExpenseDTO{}, nil, errors.New("invalid receipt file")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, MaxReceiptSize+1))
	if err != nil {
		return ExpenseDTO{}, nil, errors.New("could not read receipt file")
	}
	receipt := &ReceiptUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}
	return dto, receipt, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *validation.Error
	switch {
	case errors.Is(err, user.ErrNoUser):
		rest.WriteError(w, http.StatusUnauthorized, "Authentication required")
	case errors.As(err, &validationErr):
		rest.WriteError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, ErrNotFound):
		rest.WriteError(w, http.StatusNotFound, "Expense not found")
	default:
		rest.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

func pathId(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func ExpenseToDTO(e Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          e.ID,
		Amount:      money.ToLev(e.Amount),
		IncurredAt:  e.IncurredAt,
		Description: e.Description,
		Recipient:   e.Recipient,
		CategoryID:  e.CategoryID,
		ReceiptPath: e.ReceiptPath,
	}
}

func DTOToExpense(dto ExpenseDTO) Expense {
	return Expense{
		ID:          dto.ID,
		Amount:      money.FromLev(dto.Amount),
		IncurredAt:  dto.IncurredAt,
		Description: dto.Description,
		Recipient:   dto.Recipient,
		CategoryID:  dto.CategoryID,
		ReceiptPath: dto.ReceiptPath,
	}
}
