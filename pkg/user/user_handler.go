package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/domakasa/domakasa/internal/rest"
	"github.com/domakasa/domakasa/internal/validation"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	Uid             string `json:"uid"`
	Email           string `json:"email"`
	DisplayName     string `json:"displayName"`
	DisplayCurrency string `json:"displayCurrency"`
}

type CredentialsDTO struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
}

type SessionDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{userService: userService}
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new user")

	var credentials CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	createdUser, err := h.userService.SignUp(r.Context(), credentials.Email, credentials.Password, credentials.DisplayName)
	if err != nil {
		var validationErr *validation.Error
		switch {
		case errors.As(err, &validationErr):
			rest.WriteError(w, http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, ErrEmailTaken):
			rest.WriteError(w, http.StatusConflict, "Email is already registered")
		default:
			rest.WriteError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	rest.WriteJSON(w, http.StatusCreated, userToDTO(createdUser))
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	token, signedInUser, err := h.userService.SignIn(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			rest.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	rest.WriteJSON(w, http.StatusOK, SessionDTO{Token: token, User: userToDTO(signedInUser)})
}

// SignOut exists for symmetry with the client flow. Session tokens are
// stateless, so signing out is the client discarding its token.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	currentUser, err := h.userService.GetCurrentUser(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusUnauthorized, "No active session")
		return
	}
	rest.WriteJSON(w, http.StatusOK, userToDTO(currentUser))
}

func userToDTO(u User) UserDTO {
	return UserDTO{
		Uid:             u.Uid,
		Email:           u.Email,
		DisplayName:     u.DisplayName,
		DisplayCurrency: string(u.DisplayCurrency),
	}
}
