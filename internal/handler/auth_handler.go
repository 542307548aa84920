package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"ideagen/internal/apperrors"
	"ideagen/internal/models"
	"ideagen/internal/service"
)

type PreferencesPayload struct {
	Industries     []string `json:"industries"`
	ContentTypes   []string `json:"contentTypes"`
	TargetAudience []string `json:"targetAudience"`
}

type RegisterRequest struct {
	Name        string              `json:"name" validate:"required"`
	Email       string              `json:"email" validate:"required,email"`
	Password    string              `json:"password" validate:"required,min=6"`
	Preferences *PreferencesPayload `json:"preferences"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Preferences PreferencesPayload `json:"preferences"`
	Date        time.Time          `json:"date"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.UserID,
		Name:  user.Name,
		Email: user.Email,
		Preferences: PreferencesPayload{
			Industries:     user.Industries,
			ContentTypes:   user.ContentTypes,
			TargetAudience: user.TargetAudience,
		},
		Date: user.CreatedAt,
	}
}

// registerValidationMsg keeps the field-specific texts the web client
// displays.
func registerValidationMsg(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		switch fieldErrors[0].Field() {
		case "Name":
			return "Name is required"
		case "Email":
			return "Please include a valid email"
		case "Password":
			return "Please enter a password with 6 or more characters"
		}
	}
	return "Invalid request"
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, registerValidationMsg(err), http.StatusBadRequest)
		return
	}

	input := service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Preferences != nil {
		input.Preferences = models.Preferences{
			Industries:     req.Preferences.Industries,
			ContentTypes:   req.Preferences.ContentTypes,
			TargetAudience: req.Preferences.TargetAudience,
		}
	}

	token, err := h.AuthService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			WriteError(w, "User already exists", http.StatusBadRequest)
			return
		}
		h.Logger.Error("register failed", zap.Error(err))
		WriteError(w, "Server Error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			// same message whether the email exists or not
			WriteError(w, "Invalid credentials", http.StatusBadRequest)
			return
		}
		h.Logger.Error("login failed", zap.Error(err))
		WriteError(w, "Server Error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		WriteError(w, "No token, authorization denied", http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, newUserResponse(user), http.StatusOK)
}
