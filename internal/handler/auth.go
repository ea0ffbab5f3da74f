package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jobtrack/jobtrack-go/internal/middleware"
	"github.com/jobtrack/jobtrack-go/internal/model"
	"github.com/jobtrack/jobtrack-go/internal/repository"
	"github.com/jobtrack/jobtrack-go/internal/service"
	"github.com/jobtrack/jobtrack-go/internal/signup"
)

type authService interface {
	SignUp(ctx context.Context, req model.SignUpRequest) (model.AuthResponse, error)
	GetUser(ctx context.Context, userID int64) (model.UserResponse, error)
}

// AuthHandler handles HTTP requests for account creation and sessions.
type AuthHandler struct {
	service authService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc authService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleSignUp handles POST /api/v1/auth/sign-up requests.
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.SignUp(r.Context(), req)
	if err != nil {
		var inputErr *signup.InputError
		switch {
		case errors.As(err, &inputErr):
			writeJSON(w, http.StatusBadRequest, errorResponse(inputErr.Message))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			slog.ErrorContext(r.Context(), "sign up failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	slog.InfoContext(r.Context(), "account created", "user_id", resp.User.ID)
	writeJSON(w, http.StatusCreated, resp)
}

// HandleSession handles GET /api/v1/auth/session requests.
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
			return
		}
		slog.ErrorContext(r.Context(), "loading session user failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
