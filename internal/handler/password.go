package handler

import (
	"errors"
	"net/http"

	"github.com/jobtrack/jobtrack-go/internal/crypto"
	"github.com/jobtrack/jobtrack-go/internal/model"
	"github.com/jobtrack/jobtrack-go/internal/service"
)

// PasswordHandler serves the strength indicator and password suggestions.
type PasswordHandler struct {
	service *service.PasswordService
}

// NewPasswordHandler creates a new PasswordHandler.
func NewPasswordHandler(svc *service.PasswordService) *PasswordHandler {
	return &PasswordHandler{service: svc}
}

// HandleStrength handles POST /api/v1/password/strength requests.
func (h *PasswordHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.service.Strength(req))
}

// HandleSuggest handles POST /api/v1/password/suggest requests. An empty
// body asks for the default length.
func (h *PasswordHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	var req model.SuggestRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Suggest(req)
	if err != nil {
		if errors.Is(err, crypto.ErrLengthTooShort) || errors.Is(err, crypto.ErrLengthTooLong) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
