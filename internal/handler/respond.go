package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jobtrack/jobtrack-go/internal/model"
)

const maxBodyBytes = 1 << 20 // 1MB

// decodeJSON reads a size-limited JSON body into v. It writes the error
// response itself and reports whether the handler should continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	return checkDecode(w, readJSON(w, r, v))
}

// decodeOptionalJSON is decodeJSON for endpoints where the body may be
// omitted. v is left untouched when there is no body, chunked or not.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := readJSON(w, r, v)
	if errors.Is(err, io.EOF) {
		return true
	}
	return checkDecode(w, err)
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func checkDecode(w http.ResponseWriter, err error) bool {
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
		return false
	}
	writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) model.ErrorResponse {
	return model.ErrorResponse{Error: msg}
}
