package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jobtrack/jobtrack-go/internal/model"
)

// Authenticator resolves an Authorization header to a user ID.
type Authenticator interface {
	Authenticate(header string) (int64, error)
}

type sessionUserKey struct{}

// RequireSession rejects requests without a valid session and stores the
// session's user ID on the request context for UserID.
func RequireSession(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := auth.Authenticate(r.Header.Get("Authorization"))
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionUserKey{}, id)))
		})
	}
}

// UserID returns the user RequireSession authenticated, if any.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(sessionUserKey{}).(int64)
	return id, ok
}
