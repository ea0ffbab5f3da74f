package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jobtrack/jobtrack-go/internal/middleware"
)

// NewRouter mounts every API route.
func NewRouter(auth *AuthHandler, pwd *PasswordHandler, sessions middleware.Authenticator) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/password/strength", pwd.HandleStrength)
		r.Post("/password/suggest", pwd.HandleSuggest)

		if auth == nil {
			return
		}
		r.Post("/auth/sign-up", auth.HandleSignUp)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(sessions))
			r.Get("/auth/session", auth.HandleSession)
		})
	})

	return r
}
