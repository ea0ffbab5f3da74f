package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jobtrack/jobtrack-go/internal/crypto"
	"github.com/jobtrack/jobtrack-go/internal/model"
	"github.com/jobtrack/jobtrack-go/internal/password"
	"github.com/jobtrack/jobtrack-go/internal/repository"
	"github.com/jobtrack/jobtrack-go/internal/service"
	"github.com/jobtrack/jobtrack-go/internal/signup"
)

type stubAuth struct {
	signUpErr  error
	getUserErr error
	calls      int
}

func (s *stubAuth) SignUp(ctx context.Context, req model.SignUpRequest) (model.AuthResponse, error) {
	s.calls++
	if err := signup.Validate(req.Name, req.Email, req.Password, req.ConfirmPassword).Err(); err != nil {
		return model.AuthResponse{}, err
	}
	if s.signUpErr != nil {
		return model.AuthResponse{}, s.signUpErr
	}
	return model.AuthResponse{Token: "tok", User: model.UserResponse{ID: 1, Name: req.Name, Email: req.Email}}, nil
}

func (s *stubAuth) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	if s.getUserErr != nil {
		return model.UserResponse{}, s.getUserErr
	}
	if userID != 1 {
		return model.UserResponse{}, repository.ErrUserNotFound
	}
	return model.UserResponse{ID: 1, Name: "Jo", Email: "jo@example.com"}, nil
}

func newTestRouter(auth *stubAuth) (http.Handler, *crypto.Sessions) {
	sessions := crypto.NewSessions("test-secret", time.Hour)
	return NewRouter(NewAuthHandler(auth), NewPasswordHandler(service.NewPasswordService()), sessions), sessions
}

func do(t *testing.T, h http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp model.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return resp.Error
}

func TestHandleSignUp(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		signUpErr  error
		wantStatus int
		wantError  string
	}{
		{
			name:       "created",
			body:       `{"name":"Jo","email":"jo@example.com","password":"Abcdefg1!","confirm_password":"Abcdefg1!"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "validation message passed through",
			body:       `{"name":"Jo","email":"not-an-email","password":"Abcdefg1!","confirm_password":"Abcdefg1!"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Please enter a valid email address",
		},
		{
			name:       "duplicate email",
			body:       `{"name":"Jo","email":"jo@example.com","password":"Abcdefg1!","confirm_password":"Abcdefg1!"}`,
			signUpErr:  service.ErrEmailTaken,
			wantStatus: http.StatusConflict,
			wantError:  service.ErrEmailTaken.Error(),
		},
		{
			name:       "internal error hidden",
			body:       `{"name":"Jo","email":"jo@example.com","password":"Abcdefg1!","confirm_password":"Abcdefg1!"}`,
			signUpErr:  errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRouter(&stubAuth{signUpErr: tt.signUpErr})
			rec := do(t, h, http.MethodPost, "/api/v1/auth/sign-up", tt.body)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantError != "" {
				if got := errorOf(t, rec); got != tt.wantError {
					t.Errorf("error = %q, want %q", got, tt.wantError)
				}
			}
		})
	}
}

func TestHandleSignUpBodyTooLarge(t *testing.T) {
	h, _ := newTestRouter(&stubAuth{})
	body := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec := do(t, h, http.MethodPost, "/api/v1/auth/sign-up", body)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestHandleSession(t *testing.T) {
	h, sessions := newTestRouter(&stubAuth{})

	if rec := do(t, h, http.MethodGet, "/api/v1/auth/session", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/v1/auth/session", "", "Authorization", "Bearer nope"); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", rec.Code)
	}

	token, err := sessions.Issue(1, "jo@example.com")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	rec := do(t, h, http.MethodGet, "/api/v1/auth/session", "", "Authorization", "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var user model.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&user); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if user.Email != "jo@example.com" {
		t.Errorf("Email = %q", user.Email)
	}

	stale, _ := sessions.Issue(5, "gone@example.com")
	if rec := do(t, h, http.MethodGet, "/api/v1/auth/session", "", "Authorization", "Bearer "+stale); rec.Code != http.StatusUnauthorized {
		t.Errorf("deleted user: status = %d, want 401", rec.Code)
	}
}

func TestHandleSessionStoreFailure(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h, sessions := newTestRouter(&stubAuth{getUserErr: errors.New("connection refused")})
	token, err := sessions.Issue(1, "jo@example.com")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	rec := do(t, h, http.MethodGet, "/api/v1/auth/session", "", "Authorization", "Bearer "+token)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := errorOf(t, rec); got != "internal server error" {
		t.Errorf("error = %q", got)
	}
	if !strings.Contains(logs.String(), "connection refused") {
		t.Errorf("store error not logged:\n%s", logs.String())
	}
}

func TestHandleStrength(t *testing.T) {
	h, _ := newTestRouter(&stubAuth{})
	rec := do(t, h, http.MethodPost, "/api/v1/password/strength", `{"password":"Ab3!"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var report password.Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if report.Level != password.TooShort {
		t.Errorf("Level = %d, want %d", report.Level, password.TooShort)
	}
	if len(report.Checklist) != 5 {
		t.Errorf("Checklist has %d items, want 5", len(report.Checklist))
	}
}

func TestHandleSuggest(t *testing.T) {
	h, _ := newTestRouter(&stubAuth{})

	rec := do(t, h, http.MethodPost, "/api/v1/password/suggest", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("empty body: status = %d, want 200", rec.Code)
	}
	var resp model.SuggestResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Length != crypto.DefaultSuggestLength || resp.Strength.Level != password.VeryStrong {
		t.Errorf("unexpected suggestion: length %d level %d", resp.Length, resp.Strength.Level)
	}

	rec = do(t, h, http.MethodPost, "/api/v1/password/suggest", `{"length":4}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("short length: status = %d, want 400", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/api/v1/password/suggest", `{"length":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("truncated body: status = %d, want 400", rec.Code)
	}
}

func TestHandleSuggestChunkedEmptyBody(t *testing.T) {
	h, _ := newTestRouter(&stubAuth{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/password/suggest", strings.NewReader(""))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp model.SuggestResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Length != crypto.DefaultSuggestLength {
		t.Errorf("Length = %d, want %d", resp.Length, crypto.DefaultSuggestLength)
	}
}

func TestRouterWithoutAuth(t *testing.T) {
	h := NewRouter(nil, NewPasswordHandler(service.NewPasswordService()), crypto.NewSessions("s", time.Hour))

	if rec := do(t, h, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("health: status = %d, want 200", rec.Code)
	}
	if rec := do(t, h, http.MethodPost, "/api/v1/auth/sign-up", `{}`); rec.Code != http.StatusNotFound {
		t.Errorf("sign-up without database: status = %d, want 404", rec.Code)
	}
}
