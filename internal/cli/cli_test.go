package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jobtrack/jobtrack-go/internal/model"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cli := newCLI(strings.NewReader(""), &stdout, &stderr)
	cmd := NewRootCmd(cli)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestStrengthCmd(t *testing.T) {
	tests := []struct {
		name     string
		pwd      string
		want     []string
		wantNone []string
	}{
		{
			name: "short with every class",
			pwd:  "Ab3!",
			want: []string{"Password strength: Too short (min 8 characters)", "■□□□□  Too Short", "✗ 8+ characters", "✓ One special char"},
		},
		{
			name: "very strong",
			pwd:  "Ab3!xyz9",
			want: []string{"Password strength: Very Strong", "■■■■■", "✓ 8+ characters"},
		},
		{
			name:     "empty",
			pwd:      "",
			want:     []string{"Password strength: Enter a password", "□□□□□"},
			wantNone: []string{"8+ characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, "strength", tt.pwd)
			if err != nil {
				t.Fatalf("strength: unexpected error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.wantNone {
				if strings.Contains(out, w) {
					t.Errorf("output should not contain %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestStrengthCmdNeedsTerminalToPrompt(t *testing.T) {
	_, err := runCmd(t, "strength")
	if !errors.Is(err, errNotInteractive) {
		t.Errorf("error = %v, want errNotInteractive", err)
	}
}

func newSignUpServer(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req model.SignUpRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Email == "taken@example.com" {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(model.ErrorResponse{Error: "User already exists. Use another email."})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.AuthResponse{Token: "tok", User: model.UserResponse{ID: 1, Name: req.Name, Email: req.Email}})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRegisterCmd(t *testing.T) {
	var calls atomic.Int32
	srv := newSignUpServer(t, &calls)

	out, err := runCmd(t, "register", "--server", srv.URL,
		"--name", "Jo", "--email", "jo@example.com", "--password", "Abcdefg1!", "--remember-me")
	if err != nil {
		t.Fatalf("register: unexpected error: %v", err)
	}
	for _, w := range []string{"Password strength: Very Strong", "✓ Passwords match", "Account created for Jo <jo@example.com>.", "stay signed in"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("server called %d times, want 1", calls.Load())
	}
}

func TestRegisterCmdErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantErr   string
		wantCalls int32
	}{
		{
			name:    "validation stops before the request",
			args:    []string{"--name", "Jo", "--email", "jo@example.com", "--password", "Abcdefg1!", "--confirm-password", "Abcdefg2!"},
			wantErr: "Passwords do not match",
		},
		{
			name:    "weak password",
			args:    []string{"--name", "Jo", "--email", "jo@example.com", "--password", "abcdefg1"},
			wantErr: "Password must contain at least one uppercase letter",
		},
		{
			name:      "backend message",
			args:      []string{"--name", "Jo", "--email", "taken@example.com", "--password", "Abcdefg1!"},
			wantErr:   "User already exists. Use another email.",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := newSignUpServer(t, &calls)

			args := append([]string{"register", "--server", srv.URL}, tt.args...)
			_, err := runCmd(t, args...)
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("error = %v, want %q", err, tt.wantErr)
			}
			if calls.Load() != tt.wantCalls {
				t.Errorf("server called %d times, want %d", calls.Load(), tt.wantCalls)
			}
		})
	}
}

func TestRegisterCmdServerFromEnv(t *testing.T) {
	var calls atomic.Int32
	srv := newSignUpServer(t, &calls)
	t.Setenv("SIGNUP_SERVER", srv.URL)
	t.Setenv("SIGNUP_PASSWORD", "Abcdefg1!")

	if _, err := runCmd(t, "register", "--name", "Jo", "--email", "jo@example.com"); err != nil {
		t.Fatalf("register: unexpected error: %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("server called %d times, want 1", calls.Load())
	}
}
