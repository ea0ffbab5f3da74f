package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jobtrack/jobtrack-go/internal/model"
	"github.com/jobtrack/jobtrack-go/internal/signup"
)

const signUpPath = "/api/v1/auth/sign-up"

// Client talks to the jobtrack API. It implements signup.Creator.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the server at baseURL. A nil httpClient gets a
// client with a 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// CreateAccount posts the account to the sign up endpoint. Responses with
// an error body become *signup.BackendError; transport and decoding
// failures are returned as they are.
func (c *Client) CreateAccount(ctx context.Context, acct signup.Account) (signup.Session, error) {
	body, err := json.Marshal(model.SignUpRequest{
		Name:            acct.Name,
		Email:           acct.Email,
		Password:        acct.Password,
		ConfirmPassword: acct.Password,
	})
	if err != nil {
		return signup.Session{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+signUpPath, bytes.NewReader(body))
	if err != nil {
		return signup.Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return signup.Session{}, fmt.Errorf("sign up request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var errResp model.ErrorResponse
		// An unreadable error body still yields a BackendError; the form
		// falls back to its generic message.
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return signup.Session{}, &signup.BackendError{Message: errResp.Error, Status: resp.StatusCode}
	}

	var authResp model.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return signup.Session{}, fmt.Errorf("decoding sign up response: %w", err)
	}

	return signup.Session{
		Token:  authResp.Token,
		UserID: authResp.User.ID,
		Name:   authResp.User.Name,
		Email:  authResp.User.Email,
	}, nil
}
