package model

import "github.com/jobtrack/jobtrack-go/internal/password"

// StrengthRequest asks for the strength report of a password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// SuggestRequest asks for a generated password. Zero length means the default.
type SuggestRequest struct {
	Length int `json:"length"`
}

// SuggestResponse is a generated password with its strength report.
type SuggestResponse struct {
	Password string          `json:"password"`
	Length   int             `json:"length"`
	Strength password.Report `json:"strength"`
}
