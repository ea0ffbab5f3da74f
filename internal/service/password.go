package service

import (
	"github.com/jobtrack/jobtrack-go/internal/crypto"
	"github.com/jobtrack/jobtrack-go/internal/model"
	"github.com/jobtrack/jobtrack-go/internal/password"
)

// PasswordService scores and suggests passwords.
type PasswordService struct{}

// NewPasswordService creates a new PasswordService.
func NewPasswordService() *PasswordService {
	return &PasswordService{}
}

// Strength returns the indicator state for a password.
func (s *PasswordService) Strength(req model.StrengthRequest) password.Report {
	return password.Analyze(req.Password)
}

// Suggest generates a password that satisfies every sign up rule.
func (s *PasswordService) Suggest(req model.SuggestRequest) (model.SuggestResponse, error) {
	length := req.Length
	if length == 0 {
		length = crypto.DefaultSuggestLength
	}

	pwd, err := crypto.SuggestPassword(length)
	if err != nil {
		return model.SuggestResponse{}, err
	}

	return model.SuggestResponse{
		Password: pwd,
		Length:   len(pwd),
		Strength: password.Analyze(pwd),
	}, nil
}
