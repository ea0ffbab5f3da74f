package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jobtrack/jobtrack-go/internal/model"
	"github.com/jobtrack/jobtrack-go/internal/repository"
	"github.com/jobtrack/jobtrack-go/internal/signup"
)

var ErrEmailTaken = errors.New("User already exists. Use another email.")

type userStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

type credentialHasher interface {
	Hash(secret string) (string, error)
}

type sessionIssuer interface {
	Issue(userID int64, email string) (string, error)
}

// AuthService creates accounts and looks up signed-in users.
type AuthService struct {
	users    userStore
	hasher   credentialHasher
	sessions sessionIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(users userStore, hasher credentialHasher, sessions sessionIssuer) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
	}
}

// SignUp validates the submission with the same rules as the form, stores
// the new user and returns a session token. Validation failures are
// returned as *signup.InputError.
func (s *AuthService) SignUp(ctx context.Context, req model.SignUpRequest) (model.AuthResponse, error) {
	if err := signup.Validate(req.Name, req.Email, req.Password, req.ConfirmPassword).Err(); err != nil {
		return model.AuthResponse{}, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		AuthHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := s.sessions.Issue(user.ID, user.Email)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

// CreateAccount adapts SignUp to signup.Creator for in-process forms. The
// form has already checked the confirmation, so the password is reused.
func (s *AuthService) CreateAccount(ctx context.Context, acct signup.Account) (signup.Session, error) {
	resp, err := s.SignUp(ctx, model.SignUpRequest{
		Name:            acct.Name,
		Email:           acct.Email,
		Password:        acct.Password,
		ConfirmPassword: acct.Password,
	})
	if err != nil {
		var inputErr *signup.InputError
		switch {
		case errors.Is(err, ErrEmailTaken):
			return signup.Session{}, &signup.BackendError{Message: err.Error()}
		case errors.As(err, &inputErr):
			return signup.Session{}, &signup.BackendError{Message: inputErr.Message}
		}
		return signup.Session{}, err
	}

	return signup.Session{
		Token:  resp.Token,
		UserID: resp.User.ID,
		Name:   resp.User.Name,
		Email:  resp.User.Email,
	}, nil
}

// GetUser returns the public view of a user.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
