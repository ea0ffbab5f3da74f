package crypto

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "jobtrack"
	tokenAudience = "jobtrack-web"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrMissingToken  = errors.New("missing authorization header")
	ErrMalformedAuth = errors.New("invalid authorization format")
)

// SessionClaims identify the user a session token was issued to.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
}

// Sessions issues and verifies HS256 session tokens.
type Sessions struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewSessions creates a Sessions signing with secret. Tokens live for expiry.
func NewSessions(secret string, expiry time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), expiry: expiry, now: time.Now}
}

// Issue signs a token for the user.
func (s *Sessions) Issue(userID int64, email string) (string, error) {
	now := s.now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Email:  email,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses a token and returns its claims when the signature, issuer,
// audience and expiry all check out.
func (s *Sessions) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authenticate takes an Authorization header value of the form
// "Bearer <token>" and returns the ID of the user the token was issued to.
func (s *Sessions) Authenticate(header string) (int64, error) {
	if header == "" {
		return 0, ErrMissingToken
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return 0, ErrMalformedAuth
	}
	claims, err := s.Verify(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
