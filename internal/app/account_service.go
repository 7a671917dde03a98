package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moodtunes/internal/pkg/jwtutil"
)

// IdentityProvider is the opaque hosted identity boundary: account creation
// and password-reset link issuance.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (string, error)
	PasswordResetLink(ctx context.Context, email string) (string, error)
}

// AccountService forwards account operations to the identity provider and
// mints a session token for history attribution. No credential is stored or
// hashed in-process.
type AccountService struct {
	identity      IdentityProvider
	jwtSecret     string
	jwtExpiration time.Duration
}

// SignUpResult carries the provider-assigned uid and the session token.
type SignUpResult struct {
	UID   string
	Token string
}

func NewAccountService(identity IdentityProvider, jwtSecret string, jwtExpiration time.Duration) *AccountService {
	return &AccountService{
		identity:      identity,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *AccountService) SignUp(ctx context.Context, email, password string) (*SignUpResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrBadInput)
	}

	uid, err := s.identity.SignUp(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, uid)
	if err != nil {
		return nil, fmt.Errorf("generate session token failed: %w", err)
	}
	return &SignUpResult{UID: uid, Token: token}, nil
}

func (s *AccountService) PasswordResetLink(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrBadInput)
	}

	link, err := s.identity.PasswordResetLink(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return link, nil
}
