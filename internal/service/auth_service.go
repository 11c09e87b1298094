package service

import (
	"context"
	"fmt"

	"storefront/internal/auth"
	"storefront/internal/model"
)

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	credentials CredentialStore
	jwtService  *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(credentials CredentialStore, jwtService *auth.JWTService) AuthService {
	return &authService{
		credentials: credentials,
		jwtService:  jwtService,
	}
}

// Login authenticates a user and returns a signed token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.credentials.VerifyLogin(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.jwtService.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}
