package auth

import (
	"context"
	"strings"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

// Gate authorizes privileged operations from an Authorization header value.
type Gate struct {
	tokens *JWTService
	role   string
}

// NewGate returns a gate that admits verified tokens carrying the admin role.
func NewGate(tokens *JWTService) *Gate {
	return &Gate{tokens: tokens, role: model.RoleAdmin}
}

// Authorize runs every check in order: presence, verification, role.
// The token is the second space-separated field of the header, so
// "Bearer <token>" is the expected form.
func (g *Gate) Authorize(header string) (*Claims, error) {
	if strings.TrimSpace(header) == "" {
		return nil, apperrors.ErrMissingToken
	}

	parts := strings.Fields(header)
	if len(parts) < 2 {
		return nil, apperrors.ErrTokenInvalid
	}

	claims, err := g.tokens.Verify(parts[1])
	if err != nil {
		return nil, err
	}

	if claims.Role != g.role {
		return nil, apperrors.ErrForbidden
	}
	return claims, nil
}

type claimsKey struct{}

// WithClaims attaches verified claims to ctx.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims attached by WithClaims, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok && claims != nil
}
