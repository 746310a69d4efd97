package auth

import (
	"context"
	"strings"

	"github.com/doja-oual/portfolio-backend/internal/models"
	"github.com/doja-oual/portfolio-backend/internal/utils"
)

// AuthContext is the per-request authentication state. It is built for
// every request, authenticated or not, and building it never fails.
type AuthContext struct {
	Authenticated bool
	Claims        *Claims
}

// FromHeader extracts and verifies a bearer token from an
// Authorization header value. The header must be exactly
// "Bearer <token>" (case-sensitive scheme, two space-separated
// parts); any deviation yields an unauthenticated context.
func FromHeader(codec *TokenCodec, header string) AuthContext {
	if header == "" {
		return AuthContext{}
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return AuthContext{}
	}

	claims := codec.Verify(parts[1])
	if claims == nil {
		return AuthContext{}
	}

	return AuthContext{Authenticated: true, Claims: claims}
}

// RequireAuth fails when the caller is not authenticated.
func RequireAuth(ac AuthContext) error {
	if !ac.Authenticated || ac.Claims == nil {
		return utils.E(utils.CodeUnauthorized, "", "Non authentifié. Veuillez vous connecter.", nil)
	}
	return nil
}

// RequireRole fails unless the caller holds one of the given roles.
func RequireRole(ac AuthContext, roles ...models.UserRole) error {
	if err := RequireAuth(ac); err != nil {
		return err
	}
	for _, r := range roles {
		if ac.Claims.Role == r {
			return nil
		}
	}
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return utils.E(utils.CodeForbidden, "", "Accès refusé. Rôles requis: "+strings.Join(names, ", "), nil)
}

// RequireAdmin gates every write operation of the API.
func RequireAdmin(ac AuthContext) error {
	if err := RequireAuth(ac); err != nil {
		return err
	}
	if ac.Claims.Role != models.RoleAdmin {
		return utils.E(utils.CodeForbidden, "", "Accès refusé. Droits administrateur requis.", nil)
	}
	return nil
}

type ctxKey struct{}

func WithContext(ctx context.Context, ac AuthContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, ac)
}

func FromContext(ctx context.Context) AuthContext {
	if ac, ok := ctx.Value(ctxKey{}).(AuthContext); ok {
		return ac
	}
	return AuthContext{}
}
