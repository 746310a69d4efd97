package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/doja-oual/portfolio-backend/internal/models"
	"github.com/doja-oual/portfolio-backend/internal/utils"
)

// Claims are the identity attributes embedded in a bearer token.
type Claims struct {
	jwt.RegisteredClaims
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

func (c *Claims) UserID() string { return c.Subject }

// TokenCodec signs and verifies HS256 bearer tokens. Secret and
// lifetime come from process configuration, fixed at construction.
type TokenCodec struct {
	secret    []byte
	expiresIn time.Duration
}

func NewTokenCodec(secret string, expiresIn time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), expiresIn: expiresIn}
}

func (c *TokenCodec) Issue(userID, email string, role models.UserRole) (string, error) {
	const op = "TokenCodec.Issue"

	if len(c.secret) == 0 {
		return "", utils.E(utils.CodeInternal, op, "signing key is not configured", nil)
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.expiresIn)),
		},
		Email: email,
		Role:  role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return signed, nil
}

// Verify returns nil claims for any malformed, expired or tampered
// token. Callers cannot distinguish the cause.
func (c *TokenCodec) Verify(raw string) *Claims {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || tok == nil || !tok.Valid {
		return nil
	}
	return claims
}
