// Package auth provides the JWT-based implementation of identity
// verification for incoming HTTP requests.
package auth

import (
	"fmt"

	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier validates HMAC-signed bearer tokens and extracts the caller's
// identity from their claims. Tokens are issued by an external identity
// service; this adapter only verifies them.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for tokens signed with the given secret.
func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

// Verify parses and validates a bearer token.
// Returns ports.ErrUnauthorized for anything that does not carry a valid
// signature, subject and email.
func (v *JWTVerifier) Verify(token string) (ports.Identity, error) {
	if token == "" {
		return ports.Identity{}, ports.ErrUnauthorized
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ports.Identity{}, ports.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ports.Identity{}, ports.ErrUnauthorized
	}

	subject, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if subject == "" || email == "" {
		return ports.Identity{}, ports.ErrUnauthorized
	}

	return ports.Identity{
		Subject: subject,
		Email:   email,
		Role:    role,
	}, nil
}
