package http

import (
	"strings"

	"parceltrack/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// identityKey is the echo context key the auth middleware stores the
// verified caller identity under.
const identityKey = "identity"

// Authenticated verifies the bearer token on every request and stores the
// resulting identity in the request context.
func Authenticated(verifier ports.IdentityVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return respondError(ctx, ports.ErrUnauthorized)
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				return respondError(ctx, ports.ErrUnauthorized)
			}

			ctx.Set(identityKey, identity)
			return next(ctx)
		}
	}
}

// AdminOnly rejects callers whose verified identity does not hold the admin
// role. Must run after Authenticated.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if !identityFrom(ctx).IsAdmin() {
			return respondError(ctx, ports.ErrForbidden)
		}
		return next(ctx)
	}
}

// identityFrom returns the verified identity stored by Authenticated.
// Zero value on unauthenticated routes.
func identityFrom(ctx echo.Context) ports.Identity {
	identity, _ := ctx.Get(identityKey).(ports.Identity)
	return identity
}
