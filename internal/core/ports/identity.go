package ports

import "errors"

var (
	// ErrUnauthorized is returned when a request carries no valid identity.
	ErrUnauthorized = errors.New("missing or invalid credentials")

	// ErrForbidden is returned when an identity lacks the required role.
	ErrForbidden = errors.New("insufficient permissions")
)

// Identity is the authenticated caller extracted from a request token.
type Identity struct {
	Subject string
	Email   string
	Role    string
}

// IsAdmin reports whether the identity carries back-office privileges.
func (i Identity) IsAdmin() bool {
	return i.Role == "admin"
}

// IdentityVerifier validates a bearer token and extracts the caller identity.
type IdentityVerifier interface {
	// Verify parses and validates the token.
	// Returns ErrUnauthorized when the token is missing, expired or forged.
	Verify(token string) (Identity, error)
}
