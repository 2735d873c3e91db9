package ports

import (
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer issues bearer tokens for a user.
type TokenIssuer interface {
	Issue(userID kernel.UUID) (token string, expiresAt time.Time, err error)
}

// TokenVerifier resolves a bearer token to the user it was issued for.
type TokenVerifier interface {
	Verify(token string) (kernel.UUID, error)
}
