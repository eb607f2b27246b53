package auth

import "github.com/google/uuid"

// PasswordHasher hashes and verifies vendor passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs bearer tokens bound to a vendor identity.
type TokenIssuer interface {
	Issue(vendorID uuid.UUID) (string, error)
}
