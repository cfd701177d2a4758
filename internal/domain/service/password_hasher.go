// Package service declares the ports the shop use cases depend on: credential
// hashing, tokens, mail, events, idempotency, metrics and time.
package service

// PasswordHasher stores and verifies customer passwords.
type PasswordHasher interface {
	// Hash returns the stored form of a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password produces the stored hash.
	Check(password, hash string) bool

	// Fingerprint derives a short, non-reversible tag from a stored hash.
	// A password reset token carries it so the token dies once the password changes.
	Fingerprint(hash string) string
}
