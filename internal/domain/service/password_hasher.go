// Package service defines interfaces for domain services.
package service

// PasswordHasher abstracts password hashing so use cases never depend on a
// specific algorithm.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	// Returns an error when they do not match.
	Compare(hashedPassword, password string) error
}
