// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within
// a single entity.
package service

// CredentialHasher turns a plaintext secret into a salted, irreversible
// digest and verifies a plaintext secret against a stored digest. The salt
// is explicit so digest and salt can be persisted as separate fields.
type CredentialHasher interface {
	// CreateSalt produces cryptographically random bytes of fixed length.
	CreateSalt() ([]byte, error)

	// Hash derives a digest from the plaintext and salt. Deterministic for a
	// given (plaintext, salt) pair and intentionally expensive to compute.
	Hash(plaintext string, salt []byte) []byte

	// Verify reports whether plaintext hashes to digest under salt, using a
	// constant-time comparison.
	Verify(plaintext string, salt, digest []byte) bool
}
