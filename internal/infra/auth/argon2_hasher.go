// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"

	"accountd/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

// OWASP-recommended argon2id parameters.
const (
	argon2Time    = 1         // iterations
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4         // parallelism
	argon2SaltLen = 16        // salt length in bytes
	argon2KeyLen  = 32        // digest length in bytes
)

// argon2Hasher implements the CredentialHasher interface using argon2id.
// The salt is managed explicitly so the account record can store digest and
// salt as separate fields.
type argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.CredentialHasher interface.
func NewArgon2Hasher() service.CredentialHasher {
	return &argon2Hasher{
		time:    argon2Time,
		memory:  argon2Memory,
		threads: argon2Threads,
		keyLen:  argon2KeyLen,
	}
}

// CreateSalt produces argon2SaltLen cryptographically random bytes.
func (h *argon2Hasher) CreateSalt() ([]byte, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	return salt, nil
}

// Hash derives an argon2id digest from the plaintext and salt. Deterministic
// for a given (plaintext, salt) pair.
func (h *argon2Hasher) Hash(plaintext string, salt []byte) []byte {
	return argon2.IDKey([]byte(plaintext), salt, h.time, h.memory, h.threads, h.keyLen)
}

// Verify recomputes the digest and compares in constant time, so timing does
// not correlate with the position of the first mismatching byte.
func (h *argon2Hasher) Verify(plaintext string, salt, digest []byte) bool {
	computed := argon2.IDKey([]byte(plaintext), salt, h.time, h.memory, h.threads, h.keyLen)

	return subtle.ConstantTimeCompare(computed, digest) == 1
}
