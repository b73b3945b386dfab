// Package entity contains the core business objects of the service,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the sole entity in the system, representing one registered
// identity on the platform. The credential digest and salt are always set
// together and never leave the domain boundary: every account returned by a
// usecase operation is a sanitized copy with both fields cleared.
type Account struct {
	ID               uuid.UUID // Assigned once at creation by the domain service, never reused.
	Email            string    // Case-sensitive login identifier, unique across all accounts.
	CredentialDigest []byte    // Output of the credential hasher. Never serialized outward.
	CredentialSalt   []byte    // Per-account random salt paired with the digest.
	IsDelegate       bool      // Delegate role flag.
	IsOwner          bool      // Owner role flag.
	IssuedToken      string    // Populated only on a successful Authenticate. Never persisted.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasCredential reports whether both credential fields are set.
// After creation they are never independently empty.
func (a *Account) HasCredential() bool {
	return len(a.CredentialDigest) > 0 && len(a.CredentialSalt) > 0
}

// SetCredential replaces the digest and salt as a pair.
func (a *Account) SetCredential(digest, salt []byte) {
	a.CredentialDigest = digest
	a.CredentialSalt = salt
}

// Sanitized returns a copy of the account with the credential digest and
// salt cleared, safe to cross the service boundary.
func (a *Account) Sanitized() *Account {
	if a == nil {
		return nil
	}

	clean := *a
	clean.CredentialDigest = nil
	clean.CredentialSalt = nil

	return &clean
}
