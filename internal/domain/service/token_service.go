package service

import "github.com/google/uuid"

// TokenService issues and validates the signed identity tokens attached to a
// successful authentication. Only Issue is called by the domain service;
// Validate exists for the request-authentication middleware at the boundary.
type TokenService interface {
	// Issue creates a signed, time-bounded token for the account ID.
	Issue(accountID uuid.UUID) (string, error)

	// Validate checks the token signature and expiry and returns the account
	// ID the token was issued for.
	Validate(token string) (uuid.UUID, error)
}
