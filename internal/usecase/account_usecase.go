// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accountd/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to register a new account.
type CreateAccountInput struct {
	Email      string
	Credential string
}

// AuthenticateInput defines the data required to log in.
type AuthenticateInput struct {
	Email      string
	Credential string
}

// ChangeCredentialInput defines the data required to rotate a credential.
// The old credential must verify before the new one is accepted.
type ChangeCredentialInput struct {
	ID            uuid.UUID
	OldCredential string
	NewCredential string
}

// UpdateProfileInput defines the data required to update email and role flags.
type UpdateProfileInput struct {
	ID         uuid.UUID
	Email      string
	IsDelegate bool
	IsOwner    bool
}

// --- Output DTOs ---

// AccountOutput carries a sanitized account across the service boundary.
// After Authenticate, Account.IssuedToken is populated.
type AccountOutput struct {
	Account *entity.Account
}

// AccountUsecase defines the interface for account lifecycle operations.
// This is the contract the delivery layer (API handlers) depends on. Every
// returned account is sanitized: credential digest and salt are cleared.
type AccountUsecase interface {
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*AccountOutput, error)
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AccountOutput, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*AccountOutput, error)
	ChangeCredential(ctx context.Context, input *ChangeCredentialInput) (*AccountOutput, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*AccountOutput, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}
