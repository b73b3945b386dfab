// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accountd/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is the explicit not-found signal returned by lookups.
// The usecase layer is the sole translator of this sentinel into the domain
// error kinds (AccountNotFound vs EmailNotFound, depending on the operation).
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The implementation must enforce a unique constraint on email: the usecase's
// pre-check is an optimization for a clear error, not the authoritative guard.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Insert persists a new account.
	Insert(ctx context.Context, account *entity.Account) error

	// Update replaces the stored record for account.ID.
	Update(ctx context.Context, account *entity.Account) error

	// Remove deletes the account with the given ID.
	Remove(ctx context.Context, id uuid.UUID) error
}
