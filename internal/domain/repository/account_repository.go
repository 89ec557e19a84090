// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authgate/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when no account
// matches the given email.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// Create persists a new account. The store enforces email uniqueness;
	// a duplicate email surfaces as a domain error, not a raw driver error.
	Create(ctx context.Context, account *entity.Account) error

	// FindByEmail retrieves a single account by its email address (exact match).
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
}
