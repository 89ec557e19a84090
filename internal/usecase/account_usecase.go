// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the authenticated account's display name.
// No token, session id, password or hash is ever returned.
type LoginOutput struct {
	Name string
}

// AccountUsecase defines the interface for credential operations.
// This is the contract that the delivery layer (the HTTP handlers) depends on.
type AccountUsecase interface {
	// Register hashes the password and persists a new account.
	// A duplicate email surfaces as domainerrors.ErrEmailAlreadyRegistered.
	Register(ctx context.Context, input *RegisterInput) error

	// Login verifies the password against the stored hash.
	// Unknown email surfaces as domainerrors.ErrAccountNotFound, a mismatch
	// as domainerrors.ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
