// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the sole entity in the system, representing one registered
// credential holder. It is created by registration and read-only afterwards;
// no update or delete path exists.
type Account struct {
	ID           uuid.UUID // Unique identifier, assigned by the store on creation.
	Name         string    // Display name supplied at registration, never validated beyond presence.
	Email        string    // Unique natural key used for login lookup.
	PasswordHash string    // bcrypt hash of the plaintext password. Never the plaintext itself.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
