package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique address the user authenticates with.
	// Uniqueness is enforced by the database at write time.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is excluded from JSON serialization.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate carries the mutable profile fields of a user account.
// Nil pointers mean "leave unchanged"; an absent password in particular
// must not reset the stored hash.
type UserUpdate struct {
	// UserID identifies the account being updated.
	UserID int64 `json:"-"`

	// Name replaces the display name when non-nil.
	Name *string `json:"name,omitempty"`

	// Email replaces the login address when non-nil.
	// Collisions with another account surface as a conflict.
	Email *string `json:"email,omitempty"`

	// PasswordHash replaces the stored digest when non-nil.
	// It is set by the service after hashing, never from client input.
	PasswordHash *string `json:"-"`
}
