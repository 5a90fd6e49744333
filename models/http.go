package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	// Name is the display name of the new account. Required.
	Name string `json:"name"`

	// Email is the unique login address of the new account. Required.
	Email string `json:"email"`

	// Password is the plaintext password. Required.
	// It is hashed by the service and never stored or logged as-is.
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	// Email is the login address. Required.
	Email string `json:"email"`

	// Password is the plaintext password to verify. Required.
	Password string `json:"password"`
}

// ProfileUpdateRequest is the body of PUT /api/auth/profile.
// Every field is optional; absent fields are left unchanged.
type ProfileUpdateRequest struct {
	// Name replaces the display name when provided.
	Name *string `json:"name,omitempty"`

	// Email replaces the login address when provided.
	Email *string `json:"email,omitempty"`

	// Password, when provided, is re-hashed and replaces the stored digest.
	// An absent password means "no change".
	Password *string `json:"password,omitempty"`
}

// CreateItemRequest is the body of POST /api/items.
type CreateItemRequest struct {
	// Title is the required item headline.
	Title string `json:"title"`

	// Description is optional free-form text.
	Description string `json:"description,omitempty"`
}

// UpdateItemRequest is the body of PUT /api/items/{id}.
// Nil fields are left unchanged (field-level merge).
type UpdateItemRequest struct {
	// Title replaces the item title when provided; must be non-empty.
	Title *string `json:"title,omitempty"`

	// Description replaces the item description when provided.
	Description *string `json:"description,omitempty"`
}
