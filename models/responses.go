package models

// AuthResponse is the success body of the register, login, and profile
// endpoints. It carries the public view of the account together with a
// freshly issued bearer token that the client persists locally.
type AuthResponse struct {
	// ID is the account identifier.
	ID int64 `json:"id"`

	// Name is the display name of the account.
	Name string `json:"name"`

	// Email is the login address of the account.
	Email string `json:"email"`

	// Token is the compact serialized JWT to be presented on subsequent
	// requests in the "Authorization: Bearer <token>" header.
	Token string `json:"token"`
}

// DeletedItemResponse is the success body of DELETE /api/items/{id}.
// Returning the id lets the client reconcile its local list without a refetch.
type DeletedItemResponse struct {
	// ID is the identifier of the item that was removed.
	ID int64 `json:"id"`
}

// ErrorResponse is the JSON error envelope returned on every failure.
// The message is intentionally generic for authentication failures so that
// account existence is never leaked.
type ErrorResponse struct {
	// Message is the human-readable error description shown verbatim by the UI.
	Message string `json:"message"`
}

// NewAuthResponse builds an AuthResponse from a persisted user and a signed token.
func NewAuthResponse(user User, token Token) AuthResponse {
	return AuthResponse{
		ID:    user.UserID,
		Name:  user.Name,
		Email: user.Email,
		Token: token.SignedString,
	}
}
