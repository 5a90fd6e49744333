package apiclient

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the session token
	// or the supplied credentials.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrForbidden is returned when the server refuses access to an item
	// owned by a different user.
	ErrForbidden = errors.New("access to item forbidden")

	// ErrNotFound is returned when the targeted item does not exist.
	ErrNotFound = errors.New("item not found")

	// ErrConflict is returned when the email address is already taken.
	ErrConflict = errors.New("email already taken")

	// ErrNotLoggedIn is returned by authenticated calls before a successful
	// Login or Register has established a session.
	ErrNotLoggedIn = errors.New("no active session")
)
