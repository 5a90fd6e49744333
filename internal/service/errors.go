package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or carries malformed values (empty title, bad email, etc.).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for both "no such account" and
	// "wrong password" so a caller can never tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenIsExpiredOrInvalid normalises every token validation failure
	// (bad signature, malformed payload, expired, wrong issuer).
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps low-level JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrNotItemOwner is returned when an authenticated caller targets an
	// item that exists but belongs to a different user. The item is left
	// untouched.
	ErrNotItemOwner = errors.New("item belongs to a different user")
)
