package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/itemvault/itemvault/internal/config"
	"github.com/itemvault/itemvault/internal/logger"
	"github.com/itemvault/itemvault/internal/store"
	"github.com/itemvault/itemvault/internal/utils"
	"github.com/itemvault/itemvault/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, profile updates,
// and the JWT token lifecycle using a UserRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that name, email, and password are all present and that the
// email is well-formed, hashes the password with bcrypt, and delegates
// persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a required field is missing or the email is malformed.
//   - store.ErrEmailAlreadyExists if the address is already taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("registration with missing required fields")
		return models.User{}, ErrInvalidDataProvided
	}

	if !isValidEmail(req.Email) {
		log.Error().Str("email", req.Email).Msg("registration with malformed email")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and verifies the supplied password against
// the stored bcrypt digest. Both failure causes collapse into the same
// ErrInvalidCredentials so that account existence is never leaked.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("login with missing required fields")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")

		// Only an absent account collapses into the generic credential error;
		// infrastructure failures must keep surfacing as such.
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}

		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, foundUser.PasswordHash) {
		log.Error().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// UpdateProfile applies a field-level merge of the provided profile fields.
//
// A supplied password is re-hashed before persistence; an absent password is
// treated as "no change" and never touches the stored digest. A request with
// no fields at all, or with a malformed or empty email, fails validation.
//
// Returns the updated user or:
//   - ErrInvalidDataProvided on malformed input.
//   - store.ErrEmailAlreadyExists if the new email collides with another account.
//   - store.ErrUserNotFound if the account vanished meanwhile.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == nil && req.Email == nil && req.Password == nil {
		log.Error().Int64("user_id", userID).Msg("profile update without any fields")
		return models.User{}, ErrInvalidDataProvided
	}

	if req.Name != nil && *req.Name == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	if req.Email != nil && !isValidEmail(*req.Email) {
		log.Error().Int64("user_id", userID).Msg("profile update with malformed email")
		return models.User{}, ErrInvalidDataProvided
	}

	update := models.UserUpdate{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
	}

	if req.Password != nil {
		if *req.Password == "" {
			return models.User{}, ErrInvalidDataProvided
		}

		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.PasswordHash = &passwordHash
	}

	updatedUser, err := a.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updatedUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the expiry, and the issuer claim. Any validation failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveUser loads the account behind a verified token subject.
//
// The auth middleware calls this after token validation so that requests
// carrying a token for a deleted account are rejected rather than trusted.
func (a *authService) ResolveUser(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// isValidEmail reports whether the address parses as a bare RFC 5322 address.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
