package service

import (
	"context"

	"github.com/itemvault/itemvault/models"
)

// AuthService covers the full credential lifecycle: account registration,
// login, profile maintenance, and JWT issuance/validation.
type AuthService interface {
	// RegisterUser creates a new account from the registration request.
	// The plaintext password is hashed before persistence.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the supplied credentials and returns the account.
	// Unknown email and wrong password both yield [ErrInvalidCredentials].
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// UpdateProfile applies a field-level merge of the provided profile
	// fields; an absent password means "no change".
	UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and extracts its subject.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveUser loads the account behind a verified token subject.
	ResolveUser(ctx context.Context, userID int64) (models.User, error)
}

// ItemService covers CRUD over user-owned items, enforcing ownership on
// every mutation. The check ordering is fixed: existence first, then
// ownership, then the operation itself.
type ItemService interface {
	// ListItems returns every item owned by the identity, and only those.
	ListItems(ctx context.Context, ownerID int64) ([]models.Item, error)

	// CreateItem persists a new item owned by the identity.
	CreateItem(ctx context.Context, ownerID int64, req models.CreateItemRequest) (models.Item, error)

	// UpdateItem merges the provided fields into the identified item.
	UpdateItem(ctx context.Context, ownerID, itemID int64, req models.UpdateItemRequest) (models.Item, error)

	// DeleteItem removes the identified item and returns its id.
	DeleteItem(ctx context.Context, ownerID, itemID int64) (int64, error)
}
