package store

import (
	"context"

	"github.com/itemvault/itemvault/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Duplicate emails surface as [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the account registered under email.
	// Returns [ErrUserNotFound] when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves the account with the given identifier.
	// Returns [ErrUserNotFound] when no such account exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies a field-level merge of the non-nil fields in update
	// and returns the resulting record. Email collisions surface as
	// [ErrEmailAlreadyExists], a missing account as [ErrUserNotFound].
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
}

// ItemRepository is the persistence contract for user-owned items.
//
// List reads are owner-scoped at the SQL level; single-item reads return the
// record regardless of owner so the service layer can distinguish "not found"
// from "not yours". All mutations are additionally scoped by owner.
type ItemRepository interface {
	// CreateItem persists a new item owned by item.OwnerID and returns it
	// with server-assigned id and timestamp.
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// GetItemsByOwner returns every item whose owner equals ownerID.
	// The filter is part of the query itself, never applied post hoc.
	GetItemsByOwner(ctx context.Context, ownerID int64) ([]models.Item, error)

	// GetItemByID returns the item with the given id, whoever owns it.
	// Returns [ErrItemNotFound] when the id does not exist.
	GetItemByID(ctx context.Context, itemID int64) (models.Item, error)

	// UpdateItem applies a field-level merge of the non-nil fields in update,
	// scoped by both item id and owner id, and returns the updated record.
	// Returns [ErrItemNotFound] when no row matches both.
	UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error)

	// DeleteItem removes the item with the given id owned by ownerID.
	// Returns [ErrItemNotFound] when no row matches both.
	DeleteItem(ctx context.Context, itemID, ownerID int64) error
}
