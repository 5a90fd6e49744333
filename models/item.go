package models

import "time"

// Item is a single user-owned dashboard record.
//
// Every item has exactly one owner, assigned at creation time from the
// authenticated identity and immutable afterwards. All reads and mutations
// are scoped by the owner at the persistence layer.
type Item struct {
	// ItemID is the server-assigned unique identifier of the item.
	ItemID int64 `json:"id"`

	// Title is the required, non-empty headline of the item.
	Title string `json:"title"`

	// Description is optional free-form text. May be empty.
	Description string `json:"description"`

	// OwnerID is the identifier of the user that created the item.
	// Immutable after creation.
	OwnerID int64 `json:"ownerId"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemUpdate carries the mutable fields of an item for a field-level merge.
// Nil pointers mean "leave unchanged".
type ItemUpdate struct {
	// ItemID identifies the item being updated.
	ItemID int64 `json:"-"`

	// OwnerID scopes the update to the authenticated owner.
	// Populated by the service from the request identity, never from input.
	OwnerID int64 `json:"-"`

	// Title replaces the item title when non-nil.
	// A provided title must be non-empty.
	Title *string `json:"title,omitempty"`

	// Description replaces the item description when non-nil.
	Description *string `json:"description,omitempty"`
}
