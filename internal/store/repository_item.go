package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itemvault/itemvault/internal/logger"
	"github.com/itemvault/itemvault/models"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// It executes all item CRUD operations against the "items" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, item_id, etc.).
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateItem persists a new item and returns the record with server-assigned
// id and creation timestamp. The owner is taken from item.OwnerID and is
// immutable afterwards.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createItem, item.Title, item.Description, item.OwnerID)

	if err := row.Scan(&item.ItemID, &item.Title, &item.Description, &item.OwnerID, &item.CreatedAt); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Int64("user_id", item.OwnerID).Msg("error creating item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// GetItemsByOwner returns every item owned by ownerID.
//
// The owner filter is part of the SQL statement itself, so other users'
// records never reach the application layer. An empty result is returned as
// an empty slice, not nil.
func (r *itemRepository) GetItemsByOwner(ctx context.Context, ownerID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getItemsByOwner, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItemsByOwner").Int64("user_id", ownerID).Msg("failed to execute query for listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 16)

	for rows.Next() {
		var item models.Item

		scanErr := rows.Scan(&item.ItemID, &item.Title, &item.Description, &item.OwnerID, &item.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*itemRepository.GetItemsByOwner").Int64("user_id", ownerID).Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*itemRepository.GetItemsByOwner").Int64("user_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// GetItemByID returns the item with the given id regardless of owner.
// The service layer uses this for the existence-then-ownership check ordering.
//
// Error handling:
//   - sql.ErrNoRows → [ErrItemNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *itemRepository) GetItemByID(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.DB.QueryRowContext(ctx, getItemByID, itemID)

	if err := row.Scan(&item.ItemID, &item.Title, &item.Description, &item.OwnerID, &item.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.GetItemByID").Int64("item_id", itemID).Msg("error finding item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// UpdateItem applies a field-level merge of the non-nil fields in update and
// returns the updated record.
//
// The UPDATE is scoped by item id AND owner id, so even a racing request can
// never mutate a row the caller does not own; a vanished or foreign row
// simply matches nothing.
//
// Error handling:
//   - no fields set → [ErrBuildingSQLQuery].
//   - sql.ErrNoRows (no row matched id+owner) → [ErrItemNotFound].
func (r *itemRepository) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Int64("item_id", update.ItemID).Msg("failed to build update query")
		return models.Item{}, err
	}

	var item models.Item
	row := r.DB.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&item.ItemID, &item.Title, &item.Description, &item.OwnerID, &item.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.UpdateItem").Int64("item_id", update.ItemID).Int64("user_id", update.OwnerID).Msg("error updating item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// DeleteItem removes the item with the given id owned by ownerID.
//
// Like [itemRepository.UpdateItem], the DELETE is scoped by both id and
// owner. Zero affected rows surface as [ErrItemNotFound] so a second delete
// of the same id fails cleanly.
func (r *itemRepository) DeleteItem(ctx context.Context, itemID, ownerID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteItem, itemID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Int64("item_id", itemID).Int64("user_id", ownerID).Msg("error deleting item")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Int64("item_id", itemID).Msg("error reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
