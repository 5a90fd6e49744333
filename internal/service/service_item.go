package service

import (
	"context"
	"fmt"

	"github.com/itemvault/itemvault/internal/logger"
	"github.com/itemvault/itemvault/internal/store"
	"github.com/itemvault/itemvault/models"
)

// itemService is the concrete implementation of ItemService.
//
// Every item moves through a fixed life cycle: nonexistent → owned →
// updated any number of times → deleted. Mutations run the same gauntlet
// in the same order: the item must exist, it must belong to the caller,
// and only then is the operation applied. Foreign items are reported as
// ErrNotItemOwner, never disguised as missing.
type itemService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

// NewItemService constructs an ItemService over the given repository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// ListItems returns every item owned by ownerID and nothing else.
// The owner filter lives in the SQL query itself, so no foreign record is
// ever materialised and filtered out post hoc.
func (s *itemService) ListItems(ctx context.Context, ownerID int64) ([]models.Item, error) {
	return s.itemRepository.GetItemsByOwner(ctx, ownerID)
}

// CreateItem persists a new item owned by ownerID.
//
// The owner is always taken from the authenticated identity, never from the
// request body. Returns ErrInvalidDataProvided when the title is empty.
func (s *itemService) CreateItem(ctx context.Context, ownerID int64, req models.CreateItemRequest) (models.Item, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" {
		log.Error().Int64("user_id", ownerID).Msg("item creation without a title")
		return models.Item{}, ErrInvalidDataProvided
	}

	createdItem, err := s.itemRepository.CreateItem(ctx, models.Item{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return createdItem, nil
}

// UpdateItem merges the provided fields into the identified item.
//
// Check ordering is fixed: existence first (store.ErrItemNotFound), then
// ownership (ErrNotItemOwner), then the write. The UPDATE statement itself is
// additionally scoped by owner, so no partial update can land on an
// unauthorized path even under concurrent requests.
func (s *itemService) UpdateItem(ctx context.Context, ownerID, itemID int64, req models.UpdateItemRequest) (models.Item, error) {
	log := logger.FromContext(ctx)

	if req.Title == nil && req.Description == nil {
		log.Error().Int64("item_id", itemID).Msg("item update without any fields")
		return models.Item{}, ErrInvalidDataProvided
	}

	if req.Title != nil && *req.Title == "" {
		log.Error().Int64("item_id", itemID).Msg("item update with empty title")
		return models.Item{}, ErrInvalidDataProvided
	}

	if err := s.checkOwnership(ctx, ownerID, itemID); err != nil {
		return models.Item{}, err
	}

	updatedItem, err := s.itemRepository.UpdateItem(ctx, models.ItemUpdate{
		ItemID:      itemID,
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		log.Err(err).Int64("item_id", itemID).Int64("user_id", ownerID).Msg("item update ended with error")
		return models.Item{}, fmt.Errorf("item update ended with error: %w", err)
	}

	return updatedItem, nil
}

// DeleteItem removes the identified item and returns its id so the client
// can reconcile its local list. Runs the same existence-then-ownership
// checks as UpdateItem; deleting the same id twice fails the second time
// with store.ErrItemNotFound.
func (s *itemService) DeleteItem(ctx context.Context, ownerID, itemID int64) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.checkOwnership(ctx, ownerID, itemID); err != nil {
		return 0, err
	}

	if err := s.itemRepository.DeleteItem(ctx, itemID, ownerID); err != nil {
		log.Err(err).Int64("item_id", itemID).Int64("user_id", ownerID).Msg("item deletion ended with error")
		return 0, fmt.Errorf("item deletion ended with error: %w", err)
	}

	return itemID, nil
}

// checkOwnership verifies that the item exists and belongs to ownerID,
// in that order.
func (s *itemService) checkOwnership(ctx context.Context, ownerID, itemID int64) error {
	log := logger.FromContext(ctx)

	item, err := s.itemRepository.GetItemByID(ctx, itemID)
	if err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("item lookup failed")
		return fmt.Errorf("item lookup failed: %w", err)
	}

	if item.OwnerID != ownerID {
		log.Error().Int64("item_id", itemID).Int64("user_id", ownerID).Int64("owner_id", item.OwnerID).Msg("ownership check failed")
		return ErrNotItemOwner
	}

	return nil
}
