package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/itemvault/itemvault/internal/logger"
	"github.com/itemvault/itemvault/internal/service"
	"github.com/itemvault/itemvault/internal/utils"
	"github.com/itemvault/itemvault/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of an authenticated request")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	items, err := h.services.ItemService.ListItems(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error occurred during items listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of an authenticated request")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	createdItem, err := h.services.ItemService.CreateItem(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error occurred during item creation")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, createdItem, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of an authenticated request")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	itemID, err := itemIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid item id in url")
		utils.WriteJSON(w, models.ErrorResponse{Message: "invalid item id"}, http.StatusBadRequest)
		return
	}

	var req models.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updatedItem, err := h.services.ItemService.UpdateItem(ctx, userID, itemID, req)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("item_id", itemID).Msg("error occurred during item update")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedItem, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of an authenticated request")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	itemID, err := itemIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid item id in url")
		utils.WriteJSON(w, models.ErrorResponse{Message: "invalid item id"}, http.StatusBadRequest)
		return
	}

	deletedID, err := h.services.ItemService.DeleteItem(ctx, userID, itemID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("item_id", itemID).Msg("error occurred during item deletion")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.DeletedItemResponse{ID: deletedID}, http.StatusOK)
}

// itemIDFromURL parses the {id} chi route parameter as a positive int64.
func itemIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
