package service

import (
	"github.com/itemvault/itemvault/internal/config"
	"github.com/itemvault/itemvault/internal/logger"
	"github.com/itemvault/itemvault/internal/store"
)

// Services bundles every business-logic implementation the transport layer
// depends on.
type Services struct {
	AuthService AuthService
	ItemService ItemService
}

// NewServices constructs all services over the given repositories.
func NewServices(repositories *store.Repositories, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg, logger),
		ItemService: NewItemService(repositories.ItemRepository, logger),
	}
}
