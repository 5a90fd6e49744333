package store

import "github.com/itemvault/itemvault/internal/logger"

// Repositories bundles every data-access implementation the service layer
// depends on.
type Repositories struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

// NewRepositories constructs all repositories over the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		ItemRepository: NewItemRepository(db, logger),
	}
}
