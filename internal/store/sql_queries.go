package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/itemvault/itemvault/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createItem = `INSERT INTO items (title, description, user_id)
    VALUES ($1, $2, $3)
    RETURNING item_id, title, COALESCE(description, ''), user_id, created_at;`

	getItemsByOwner = `SELECT item_id, title, COALESCE(description, ''), user_id, created_at
    FROM items
    WHERE user_id = $1
    ORDER BY item_id;`

	getItemByID = `SELECT item_id, title, COALESCE(description, ''), user_id, created_at
    FROM items
    WHERE item_id = $1;`

	deleteItem = `DELETE FROM items
    WHERE item_id = $1 AND user_id = $2;`
)

// psql builds all dynamic queries with PostgreSQL's $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery assembles a field-level merge UPDATE for the users
// table from the non-nil fields of update. Returns [ErrBuildingSQLQuery]
// when no field is set.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	builder := psql.Update("users")

	changed := false
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
		changed = true
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
		changed = true
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
		changed = true
	}

	if !changed {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING user_id, name, email, password_hash, created_at").
		ToSql()
}

// buildUpdateItemQuery assembles a field-level merge UPDATE for the items
// table, scoped by both item id and owner id so an unauthorized path can
// never touch the row. Returns [ErrBuildingSQLQuery] when no field is set.
func buildUpdateItemQuery(update models.ItemUpdate) (string, []any, error) {
	builder := psql.Update("items")

	changed := false
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		changed = true
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
		changed = true
	}

	if !changed {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.
		Where(sq.Eq{"item_id": update.ItemID, "user_id": update.OwnerID}).
		Suffix("RETURNING item_id, title, COALESCE(description, ''), user_id, created_at").
		ToSql()
}
