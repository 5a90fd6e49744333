package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/itemvault/itemvault/internal/logger"
	"github.com/itemvault/itemvault/models"
)

var itemColumns = []string{"item_id", "title", "description", "user_id", "created_at"}

func newTestItemRepo(t *testing.T) (*itemRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &itemRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	item := models.Item{
		Title:       "groceries",
		Description: "milk, eggs",
		OwnerID:     7,
	}

	now := time.Now()

	rows := sqlmock.
		NewRows(itemColumns).
		AddRow(1, item.Title, item.Description, item.OwnerID, now)

	mock.ExpectQuery("INSERT INTO items").
		WithArgs(item.Title, item.Description, item.OwnerID).
		WillReturnRows(rows)

	created, err := repo.CreateItem(ctx, item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ItemID != 1 {
		t.Errorf("expected ItemID=1, got %d", created.ItemID)
	}
	if created.OwnerID != 7 {
		t.Errorf("expected OwnerID=7, got %d", created.OwnerID)
	}
}

func TestCreateItem_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO items").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateItem(ctx, models.Item{Title: "x", OwnerID: 7})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestGetItemsByOwner_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(itemColumns).
		AddRow(1, "first", "", 7, now).
		AddRow(2, "second", "details", 7, now)

	mock.ExpectQuery("SELECT item_id, title, COALESCE").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	items, err := repo.GetItemsByOwner(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "first" || items[1].Title != "second" {
		t.Errorf("unexpected items order: %+v", items)
	}
}

func TestGetItemsByOwner_Empty(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT item_id, title, COALESCE").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(itemColumns))

	items, err := repo.GetItemsByOwner(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Errorf("expected 0 items, got %d", len(items))
	}
}

func TestGetItemsByOwner_QueryError(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT item_id, title, COALESCE").
		WithArgs(int64(7)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetItemsByOwner(ctx, 7)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetItemByID_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(itemColumns).
		AddRow(3, "title", "desc", 7, now)

	mock.ExpectQuery("SELECT item_id, title, COALESCE").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	item, err := repo.GetItemByID(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ItemID != 3 {
		t.Errorf("expected ItemID=3, got %d", item.ItemID)
	}
	if item.OwnerID != 7 {
		t.Errorf("expected OwnerID=7, got %d", item.OwnerID)
	}
}

func TestGetItemByID_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT item_id, title, COALESCE").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetItemByID(ctx, 404)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestUpdateItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	newTitle := "renamed"

	rows := sqlmock.
		NewRows(itemColumns).
		AddRow(3, newTitle, "desc", 7, now)

	mock.ExpectQuery("UPDATE items SET title").
		WithArgs(newTitle, int64(3), int64(7)).
		WillReturnRows(rows)

	updated, err := repo.UpdateItem(ctx, models.ItemUpdate{ItemID: 3, OwnerID: 7, Title: &newTitle})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != newTitle {
		t.Errorf("expected title %s, got %s", newTitle, updated.Title)
	}
}

func TestUpdateItem_NoFields(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	_, err := repo.UpdateItem(context.Background(), models.ItemUpdate{ItemID: 3, OwnerID: 7})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}

	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query must reach the database: %v", err)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	newTitle := "renamed"

	mock.ExpectQuery("UPDATE items SET title").
		WithArgs(newTitle, int64(404), int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateItem(ctx, models.ItemUpdate{ItemID: 404, OwnerID: 7, Title: &newTitle})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM items").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteItem(ctx, 3, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteItem_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM items").
		WithArgs(int64(404), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteItem(ctx, 404, 7)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteItem_ExecError(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM items").
		WithArgs(int64(3), int64(7)).
		WillReturnError(errors.New("connection reset"))

	err := repo.DeleteItem(ctx, 3, 7)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
