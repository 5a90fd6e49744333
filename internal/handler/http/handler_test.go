package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemvault/itemvault/internal/logger"
	"github.com/itemvault/itemvault/internal/service"
	"github.com/itemvault/itemvault/internal/store"
	"github.com/itemvault/itemvault/models"
)

// fakeAuthService is a deterministic in-memory AuthService. Passwords are
// compared in plaintext and tokens have the transparent form "token-<id>",
// which keeps request-level tests independent of the JWT machinery.
type fakeAuthService struct {
	users  map[int64]models.User
	nextID int64
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{
		users:  make(map[int64]models.User),
		nextID: 1,
	}
}

func (f *fakeAuthService) RegisterUser(_ context.Context, req models.RegisterRequest) (models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return models.User{}, service.ErrInvalidDataProvided
	}

	for _, existing := range f.users {
		if existing.Email == req.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}

	user := models.User{
		UserID:       f.nextID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: req.Password,
		CreatedAt:    time.Now(),
	}
	f.nextID++
	f.users[user.UserID] = user

	return user, nil
}

func (f *fakeAuthService) Login(_ context.Context, req models.LoginRequest) (models.User, error) {
	for _, user := range f.users {
		if user.Email == req.Email && user.PasswordHash == req.Password {
			return user, nil
		}
	}

	return models.User{}, service.ErrInvalidCredentials
}

func (f *fakeAuthService) UpdateProfile(_ context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error) {
	if req.Name == nil && req.Email == nil && req.Password == nil {
		return models.User{}, service.ErrInvalidDataProvided
	}

	user, ok := f.users[userID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		for id, existing := range f.users {
			if id != userID && existing.Email == *req.Email {
				return models.User{}, store.ErrEmailAlreadyExists
			}
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		user.PasswordHash = *req.Password
	}

	f.users[userID] = user

	return user, nil
}

func (f *fakeAuthService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return models.Token{
		SignedString: fmt.Sprintf("token-%d", user.UserID),
		UserID:       user.UserID,
	}, nil
}

func (f *fakeAuthService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	idString, ok := strings.CutPrefix(tokenString, "token-")
	if !ok {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}

	userID, err := strconv.ParseInt(idString, 10, 64)
	if err != nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}

	return models.Token{SignedString: tokenString, UserID: userID}, nil
}

func (f *fakeAuthService) ResolveUser(_ context.Context, userID int64) (models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}

	return user, nil
}

// fakeItemService mirrors the real service's validation and check ordering
// over an in-memory map.
type fakeItemService struct {
	items  map[int64]models.Item
	nextID int64
}

func newFakeItemService() *fakeItemService {
	return &fakeItemService{
		items:  make(map[int64]models.Item),
		nextID: 1,
	}
}

func (f *fakeItemService) ListItems(_ context.Context, ownerID int64) ([]models.Item, error) {
	items := make([]models.Item, 0, len(f.items))
	for id := int64(1); id < f.nextID; id++ {
		if item, ok := f.items[id]; ok && item.OwnerID == ownerID {
			items = append(items, item)
		}
	}

	return items, nil
}

func (f *fakeItemService) CreateItem(_ context.Context, ownerID int64, req models.CreateItemRequest) (models.Item, error) {
	if req.Title == "" {
		return models.Item{}, service.ErrInvalidDataProvided
	}

	item := models.Item{
		ItemID:      f.nextID,
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}
	f.nextID++
	f.items[item.ItemID] = item

	return item, nil
}

func (f *fakeItemService) UpdateItem(_ context.Context, ownerID, itemID int64, req models.UpdateItemRequest) (models.Item, error) {
	if req.Title == nil && req.Description == nil {
		return models.Item{}, service.ErrInvalidDataProvided
	}
	if req.Title != nil && *req.Title == "" {
		return models.Item{}, service.ErrInvalidDataProvided
	}

	item, ok := f.items[itemID]
	if !ok {
		return models.Item{}, store.ErrItemNotFound
	}
	if item.OwnerID != ownerID {
		return models.Item{}, service.ErrNotItemOwner
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	f.items[itemID] = item

	return item, nil
}

func (f *fakeItemService) DeleteItem(_ context.Context, ownerID, itemID int64) (int64, error) {
	item, ok := f.items[itemID]
	if !ok {
		return 0, store.ErrItemNotFound
	}
	if item.OwnerID != ownerID {
		return 0, service.ErrNotItemOwner
	}

	delete(f.items, itemID)

	return itemID, nil
}

// testEnv bundles the wired router with its fakes so tests can seed state
// directly.
type testEnv struct {
	router *chi.Mux
	auth   *fakeAuthService
	items  *fakeItemService
}

func newTestEnv() *testEnv {
	auth := newFakeAuthService()
	items := newFakeItemService()

	handler := NewHandler(&service.Services{
		AuthService: auth,
		ItemService: items,
	}, logger.NewLogger("test"))

	return &testEnv{
		router: handler.Init(),
		auth:   auth,
		items:  items,
	}
}

// seedUser creates an account directly in the fake and returns its bearer token.
func (e *testEnv) seedUser(t *testing.T, name, email, password string) (models.User, string) {
	t.Helper()

	user, err := e.auth.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err, "seeding user failed")

	return user, fmt.Sprintf("token-%d", user.UserID)
}

// seedItem creates an item directly in the fake.
func (e *testEnv) seedItem(t *testing.T, ownerID int64, title, description string) models.Item {
	t.Helper()

	item, err := e.items.CreateItem(context.Background(), ownerID, models.CreateItemRequest{
		Title:       title,
		Description: description,
	})
	require.NoError(t, err, "seeding item failed")

	return item
}

// doRequest runs one request through the full middleware chain and returns
// the recorded response.
func (e *testEnv) doRequest(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err, "failed to encode request body")
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)

	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	err := json.Unmarshal(recorder.Body.Bytes(), &value)
	require.NoError(t, err, "failed to decode response body %q", recorder.Body.String())

	return value
}

func assertStatus(t *testing.T, recorder *httptest.ResponseRecorder, want int) {
	t.Helper()

	require.Equal(t, want, recorder.Code, "unexpected status (body: %s)", recorder.Body.String())
}

func assertErrorMessage(t *testing.T, recorder *httptest.ResponseRecorder) {
	t.Helper()

	body := decodeBody[models.ErrorResponse](t, recorder)
	assert.NotEmpty(t, body.Message, "expected non-empty error message in JSON envelope")
}

func assertJSONContentType(t *testing.T, recorder *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
}
