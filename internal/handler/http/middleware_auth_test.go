package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemvault/itemvault/internal/logger"
	"github.com/itemvault/itemvault/internal/service"
	"github.com/itemvault/itemvault/internal/utils"
	"github.com/itemvault/itemvault/models"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"missing token part", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"empty token part", "Bearer ", "", ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	auth := newFakeAuthService()
	handler := NewHandler(&service.Services{
		AuthService: auth,
		ItemService: newFakeItemService(),
	}, logger.NewLogger("test"))

	user, err := auth.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err, "seeding user failed")

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantNext   bool
	}{
		{"no header", "", http.StatusUnauthorized, false},
		{"malformed header", "justonetoken", http.StatusUnauthorized, false},
		{"empty token", "Bearer ", http.StatusUnauthorized, false},
		{"invalid token", "Bearer garbage", http.StatusUnauthorized, false},
		{"token for deleted account", "Bearer token-999", http.StatusUnauthorized, false},
		{"valid token", "Bearer token-1", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				// identity must be attached before the handler runs
				userID, ok := utils.GetUserIDFromContext(r.Context())
				assert.True(t, ok, "expected user id in the request context")
				assert.Equal(t, user.UserID, userID)

				resolved, ok := utils.GetUserFromContext(r.Context())
				assert.True(t, ok, "expected resolved user in the request context")
				assert.Equal(t, user.Email, resolved.Email)

				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			handler.auth(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantNext, nextCalled, "unexpected next handler invocation")
		})
	}
}
