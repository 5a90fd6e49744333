package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/itemvault/itemvault/internal/utils"
	"github.com/itemvault/itemvault/models"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		t.Errorf("failed to encode test response: %v", err)
	}
}

func TestRegister_StoresSession(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/register" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Email != "alice@example.com" {
			t.Errorf("unexpected email %q", req.Email)
		}

		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			ID:    1,
			Name:  req.Name,
			Email: req.Email,
			Token: "issued-token",
		})
	})

	auth, err := client.Register(context.Background(), models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.ID != 1 {
		t.Errorf("expected account id 1, got %d", auth.ID)
	}
	if client.Token() != "issued-token" {
		t.Errorf("expected session token to be stored, got %q", client.Token())
	}
	if client.UserID() != 1 {
		t.Errorf("expected session user id 1, got %d", client.UserID())
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "invalid credentials"})
	})

	_, err := client.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if client.Token() != "" {
		t.Error("failed login must not establish a session")
	}
}

func TestAuthedCalls_RequireSession(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request must reach the server without a session")
	})

	ctx := context.Background()

	if _, err := client.ListItems(ctx); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("ListItems: expected ErrNotLoggedIn, got %v", err)
	}
	if _, err := client.CreateItem(ctx, models.CreateItemRequest{Title: "x"}); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("CreateItem: expected ErrNotLoggedIn, got %v", err)
	}
	if _, err := client.DeleteItem(ctx, 1); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("DeleteItem: expected ErrNotLoggedIn, got %v", err)
	}
	if _, err := client.UpdateProfile(ctx, models.ProfileUpdateRequest{}); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("UpdateProfile: expected ErrNotLoggedIn, got %v", err)
	}
}

func TestListItems_SendsBearerToken(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer session-token" {
			t.Errorf("expected bearer header, got %q", got)
		}

		writeJSON(t, w, http.StatusOK, []models.Item{
			{ItemID: 1, Title: "first", OwnerID: 7},
		})
	})
	client.SetToken("session-token")

	items, err := client.ListItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "first" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestUpdateProfile_ReplacesToken(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/auth/profile" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			ID:    7,
			Name:  "Alicia",
			Email: "alice@example.com",
			Token: "fresh-token",
		})
	})
	client.SetToken("stale-token")

	newName := "Alicia"
	auth, err := client.UpdateProfile(context.Background(), models.ProfileUpdateRequest{Name: &newName})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.Name != "Alicia" {
		t.Errorf("unexpected profile data: %+v", auth)
	}
	if client.Token() != "fresh-token" {
		t.Errorf("expected re-issued token to replace the session, got %q", client.Token())
	}
}

func TestMapHTTPError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"conflict", http.StatusConflict, ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, models.ErrorResponse{Message: "nope"})
			})
			client.SetToken("session-token")

			_, err := client.ListItems(context.Background())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDeleteItem_ReturnsID(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/items/3" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		writeJSON(t, w, http.StatusOK, models.DeletedItemResponse{ID: 3})
	})
	client.SetToken("session-token")

	deletedID, err := client.DeleteItem(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deletedID != 3 {
		t.Errorf("expected deleted id 3, got %d", deletedID)
	}
}

func TestSetToken_RecoversUserID(t *testing.T) {
	client := New(Config{})

	token, err := utils.GenerateJWTToken("itemvault", 42, time.Hour, "sign-key")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	client.SetToken(token.SignedString)
	if client.Token() != token.SignedString {
		t.Errorf("expected token to be stored, got %q", client.Token())
	}
	if client.UserID() != 42 {
		t.Errorf("expected user id 42 from the token subject, got %d", client.UserID())
	}

	// an opaque token still installs a session, just without an account id
	client.SetToken("opaque-token")
	if client.UserID() != 0 {
		t.Errorf("expected zero user id for an opaque token, got %d", client.UserID())
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	client := New(Config{})
	client.SetToken("session-token")

	client.Logout()

	if client.Token() != "" {
		t.Error("expected empty token after logout")
	}
	if client.UserID() != 0 {
		t.Error("expected zero user id after logout")
	}
}
