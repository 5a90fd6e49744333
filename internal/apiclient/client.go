// Package apiclient provides a Go client for the itemvault REST API.
//
// The client owns an explicit session: Register, Login, and UpdateProfile
// store the bearer token returned by the server, Logout clears it, and every
// item call presents it in the "Authorization" header. There is no ambient
// global state; the session lives in the Client value and is guarded by a
// mutex so a single Client is safe for concurrent use.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/itemvault/itemvault/internal/utils"
	"github.com/itemvault/itemvault/models"
)

// Config holds the connection settings for the API client.
type Config struct {
	// BaseURL is the server root, e.g. "http://localhost:8080".
	BaseURL string

	// Timeout bounds every request round trip.
	Timeout time.Duration
}

// Client is a stateful itemvault API client.
type Client struct {
	client *resty.Client

	mu     sync.RWMutex
	token  string
	userID int64
}

// New constructs a Client for the given configuration, applying defaults for
// missing values.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli}
}

// Token returns the current session token, or an empty string when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// UserID returns the account id of the current session, or zero when logged out.
func (c *Client) UserID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

// SetToken installs a previously issued token as the current session, for
// callers that persist the token between runs. The account id is recovered
// from the token's subject claim; it stays zero when the token does not
// carry one.
func (c *Client) SetToken(token string) {
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		userID = 0
	}
	c.setSession(token, userID)
}

// Logout discards the current session. Purely client-side: the server keeps
// no session state, the client simply stops presenting the token.
func (c *Client) Logout() {
	c.setSession("", 0)
}

// Register creates a new account and establishes a session with the
// returned token.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return c.authCall(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/api/auth/register")
	}, "register")
}

// Login authenticates with the given credentials and establishes a session
// with the returned token.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return c.authCall(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/api/auth/login")
	}, "login")
}

// UpdateProfile updates the account and replaces the session token with the
// freshly issued one from the response.
func (c *Client) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.AuthResponse, error) {
	authedReq, err := c.authedRequest(ctx)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return c.authCall(func() (*resty.Response, error) {
		return authedReq.
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Put("/api/auth/profile")
	}, "update profile")
}

// ListItems returns every item owned by the session's account.
func (c *Client) ListItems(ctx context.Context) ([]models.Item, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/api/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Item
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list items response: %w", err)
	}

	return items, nil
}

// CreateItem creates a new item owned by the session's account.
func (c *Client) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	authedReq, err := c.authedRequest(ctx)
	if err != nil {
		return models.Item{}, err
	}

	resp, err := authedReq.
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var item models.Item
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.Item{}, fmt.Errorf("decode create item response: %w", err)
	}

	return item, nil
}

// UpdateItem merges the provided fields into the identified item.
func (c *Client) UpdateItem(ctx context.Context, itemID int64, req models.UpdateItemRequest) (models.Item, error) {
	authedReq, err := c.authedRequest(ctx)
	if err != nil {
		return models.Item{}, err
	}

	resp, err := authedReq.
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(fmt.Sprintf("/api/items/%d", itemID))
	if err != nil {
		return models.Item{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var item models.Item
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.Item{}, fmt.Errorf("decode update item response: %w", err)
	}

	return item, nil
}

// DeleteItem removes the identified item and returns the deleted id.
func (c *Client) DeleteItem(ctx context.Context, itemID int64) (int64, error) {
	authedReq, err := c.authedRequest(ctx)
	if err != nil {
		return 0, err
	}

	resp, err := authedReq.Delete(fmt.Sprintf("/api/items/%d", itemID))
	if err != nil {
		return 0, fmt.Errorf("delete item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var deleted models.DeletedItemResponse
	if err = json.Unmarshal(resp.Body(), &deleted); err != nil {
		return 0, fmt.Errorf("decode delete item response: %w", err)
	}

	return deleted.ID, nil
}

// authCall runs an auth-shaped request, decodes the AuthResponse, and stores
// the returned token as the new session.
func (c *Client) authCall(do func() (*resty.Response, error), op string) (models.AuthResponse, error) {
	resp, err := do()
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode %s response: %w", op, err)
	}

	c.setSession(auth.Token, auth.ID)

	return auth, nil
}

func (c *Client) setSession(token string, userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
	c.userID = userID
}

func (c *Client) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := c.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	message := serverMessage(resp.Body())

	switch code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	default:
		return fmt.Errorf("server returned %d: %s", code, message)
	}
}

// serverMessage extracts the message from the JSON error envelope, falling
// back to the raw body when it does not parse.
func serverMessage(body []byte) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	return strings.TrimSpace(string(body))
}
