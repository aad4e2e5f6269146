// Package sdk provides a Go client for the puo-memo platform HTTP API.
//
// A Client authenticates two ways, mirroring the server's two route groups:
// a bearer token captured by Login covers the account endpoints, and an API
// key set via SetAPIKey covers the memory endpoints.
package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/coladapo/puo-memo-platform/models"
)

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	client *resty.Client

	mu     sync.RWMutex
	token  string
	apiKey string
}

func NewClient(cfg ClientConfig) *Client {
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

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetAPIKey stores the plaintext API key sent with memory requests.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = strings.TrimSpace(key)
}

func (c *Client) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// Register creates an account and remembers the issued default API key for
// subsequent memory calls.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	var out models.RegisterResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("decode register response: %w", err)
	}

	c.SetAPIKey(out.APIKey.Key)
	return out, nil
}

// Login exchanges credentials for a bearer token and stores it on the client.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var out models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	c.SetToken(out.AccessToken)
	return out, nil
}

func (c *Client) Me(ctx context.Context) (models.User, error) {
	resp, err := c.bearerRequest(ctx).Get("/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var out models.User
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}
	return out, nil
}

func (c *Client) CreateAPIKey(ctx context.Context, req models.CreateAPIKeyRequest) (models.APIKeyCreated, error) {
	resp, err := c.bearerRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api-keys")
	if err != nil {
		return models.APIKeyCreated{}, fmt.Errorf("create api key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.APIKeyCreated{}, err
	}

	var out models.APIKeyCreated
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.APIKeyCreated{}, fmt.Errorf("decode create api key response: %w", err)
	}
	return out, nil
}

func (c *Client) ListAPIKeys(ctx context.Context) ([]models.APIKey, error) {
	resp, err := c.bearerRequest(ctx).Get("/api-keys")
	if err != nil {
		return nil, fmt.Errorf("list api keys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.APIKey
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode list api keys response: %w", err)
	}
	return out, nil
}

func (c *Client) CreateMemory(ctx context.Context, req models.CreateMemoryRequest) (models.Memory, error) {
	resp, err := c.keyedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/memories")
	if err != nil {
		return models.Memory{}, fmt.Errorf("create memory request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Memory{}, err
	}

	var out models.Memory
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.Memory{}, fmt.Errorf("decode create memory response: %w", err)
	}
	return out, nil
}

// Search lists memories matching query, newest first. An empty query returns
// the most recent memories; limit <= 0 leaves the page size to the server.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]models.Memory, error) {
	req := c.keyedRequest(ctx).SetQueryParam("query", query)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.Memory
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return out, nil
}

func (c *Client) Health(ctx context.Context) (models.HealthResponse, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	var out models.HealthResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.HealthResponse{}, fmt.Errorf("decode health response: %w", err)
	}
	return out, nil
}

func (c *Client) bearerRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (c *Client) keyedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if key := c.APIKey(); key != "" {
		req.SetHeader("X-API-Key", key)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
