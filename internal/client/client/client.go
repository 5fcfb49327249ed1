// Package client implements the HTTP client for the Gatekeeper
// authentication API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

// ErrUnavailable reports that the server could not be reached or returned
// a malformed response. Callers use errors.Is to distinguish connectivity
// problems from rejected requests.
var ErrUnavailable = errors.New("server unavailable")

// User is the profile the server returns; it never includes credentials.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user"`
	Token   string `json:"token"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, email, password, name string) (*User, error) {
	env, err := c.post(ctx, "/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	}, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

// Login authenticates and returns the profile plus the session token.
func (c *Client) Login(ctx context.Context, email, password string) (*User, string, error) {
	env, err := c.post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, http.StatusOK)
	if err != nil {
		return nil, "", err
	}
	return env.User, env.Token, nil
}

// Me resolves a session token back to the current profile.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.AuthorizationHeader, "Bearer "+token)

	env, err := c.do(req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) post(ctx context.Context, path string, body map[string]string, wantStatus int) (*envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, wantStatus)
}

func (c *Client) do(req *http.Request, wantStatus int) (*envelope, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: malformed response", ErrUnavailable)
	}

	if resp.StatusCode != wantStatus {
		if env.Message != "" {
			return nil, errors.New(env.Message)
		}
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return &env, nil
}
