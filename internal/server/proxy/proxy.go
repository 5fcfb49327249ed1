// Package proxy implements the identity contract by delegating every
// operation to a remote identity service over HTTP. Remote failures are
// translated into the shared error taxonomy: transport-level problems
// surface as common.ErrUpstreamUnavailable, never as bad credentials.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/identity"
	"github.com/dmitrijs2005/gatekeeper/internal/server/users"
)

// Client is the remote authentication backend.
type Client struct {
	baseURL string
	client  *http.Client
	logger  logging.Logger
}

var _ identity.Provider = (*Client)(nil)

// New returns a Client for the identity service at baseURL. The timeout
// bounds every upstream call; on expiry the operation fails closed with
// common.ErrUpstreamUnavailable.
func New(baseURL string, timeout time.Duration, logger logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With("module", "identity_proxy"),
	}
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *userPayload `json:"user"`
	Token   string       `json:"token"`
}

// Register delegates account creation to the remote service. Like the
// local backend, it returns the profile only; login is a separate step.
func (c *Client) Register(ctx context.Context, email, password, name string) (*users.User, error) {
	body := map[string]string{"email": email, "password": password, "name": name}

	env, status, err := c.do(ctx, http.MethodPost, "/auth/register", body, "")
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, translate(status, false)
	}
	if env.User == nil {
		return nil, common.ErrInternal
	}

	return toUser(env.User), nil
}

// Login delegates credential verification and returns the upstream-issued
// session token alongside the profile.
func (c *Client) Login(ctx context.Context, email, password string) (*users.User, string, error) {
	body := map[string]string{"email": email, "password": password}

	env, status, err := c.do(ctx, http.MethodPost, "/auth/login", body, "")
	if err != nil {
		return nil, "", err
	}
	if status != http.StatusOK {
		return nil, "", translate(status, false)
	}
	if env.User == nil || env.Token == "" {
		return nil, "", common.ErrInternal
	}

	return toUser(env.User), env.Token, nil
}

// Authenticate resolves a session token via the upstream identity-check
// endpoint, carrying the token as a bearer header.
func (c *Client) Authenticate(ctx context.Context, token string) (*users.User, error) {
	env, status, err := c.do(ctx, http.MethodGet, "/auth/me", nil, token)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, translate(status, true)
	}
	if env.User == nil {
		return nil, common.ErrInternal
	}

	return toUser(env.User), nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, token string) (*envelope, int, error) {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, common.ErrInternal
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, common.ErrInternal
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "upstream request failed", "method", method, "path", path, "error", err.Error())
		return nil, 0, fmt.Errorf("%w: %v", common.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	env := &envelope{}
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		// Error statuses are translated from the code alone; only a
		// success response must carry a parseable body.
		if resp.StatusCode < 300 {
			return nil, resp.StatusCode, fmt.Errorf("%w: malformed upstream response", common.ErrUpstreamUnavailable)
		}
	}

	return env, resp.StatusCode, nil
}

// translate maps an upstream error status onto the shared taxonomy.
// authenticated marks token-check calls, where a 401 means a bad session
// rather than bad credentials.
func translate(status int, authenticated bool) error {
	switch {
	case status == http.StatusBadRequest:
		return common.ErrInvalidInput
	case status == http.StatusUnauthorized && authenticated:
		return common.ErrUnauthenticated
	case status == http.StatusUnauthorized:
		return common.ErrInvalidCredentials
	case status == http.StatusNotFound:
		return common.ErrNotFound
	case status == http.StatusConflict:
		return common.ErrConflict
	case status >= http.StatusInternalServerError:
		return common.ErrUpstreamUnavailable
	default:
		return common.ErrInternal
	}
}

func toUser(p *userPayload) *users.User {
	return &users.User{
		ID:    p.ID,
		Email: p.Email,
		Name:  p.Name,
	}
}
