// Package api is a small HTTP client for the login service, used by the CLI.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/malusolero/login-service/internal/common"
)

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenInfo is the login response: the signed token and its lifetime in
// seconds.
type TokenInfo struct {
	Token    string `json:"token"`
	Duration int    `json:"duration"`
}

type accountInfo struct {
	Username string `json:"username"`
}

type errorInfo struct {
	Message string `json:"message"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/user", credentials{Username: username, Password: password}, "", nil)
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenInfo, error) {
	info := &TokenInfo{}
	err := c.do(ctx, http.MethodPost, "/user/login", credentials{Username: username, Password: password}, "", info)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// WhoAmI returns the username the token resolves to.
func (c *Client) WhoAmI(ctx context.Context, token string) (string, error) {
	info := &accountInfo{}
	if err := c.do(ctx, http.MethodGet, "/user/is-authenticated", nil, token, info); err != nil {
		return "", err
	}
	return info.Username, nil
}

// Update rewrites the authenticated account's username and password.
func (c *Client) Update(ctx context.Context, token, username, password string) error {
	return c.do(ctx, http.MethodPut, "/user", credentials{Username: username, Password: password}, token, nil)
}

// Delete removes the authenticated account.
func (c *Client) Delete(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/user", nil, token, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, token string, out any) error {

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.asError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

// asError turns an error response into a sentinel where the status code has
// an unambiguous meaning, falling back to the server's message.
func (c *Client) asError(resp *http.Response) error {
	info := &errorInfo{}
	_ = json.NewDecoder(resp.Body).Decode(info)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusConflict:
		return common.ErrorAlreadyExists
	}

	if info.Message != "" {
		return fmt.Errorf("server error: %s", info.Message)
	}
	return fmt.Errorf("server error: status %d", resp.StatusCode)
}
