// Package client is the Go client for the idea generator API: a thin
// HTTP wrapper plus the session state machine the UI drives.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"ideagen/internal/models"
)

// TokenHeader matches the header the server's auth guard reads.
const TokenHeader = "x-auth-token"

type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Preferences Preferences `json:"preferences"`
	Date        time.Time   `json:"date"`
}

type Preferences struct {
	Industries     []string `json:"industries"`
	ContentTypes   []string `json:"contentTypes"`
	TargetAudience []string `json:"targetAudience"`
}

type RegisterInput struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Password    string       `json:"password"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

type CreateIdeaInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ContentType string   `json:"contentType"`
	Keywords    []string `json:"keywords,omitempty"`
	Industry    string   `json:"industry,omitempty"`
}

// UpdateIdeaInput omits absent fields so the server merges only what
// was provided.
type UpdateIdeaInput struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	ContentType *string  `json:"contentType,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Industry    *string  `json:"industry,omitempty"`
	Saved       *bool    `json:"saved,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken sets the token attached to outgoing requests. An empty
// string detaches it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	return c.doWithToken(ctx, method, path, c.Token(), body, out)
}

// doWithToken sends a request with an explicit token instead of the
// attached one. The session uses it to resolve a fresh token without
// touching client state.
func (c *Client) doWithToken(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var msg msgResponse
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		if msg.Msg == "" {
			msg.Msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Msg: msg.Msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) Register(ctx context.Context, input RegisterInput) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", input, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	return c.CurrentUserWithToken(ctx, c.Token())
}

// CurrentUserWithToken resolves the identity behind a token without
// attaching it to the client.
func (c *Client) CurrentUserWithToken(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.doWithToken(ctx, http.MethodGet, "/api/auth", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Ideas(ctx context.Context) ([]models.Idea, error) {
	var ideas []models.Idea
	if err := c.do(ctx, http.MethodGet, "/api/ideas", nil, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

func (c *Client) CreateIdea(ctx context.Context, input CreateIdeaInput) (*models.Idea, error) {
	var idea models.Idea
	if err := c.do(ctx, http.MethodPost, "/api/ideas", input, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (c *Client) Idea(ctx context.Context, ideaID string) (*models.Idea, error) {
	var idea models.Idea
	if err := c.do(ctx, http.MethodGet, "/api/ideas/"+ideaID, nil, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (c *Client) UpdateIdea(ctx context.Context, ideaID string, input UpdateIdeaInput) (*models.Idea, error) {
	var idea models.Idea
	if err := c.do(ctx, http.MethodPut, "/api/ideas/"+ideaID, input, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (c *Client) DeleteIdea(ctx context.Context, ideaID string) error {
	return c.do(ctx, http.MethodDelete, "/api/ideas/"+ideaID, nil, nil)
}

func (c *Client) Generate(ctx context.Context, topic, contentType, industry string) ([]models.IdeaDraft, error) {
	body := map[string]string{
		"topic":       topic,
		"contentType": contentType,
		"industry":    industry,
	}

	var drafts []models.IdeaDraft
	if err := c.do(ctx, http.MethodPost, "/api/ideas/generate", body, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}
