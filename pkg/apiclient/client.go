// Package apiclient is the thin client for the resume backend REST API:
// login/register plus resume create/update/list. Any non-success status
// surfaces as an APIError carrying the server's message when one was sent.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"resume-builder/internal/model"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger

	// token returns the current session token, empty when logged out.
	token func() string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenSource(fn func() string) Option {
	return func(c *Client) { c.token = fn }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     zap.NewNop(),
		token:   func() string { return "" },
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// APIError is a non-success HTTP response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("backend: request failed with status %d", e.Status)
}

type User struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &out, false)
	return out, err
}

func (c *Client) Register(ctx context.Context, fullName, email, password string) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"fullName": fullName, "email": email, "password": password}, &out, false)
	return out, err
}

func (c *Client) CreateResume(ctx context.Context, r model.Resume) (model.Resume, error) {
	var out model.Resume
	err := c.do(ctx, http.MethodPost, "/api/resumes", r, &out, true)
	return out.Normalize(), err
}

// UpdateResume updates the resume with the given id. A 403 means the id
// belongs to someone else's document (for example after a stale local
// snapshot); the update is transparently retried as a create with the id
// cleared.
func (c *Client) UpdateResume(ctx context.Context, id string, r model.Resume) (model.Resume, error) {
	var out model.Resume
	err := c.do(ctx, http.MethodPut, "/api/resumes/"+id, r, &out, true)
	if apiErr, ok := err.(*APIError); ok && apiErr.Status == http.StatusForbidden {
		c.log.Warn("update forbidden, retrying as create", zap.String("id", id))
		r.ID = ""
		return c.CreateResume(ctx, r)
	}
	if err != nil {
		return model.Resume{}, err
	}
	return out.Normalize(), nil
}

func (c *Client) GetMyResumes(ctx context.Context) ([]model.Resume, error) {
	var out []model.Resume
	if err := c.do(ctx, http.MethodGet, "/api/resumes", nil, &out, true); err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = out[i].Normalize()
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Message = payload.Message
			if apiErr.Message == "" {
				apiErr.Message = payload.Error
			}
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
