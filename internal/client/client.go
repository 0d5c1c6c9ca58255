// Package client is a typed client for the task API. It is the Go
// counterpart of the original single-page app's state controllers: it logs
// in, issues the same HTTP calls, and computes the dashboard summary from
// the fetched task list on the client side.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Pritish2005/task-management-app/internal/dto"
	"github.com/Pritish2005/task-management-app/internal/stats"
)

// APIError is a non-2xx response decoded from the server's {"msg": ...} body.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Msg)
}

// Client talks to one task API server. It is not safe for concurrent use
// while logging in; afterwards calls may overlap (last write wins, like the
// original app's overlapping edits).
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New returns a Client for the given base URL (e.g. "http://localhost:5000").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs a previously obtained bearer token.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current bearer token, empty before login.
func (c *Client) Token() string { return c.token }

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	var resp dto.TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name: name, Email: email, Password: password,
	}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp dto.TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email: email, Password: password,
	}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// Tasks returns all owned tasks ordered by ascending start time.
func (c *Client) Tasks(ctx context.Context) ([]dto.TaskResponse, error) {
	var list []dto.TaskResponse
	if err := c.do(ctx, http.MethodGet, "/api/task", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateTask creates a pending task and returns the stored record.
func (c *Client) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error) {
	var t dto.TaskResponse
	err := c.do(ctx, http.MethodPost, "/api/task", req, &t)
	return t, err
}

// UpdateTask replaces the task's title, times and priority.
func (c *Client) UpdateTask(ctx context.Context, id int64, req dto.UpdateTaskRequest) (dto.TaskResponse, error) {
	var resp dto.TaskWithMsgResponse
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/task/%d", id), req, &resp)
	return resp.Task, err
}

// SetStatus flips the task's status.
func (c *Client) SetStatus(ctx context.Context, id int64, status string) (dto.TaskResponse, error) {
	var t dto.TaskResponse
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/task/%d/status", id), dto.SetStatusRequest{Status: status}, &t)
	return t, err
}

// DeleteTask removes the task and returns the removed record.
func (c *Client) DeleteTask(ctx context.Context, id int64) (dto.TaskResponse, error) {
	var resp dto.TaskWithMsgResponse
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/task/%d", id), nil, &resp)
	return resp.Task, err
}

// Dashboard fetches the task list and computes the summary locally, the way
// the original dashboard page did on every load.
func (c *Client) Dashboard(ctx context.Context, now time.Time) (stats.Summary, error) {
	list, err := c.Tasks(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Compute(dto.ResponsesToTasks(list), now), nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{Status: resp.StatusCode, Msg: e.Msg}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
