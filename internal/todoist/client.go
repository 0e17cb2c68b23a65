// Package todoist implements a minimal client for the Todoist REST API,
// covering the project and task listing endpoints the bot consumes.
package todoist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/avezhov/duebot/internal/config"
)

// APIError represents a non-success response from the Todoist API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("todoist API error: status %d: %s", e.StatusCode, e.Message)
}

// Client is a Todoist REST API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Todoist client from the given configuration.
func NewClient(cfg config.TodoistConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With("component", "todoist_client"),
	}
}

// Projects fetches all projects visible to the authenticated user.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.doRequest(ctx, http.MethodGet, "/projects", &projects); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Tasks fetches all active tasks in the given project, in the order the
// API returns them.
func (c *Client) Tasks(ctx context.Context, projectID string) ([]Task, error) {
	path := "/tasks?project_id=" + url.QueryEscape(projectID)

	var tasks []Task
	if err := c.doRequest(ctx, http.MethodGet, path, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks for project %s: %w", projectID, err)
	}
	return tasks, nil
}

// doRequest handles the HTTP request/response cycle with proper error handling.
func (c *Client) doRequest(ctx context.Context, method, path string, response interface{}) error {
	req, err := c.buildRequest(ctx, method, path)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	c.logger.DebugContext(ctx, "Todoist API request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Todoist error bodies are short plain-text or JSON blobs
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: "unreadable error body"}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// buildRequest creates a new HTTP request with proper headers.
func (c *Client) buildRequest(ctx context.Context, method, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)

	return req, nil
}
