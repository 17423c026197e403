// Package client provides a typed client for the content API and the
// state-holding controller behind the admin dashboard. Uses raw HTTP calls,
// no generated code.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lumenworks/backend/internal/model"
)

// APIError is a failure envelope returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Client talks to the content API and unwraps the {success, data|error}
// envelope.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{}}
}

// NewWithHTTPClient creates a Client using a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

// do issues the request and decodes the envelope into out (which may be nil
// for callers that only care about success).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	if !env.Success {
		return &APIError{StatusCode: res.StatusCode, Message: env.Error}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("client: decode data: %w", err)
		}
	}
	return nil
}

// ListContacts returns all submissions, newest first.
func (c *Client) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	var contacts []*model.Contact
	if err := c.do(ctx, http.MethodGet, "/api/contacts", nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// CreateContact submits the public contact form and returns the stored record.
func (c *Client) CreateContact(ctx context.Context, in *model.Contact) (*model.Contact, error) {
	var out model.Contact
	if err := c.do(ctx, http.MethodPost, "/api/contacts", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContact fetches one submission.
func (c *Client) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	var out model.Contact
	if err := c.do(ctx, http.MethodGet, "/api/contacts/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateContactStatus moves a submission to the given status.
func (c *Client) UpdateContactStatus(ctx context.Context, id, status string) (*model.Contact, error) {
	var out model.Contact
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPut, "/api/contacts/"+id, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContact removes a submission.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/contacts/"+id, nil, nil)
}

// ListProjects returns the project list the server is willing to show.
func (c *Client) ListProjects(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject stores a new portfolio entry and returns it.
func (c *Client) CreateProject(ctx context.Context, in *model.Project) (*model.Project, error) {
	var out model.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProject fetches one project.
func (c *Client) GetProject(ctx context.Context, id string) (*model.Project, error) {
	var out model.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject sends the full edited record and returns the stored result.
func (c *Client) UpdateProject(ctx context.Context, id string, in *model.Project) (*model.Project, error) {
	var out model.Project
	if err := c.do(ctx, http.MethodPut, "/api/projects/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil)
}
