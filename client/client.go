// Package client talks to the ytcatalog REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ewintr.nl/ytcatalog/model"
)

const defaultTimeout = 30 * time.Second

// APIError is returned for any non-2xx response that does not map onto one
// of the model sentinels.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned status %d: %s", e.Status, e.Message)
}

type Client struct {
	base *url.URL
	http *http.Client
}

// New returns a client for the API at baseURL. A nil httpClient gets a
// client with a default timeout.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("catalog url is required")
	}
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	base.Path = strings.TrimSuffix(base.Path, "/")
	base.RawQuery = ""
	base.Fragment = ""
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		base: base,
		http: httpClient,
	}, nil
}

func (c *Client) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := c.do(ctx, http.MethodGet, nil, http.StatusOK, &projects); err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []model.Project{}
	}

	return projects, nil
}

// Create stores project remotely and returns it as stored, with id and
// creation time filled in.
func (c *Client) Create(ctx context.Context, project model.Project) (model.Project, error) {
	body, err := json.Marshal(project)
	if err != nil {
		return model.Project{}, fmt.Errorf("encode project: %w", err)
	}
	var stored model.Project
	if err := c.do(ctx, http.MethodPost, body, http.StatusCreated, &stored); err != nil {
		return model.Project{}, err
	}

	return stored, nil
}

func (c *Client) do(ctx context.Context, method string, body []byte, expStatus int, out any) error {
	endpoint := *c.base
	endpoint.Path += "/projects"

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != expStatus {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func statusError(resp *http.Response) error {
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&env)
	detail := env.Error
	if detail == "" {
		detail = env.Message
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", model.ErrDuplicate, detail)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", model.ErrValidation, detail)
	default:
		return &APIError{Status: resp.StatusCode, Message: detail}
	}
}
