package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Client errors.
var (
	// ErrNotFound indicates the requested entity does not exist on the platform.
	ErrNotFound = errors.New("platform entity not found")

	// ErrUnavailable indicates the platform API could not be reached or
	// answered with a server error.
	ErrUnavailable = errors.New("platform unavailable")
)

// Client fetches platform entities. Calls are remote and may fail; callers
// are expected to treat every error as recoverable.
type Client interface {
	GuildMember(ctx context.Context, guildID, memberID string) (*Member, error)
}

// HTTPClient implements Client against the platform REST API.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// HTTPClientConfig holds settings for the REST client.
type HTTPClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// NewHTTPClient creates a REST client for the platform API.
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}
}

// GuildMember fetches a member of a guild by ID.
func (c *HTTPClient) GuildMember(ctx context.Context, guildID, memberID string) (*Member, error) {
	var member Member
	if err := c.get(ctx, fmt.Sprintf("/guilds/%s/members/%s", guildID, memberID), &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return nil
}
