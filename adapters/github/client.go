package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"devconnect/internal/config"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

// Client lists a user's repositories from the GitHub REST API using
// service-held credentials, never the caller's. Responses are relayed as
// raw JSON; nothing is cached or retried.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     logger.Logger
}

func NewClient(cfg config.Config, log logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.GitHub.APIBaseURL,
		token:      cfg.GitHub.Token,
		logger:     log,
	}
}

// ListRepos fetches the five most recently created repositories of
// username and returns the upstream body unmodified.
func (c *Client) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperror.NewInternal("failed to build github request", err)
	}
	req.Header.Set("User-Agent", "devconnect-api")
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("GitHub request failed", err, zap.String("username", username))
		return nil, apperror.NewUpstream("github", "transport failure while listing repos", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("GitHub returned non-success status",
			zap.String("username", username), zap.Int("status", resp.StatusCode))
		return nil, apperror.NewNotFound("github profile", username)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewUpstream("github", "failed to read response body", err)
	}
	return json.RawMessage(body), nil
}
