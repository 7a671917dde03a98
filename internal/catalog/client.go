package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// tokenSlack renews the access token early so an in-flight search never
// carries a token that expires mid-request.
const tokenSlack = 30 * time.Second

// Config carries the catalog service credentials and endpoints.
type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
}

// Client talks to the music catalog service. Safe for concurrent use; the
// cached access token is guarded by a mutex and the HTTP client carries a
// finite timeout so no search can block a request indefinitely.
type Client struct {
	httpClient *http.Client
	cfg        Config

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient constructs a catalog client with a bounded request timeout.
func NewClient(cfg Config) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cfg:        cfg,
	}
}

// Search executes a free-text track search and returns the raw records in the
// catalog's relevance order. Failures are never retried here; a calling layer
// owns any backoff policy.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]RawTrack, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	searchURL, err := url.Parse(c.cfg.BaseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("invalid catalog search url: %w", err)
	}
	params := searchURL.Query()
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", fmt.Sprintf("%d", limit))
	searchURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog search request failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("catalog search status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var body struct {
		Tracks struct {
			Items []RawTrack `json:"items"`
		} `json:"tracks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode catalog search response failed: %w", err)
	}
	return body.Tracks.Items, nil
}

// token returns a valid client-credentials access token, renewing it when the
// cached one is absent or near expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-tokenSlack)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build catalog token request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("catalog token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("catalog token status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode catalog token response failed: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("catalog token response missing access_token")
	}

	c.accessToken = body.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	return c.accessToken, nil
}
