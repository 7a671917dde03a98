package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config carries the identity provider endpoint and project API key.
type Config struct {
	BaseURL string
	APIKey  string
}

// Client is a thin pass-through to the hosted identity provider. The core
// never stores credentials; it forwards them and surfaces the provider's
// outcome through the shared response envelope.
type Client struct {
	httpClient *http.Client
	cfg        Config
}

func NewClient(cfg Config) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cfg:        cfg,
	}
}

// SignUp creates an account with the provider and returns the assigned uid.
func (c *Client) SignUp(ctx context.Context, email, password string) (string, error) {
	payload := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var parsed struct {
		LocalID string `json:"localId"`
	}
	if err := c.post(ctx, "/accounts:signUp", payload, &parsed); err != nil {
		return "", err
	}
	if parsed.LocalID == "" {
		return "", fmt.Errorf("identity signup response missing uid")
	}
	return parsed.LocalID, nil
}

// PasswordResetLink asks the provider to issue a password-reset link for the
// given email.
func (c *Client) PasswordResetLink(ctx context.Context, email string) (string, error) {
	payload := map[string]interface{}{
		"requestType":   "PASSWORD_RESET",
		"email":         email,
		"returnOobLink": true,
	}

	var parsed struct {
		OobLink string `json:"oobLink"`
		Email   string `json:"email"`
	}
	if err := c.post(ctx, "/accounts:sendOobCode", payload, &parsed); err != nil {
		return "", err
	}
	if parsed.OobLink == "" {
		return "", fmt.Errorf("identity reset response missing link")
	}
	return parsed.OobLink, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal identity request failed: %w", err)
	}

	url := c.cfg.BaseURL + path + "?key=" + c.cfg.APIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("build identity request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read identity response failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("identity response status %d: %s", resp.StatusCode, providerMessage(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse identity response failed: %w", err)
	}
	return nil
}

// providerMessage pulls the provider's error code out of its body so callers
// see "EMAIL_EXISTS" rather than a JSON blob.
func providerMessage(raw []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return strings.TrimSpace(string(raw))
}
