// Package facebook resolves Facebook login access tokens to profiles
// via the Graph API.
package facebook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultGraphURL is the production Graph API endpoint.
const DefaultGraphURL = "https://graph.facebook.com"

var (
	ErrInvalidToken = errors.New("facebook token rejected")
	ErrNoEmail      = errors.New("facebook profile has no email")
)

// Profile is the subset of the Graph /me response the platform uses.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Config controls the Graph API client.
type Config struct {
	// GraphURL overrides the Graph API base URL. Used by tests.
	GraphURL string
	// AppID is checked against the token's issuing app via /debug_token,
	// rejecting tokens minted for some other Facebook app.
	AppID string
	// AppSecret signs each request with an appsecret_proof so a stolen
	// access token cannot be replayed against this app from elsewhere.
	AppSecret string
	// HTTPClient overrides the HTTP client.
	HTTPClient *http.Client
}

// Client exchanges access tokens for profiles.
type Client struct {
	graphURL  string
	appID     string
	appSecret string
	client    *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.GraphURL == "" {
		cfg.GraphURL = DefaultGraphURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		graphURL:  cfg.GraphURL,
		appID:     cfg.AppID,
		appSecret: cfg.AppSecret,
		client:    cfg.HTTPClient,
	}
}

// AppSecretProof computes the Graph API request signature for an access
// token: hex(HMAC-SHA256(token, app secret)).
func AppSecretProof(accessToken, appSecret string) string {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write([]byte(accessToken))
	return hex.EncodeToString(mac.Sum(nil))
}

// Profile fetches the profile the access token belongs to. A token
// Facebook rejects, or that belongs to a different app, yields
// ErrInvalidToken; a profile without an email (the user can withhold it)
// yields ErrNoEmail.
func (c *Client) Profile(ctx context.Context, accessToken string) (*Profile, error) {
	if accessToken == "" {
		return nil, ErrInvalidToken
	}

	if c.appID != "" && c.appSecret != "" {
		if err := c.inspectToken(ctx, accessToken); err != nil {
			return nil, err
		}
	}

	q := url.Values{}
	q.Set("fields", "id,name,email")
	q.Set("access_token", accessToken)
	if c.appSecret != "" {
		q.Set("appsecret_proof", AppSecretProof(accessToken, c.appSecret))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.graphURL+"/me?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create graph request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call graph API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("graph API returned %d: %s", resp.StatusCode, string(body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode graph response: %w", err)
	}
	if profile.ID == "" {
		return nil, ErrInvalidToken
	}
	if profile.Email == "" {
		return nil, ErrNoEmail
	}

	return &profile, nil
}

// inspectToken calls /debug_token with the app access token and rejects
// tokens that Facebook marks invalid or that were issued to another app.
func (c *Client) inspectToken(ctx context.Context, accessToken string) error {
	q := url.Values{}
	q.Set("input_token", accessToken)
	q.Set("access_token", c.appID+"|"+c.appSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.graphURL+"/debug_token?"+q.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create debug_token request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call debug_token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("debug_token returned %d: %s", resp.StatusCode, string(body))
	}

	var inspection struct {
		Data struct {
			AppID   string `json:"app_id"`
			IsValid bool   `json:"is_valid"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&inspection); err != nil {
		return fmt.Errorf("decode debug_token response: %w", err)
	}
	if !inspection.Data.IsValid || inspection.Data.AppID != c.appID {
		return ErrInvalidToken
	}
	return nil
}
