package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/forge"
)

// Client defaults
const (
	DefaultClientTimeout = 10 * time.Second
	DefaultMaxRetries    = 3
	DefaultRetryDelay    = 500 * time.Millisecond
	maxJitter            = 100 * time.Millisecond
)

// API paths
const (
	pathRegister = "/api/v1/players/register"
	pathPlayers  = "/api/v1/players/"
	pathUpgrade  = "/api/v1/upgrade"
	pathChances  = "/api/v1/upgrade/chances"
	pathHealthz  = "/healthz"
)

// APIError is a non-2xx answer from the forge API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status: %d", e.StatusCode)
	}
	return "API error: " + e.Message
}

// ChancesResponse mirrors the odds endpoint payload
type ChancesResponse struct {
	MaxLevel  int                 `json:"max_level"`
	GlowLevel int                 `json:"glow_level"`
	Chances   []forge.ChanceEntry `json:"chances"`
}

// APIClient handles communication with the SigilForge API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultClientTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// retryable reports whether a failed attempt may be repeated. Reads retry on
// any transport or server error. An upgrade is only repeated on 503 because
// the API answers 503 before anything was committed; other failures may have
// already spent the attempt.
func retryable(method string, status int) bool {
	if method == http.MethodGet {
		return true
	}
	return status == http.StatusServiceUnavailable
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + rand.N(maxJitter)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if method != http.MethodGet || ctx.Err() != nil {
				return nil, fmt.Errorf("API request failed: %w", err)
			}
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError || !retryable(method, resp.StatusCode) {
			return resp, nil
		}

		// Server error - retry
		lastErr = decodeAPIError(resp)
		resp.Body.Close()
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeAPIError reads the {"error": "..."} body the API sends on failure
func decodeAPIError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return &APIError{StatusCode: resp.StatusCode}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
}

func (c *APIClient) call(ctx context.Context, method, path string, body, out interface{}, okStatus ...int) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	ok := resp.StatusCode == http.StatusOK
	for _, s := range okStatus {
		ok = ok || resp.StatusCode == s
	}
	if !ok {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// PlayerIDFor maps a Discord user to the player id the bot registers them under
func PlayerIDFor(discordID string) string {
	return domain.PlatformDiscord + "-" + discordID
}

// RegisterPlayer creates the player for a Discord user
func (c *APIClient) RegisterPlayer(ctx context.Context, discordID, username string) (*domain.Player, error) {
	req := map[string]string{
		"player_id": PlayerIDFor(discordID),
		"username":  username,
		"platform":  domain.PlatformDiscord,
	}

	var p domain.Player
	if err := c.call(ctx, http.MethodPost, pathRegister, req, &p, http.StatusCreated); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPlayer fetches the weapon and inventory of a Discord user
func (c *APIClient) GetPlayer(ctx context.Context, discordID string) (*domain.Player, error) {
	var p domain.Player
	path := pathPlayers + url.PathEscape(PlayerIDFor(discordID))
	if err := c.call(ctx, http.MethodGet, path, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Upgrade attempts one weapon upgrade for a Discord user
func (c *APIClient) Upgrade(ctx context.Context, discordID string, useSigil bool) (*domain.UpgradeOutcome, error) {
	req := map[string]interface{}{
		"player_id": PlayerIDFor(discordID),
		"item_type": domain.ItemTypeWeapon,
		"use_sigil": useSigil,
	}

	var outcome domain.UpgradeOutcome
	if err := c.call(ctx, http.MethodPost, pathUpgrade, req, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

// GetChances fetches the odds table
func (c *APIClient) GetChances(ctx context.Context) (*ChancesResponse, error) {
	var out ChancesResponse
	if err := c.call(ctx, http.MethodGet, pathChances, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping checks that the API answers its liveness probe
func (c *APIClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+pathHealthz, nil)
	if err != nil {
		return err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode}
	}
	return nil
}

// IsStatus reports whether err is an APIError with the given status
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
