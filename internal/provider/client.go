// Package provider is a thin client for the upstream sports-data API. It
// fetches team and game records as JSON; everything downstream of the fetch
// (validation, rating math) lives in the modules.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
)

const (
	rateLimitDelay = 200 * time.Millisecond
	requestTimeout = 30 * time.Second
)

// Client is a rate-limited, API-key-authenticated client for the data
// provider. It does not retry or paginate; callers own failure policy.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a provider client for the given endpoint and key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(rateLimitDelay), 1),
	}
}

// GetTeams fetches the team list for one season.
func (c *Client) GetTeams(ctx context.Context, season int) ([]ratingtypes.Team, error) {
	endpoint := fmt.Sprintf("%s/teams?season=%d", c.baseURL, season)

	var teams []ratingtypes.Team
	if err := c.doRequest(ctx, endpoint, &teams); err != nil {
		return nil, fmt.Errorf("failed to fetch teams for season %d: %w", season, err)
	}
	return teams, nil
}

// GetGames fetches one week's games.
func (c *Client) GetGames(ctx context.Context, season, week int) ([]ratingtypes.Game, error) {
	endpoint := fmt.Sprintf("%s/games?season=%d&week=%d", c.baseURL, season, week)

	var games []ratingtypes.Game
	if err := c.doRequest(ctx, endpoint, &games); err != nil {
		return nil, fmt.Errorf("failed to fetch games for season %d week %d: %w", season, week, err)
	}
	return games, nil
}

// GetTeamRoster fetches preseason roster inputs for one team.
func (c *Client) GetTeamRoster(ctx context.Context, season int, team string) (*ratingtypes.Team, error) {
	endpoint := fmt.Sprintf("%s/teams/%s?season=%d", c.baseURL, url.PathEscape(team), season)

	var out ratingtypes.Team
	if err := c.doRequest(ctx, endpoint, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch roster for %s: %w", team, err)
	}
	return &out, nil
}

func (c *Client) doRequest(ctx context.Context, endpoint string, result any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
