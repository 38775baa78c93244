// Package dupr is a thin client for the DUPR rating API. Lookups are
// advisory: registration validates the self-reported rating against the event
// band, and a reachable DUPR backend only adds a cross-check.
package dupr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dinklabs/dinkpass/models"
)

const DefaultBaseURL = "https://backend.mydupr.com"

// Player is the subset of the DUPR player payload the service reads.
type Player struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullName"`
	DUPRID   string  `json:"duprId"`
	Ratings  Ratings `json:"ratings"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

type Ratings struct {
	Singles float64 `json:"singles"`
	Doubles float64 `json:"doubles"`
	Mixed   float64 `json:"mixed"`
}

// ForFormat returns the rating that applies to the given event format.
func (r Ratings) ForFormat(format models.EventFormat) float64 {
	switch format {
	case models.FormatSingles:
		return r.Singles
	case models.FormatDoubles:
		return r.Doubles
	default:
		return r.Mixed
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      token,
	}
}

// GetPlayer fetches a player record by DUPR id.
func (c *Client) GetPlayer(ctx context.Context, duprID string) (*Player, error) {
	endpoint := fmt.Sprintf("%s/players/v1.0/player/%s", c.baseURL, url.PathEscape(duprID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var player Player
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("failed to decode player response: %w", err)
	}
	return &player, nil
}

// VerifyRating reports whether the player's official rating for the event
// format lies inside [minRating, maxRating].
func (c *Client) VerifyRating(ctx context.Context, duprID string, format models.EventFormat, minRating, maxRating float64) (bool, error) {
	player, err := c.GetPlayer(ctx, duprID)
	if err != nil {
		return false, err
	}
	rating := player.Ratings.ForFormat(format)
	return rating >= minRating && rating <= maxRating, nil
}
