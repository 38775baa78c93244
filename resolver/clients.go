package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 5 * time.Second

// ENSClient resolves .eth names through an ensideas-style endpoint:
// GET {baseURL}/ens/resolve/{name} -> {"address": "0x..."}.
type ENSClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewENSClient(baseURL string, timeout time.Duration) *ENSClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ENSClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

func (c *ENSClient) Resolve(ctx context.Context, name string) (string, error) {
	endpoint := fmt.Sprintf("%s/ens/resolve/%s", c.baseURL, url.PathEscape(name))
	return fetchAddress(ctx, c.httpClient, endpoint)
}

// ProfileClient resolves Base names through a web3.bio-style profile endpoint:
// GET {baseURL}/profile/{name} -> {"address": "0x..."}.
type ProfileClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewProfileClient(baseURL string, timeout time.Duration) *ProfileClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ProfileClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

func (c *ProfileClient) Resolve(ctx context.Context, name string) (string, error) {
	endpoint := fmt.Sprintf("%s/profile/%s", c.baseURL, url.PathEscape(name))
	return fetchAddress(ctx, c.httpClient, endpoint)
}

func fetchAddress(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var payload struct {
		Address string `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return payload.Address, nil
}
