package bungie

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/XurBot_Go/internal/domain"
	"github.com/osse101/XurBot_Go/internal/logger"
)

// Fetcher performs raw GET requests
type Fetcher interface {
	Get(ctx context.Context, endpoint, url string, header http.Header) ([]byte, error)
}

// Config describes where the platform API lives
type Config struct {
	APIKey      string
	VendorURL   string
	ItemBaseURL string
	VendorHash  uint32
	Denylist    []domain.ItemHash
}

// Client reads vendor sales and item definitions from the Bungie platform API
type Client struct {
	fetcher  Fetcher
	cfg      Config
	denylist map[domain.ItemHash]struct{}
}

// envelope wraps every platform response
type envelope struct {
	Response    json.RawMessage `json:"Response"`
	ErrorCode   *int            `json:"ErrorCode"`
	ErrorStatus string          `json:"ErrorStatus"`
	Message     string          `json:"Message"`
}

// NewClient creates a platform client
func NewClient(fetcher Fetcher, cfg Config) *Client {
	denylist := make(map[domain.ItemHash]struct{}, len(cfg.Denylist))
	for _, h := range cfg.Denylist {
		denylist[h] = struct{}{}
	}
	return &Client{fetcher: fetcher, cfg: cfg, denylist: denylist}
}

func (c *Client) header() http.Header {
	h := http.Header{}
	h.Set("X-API-Key", c.cfg.APIKey)
	return h
}

// get fetches url and returns the envelope's Response payload
func (c *Client) get(ctx context.Context, endpoint, url string) (json.RawMessage, error) {
	body, err := c.fetcher.Get(ctx, endpoint, url, c.header())
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	if env.ErrorCode != nil && *env.ErrorCode != PlatformErrorCodeSuccess {
		return nil, fmt.Errorf("%w: %s: %d %s: %s",
			domain.ErrAPIError, endpoint, *env.ErrorCode, env.ErrorStatus, env.Message)
	}

	if len(env.Response) == 0 || string(env.Response) == "null" {
		return nil, fmt.Errorf("%w: %s Response", domain.ErrMissingField, endpoint)
	}

	return env.Response, nil
}

// ItemDefinition fetches the content-database record for one item
func (c *Client) ItemDefinition(ctx context.Context, hash domain.ItemHash) (domain.ItemDefinition, error) {
	raw, err := c.get(ctx, EndpointItemDefinition, c.cfg.ItemBaseURL+hash.String())
	if err != nil {
		return domain.ItemDefinition{}, err
	}

	var def domain.ItemDefinition
	if err := json.Unmarshal(raw, &def); err != nil {
		return domain.ItemDefinition{}, fmt.Errorf("failed to decode definition %s: %w", hash, err)
	}
	if def.Hash == 0 {
		def.Hash = hash
	}

	logger.FromContext(ctx).Debug("Item definition fetched", "hash", hash)
	return def, nil
}
