package location

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/XurBot_Go/internal/domain"
	"github.com/osse101/XurBot_Go/internal/logger"
)

// EndpointName labels location feed requests in logs and metrics
const EndpointName = "location"

// Fetcher performs the raw GET against the feed
type Fetcher interface {
	Get(ctx context.Context, endpoint, url string, header http.Header) ([]byte, error)
}

// feedResponse mirrors the aggregator's JSON document
type feedResponse struct {
	PlaceName    *string `json:"placeName"`
	LocationName *string `json:"locationName"`
}

// Resolver asks the aggregator where the vendor is
type Resolver struct {
	fetcher Fetcher
	url     string
}

// NewResolver creates a resolver against feedURL
func NewResolver(fetcher Fetcher, feedURL string) *Resolver {
	return &Resolver{fetcher: fetcher, url: feedURL}
}

// Resolve returns the vendor's location, or domain.ErrVendorAbsent when the
// feed body is empty or null.
func (r *Resolver) Resolve(ctx context.Context) (domain.Location, error) {
	body, err := r.fetcher.Get(ctx, EndpointName, r.url, nil)
	if err != nil {
		return domain.Location{}, err
	}
	return Parse(ctx, body)
}

// Parse decodes a feed body. Planet and place are taken verbatim.
func Parse(ctx context.Context, body []byte) (domain.Location, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		logger.FromContext(ctx).Info("Xur is nowhere to be found")
		return domain.Location{}, domain.ErrVendorAbsent
	}

	var resp feedResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return domain.Location{}, fmt.Errorf("failed to decode location feed: %w", err)
	}

	if resp.PlaceName == nil {
		return domain.Location{}, fmt.Errorf("%w: location feed placeName", domain.ErrMissingField)
	}
	if resp.LocationName == nil {
		return domain.Location{}, fmt.Errorf("%w: location feed locationName", domain.ErrMissingField)
	}

	return domain.Location{Planet: *resp.PlaceName, Place: *resp.LocationName}, nil
}
