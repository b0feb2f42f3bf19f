package manifest

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/XurBot_Go/internal/domain"
	"github.com/osse101/XurBot_Go/internal/logger"
)

// Log messages
const (
	LogMsgLookupFailed = "Item definition lookup failed, skipping"
	LogMsgResolved     = "Item definitions resolved"
)

// DefinitionSource fetches one content-database record
type DefinitionSource interface {
	ItemDefinition(ctx context.Context, hash domain.ItemHash) (domain.ItemDefinition, error)
}

// Resolver turns item hashes into definitions, one request per hash.
// A failed lookup is reported in its ItemResult and does not stop the others.
type Resolver struct {
	source DefinitionSource
}

// NewResolver creates a resolver over source
func NewResolver(source DefinitionSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve looks up every hash sequentially and returns one result per hash, in order.
// The memo lives for this call only; repeated hashes reuse the first outcome.
func (r *Resolver) Resolve(ctx context.Context, hashes []domain.ItemHash) []domain.ItemResult {
	log := logger.FromContext(ctx)

	// Sized to the input so nothing is evicted; lru.New only fails for a non-positive size
	memo, _ := lru.New[domain.ItemHash, domain.ItemResult](max(len(hashes), 1))

	results := make([]domain.ItemResult, 0, len(hashes))
	failed := 0
	for _, hash := range hashes {
		if cached, ok := memo.Get(hash); ok {
			results = append(results, cached)
			continue
		}

		result := domain.ItemResult{Hash: hash}
		def, err := r.source.ItemDefinition(ctx, hash)
		if err != nil {
			log.Warn(LogMsgLookupFailed, "hash", hash, "error", err)
			result.Err = err
			failed++
		} else {
			result.Definition = &def
		}

		memo.Add(hash, result)
		results = append(results, result)
	}

	log.Info(LogMsgResolved, "requested", len(hashes), "failed", failed)
	return results
}
