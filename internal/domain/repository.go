package domain

import "context"

// ListingProvider defines the interface for the external shopping-search provider
type ListingProvider interface {
	SearchListings(ctx context.Context, query string) ([]Listing, error)
}

// Embedder defines the interface for the external text-embedding service.
// One call embeds exactly one title (the backing service has no batch endpoint).
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// VectorCache caches embedding vectors keyed by exact title text.
// Entries are immutable once written and never evicted.
type VectorCache interface {
	Get(ctx context.Context, title string) ([]float64, error)
	Set(ctx context.Context, title string, vector []float64) error
}

// VerdictCache caches generated verdict text keyed by the offer set fingerprint
type VerdictCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, verdict string) error
}
