package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/pricelens/backend/internal/domain"
)

// EmbeddingService resolves listing titles to semantic vectors through a
// process-wide read-through cache. The backing embedding service accepts one
// title per request, so a batch resolve issues one call per uncached title.
type EmbeddingService struct {
	cache    domain.VectorCache
	embedder domain.Embedder
}

// NewEmbeddingService creates an embedding service with dependencies
func NewEmbeddingService(cache domain.VectorCache, embedder domain.Embedder) *EmbeddingService {
	return &EmbeddingService{
		cache:    cache,
		embedder: embedder,
	}
}

// ResolveAll returns vectors for as many of the given titles as possible.
// Cached vectors are returned directly; misses go to the embedder and are
// written back. A title whose embedding call fails is logged and left out of
// the result so the caller can skip the affected listing instead of aborting
// the whole batch.
func (s *EmbeddingService) ResolveAll(ctx context.Context, titles []string) map[string][]float64 {
	vectors := make(map[string][]float64, len(titles))

	for _, title := range titles {
		if _, ok := vectors[title]; ok {
			continue
		}

		if vec, err := s.cache.Get(ctx, title); err == nil {
			vectors[title] = vec
			continue
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			log.Printf("[EMBED] Cache read failed for %q: %v", title, err)
		}

		vec, err := s.embedder.Embed(ctx, title)
		if err != nil {
			log.Printf("[EMBED] Embedding failed for %q, skipping: %v", title, err)
			continue
		}

		if err := s.cache.Set(ctx, title, vec); err != nil {
			// Cache write failure costs a duplicate call later, nothing more
			log.Printf("[EMBED] Cache write failed for %q: %v", title, err)
		}
		vectors[title] = vec
	}

	return vectors
}
