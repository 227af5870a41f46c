package usecase

import (
	"context"
	"math"

	"github.com/pricelens/backend/internal/domain"
)

// GroupingConfig holds configuration for the grouping service
type GroupingConfig struct {
	// SimilarityThreshold is the minimum cosine similarity for a listing to
	// join an existing group
	SimilarityThreshold float64

	// MaxListings caps how many listings one invocation will process. The
	// cap bounds response time and embedding-service cost, not correctness.
	MaxListings int
}

// GroupingService clusters listings into groups of equivalent offers using
// first-fit anchored clustering: a listing joins the first existing group
// whose anchor signature is compatible and whose anchor embedding is within
// the similarity threshold. The policy is greedy and order-dependent by
// design; it trades optimality for O(n*g) work against the anchors only.
type GroupingService struct {
	embeddings          *EmbeddingService
	similarityThreshold float64
	maxListings         int
}

// group is the internal clustering state. The anchor signature and embedding
// are fixed at creation (no re-centering) and never exposed to callers.
type group struct {
	sig   signature
	emb   []float64
	items []domain.Listing
}

// NewGroupingService creates a grouping service with dependencies
func NewGroupingService(embeddings *EmbeddingService, config GroupingConfig) *GroupingService {
	threshold := config.SimilarityThreshold
	if threshold <= 0 {
		threshold = 0.86 // Default similarity threshold
	}

	maxListings := config.MaxListings
	if maxListings <= 0 {
		maxListings = 8 // Default listing cap
	}

	return &GroupingService{
		embeddings:          embeddings,
		similarityThreshold: threshold,
		maxListings:         maxListings,
	}
}

// GroupListings partitions the (capped) listings into groups of equivalent
// offers. Groups come back in creation order; items within a group keep
// input order. A listing whose embedding could not be resolved is dropped
// silently — reduced coverage, never a failed batch.
func (s *GroupingService) GroupListings(ctx context.Context, listings []domain.Listing) [][]domain.Listing {
	if len(listings) > s.maxListings {
		listings = listings[:s.maxListings]
	}

	titles := make([]string, 0, len(listings))
	seen := make(map[string]bool, len(listings))
	for _, l := range listings {
		if !seen[l.Title] {
			seen[l.Title] = true
			titles = append(titles, l.Title)
		}
	}
	vectors := s.embeddings.ResolveAll(ctx, titles)

	var groups []*group

	for _, listing := range listings {
		sig := extractSignature(listing.Title)
		emb, ok := vectors[listing.Title]
		if !ok {
			continue
		}

		placed := false
		for _, g := range groups {
			if !sameVariant(sig, g.sig) {
				continue
			}
			if cosineSimilarity(emb, g.emb) >= s.similarityThreshold {
				g.items = append(g.items, listing)
				placed = true
				break
			}
		}

		if !placed {
			groups = append(groups, &group{
				sig:   sig,
				emb:   emb,
				items: []domain.Listing{listing},
			})
		}
	}

	result := make([][]domain.Listing, len(groups))
	for i, g := range groups {
		result[i] = g.items
	}
	return result
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths and zero vectors yield 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
