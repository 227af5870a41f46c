package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"

	"github.com/pricelens/backend/internal/domain"
)

// currencySymbol is the single implicit currency of all listings
const currencySymbol = "₹"

// VerdictService selects the best offer within a group and generates a short
// human-readable justification for it. Verdicts are cached process-wide,
// keyed by the offer set, since identical offer sets recur across requests.
type VerdictService struct {
	cache domain.VerdictCache
}

// NewVerdictService creates a verdict service with dependencies
func NewVerdictService(cache domain.VerdictCache) *VerdictService {
	return &VerdictService{cache: cache}
}

// PickBest returns the offer with the minimum price. Ties resolve to the
// first occurrence, so the minimum is stable with respect to input order.
func PickBest(offers []domain.Listing) (domain.Listing, error) {
	if len(offers) == 0 {
		return domain.Listing{}, domain.ErrNoOffers
	}

	best := offers[0]
	for _, o := range offers[1:] {
		if o.Price < best.Price {
			best = o
		}
	}
	return best, nil
}

// GenerateVerdict produces a one/two-sentence explanation of why the cheapest
// offer is the best deal
func (s *VerdictService) GenerateVerdict(ctx context.Context, offers []domain.Listing) (string, error) {
	key := verdictCacheKey(offers)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		return cached, nil
	}

	cheapest, err := PickBest(offers)
	if err != nil {
		return "", err
	}

	var verdict string
	if len(offers) == 1 {
		verdict = fmt.Sprintf("Only one seller available: %s at %s%s.",
			cheapest.Source, currencySymbol, formatPrice(cheapest.Price))
	} else {
		prices := make([]float64, len(offers))
		for i, o := range offers {
			prices[i] = o.Price
		}
		sort.Float64s(prices)
		diff := prices[1] - prices[0]

		verdict = fmt.Sprintf("%s offers the best price at %s%s, %s%s cheaper than the next option.",
			cheapest.Source, currencySymbol, formatPrice(cheapest.Price),
			currencySymbol, formatPrice(diff))
	}

	if err := s.cache.Set(ctx, key, verdict); err != nil {
		log.Printf("[VERDICT] Cache write failed: %v", err)
	}

	return verdict, nil
}

// verdictCacheKey fingerprints an offer set as its sorted (source, price)
// pairs, so the same offers in any order hit the same cache entry
func verdictCacheKey(offers []domain.Listing) string {
	pairs := make([]string, len(offers))
	for i, o := range offers {
		pairs[i] = o.Source + ":" + formatPrice(o.Price)
	}
	sort.Strings(pairs)

	key := ""
	for i, p := range pairs {
		if i > 0 {
			key += "|"
		}
		key += p
	}
	return key
}

// formatPrice renders a price without trailing zeros ("60000", "59999.5")
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
