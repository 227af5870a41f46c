package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pricelens/backend/internal/domain"
)

// canonicalStorageRegex recognizes only canonical storage tiers. It is
// deliberately stricter than the storage rule used for signatures: grouping
// tolerates any digit run before "gb", variant economics only trusts sizes
// phones actually ship with.
var canonicalStorageRegex = regexp.MustCompile(`(?i)(64|128|256|512|1024)\s?gb`)

// VariantService analyzes the storage tiers available within one group and
// recommends the tier with the best storage-for-money trade-off
type VariantService struct{}

// NewVariantService creates a variant analysis service
func NewVariantService() *VariantService {
	return &VariantService{}
}

// extractStorage returns the first canonical storage size in the title, or 0
// when the title carries none
func extractStorage(title string) int {
	m := canonicalStorageRegex.FindStringSubmatch(title)
	if m == nil {
		return 0
	}
	size, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return size
}

// AnalyzeVariants aggregates a group's offers by storage tier and scores
// adjacent tiers by storage-gain over price-gain to pick the best value.
// Returns (nil, nil) when no offer carries a canonical storage size: absence
// of tiers is a valid outcome, not a failure. Each tier's score is relative
// to its immediate predecessor only, so scores of non-adjacent tiers are not
// comparable; the recommendation follows the best local jump.
func (s *VariantService) AnalyzeVariants(productName string, offers []domain.Listing) (*domain.VariantInsight, error) {
	tiers := make(map[int][]domain.Listing)
	for _, o := range offers {
		if storage := extractStorage(o.Title); storage > 0 {
			tiers[storage] = append(tiers[storage], o)
		}
	}

	if len(tiers) == 0 {
		return nil, nil
	}

	summary := make(map[string]domain.VariantSummary, len(tiers))
	sizes := make([]int, 0, len(tiers))
	for storage, items := range tiers {
		sizes = append(sizes, storage)

		minPrice := items[0].Price
		for _, it := range items[1:] {
			if it.Price < minPrice {
				minPrice = it.Price
			}
		}
		summary[tierLabel(storage)] = domain.VariantSummary{
			MinPrice: minPrice,
			Count:    len(items),
		}
	}
	sort.Ints(sizes)

	bestVariant := tierLabel(sizes[0])
	bestScore := 0.0
	scored := false

	for i := 1; i < len(sizes); i++ {
		prevPrice := summary[tierLabel(sizes[i-1])].MinPrice
		currPrice := summary[tierLabel(sizes[i])].MinPrice
		if prevPrice <= 0 {
			return nil, fmt.Errorf("non-positive min price for tier %s", tierLabel(sizes[i-1]))
		}

		storageGain := float64(sizes[i]) / float64(sizes[i-1])
		priceGain := currPrice / prevPrice
		score := storageGain / priceGain

		if !scored || score > bestScore {
			bestScore = score
			bestVariant = tierLabel(sizes[i])
			scored = true
		}
	}

	return &domain.VariantInsight{
		Variants:    summary,
		BestVariant: bestVariant,
		Reasoning:   variantReasoning(sizes, summary, bestVariant),
	}, nil
}

// variantReasoning renders the tier list and the recommendation as text
func variantReasoning(sizes []int, summary map[string]domain.VariantSummary, bestVariant string) string {
	if len(sizes) < 2 {
		return fmt.Sprintf("%s is the only available variant.", bestVariant)
	}

	parts := make([]string, len(sizes))
	for i, storage := range sizes {
		label := tierLabel(storage)
		parts[i] = fmt.Sprintf("%s at %s%s", label, currencySymbol, formatPrice(summary[label].MinPrice))
	}

	return fmt.Sprintf("Available variants are %s. %s offers the best balance between price and storage.",
		strings.Join(parts, ", "), bestVariant)
}

// tierLabel renders a storage size as its tier label, e.g. 128 -> "128GB"
func tierLabel(storage int) string {
	return fmt.Sprintf("%dGB", storage)
}
