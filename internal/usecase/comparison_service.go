package usecase

import (
	"context"
	"log"

	"github.com/pricelens/backend/internal/domain"
)

// ComparisonService runs the full comparison pipeline for one query:
// provider search -> similarity grouping -> per-group best offer, verdict and
// variant analysis, assembled into ordered GroupResponse records.
type ComparisonService struct {
	provider domain.ListingProvider
	grouping *GroupingService
	verdicts *VerdictService
	variants *VariantService
}

// NewComparisonService creates a comparison service with dependencies
func NewComparisonService(
	provider domain.ListingProvider,
	grouping *GroupingService,
	verdicts *VerdictService,
	variants *VariantService,
) *ComparisonService {
	return &ComparisonService{
		provider: provider,
		grouping: grouping,
		verdicts: verdicts,
		variants: variants,
	}
}

// Compare fetches listings for the query and builds one response record per
// group of equivalent offers. An empty provider result yields an empty
// response list, not an error.
func (s *ComparisonService) Compare(ctx context.Context, query string) ([]domain.GroupResponse, error) {
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}

	listings, err := s.provider.SearchListings(ctx, query)
	if err != nil {
		return nil, err
	}

	groups := s.grouping.GroupListings(ctx, listings)

	responses := make([]domain.GroupResponse, 0, len(groups))
	for _, offers := range groups {
		resp, err := s.assembleResponse(ctx, offers)
		if err != nil {
			// Cannot happen for groups built by GroupListings, which never
			// emits an empty group
			log.Printf("[COMPARE] Skipping group: %v", err)
			continue
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// assembleResponse composes one group's clustering result, best offer,
// verdict and variant analysis into a single record. Variant analysis
// failures degrade to "no insight"; they never abort assembly.
func (s *ComparisonService) assembleResponse(ctx context.Context, offers []domain.Listing) (domain.GroupResponse, error) {
	best, err := PickBest(offers)
	if err != nil {
		return domain.GroupResponse{}, err
	}

	verdict, err := s.verdicts.GenerateVerdict(ctx, offers)
	if err != nil {
		return domain.GroupResponse{}, err
	}

	insight, err := s.variants.AnalyzeVariants(best.Title, offers)
	if err != nil {
		log.Printf("[VARIANT] Analysis failed for %q: %v", best.Title, err)
		insight = nil
	}

	return domain.GroupResponse{
		Product:        best.Title,
		Offers:         offers,
		Best:           best,
		Verdict:        verdict,
		VariantInsight: insight,
	}, nil
}
