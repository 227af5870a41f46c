package serpapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pricelens/backend/internal/domain"
)

// MapToListings converts raw shopping results to domain Listings. Results
// without a parseable price are dropped; results without any link fall back
// to a Google search for the title.
func MapToListings(results []shoppingResult) []domain.Listing {
	listings := make([]domain.Listing, 0, len(results))

	for _, r := range results {
		price, ok := parsePrice(r.Price)
		if !ok {
			continue
		}

		link := firstNonEmpty(r.Link, r.ProductLink, r.MerchantLink)
		if link == "" && r.Title != "" {
			link = "https://www.google.com/search?q=" + url.QueryEscape(r.Title)
		}

		listings = append(listings, domain.Listing{
			Title:  r.Title,
			Price:  price,
			Source: r.Source,
			Link:   link,
		})
	}

	return listings
}

// parsePrice converts a formatted price string like "₹60,000" to a number
func parsePrice(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}

	cleaned := strings.ReplaceAll(raw, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// firstNonEmpty returns the first non-empty string from the candidates
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
