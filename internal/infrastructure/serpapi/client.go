package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/pricelens/backend/internal/domain"
	"golang.org/x/time/rate"
)

// searchResponse is the subset of the SerpAPI payload we consume
type searchResponse struct {
	ShoppingResults []shoppingResult `json:"shopping_results"`
}

// shoppingResult is a single raw Google Shopping result
type shoppingResult struct {
	Title        string `json:"title"`
	Price        string `json:"price"` // formatted, e.g. "₹60,000"
	Source       string `json:"source"`
	Link         string `json:"link"`
	ProductLink  string `json:"product_link"`
	MerchantLink string `json:"merchant_link"`
}

// Client handles communication with the SerpAPI Google Shopping engine
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new SerpAPI client
func NewClient(apiKey, baseURL string) *Client {
	// SerpAPI free tier allows 100 searches per month; the limiter only
	// smooths concurrent bursts from parallel requests
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables debug logging of raw results
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// SearchListings fetches shopping listings for a free-text query. Results
// keep the provider's order. The call is not retried: a comparison request
// either has listings or it doesn't.
func (c *Client) SearchListings(ctx context.Context, query string) ([]domain.Listing, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Add("engine", "google_shopping")
	params.Add("q", query)
	params.Add("hl", "en")
	params.Add("gl", "in")
	params.Add("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "PriceLens/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[SERPAPI] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderFailure, resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	listings := MapToListings(searchResp.ShoppingResults)

	if c.debug {
		log.Printf("[SERPAPI] Query %q: %d raw results, %d usable listings",
			query, len(searchResp.ShoppingResults), len(listings))
	}

	return listings, nil
}
