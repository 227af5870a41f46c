package domain

// Listing represents a single shopping offer scraped from a seller
type Listing struct {
	Title  string  `json:"title"`
	Price  float64 `json:"price"`
	Source string  `json:"source"` // seller name, e.g. "Flipkart"
	Link   string  `json:"link"`
}

// VariantSummary aggregates the offers for one storage tier within a group
type VariantSummary struct {
	MinPrice float64 `json:"min_price"`
	Count    int     `json:"count"`
}

// VariantInsight is the storage-tier value analysis for one group.
// BestVariant names the tier with the best storage-gain vs price-gain
// trade-off relative to its immediate predecessor.
type VariantInsight struct {
	Variants    map[string]VariantSummary `json:"variants"`
	BestVariant string                    `json:"best_variant"`
	Reasoning   string                    `json:"reasoning"`
}

// GroupResponse is the terminal output record for one group of equivalent offers
type GroupResponse struct {
	Product        string          `json:"product"` // title of the cheapest offer
	Offers         []Listing       `json:"offers"`
	Best           Listing         `json:"best"`
	Verdict        string          `json:"verdict"`
	VariantInsight *VariantInsight `json:"variant_insight,omitempty"`
}
