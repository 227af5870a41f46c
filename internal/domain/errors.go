package domain

import "errors"

var (
	// ErrProviderFailure is returned when the shopping-search provider request fails
	ErrProviderFailure = errors.New("shopping provider request failed")

	// ErrEmbeddingFailure is returned when the embedding service request fails for a title
	ErrEmbeddingFailure = errors.New("embedding request failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrNoOffers is returned when offer selection is attempted on an empty group
	ErrNoOffers = errors.New("group contains no offers")
)
