package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pricelens/backend/config"
	httpDelivery "github.com/pricelens/backend/internal/delivery/http"
	"github.com/pricelens/backend/internal/infrastructure/cache"
	"github.com/pricelens/backend/internal/infrastructure/ollama"
	"github.com/pricelens/backend/internal/infrastructure/serpapi"
	"github.com/pricelens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PriceLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	vectorCache := cache.NewVectorCache()
	verdictCache := cache.NewVerdictCache()

	serpClient := serpapi.NewClient(cfg.SerpAPI.APIKey, cfg.SerpAPI.BaseURL)
	ollamaClient := ollama.NewClient(cfg.Embeddings.BaseURL, cfg.Embeddings.Model, cfg.Embeddings.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		serpClient.SetDebug(true)
		log.Printf("SerpAPI client debug mode enabled")
	}

	if cfg.SerpAPI.APIKey != "" {
		log.Printf("SerpAPI configured: %s (key: %s...)", cfg.SerpAPI.BaseURL, cfg.SerpAPI.APIKey[:8])
	} else {
		log.Printf("WARNING: SerpAPI configured: %s (key: NOT CONFIGURED - API calls will fail!)", cfg.SerpAPI.BaseURL)
	}
	log.Printf("Embeddings: %s (model: %s, timeout: %s)",
		cfg.Embeddings.BaseURL, cfg.Embeddings.Model, cfg.Embeddings.Timeout)

	// Initialize usecase layer
	embeddingService := usecase.NewEmbeddingService(vectorCache, ollamaClient)
	groupingService := usecase.NewGroupingService(embeddingService, usecase.GroupingConfig{
		SimilarityThreshold: cfg.Grouping.SimilarityThreshold,
		MaxListings:         cfg.Grouping.MaxListings,
	})
	verdictService := usecase.NewVerdictService(verdictCache)
	variantService := usecase.NewVariantService()

	comparisonService := usecase.NewComparisonService(
		serpClient,
		groupingService,
		verdictService,
		variantService,
	)

	log.Printf("Grouping: threshold=%.2f, max_listings=%d",
		cfg.Grouping.SimilarityThreshold, cfg.Grouping.MaxListings)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(comparisonService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
