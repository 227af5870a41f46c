package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pricelens/backend/internal/domain"
)

// ComparisonService defines what the handler needs from the usecase layer
type ComparisonService interface {
	Compare(ctx context.Context, query string) ([]domain.GroupResponse, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	comparisonService ComparisonService
}

// NewHandler creates a new HTTP handler
func NewHandler(comparisonService ComparisonService) *Handler {
	return &Handler{
		comparisonService: comparisonService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pricelens-backend",
		"version": "1.0.0",
	})
}

// Compare handles price comparison requests for a free-text product query
func (h *Handler) Compare(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "query parameter is required",
		})
		return
	}

	responses, err := h.comparisonService.Compare(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "comparison failed: " + err.Error(),
		})
		return
	}

	if responses == nil {
		responses = []domain.GroupResponse{}
	}
	c.JSON(http.StatusOK, responses)
}
