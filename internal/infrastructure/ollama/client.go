package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pricelens/backend/internal/domain"
)

// embedRequest is the Ollama /api/embeddings request body
type embedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// embedResponse is the Ollama /api/embeddings response body
type embedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// Client handles communication with a local Ollama embeddings endpoint.
// The endpoint embeds one prompt per request; there is no batch API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

// NewClient creates a new Ollama embeddings client
func NewClient(baseURL, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		model:   model,
	}
}

// Embed returns the embedding vector for a single text. A timeout counts as
// a hard failure for this text; the caller decides whether to skip it.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	payload, err := json.Marshal(embedRequest{Model: c.model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/embeddings", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbeddingFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrEmbeddingFailure, resp.StatusCode, string(body))
	}

	var embedResp embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&embedResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(embedResp.Embedding) == 0 {
		return nil, fmt.Errorf("%w: empty embedding", domain.ErrEmbeddingFailure)
	}

	return embedResp.Embedding, nil
}
