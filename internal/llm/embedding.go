package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// probeText is the fixed sample embedded by EmbeddingClient.Probe.
const probeText = "embedding connectivity test"

// EmbeddingClient calls an OpenAI-compatible embeddings endpoint.
type EmbeddingClient struct {
	BaseURL string
	APIKey  string
	Model   string

	// HTTPClient is used for requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Embed returns the embedding vector for the given text.
func (c *EmbeddingClient) Embed(ctx context.Context, text string) ([]float64, error) {
	payload := embeddingRequest{Model: c.Model, Input: text}

	body, err := postJSON(ctx, c.httpClient(), c.BaseURL+"/embeddings", c.APIKey, payload)
	if err != nil {
		return nil, err
	}

	var resp embeddingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("llm: decode embedding response: %w (body=%s)", err, truncate(string(body), 512))
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("llm: embedding response contained no vector (body=%s)", truncate(string(body), 512))
	}
	return resp.Data[0].Embedding, nil
}

// Probe embeds a fixed sample text and returns the vector dimension.
// A nil error means the configured endpoint is usable.
func (c *EmbeddingClient) Probe(ctx context.Context) (int, error) {
	vector, err := c.Embed(ctx, probeText)
	if err != nil {
		return 0, err
	}
	return len(vector), nil
}

func (c *EmbeddingClient) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
