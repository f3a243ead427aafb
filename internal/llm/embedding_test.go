package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEmbed(t *testing.T) {
	var gotRequest embeddingRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("path = %q, want /embeddings", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"embedding": []float64{0.1, 0.2, 0.3}},
			},
		})
	}))
	defer server.Close()

	client := &EmbeddingClient{BaseURL: server.URL, Model: "embed-model"}
	vector, err := client.Embed(context.Background(), "some text")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vector) != 3 {
		t.Errorf("vector length = %d, want 3", len(vector))
	}
	if gotRequest.Model != "embed-model" || gotRequest.Input != "some text" {
		t.Errorf("request = %+v", gotRequest)
	}
}

func TestEmbed_NoVector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer server.Close()

	client := &EmbeddingClient{BaseURL: server.URL, Model: "m"}
	_, err := client.Embed(context.Background(), "text")
	if err == nil || !strings.Contains(err.Error(), "no vector") {
		t.Errorf("error = %v, want no-vector error", err)
	}
}

func TestEmbeddingProbe_ReturnsDimension(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"embedding": make([]float64, 768)},
			},
		})
	}))
	defer server.Close()

	client := &EmbeddingClient{BaseURL: server.URL, Model: "m"}
	dimension, err := client.Probe(context.Background())
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if dimension != 768 {
		t.Errorf("dimension = %d, want 768", dimension)
	}
}
