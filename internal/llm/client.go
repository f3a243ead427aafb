// Package llm provides minimal clients for OpenAI-compatible
// chat-completion and embedding endpoints, used to verify that a
// configured endpoint is reachable and responding before generation.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// probePrompt is the fixed prompt sent by Client.Probe.
const probePrompt = "Please reply 'OK'"

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int

	// HTTPClient is used for requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends a single-message chat completion request and
// returns the trimmed assistant reply.
func (c *Client) ChatCompletion(ctx context.Context, prompt string) (string, error) {
	payload := chatCompletionRequest{
		Model:     c.Model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: c.MaxTokens,
	}
	if c.Temperature != 0 {
		payload.Temperature = &c.Temperature
	}

	body, err := postJSON(ctx, c.httpClient(), c.BaseURL+"/chat/completions", c.APIKey, payload)
	if err != nil {
		return "", err
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("llm: decode chat completion: %w (body=%s)", err, truncate(string(body), 512))
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("llm: chat completion returned no choices (body=%s)", truncate(string(body), 512))
	}

	reply := strings.TrimSpace(completion.Choices[0].Message.Content)
	if reply == "" {
		return "", fmt.Errorf("llm: chat completion returned empty message (body=%s)", truncate(string(body), 512))
	}
	return reply, nil
}

// Probe sends a fixed test prompt and returns the endpoint's reply.
// A nil error means the configured endpoint is usable.
func (c *Client) Probe(ctx context.Context) (string, error) {
	return c.ChatCompletion(ctx, probePrompt)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// postJSON issues an authorized JSON POST and returns the response body,
// converting non-2xx statuses into errors carrying a body preview.
func postJSON(ctx context.Context, client *http.Client, url, apiKey string, payload any) ([]byte, error) {
	requestBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("llm: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBytes))
	if err != nil {
		return nil, fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llm: %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("llm: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("llm: http error %d: %s", resp.StatusCode, truncate(string(body), 512))
	}
	return body, nil
}

// truncate shortens s to at most limit runes for error messages.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
