// Package config loads and persists the application configuration: named
// LLM and embedding endpoint profiles plus novel generation parameters.
// The configuration lives in a single JSON file; when the file is missing
// or unreadable, a default configuration is written in its place.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultFileName is the configuration file name used when no explicit
// path is given.
const DefaultFileName = "config.json"

// LLMProfile describes one chat-completion endpoint.
type LLMProfile struct {
	APIKey         string  `mapstructure:"api_key" json:"api_key"`
	BaseURL        string  `mapstructure:"base_url" json:"base_url"`
	ModelName      string  `mapstructure:"model_name" json:"model_name"`
	Temperature    float64 `mapstructure:"temperature" json:"temperature"`
	MaxTokens      int     `mapstructure:"max_tokens" json:"max_tokens"`
	TimeoutSeconds int     `mapstructure:"timeout" json:"timeout"`
}

// EmbeddingProfile describes one embedding endpoint.
type EmbeddingProfile struct {
	APIKey     string `mapstructure:"api_key" json:"api_key"`
	BaseURL    string `mapstructure:"base_url" json:"base_url"`
	ModelName  string `mapstructure:"model_name" json:"model_name"`
	RetrievalK int    `mapstructure:"retrieval_k" json:"retrieval_k"`
}

// Generation holds the novel generation parameters carried between runs.
type Generation struct {
	Topic       string `mapstructure:"topic" json:"topic"`
	Genre       string `mapstructure:"genre" json:"genre"`
	NumChapters int    `mapstructure:"num_chapters" json:"num_chapters"`
	WordNumber  int    `mapstructure:"word_number" json:"word_number"`
	Filepath    string `mapstructure:"filepath" json:"filepath"`
}

// Config is the root configuration document.
type Config struct {
	LastLLMProfile       string                      `mapstructure:"last_llm_profile" json:"last_llm_profile"`
	LastEmbeddingProfile string                      `mapstructure:"last_embedding_profile" json:"last_embedding_profile"`
	LLMProfiles          map[string]LLMProfile       `mapstructure:"llm_profiles" json:"llm_profiles"`
	EmbeddingProfiles    map[string]EmbeddingProfile `mapstructure:"embedding_profiles" json:"embedding_profiles"`
	Generation           Generation                  `mapstructure:"generation" json:"generation"`
}

// Default returns the built-in configuration written when no file exists.
func Default() Config {
	return Config{
		LastLLMProfile:       "local-ollama",
		LastEmbeddingProfile: "local-ollama",
		LLMProfiles: map[string]LLMProfile{
			"local-ollama": {
				APIKey:         "ollama",
				BaseURL:        "http://localhost:11434/v1",
				ModelName:      "gpt-oss:120b",
				Temperature:    0.7,
				MaxTokens:      8192,
				TimeoutSeconds: 600,
			},
			"deepseek": {
				BaseURL:        "https://api.deepseek.com/v1",
				ModelName:      "deepseek-chat",
				Temperature:    0.7,
				MaxTokens:      8192,
				TimeoutSeconds: 600,
			},
		},
		EmbeddingProfiles: map[string]EmbeddingProfile{
			"local-ollama": {
				APIKey:     "ollama",
				BaseURL:    "http://localhost:11434/v1",
				ModelName:  "nomic-embed-text:137m-v1.5-fp16",
				RetrievalK: 4,
			},
		},
	}
}

// Load reads the configuration file at path. A missing or malformed file
// is replaced with the default configuration, which is then returned.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		// Missing or unparseable: recreate with defaults.
		return Create(path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

// Create writes the default configuration to path and returns it.
func Create(path string) (Config, error) {
	cfg := Default()
	if err := Save(cfg, path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save persists cfg to path as indented JSON.
func Save(cfg Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// LLM resolves an LLM profile by name, falling back to the last-selected
// profile when name is empty.
func (c Config) LLM(name string) (LLMProfile, error) {
	if name == "" {
		name = c.LastLLMProfile
	}
	p, ok := c.LLMProfiles[name]
	if !ok {
		return LLMProfile{}, fmt.Errorf("config: unknown llm profile %q", name)
	}
	return p, nil
}

// Embedding resolves an embedding profile by name, falling back to the
// last-selected profile when name is empty.
func (c Config) Embedding(name string) (EmbeddingProfile, error) {
	if name == "" {
		name = c.LastEmbeddingProfile
	}
	p, ok := c.EmbeddingProfiles[name]
	if !ok {
		return EmbeddingProfile{}, fmt.Errorf("config: unknown embedding profile %q", name)
	}
	return p, nil
}
