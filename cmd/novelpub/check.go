package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simp-lee/novelpub/internal/llm"
)

// defaultProbeTimeout bounds connectivity probes when the profile does
// not carry its own timeout.
const defaultProbeTimeout = 30 * time.Second

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify configured LLM and embedding endpoints",
}

var checkLLMCmd = &cobra.Command{
	Use:   "llm [profile]",
	Short: "Send a test prompt to an LLM profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		profile, err := cfg.LLM(name)
		if err != nil {
			return err
		}

		client := &llm.Client{
			BaseURL:     profile.BaseURL,
			APIKey:      profile.APIKey,
			Model:       profile.ModelName,
			Temperature: profile.Temperature,
			MaxTokens:   profile.MaxTokens,
		}

		ctx, cancel := probeContext(cmd.Context(), profile.TimeoutSeconds)
		defer cancel()

		reply, err := client.Probe(ctx)
		if err != nil {
			logger.Error("llm probe failed",
				zap.String("base_url", profile.BaseURL),
				zap.String("model", profile.ModelName),
				zap.Error(err))
			return err
		}

		logger.Info("llm endpoint ok",
			zap.String("model", profile.ModelName),
			zap.String("reply", reply))
		return nil
	},
}

var checkEmbeddingCmd = &cobra.Command{
	Use:   "embedding [profile]",
	Short: "Embed a test text against an embedding profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		profile, err := cfg.Embedding(name)
		if err != nil {
			return err
		}

		client := &llm.EmbeddingClient{
			BaseURL: profile.BaseURL,
			APIKey:  profile.APIKey,
			Model:   profile.ModelName,
		}

		ctx, cancel := probeContext(cmd.Context(), 0)
		defer cancel()

		dimension, err := client.Probe(ctx)
		if err != nil {
			logger.Error("embedding probe failed",
				zap.String("base_url", profile.BaseURL),
				zap.String("model", profile.ModelName),
				zap.Error(err))
			return err
		}

		logger.Info("embedding endpoint ok",
			zap.String("model", profile.ModelName),
			zap.Int("dimension", dimension))
		return nil
	},
}

// probeContext derives a bounded context from the profile timeout,
// falling back to defaultProbeTimeout.
func probeContext(parent context.Context, timeoutSeconds int) (context.Context, context.CancelFunc) {
	timeout := defaultProbeTimeout
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}
	return context.WithTimeout(parent, timeout)
}

func init() {
	checkCmd.AddCommand(checkLLMCmd)
	checkCmd.AddCommand(checkEmbeddingCmd)
	rootCmd.AddCommand(checkCmd)
}
