// Script to test Langfuse connectivity by creating a test trace and score.
// Usage: go run scripts/langfuse-test/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/blaisecz/sleep-diary/internal/config"
	"github.com/blaisecz/sleep-diary/internal/langfuse"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	lfCfg := langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}

	fmt.Println("=== Langfuse Connection Test ===")
	fmt.Printf("Base URL:    %s\n", lfCfg.BaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(lfCfg.PublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(lfCfg.SecretKey))
	fmt.Printf("Environment: %s\n", lfCfg.Environment)
	fmt.Println()

	client := langfuse.NewClient(lfCfg, log)
	if !client.IsEnabled() {
		log.Fatal("langfuse client is disabled, check LANGFUSE_* env vars")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		UserID: "test-user-123",
		Name:   "sleep-weekly-insights-test",
		Input: map[string]any{
			"message": "Hello from langfuse-test script",
			"time":    time.Now().Format(time.RFC3339),
		},
		Output: map[string]any{
			"status": "success",
		},
		Tags: []string{"test", "manual"},
	})
	if err != nil {
		log.Fatal("failed to create trace", zap.Error(err))
	}

	if err := client.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: traceID,
		Name:    "user_rating",
		Value:   5,
		Comment: "connectivity check",
	}); err != nil {
		log.Fatal("failed to create score", zap.Error(err))
	}

	if err := client.Flush(ctx); err != nil {
		log.Fatal("ingestion did not finish", zap.Error(err))
	}

	fmt.Println("✓ Test trace and score sent")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", lfCfg.BaseURL, traceID)
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
