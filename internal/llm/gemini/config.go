package gemini

import (
	"context"
	"log/slog"
	"os"

	"google.golang.org/genai"
)

// Config for the Gemini client.
type Config struct {
	APIKey string // if empty, falls back to env GEMINI_API_KEY
	Model  string // e.g. "gemini-2.5-pro"
}

type Client struct {
	cfg    Config
	client *genai.Client
	logger *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-pro"
	}
	if logger == nil {
		logger = slog.Default()
	}

	// The SDK client carries no request state; one per process is fine.
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		cfg:    cfg,
		client: client,
		logger: logger,
	}, nil
}
