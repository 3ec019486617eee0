package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/auditlens/soc-extract/internal/llm"
)

var _ llm.Generator = (*Client)(nil)

// Generate implements llm.Generator. The request mirrors the two-part shape
// the prompts were written for: document text first, field instruction second.
func (c *Client) Generate(ctx context.Context, documentText, prompt string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Debug("llm.generate.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"text_len", len(documentText),
		"prompt_len", len(prompt),
	)

	parts := []*genai.Part{
		genai.NewPartFromText(documentText),
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, contents, nil)
	if err != nil {
		c.logger.Error("llm.generate.error",
			"req_id", rid,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	c.logger.Debug("llm.generate.ok",
		"req_id", rid,
		"bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
