// Package pdftext extracts the text layer from PDF files via poppler's
// pdftotext. Scanned pages without a text layer yield empty text, which the
// pipeline passes through rather than rejecting.
package pdftext

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
}

type Result struct {
	Text     string
	Pages    int
	Duration time.Duration
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract runs pdftotext and returns the concatenated page text.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		e.logger.Error("pdftext.extract_failed", "path", path, "stderr", truncate(string(errb), 2<<10), "error", err)
		return Result{}, err
	}

	text := string(out)
	// pdftotext emits a form feed as page separator.
	pages := 1 + strings.Count(text, "\f")

	res := Result{Text: text, Pages: pages, Duration: time.Since(start)}
	e.logger.Debug("pdftext.extract_ok", "path", path, "pages", pages, "bytes", len(text))
	return res, nil
}
