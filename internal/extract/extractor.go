// Package extract drives single-field model calls with bounded retry.
package extract

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/auditlens/soc-extract/internal/llm"
)

// ErrorPrefix marks an in-band extraction failure. After the retry budget is
// exhausted the failure flows into the record as a value with this prefix
// instead of aborting the run.
const ErrorPrefix = "Error: "

// IsErrorMarker reports whether a raw field value is a failure marker.
func IsErrorMarker(s string) bool {
	return strings.HasPrefix(s, ErrorPrefix)
}

// FieldExtractor retries transient model faults with exponential backoff plus
// random jitter. No error classification is attempted: every error is treated
// as transient and retried identically.
type FieldExtractor struct {
	MaxRetries int           // total attempts, not retries after the first
	BaseDelay  time.Duration // first backoff; doubles per attempt
	Logger     *slog.Logger

	// test seams
	sleep  func(ctx context.Context, d time.Duration)
	jitter func() float64
}

func NewFieldExtractor(maxRetries int, baseDelay time.Duration, logger *slog.Logger) *FieldExtractor {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if baseDelay <= 0 {
		baseDelay = 3 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FieldExtractor{
		MaxRetries: maxRetries,
		BaseDelay:  baseDelay,
		Logger:     logger,
		sleep:      sleepCtx,
		jitter:     rand.Float64,
	}
}

// Extract answers one field prompt against documentText. An empty
// documentText is passed through untouched; the model decides what to do
// with it. On success the trimmed model output is returned; after the last
// failed attempt the result is an ErrorPrefix-marked string, never an error.
func (e *FieldExtractor) Extract(ctx context.Context, gen llm.Generator, prompt, documentText string) string {
	var lastErr error
	for attempt := 0; attempt < e.MaxRetries; attempt++ {
		out, err := gen.Generate(ctx, documentText, prompt)
		if err == nil {
			return strings.TrimSpace(out)
		}
		lastErr = err

		if attempt < e.MaxRetries-1 {
			delay := e.backoff(attempt)
			e.Logger.Warn("extract.attempt_failed",
				"attempt", attempt+1,
				"error", err,
				"retry_in", delay.Round(10*time.Millisecond).String(),
			)
			e.sleep(ctx, delay)
		}
	}
	return ErrorPrefix + lastErr.Error()
}

// backoff computes BaseDelay * 2^attempt plus up to one second of jitter.
// Total wait across a budget of n attempts is therefore bounded by
// BaseDelay*(2^(n-1)-1) + (n-1) seconds.
func (e *FieldExtractor) backoff(attempt int) time.Duration {
	exp := time.Duration(math.Pow(2, float64(attempt)))
	jit := time.Duration(e.jitter() * float64(time.Second))
	return e.BaseDelay*exp + jit
}

// sleepCtx blocks for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
