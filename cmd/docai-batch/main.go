// Command docai-batch runs the Document AI backend: batch OCR/entity
// extraction over GCS-resident PDFs, then parses the processor output into
// a JSONL of per-document entity records.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/auditlens/soc-extract/internal/docai"
	"github.com/auditlens/soc-extract/internal/export"
)

func main() {
	var (
		project      = flag.String("project", "", "Google Cloud project ID (required)")
		location     = flag.String("location", "us", "Document AI location")
		processor    = flag.String("processor", "", "Document AI processor ID (required)")
		bucket       = flag.String("bucket", "", "GCS bucket name (required)")
		inputPrefix  = flag.String("input-prefix", "", "input prefix for documents in GCS (required)")
		outputPrefix = flag.String("output-prefix", "", "output prefix for processed documents in GCS (required)")
		batchLimit   = flag.Int("batch-limit", 20, "number of files per batch request")
		fieldMask    = flag.String("field-mask", "", "field mask for output documents")
		outJSONL     = flag.String("out-jsonl", "docai_output.jsonl", "output JSONL file path")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	for name, v := range map[string]string{
		"-project":       *project,
		"-processor":     *processor,
		"-bucket":        *bucket,
		"-input-prefix":  *inputPrefix,
		"-output-prefix": *outputPrefix,
	} {
		if v == "" {
			fatalf("%s is required", name)
		}
	}

	ctx := context.Background()

	ex, err := docai.NewExtractor(ctx, docai.Config{
		ProjectID:    *project,
		Location:     *location,
		ProcessorID:  *processor,
		Bucket:       *bucket,
		InputPrefix:  *inputPrefix,
		OutputPrefix: *outputPrefix,
		BatchLimit:   *batchLimit,
		FieldMask:    *fieldMask,
	}, logger)
	if err != nil {
		fatalf("init: %v", err)
	}
	defer func() { _ = ex.Close() }()

	logger.Info("docai.run.start")
	if err := ex.SubmitBatches(ctx); err != nil {
		fatalf("batch processing: %v", err)
	}
	logger.Info("docai.run.batches_done")

	results, err := ex.ParseResults(ctx)
	if err != nil {
		fatalf("parse results: %v", err)
	}
	logger.Info("docai.run.parsed", "records", len(results))

	f, err := os.Create(*outJSONL)
	if err != nil {
		fatalf("create %s: %v", *outJSONL, err)
	}
	if err := export.WriteJSONL(f, results); err != nil {
		_ = f.Close()
		fatalf("write %s: %v", *outJSONL, err)
	}
	if err := f.Close(); err != nil {
		fatalf("close %s: %v", *outJSONL, err)
	}
	logger.Info("docai.run.done", "out", *outJSONL)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "docai-batch: "+format+"\n", args...)
	os.Exit(1)
}
