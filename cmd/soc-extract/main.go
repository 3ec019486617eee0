// Command soc-extract runs the per-field Gemini extraction pipeline over a
// directory or GCS prefix of SOC report PDFs and writes the results in the
// requested formats.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/auditlens/soc-extract/internal/catalog"
	"github.com/auditlens/soc-extract/internal/common"
	"github.com/auditlens/soc-extract/internal/export"
	"github.com/auditlens/soc-extract/internal/extract"
	"github.com/auditlens/soc-extract/internal/llm/gemini"
	"github.com/auditlens/soc-extract/internal/pdftext"
	"github.com/auditlens/soc-extract/internal/pipeline"
	"github.com/auditlens/soc-extract/internal/record"
	"github.com/auditlens/soc-extract/internal/source"
)

func main() {
	var (
		pdfDir     = flag.String("pdf-dir", "", "local directory containing PDF files")
		bucket     = flag.String("bucket", "", "GCS bucket name containing PDFs")
		prefix     = flag.String("prefix", "", "prefix/path in the GCS bucket")
		outCSV     = flag.String("out-csv", "", "output CSV file path")
		outJSONL   = flag.String("out-jsonl", "", "output JSONL file path")
		outJSON    = flag.String("out-json", "", "output pretty-JSON file path")
		outXLSX    = flag.String("out-xlsx", "", "output XLSX file path")
		catalogSel = flag.String("catalog", "", "catalog variant (soc-v1, soc-v2) or path to a catalog JSON file")
		model      = flag.String("model", "", "Gemini model name (overrides GEMINI_MODEL)")
		maxRetries = flag.Int("max-retries", 0, "maximum attempts per field call (overrides MAX_RETRIES)")
		retryDelay = flag.Duration("retry-delay", 0, "base retry delay, e.g. 3s (overrides RETRY_BASE_DELAY)")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *model != "" {
		cfg.Gemini.Model = *model
	}
	if *maxRetries > 0 {
		cfg.Retry.MaxRetries = *maxRetries
	}
	if *retryDelay > 0 {
		cfg.Retry.BaseDelay = *retryDelay
	}

	// Configuration faults are the only fatal class; everything downstream
	// degrades per field or per document instead.
	if err := cfg.Validate(); err != nil {
		fatalf("invalid configuration: %v", err)
	}
	if *pdfDir == "" && *bucket == "" {
		fatalf("one of -pdf-dir or -bucket is required")
	}
	if *pdfDir != "" && *bucket != "" {
		fatalf("-pdf-dir and -bucket are mutually exclusive")
	}
	if *outCSV == "" && *outJSONL == "" && *outJSON == "" && *outXLSX == "" {
		fatalf("at least one of -out-csv, -out-jsonl, -out-json, -out-xlsx is required")
	}

	cat, err := catalog.Select(*catalogSel)
	if err != nil {
		fatalf("load catalog: %v", err)
	}
	logger.Info("catalog.selected", "name", cat.Name, "fields", cat.Len())

	ctx := context.Background()

	gen, err := gemini.NewClient(ctx, gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	}, logger)
	if err != nil {
		fatalf("gemini client: %v", err)
	}

	texts := pdftext.NewExtractor(pdftext.Config{}, logger)

	var src source.TextSource
	if *pdfDir != "" {
		src = source.NewDirSource(*pdfDir, texts, logger)
	} else {
		src, err = source.NewGCSSource(ctx, *bucket, *prefix, texts, logger)
		if err != nil {
			fatalf("gcs source: %v", err)
		}
	}

	extractor := extract.NewFieldExtractor(cfg.Retry.MaxRetries, cfg.Retry.BaseDelay, logger)
	assembler := pipeline.NewAssembler(logger, extractor, gen, cat)

	start := time.Now()
	results, err := assembler.Run(ctx, src)
	if err != nil {
		fatalf("run pipeline: %v", err)
	}
	logger.Info("run.complete", "records", len(results), "elapsed", time.Since(start).Round(time.Second).String())

	type output struct {
		path  string
		write func(w io.Writer, rs record.ResultSet) error
	}
	outputs := []output{
		{*outCSV, export.WriteCSV},
		{*outJSONL, export.WriteJSONL},
		{*outJSON, export.WriteJSON},
		{*outXLSX, export.WriteXLSX},
	}
	for _, o := range outputs {
		if o.path == "" {
			continue
		}
		if err := writeFile(o.path, results, o.write); err != nil {
			fatalf("write %s: %v", o.path, err)
		}
		logger.Info("export.written", "path", o.path)
	}
}

func writeFile(path string, rs record.ResultSet, write func(io.Writer, record.ResultSet) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, rs); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "soc-extract: "+format+"\n", args...)
	os.Exit(1)
}
