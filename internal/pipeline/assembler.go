// Package pipeline coordinates per-document field extraction: text source,
// field extractor and normalizer, producing one record per readable document.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/auditlens/soc-extract/internal/catalog"
	"github.com/auditlens/soc-extract/internal/extract"
	"github.com/auditlens/soc-extract/internal/llm"
	"github.com/auditlens/soc-extract/internal/normalize"
	"github.com/auditlens/soc-extract/internal/record"
	"github.com/auditlens/soc-extract/internal/source"
)

type Assembler struct {
	Logger    *slog.Logger
	Extractor *extract.FieldExtractor
	Generator llm.Generator
	Catalog   catalog.Catalog
}

func NewAssembler(logger *slog.Logger, ex *extract.FieldExtractor, gen llm.Generator, cat catalog.Catalog) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{Logger: logger, Extractor: ex, Generator: gen, Catalog: cat}
}

// AssembleRecord extracts every catalog field from one document's text, in
// catalog order. Field-level failures land in the record as error-marker
// strings; they never abort the document. The file_name key is always set.
func (a *Assembler) AssembleRecord(ctx context.Context, docName, docText string) record.Record {
	rec := record.Record{record.FileNameKey: docName}
	for _, f := range a.Catalog.Fields {
		a.Logger.Info("pipeline.field.extract", "file", docName, "field", f.Name)
		raw := a.Extractor.Extract(ctx, a.Generator, f.Prompt, docText)
		if extract.IsErrorMarker(raw) {
			// The marker must stay visible in the record as-is; shape
			// normalization would split or misparse it.
			a.Logger.Warn("pipeline.field.failed", "file", docName, "field", f.Name, "marker", raw)
			rec[f.Name] = raw
			continue
		}
		rec[f.Name] = normalize.Normalize(f.Name, raw, f.Shape, a.Logger)
	}
	return rec
}

// Run processes every document from src sequentially, one record per
// document whose text could be read. A document whose text extraction fails
// is skipped entirely — no partial record — and the run continues.
func (a *Assembler) Run(ctx context.Context, src source.TextSource) (record.ResultSet, error) {
	handles, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	var results record.ResultSet
	for _, h := range handles {
		text, err := src.Text(ctx, h)
		if err != nil {
			a.Logger.Error("pipeline.document.skipped", "file", h.Name, "error", err)
			continue
		}
		a.Logger.Info("pipeline.document.start", "file", h.Name, "text_bytes", len(text), "fields", a.Catalog.Len())
		results = append(results, a.AssembleRecord(ctx, h.Name, text))
		a.Logger.Info("pipeline.document.done", "file", h.Name)
	}

	a.Logger.Info("pipeline.run.done", "documents", len(handles), "records", len(results))
	return results, nil
}
