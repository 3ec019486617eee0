// Package docai is the managed document-processing backend: it submits
// GCS-resident PDFs to a Document AI processor in bounded batches and turns
// the entity output into records.
package docai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	documentai "cloud.google.com/go/documentai/apiv1beta3"
	"cloud.google.com/go/documentai/apiv1beta3/documentaipb"
	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

type Config struct {
	ProjectID    string
	Location     string // e.g. "us"; selects the regional endpoint
	ProcessorID  string
	Bucket       string
	InputPrefix  string
	OutputPrefix string
	BatchLimit   int    // PDFs per batch request, default 20
	FieldMask    string // comma-separated document fields, default "text,entities"
}

type Extractor struct {
	cfg     Config
	client  *documentai.DocumentProcessorClient
	storage *storage.Client
	logger  *slog.Logger
}

func NewExtractor(ctx context.Context, cfg Config, logger *slog.Logger) (*Extractor, error) {
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = 20
	}
	if cfg.FieldMask == "" {
		cfg.FieldMask = "text,entities"
	}
	if logger == nil {
		logger = slog.Default()
	}

	endpoint := fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.Location)
	client, err := documentai.NewDocumentProcessorClient(ctx, option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("documentai client: %w", err)
	}
	sc, err := storage.NewClient(ctx)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("storage client: %w", err)
	}

	return &Extractor{cfg: cfg, client: client, storage: sc, logger: logger}, nil
}

func (e *Extractor) Close() error {
	err := e.client.Close()
	if serr := e.storage.Close(); err == nil {
		err = serr
	}
	return err
}

// SubmitBatches lists the input-prefix PDFs and runs one batch-process
// operation per chunk of BatchLimit files, waiting for each to complete.
func (e *Extractor) SubmitBatches(ctx context.Context) error {
	uris, err := e.listInputURIs(ctx)
	if err != nil {
		return err
	}
	e.logger.Info("docai.batch.found_files", "count", len(uris), "batch_limit", e.cfg.BatchLimit)

	processor := fmt.Sprintf("projects/%s/locations/%s/processors/%s",
		e.cfg.ProjectID, e.cfg.Location, e.cfg.ProcessorID)

	for i := 0; i < len(uris); i += e.cfg.BatchLimit {
		chunk := uris[i:min(i+e.cfg.BatchLimit, len(uris))]

		docs := make([]*documentaipb.GcsDocument, 0, len(chunk))
		for _, uri := range chunk {
			docs = append(docs, &documentaipb.GcsDocument{
				GcsUri:   uri,
				MimeType: "application/pdf",
			})
		}

		req := &documentaipb.BatchProcessRequest{
			Name: processor,
			InputDocuments: &documentaipb.BatchDocumentsInputConfig{
				Source: &documentaipb.BatchDocumentsInputConfig_GcsDocuments{
					GcsDocuments: &documentaipb.GcsDocuments{Documents: docs},
				},
			},
			DocumentOutputConfig: &documentaipb.DocumentOutputConfig{
				Destination: &documentaipb.DocumentOutputConfig_GcsOutputConfig_{
					GcsOutputConfig: &documentaipb.DocumentOutputConfig_GcsOutputConfig{
						GcsUri: fmt.Sprintf("gs://%s/%s", e.cfg.Bucket, e.cfg.OutputPrefix),
						FieldMask: &fieldmaskpb.FieldMask{
							Paths: strings.Split(e.cfg.FieldMask, ","),
						},
					},
				},
			},
		}

		op, err := e.client.BatchProcessDocuments(ctx, req)
		if err != nil {
			return fmt.Errorf("batch process request: %w", err)
		}
		e.logger.Info("docai.batch.waiting", "operation", op.Name(), "files", len(chunk))
		if _, err := op.Wait(ctx); err != nil {
			return fmt.Errorf("batch operation %s: %w", op.Name(), err)
		}
		e.logger.Info("docai.batch.done", "batch", i/e.cfg.BatchLimit+1)
	}
	return nil
}

func (e *Extractor) listInputURIs(ctx context.Context) ([]string, error) {
	it := e.storage.Bucket(e.cfg.Bucket).Objects(ctx, &storage.Query{Prefix: e.cfg.InputPrefix})

	var uris []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list gs://%s/%s: %w", e.cfg.Bucket, e.cfg.InputPrefix, err)
		}
		if strings.HasSuffix(attrs.Name, "/") || !strings.HasSuffix(strings.ToLower(attrs.Name), ".pdf") {
			continue
		}
		uris = append(uris, fmt.Sprintf("gs://%s/%s", e.cfg.Bucket, attrs.Name))
	}
	return uris, nil
}
