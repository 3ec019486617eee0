package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/auditlens/soc-extract/internal/pdftext"
)

var _ TextSource = (*GCSSource)(nil)

// GCSSource lists PDFs under gs://<bucket>/<prefix>, downloading each to a
// temp file for text extraction. The temp file is removed once read.
type GCSSource struct {
	Bucket    string
	Prefix    string
	Client    *storage.Client
	Extractor *pdftext.Extractor
	Logger    *slog.Logger
}

func NewGCSSource(ctx context.Context, bucket, prefix string, ex *pdftext.Extractor, logger *slog.Logger) (*GCSSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	return &GCSSource{
		Bucket:    bucket,
		Prefix:    prefix,
		Client:    client,
		Extractor: ex,
		Logger:    logger,
	}, nil
}

func (s *GCSSource) List(ctx context.Context) ([]Handle, error) {
	it := s.Client.Bucket(s.Bucket).Objects(ctx, &storage.Query{Prefix: s.Prefix})

	var handles []Handle
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list gs://%s/%s: %w", s.Bucket, s.Prefix, err)
		}
		if strings.HasSuffix(attrs.Name, "/") || !isPDF(attrs.Name) {
			continue
		}
		handles = append(handles, Handle{
			Name: path.Base(attrs.Name),
			Path: attrs.Name,
		})
	}
	s.Logger.Info("source.gcs.listed", "bucket", s.Bucket, "prefix", s.Prefix, "files", len(handles))
	return handles, nil
}

func (s *GCSSource) Text(ctx context.Context, h Handle) (string, error) {
	tmp, err := s.download(ctx, h)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(tmp); err != nil {
			s.Logger.Warn("source.gcs.tmp_remove_failed", "path", tmp, "error", err)
		}
	}()

	res, err := s.Extractor.Extract(ctx, tmp)
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w", h.Name, err)
	}
	return res.Text, nil
}

func (s *GCSSource) download(ctx context.Context, h Handle) (string, error) {
	r, err := s.Client.Bucket(s.Bucket).Object(h.Path).NewReader(ctx)
	if err != nil {
		return "", fmt.Errorf("open gs://%s/%s: %w", s.Bucket, h.Path, err)
	}
	defer func() { _ = r.Close() }()

	f, err := os.CreateTemp("", "soc-*.pdf")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("download gs://%s/%s: %w", s.Bucket, h.Path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
