package docai

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/documentai/apiv1beta3/documentaipb"
	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/auditlens/soc-extract/internal/record"
)

// ParseResults reads the processor's output JSONs under the output prefix and
// builds one record per document: entity type -> trimmed mention text, plus
// the file_name key.
func (e *Extractor) ParseResults(ctx context.Context) (record.ResultSet, error) {
	it := e.storage.Bucket(e.cfg.Bucket).Objects(ctx, &storage.Query{Prefix: e.cfg.OutputPrefix})

	var results record.ResultSet
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list gs://%s/%s: %w", e.cfg.Bucket, e.cfg.OutputPrefix, err)
		}
		if !strings.HasSuffix(attrs.Name, ".json") {
			continue
		}

		e.logger.Info("docai.parse.output", "object", attrs.Name)
		data, err := e.readObject(ctx, attrs.Name)
		if err != nil {
			return nil, err
		}

		rec, err := recordFromDocument(path.Base(attrs.Name), data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", attrs.Name, err)
		}
		results = append(results, rec)
	}
	return results, nil
}

func (e *Extractor) readObject(ctx context.Context, name string) ([]byte, error) {
	r, err := e.storage.Bucket(e.cfg.Bucket).Object(name).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open gs://%s/%s: %w", e.cfg.Bucket, name, err)
	}
	defer func() { _ = r.Close() }()
	return io.ReadAll(r)
}

// recordFromDocument decodes one Document AI output JSON. Unknown fields are
// discarded: the output carries more than the entity fields we asked for.
func recordFromDocument(fileName string, data []byte) (record.Record, error) {
	var doc documentaipb.Document
	um := protojson.UnmarshalOptions{DiscardUnknown: true}
	if err := um.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	rec := record.Record{record.FileNameKey: fileName}
	for _, ent := range doc.GetEntities() {
		rec[ent.GetType()] = strings.TrimSpace(ent.GetMentionText())
	}
	return rec, nil
}
