package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/auditlens/soc-extract/internal/pdftext"
)

var _ TextSource = (*DirSource)(nil)

// DirSource reads PDFs from a local directory (non-recursive, hidden files
// skipped), in directory-listing order.
type DirSource struct {
	Dir       string
	Extractor *pdftext.Extractor
	Logger    *slog.Logger
}

func NewDirSource(dir string, ex *pdftext.Extractor, logger *slog.Logger) *DirSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirSource{Dir: dir, Extractor: ex, Logger: logger}
}

func (s *DirSource) List(_ context.Context) ([]Handle, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", s.Dir, err)
	}

	var handles []Handle
	for _, e := range entries {
		if e.IsDir() || isHidden(e.Name()) || !isPDF(e.Name()) {
			continue
		}
		handles = append(handles, Handle{
			Name: e.Name(),
			Path: filepath.Join(s.Dir, e.Name()),
		})
	}
	s.Logger.Info("source.dir.listed", "dir", s.Dir, "files", len(handles))
	return handles, nil
}

func (s *DirSource) Text(ctx context.Context, h Handle) (string, error) {
	res, err := s.Extractor.Extract(ctx, h.Path)
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w", h.Name, err)
	}
	return res.Text, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func isPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
