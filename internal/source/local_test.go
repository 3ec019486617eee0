package source

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSourceListFiltersPDFs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "B.PDF", "notes.txt", ".hidden.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755))

	s := NewDirSource(dir, nil, slog.New(slog.DiscardHandler))
	handles, err := s.List(context.Background())
	require.NoError(t, err)

	var names []string
	for _, h := range handles {
		names = append(names, h.Name)
	}
	assert.ElementsMatch(t, []string{"a.pdf", "B.PDF"}, names)
	for _, h := range handles {
		assert.Equal(t, filepath.Join(dir, h.Name), h.Path)
	}
}

func TestDirSourceListMissingDir(t *testing.T) {
	s := NewDirSource("/no/such/dir", nil, slog.New(slog.DiscardHandler))
	_, err := s.List(context.Background())
	assert.Error(t, err)
}
