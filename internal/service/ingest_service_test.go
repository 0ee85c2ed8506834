package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobforge/jobforge/internal/chunker"
	"github.com/jobforge/jobforge/internal/config"
	"github.com/jobforge/jobforge/internal/model"
	"github.com/jobforge/jobforge/internal/source"
)

type stubIndexer struct {
	chunks   []model.Chunk
	failFile string
	resets   int
}

func (s *stubIndexer) Upsert(_ context.Context, chunks []model.Chunk) error {
	if s.failFile != "" {
		for _, c := range chunks {
			if c.Metadata.Filename == s.failFile {
				return errStub
			}
		}
	}
	s.chunks = append(s.chunks, chunks...)
	return nil
}

func (s *stubIndexer) Reset(_ context.Context) error {
	s.resets++
	s.chunks = nil
	return nil
}

func (s *stubIndexer) Count(_ context.Context) (int64, error) {
	return int64(len(s.chunks)), nil
}

func newTestIngest(t *testing.T, files map[string]string, idx *stubIndexer) *IngestService {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	src, err := source.New(context.Background(), config.SourceConfig{
		Type: "local",
		Data: map[string]interface{}{"dir": dir},
	})
	require.NoError(t, err)
	return NewIngestService(src, chunker.NewBuilder(500, 50), idx)
}

func TestIngestIndexesSupportedFiles(t *testing.T) {
	idx := &stubIndexer{}
	svc := newTestIngest(t, map[string]string{
		"resume.txt": "Led the migration of a monolith to Go services. Reduced latency by 40%.",
		"notes.md":   "## Projects\n\nBuilt an internal deploy tool used by 30 engineers.",
		"photo.png":  "binary junk",
	}, idx)

	summary, err := svc.Ingest(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, summary.FilesSeen)
	require.Equal(t, 2, summary.DocsIndexed)
	require.Equal(t, []string{"photo.png"}, summary.Skipped)
	require.Equal(t, summary.ChunksStored, len(idx.chunks))
	require.NotEmpty(t, idx.chunks)
}

func TestIngestIsolatesFailingFile(t *testing.T) {
	idx := &stubIndexer{failFile: "bad.txt"}
	svc := newTestIngest(t, map[string]string{
		"good.txt": "Shipped a search feature with measurable adoption.",
		"bad.txt":  "This file fails at the index layer.",
	}, idx)

	summary, err := svc.Ingest(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, summary.DocsIndexed)
	require.Equal(t, []string{"bad.txt"}, summary.Skipped)
}

func TestIngestSkipsEmptyDocuments(t *testing.T) {
	idx := &stubIndexer{}
	svc := newTestIngest(t, map[string]string{"empty.txt": "   "}, idx)

	summary, err := svc.Ingest(context.Background())
	require.NoError(t, err)
	require.Zero(t, summary.DocsIndexed)
	require.Equal(t, []string{"empty.txt"}, summary.Skipped)
}

func TestReindexResetsBeforeIngest(t *testing.T) {
	idx := &stubIndexer{}
	svc := newTestIngest(t, map[string]string{
		"resume.txt": "A short but indexable resume line.",
	}, idx)

	summary, err := svc.Reindex(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, idx.resets)
	require.Equal(t, 1, summary.DocsIndexed)
}
