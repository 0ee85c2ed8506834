package service

import (
	"context"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/jobforge/jobforge/internal/chunker"
	"github.com/jobforge/jobforge/internal/extract"
	"github.com/jobforge/jobforge/internal/model"
	"github.com/jobforge/jobforge/internal/source"
)

// Indexer is the slice of the vector index the ingest pipeline needs.
type Indexer interface {
	Upsert(ctx context.Context, chunks []model.Chunk) error
	Reset(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// IngestService walks a document source, extracts text, chunks it and
// upserts the chunks into the vector index. Failures are isolated per file;
// a bad document never aborts the pass.
type IngestService struct {
	src     source.Source
	builder *chunker.Builder
	index   Indexer
}

func NewIngestService(src source.Source, builder *chunker.Builder, index Indexer) *IngestService {
	return &IngestService{
		src:     src,
		builder: builder,
		index:   index,
	}
}

// Ingest processes every supported file in the source once. Re-running over
// unchanged files is a no-op at the store level since chunk ids are stable.
func (s *IngestService) Ingest(ctx context.Context) (*model.IngestSummary, error) {
	logger := logutil.GetLogger(ctx)
	names, err := s.src.List(ctx)
	if err != nil {
		return nil, err
	}
	summary := &model.IngestSummary{FilesSeen: len(names)}
	for _, name := range names {
		if !extract.Supported(name) {
			logger.Warn("skipping unsupported file", zap.String("file", name))
			summary.Skipped = append(summary.Skipped, name)
			continue
		}
		if err := s.ingestOne(ctx, name, summary); err != nil {
			logger.Error("failed to ingest file", zap.String("file", name), zap.Error(err))
			summary.Skipped = append(summary.Skipped, name)
		}
	}
	logger.Info("ingest pass finished",
		zap.Int("files_seen", summary.FilesSeen),
		zap.Int("docs_indexed", summary.DocsIndexed),
		zap.Int("chunks_stored", summary.ChunksStored),
		zap.Int("skipped", len(summary.Skipped)))
	return summary, nil
}

// Reindex drops the collection and runs a full ingest pass.
func (s *IngestService) Reindex(ctx context.Context) (*model.IngestSummary, error) {
	if err := s.index.Reset(ctx); err != nil {
		return nil, err
	}
	return s.Ingest(ctx)
}

func (s *IngestService) ingestOne(ctx context.Context, name string, summary *model.IngestSummary) error {
	data, err := s.src.Read(ctx, name)
	if err != nil {
		return err
	}
	doc := extract.Document(ctx, name, data)
	if strings.TrimSpace(doc.Content) == "" {
		summary.Skipped = append(summary.Skipped, name)
		return nil
	}
	chunks := s.builder.Build(ctx, doc)
	if len(chunks) == 0 {
		summary.Skipped = append(summary.Skipped, name)
		return nil
	}
	if err := s.index.Upsert(ctx, chunks); err != nil {
		return err
	}
	summary.DocsIndexed++
	summary.ChunksStored += len(chunks)
	return nil
}
