package chunker

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/jobforge/jobforge/internal/model"
)

// Builder turns an extracted document into an ordered, uniquely indexed
// chunk set ready for embedding.
type Builder struct {
	targetSize int
	overlap    int
}

func NewBuilder(targetSize, overlap int) *Builder {
	if targetSize <= 0 {
		targetSize = DefaultTargetSize
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}
	return &Builder{targetSize: targetSize, overlap: overlap}
}

// Build cleans the document content, derives metadata and emits chunks in
// document order with contiguous 0-based chunk indices. A document with no
// content yields no chunks; that is a skip, not an error.
func (b *Builder) Build(ctx context.Context, doc model.Document) []model.Chunk {
	logger := logutil.GetLogger(ctx).With(zap.String("filename", doc.Filename))
	if doc.Content == "" {
		logger.Warn("document has no content, skipping")
		return nil
	}
	cleaned := Clean(doc.Content)
	meta := ExtractMetadata(doc)
	segments := Chunk(cleaned, b.targetSize, b.overlap)
	chunks := make([]model.Chunk, 0, len(segments))
	for i, segment := range segments {
		m := meta
		m.ChunkIndex = i
		chunks = append(chunks, model.Chunk{Text: segment, Metadata: m})
	}
	logger.Info("document chunked", zap.Int("chunks", len(chunks)))
	return chunks
}
