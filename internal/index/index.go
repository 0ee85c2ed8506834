// Package index ties the embedding collaborator to the passage store and
// owns the lifecycle of one named collection.
package index

import (
	"context"
	"fmt"
	"sync"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/jobforge/jobforge/internal/ai"
	"github.com/jobforge/jobforge/internal/model"
	"github.com/jobforge/jobforge/internal/store"
)

const (
	taskTypeDocument = "RETRIEVAL_DOCUMENT"
	taskTypeQuery    = "RETRIEVAL_QUERY"
)

type VectorIndex struct {
	embedder   ai.IEmbedder
	store      store.Store
	collection string

	// Reset must not interleave with searches or upserts; everything
	// else may proceed concurrently.
	mu sync.RWMutex
}

func New(embedder ai.IEmbedder, s store.Store, collection string) *VectorIndex {
	return &VectorIndex{embedder: embedder, store: s, collection: collection}
}

func (x *VectorIndex) Collection() string {
	return x.collection
}

// Initialize get-or-creates the collection. Safe to call repeatedly.
func (x *VectorIndex) Initialize(ctx context.Context) error {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if err := x.store.EnsureCollection(ctx, x.collection); err != nil {
		return fmt.Errorf("ensure collection %s: %w", x.collection, err)
	}
	return nil
}

// Upsert embeds all chunk texts in one batch call and writes the full
// tuples keyed by chunk id. An embedding failure aborts the whole call
// before anything is written; there are no partial upserts.
func (x *VectorIndex) Upsert(ctx context.Context, chunks []model.Chunk) error {
	x.mu.RLock()
	defer x.mu.RUnlock()
	logger := logutil.GetLogger(ctx).With(zap.String("collection", x.collection))
	if len(chunks) == 0 {
		logger.Warn("no chunks to upsert")
		return nil
	}
	texts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		texts = append(texts, c.Text)
	}
	vectors, err := x.embedder.EmbedBatch(ctx, texts, taskTypeDocument)
	if err != nil {
		return fmt.Errorf("embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}
	records := make([]store.Record, 0, len(chunks))
	for i, c := range chunks {
		records = append(records, store.Record{
			ID:        c.ID(),
			Text:      c.Text,
			Metadata:  c.Metadata,
			Embedding: vectors[i],
		})
	}
	if err := x.store.Upsert(ctx, x.collection, records); err != nil {
		return fmt.Errorf("upsert passages: %w", err)
	}
	logger.Info("passages upserted", zap.Int("count", len(records)))
	return nil
}

// Search embeds the query and returns the limit nearest passages, best
// match first. An empty collection yields an empty result and no error; an
// embedding or store failure is returned as an error so callers can tell
// "nothing indexed" from "retrieval broke".
func (x *VectorIndex) Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	vector, err := x.embedder.Embed(ctx, query, taskTypeQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	results, err := x.store.Query(ctx, x.collection, vector, limit)
	if err != nil {
		return nil, fmt.Errorf("query passages: %w", err)
	}
	return results, nil
}

// Reset drops the collection and recreates it empty. Serialized against
// all other index operations; a missing collection is not an error.
func (x *VectorIndex) Reset(ctx context.Context) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	logger := logutil.GetLogger(ctx).With(zap.String("collection", x.collection))
	if err := x.store.DropCollection(ctx, x.collection); err != nil {
		logger.Warn("drop collection failed, recreating anyway", zap.Error(err))
	}
	if err := x.store.EnsureCollection(ctx, x.collection); err != nil {
		return fmt.Errorf("recreate collection %s: %w", x.collection, err)
	}
	logger.Info("collection reset")
	return nil
}

func (x *VectorIndex) Count(ctx context.Context) (int64, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.store.Count(ctx, x.collection)
}
