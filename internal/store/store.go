// Package store persists indexed passages. A passage is the stored triple
// (id, text, metadata) plus its embedding vector, grouped into named
// collections that survive process restarts.
package store

import (
	"context"
	"fmt"
	"math"

	"github.com/jobforge/jobforge/internal/config"
	"github.com/jobforge/jobforge/internal/model"
)

// Record is one passage to persist. Upserting an existing id replaces the
// full tuple; there is never a merge of old and new fields.
type Record struct {
	ID        string
	Text      string
	Metadata  model.ChunkMetadata
	Embedding []float32
}

type Store interface {
	// EnsureCollection get-or-creates a named collection. Idempotent,
	// never destroys existing data.
	EnsureCollection(ctx context.Context, name string) error
	Upsert(ctx context.Context, collection string, records []Record) error
	// Query returns up to limit nearest passages by ascending cosine
	// distance to the given vector.
	Query(ctx context.Context, collection string, vector []float32, limit int) ([]model.SearchResult, error)
	Count(ctx context.Context, collection string) (int64, error)
	// DropCollection removes the collection and its passages. A missing
	// collection is not an error.
	DropCollection(ctx context.Context, name string) error
	Close() error
}

func New(cfg config.StoreConfig) (Store, error) {
	switch cfg.Type {
	case "sqlite":
		return OpenSQLite(cfg.Path)
	case "postgres":
		return OpenPostgres(cfg.DSN, cfg.Dimension)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.Type)
	}
}

// cosineDistance is 1 - cosine similarity; 1 for degenerate vectors.
func cosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
