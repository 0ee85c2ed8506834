package service

import (
	"context"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/jobforge/jobforge/internal/model"
)

// NoContextFound is returned when retrieval yields nothing, so prompt
// rendering never sees blank context.
const NoContextFound = "No relevant background information available."

// Searcher is the slice of the vector index the retriever needs.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error)
}

// Retriever turns a text query into a context block for prompt templates.
type Retriever struct {
	index Searcher
}

func NewRetriever(index Searcher) *Retriever {
	return &Retriever{index: index}
}

// Search exposes the raw scored results, distance ascending.
func (r *Retriever) Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error) {
	return r.index.Search(ctx, query, limit)
}

// Context retrieves the top passages for query and joins them with blank
// lines, preserving distance order. Retrieval failures and empty results
// both degrade to the sentinel string.
func (r *Retriever) Context(ctx context.Context, query string, limit int) string {
	results, err := r.index.Search(ctx, query, limit)
	if err != nil {
		logutil.GetLogger(ctx).Error("context retrieval failed", zap.Error(err))
		return NoContextFound
	}
	if len(results) == 0 {
		return NoContextFound
	}
	texts := make([]string, 0, len(results))
	for _, res := range results {
		texts = append(texts, res.Text)
	}
	return strings.Join(texts, "\n\n")
}
