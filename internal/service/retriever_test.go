package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobforge/jobforge/internal/model"
)

type stubSearcher struct {
	results   []model.SearchResult
	err       error
	lastQuery string
	lastLimit int
	calls     int
}

func (s *stubSearcher) Search(_ context.Context, query string, limit int) ([]model.SearchResult, error) {
	s.calls++
	s.lastQuery = query
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.results) {
		return s.results[:limit], nil
	}
	return s.results, nil
}

func TestRetrieverContextJoinsInOrder(t *testing.T) {
	searcher := &stubSearcher{results: []model.SearchResult{
		{ID: "a_0", Text: "first passage"},
		{ID: "a_1", Text: "second passage"},
	}}
	r := NewRetriever(searcher)

	got := r.Context(context.Background(), "backend role", 5)
	require.Equal(t, "first passage\n\nsecond passage", got)
	require.Equal(t, "backend role", searcher.lastQuery)
	require.Equal(t, 5, searcher.lastLimit)
}

func TestRetrieverContextEmptyReturnsSentinel(t *testing.T) {
	r := NewRetriever(&stubSearcher{})
	require.Equal(t, NoContextFound, r.Context(context.Background(), "anything", 3))
}

func TestRetrieverContextSearchErrorReturnsSentinel(t *testing.T) {
	r := NewRetriever(&stubSearcher{err: errors.New("embed failed")})
	require.Equal(t, NoContextFound, r.Context(context.Background(), "anything", 3))
}
