package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobforge/jobforge/internal/model"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func rec(id, text string, vec ...float32) Record {
	return Record{
		ID:        id,
		Text:      text,
		Metadata:  model.ChunkMetadata{Filename: "doc.txt", FileType: model.FileTypeTXT},
		Embedding: vec,
	}
}

func TestSQLiteUpsertIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.EnsureCollection(ctx, "c"))

	records := []Record{
		rec("doc.txt_0", "first passage", 1, 0, 0),
		rec("doc.txt_1", "second passage", 0, 1, 0),
	}
	require.NoError(t, s.Upsert(ctx, "c", records))
	count, err := s.Count(ctx, "c")
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	// Same ids again: overwrite, not append.
	require.NoError(t, s.Upsert(ctx, "c", records))
	count, err = s.Count(ctx, "c")
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestSQLiteUpsertOverwritesTuple(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.EnsureCollection(ctx, "c"))

	require.NoError(t, s.Upsert(ctx, "c", []Record{rec("doc.txt_0", "old text", 1, 0)}))
	require.NoError(t, s.Upsert(ctx, "c", []Record{rec("doc.txt_0", "new text", 0, 1)}))

	results, err := s.Query(ctx, "c", []float32{0, 1}, 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "new text", results[0].Text)
}

func TestSQLiteQueryOrdersByDistance(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.EnsureCollection(ctx, "c"))

	require.NoError(t, s.Upsert(ctx, "c", []Record{
		rec("a_0", "exact match", 1, 0, 0),
		rec("a_1", "close match", 0.9, 0.1, 0),
		rec("a_2", "far match", 0, 0, 1),
	}))

	results, err := s.Query(ctx, "c", []float32{1, 0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, "exact match", results[0].Text)
	for i := 1; i < len(results); i++ {
		require.NotNil(t, results[i].Distance)
		require.GreaterOrEqual(t, *results[i].Distance, *results[i-1].Distance)
	}
}

func TestSQLiteQueryLimit(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.EnsureCollection(ctx, "c"))
	require.NoError(t, s.Upsert(ctx, "c", []Record{
		rec("a_0", "one", 1, 0),
		rec("a_1", "two", 0, 1),
		rec("a_2", "three", 1, 1),
	}))

	results, err := s.Query(ctx, "c", []float32{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestSQLiteDropCollection(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.EnsureCollection(ctx, "c"))
	require.NoError(t, s.Upsert(ctx, "c", []Record{rec("a_0", "one", 1, 0)}))

	require.NoError(t, s.DropCollection(ctx, "c"))
	count, err := s.Count(ctx, "c")
	require.NoError(t, err)
	require.EqualValues(t, 0, count)

	// Dropping a collection that does not exist is benign.
	require.NoError(t, s.DropCollection(ctx, "missing"))
}

func TestSQLiteCollectionsIsolated(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.EnsureCollection(ctx, "a"))
	require.NoError(t, s.EnsureCollection(ctx, "b"))
	require.NoError(t, s.Upsert(ctx, "a", []Record{rec("x_0", "only in a", 1, 0)}))

	count, err := s.Count(ctx, "b")
	require.NoError(t, err)
	require.EqualValues(t, 0, count)

	results, err := s.Query(ctx, "b", []float32{1, 0}, 5)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestCosineDistance(t *testing.T) {
	a := []float32{1, 0}
	require.InDelta(t, 0, cosineDistance(a, []float32{1, 0}), 1e-9)
	require.InDelta(t, 1, cosineDistance(a, []float32{0, 1}), 1e-9)
	require.InDelta(t, 2, cosineDistance(a, []float32{-1, 0}), 1e-9)
	// Degenerate inputs collapse to the maximum useful distance.
	require.InDelta(t, 1, cosineDistance(a, []float32{0, 0}), 1e-9)
	require.InDelta(t, 1, cosineDistance(a, []float32{1, 0, 0}), 1e-9)
}
