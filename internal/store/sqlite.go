package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/didi/gendry/builder"
	_ "modernc.org/sqlite"

	"github.com/jobforge/jobforge/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS collections (
	name TEXT PRIMARY KEY,
	ctime INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS passages (
	collection TEXT NOT NULL,
	id TEXT NOT NULL,
	content TEXT NOT NULL,
	metadata TEXT NOT NULL,
	embedding TEXT NOT NULL,
	mtime INTEGER NOT NULL,
	PRIMARY KEY (collection, id)
);
`

// sqliteStore keeps passages in a single local sqlite file. Similarity is
// computed in process over the collection's vectors; collections here are
// small (one person's career documents). Safe for single-process use.
type sqliteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) EnsureCollection(ctx context.Context, name string) error {
	const query = `INSERT OR IGNORE INTO collections (name, ctime) VALUES (?, ?)`
	_, err := s.db.ExecContext(ctx, query, name, time.Now().UnixMilli())
	return err
}

func (s *sqliteStore) Upsert(ctx context.Context, collection string, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	rows := make([]map[string]interface{}, 0, len(records))
	for _, rec := range records {
		metaBlob, err := json.Marshal(rec.Metadata)
		if err != nil {
			return err
		}
		embBlob, err := json.Marshal(rec.Embedding)
		if err != nil {
			return err
		}
		rows = append(rows, map[string]interface{}{
			"collection": collection,
			"id":         rec.ID,
			"content":    rec.Text,
			"metadata":   metaBlob,
			"embedding":  embBlob,
			"mtime":      now,
		})
	}
	sqlStr, args, err := builder.BuildInsert("passages", rows)
	if err != nil {
		return err
	}
	sqlStr = strings.Replace(sqlStr, "INSERT INTO", "INSERT OR REPLACE INTO", 1)
	_, err = s.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (s *sqliteStore) Query(ctx context.Context, collection string, vector []float32, limit int) ([]model.SearchResult, error) {
	if limit <= 0 {
		return nil, nil
	}
	where := map[string]interface{}{
		"collection": collection,
	}
	sqlStr, args, err := builder.BuildSelect("passages", where, []string{"id", "content", "metadata", "embedding"})
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.SearchResult
	for rows.Next() {
		var item model.SearchResult
		var metaBlob, embBlob []byte
		if err := rows.Scan(&item.ID, &item.Text, &metaBlob, &embBlob); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(metaBlob, &item.Metadata); err != nil {
			return nil, err
		}
		var embedding []float32
		if err := json.Unmarshal(embBlob, &embedding); err != nil {
			return nil, err
		}
		distance := cosineDistance(vector, embedding)
		item.Distance = &distance
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].Distance < *results[j].Distance
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *sqliteStore) Count(ctx context.Context, collection string) (int64, error) {
	const query = `SELECT COUNT(*) FROM passages WHERE collection = ?`
	var count int64
	if err := s.db.QueryRowContext(ctx, query, collection).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *sqliteStore) DropCollection(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM passages WHERE collection = ?`, name); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE name = ?`, name)
	return err
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
