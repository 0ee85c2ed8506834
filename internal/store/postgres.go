package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"github.com/jobforge/jobforge/internal/model"
)

// postgresStore backs passages with a pgvector column so nearest-neighbor
// ordering happens in the database. All vectors in a deployment share one
// fixed dimension.
type postgresStore struct {
	db        *sqlx.DB
	dimension int
}

func OpenPostgres(dsn string, dimension int) (Store, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("postgres store requires a positive vector dimension")
	}
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, err
	}
	schema := fmt.Sprintf(`
		CREATE EXTENSION IF NOT EXISTS vector;
		CREATE TABLE IF NOT EXISTS collections (
			name TEXT PRIMARY KEY,
			ctime BIGINT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS passages (
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			content TEXT NOT NULL,
			metadata JSONB NOT NULL,
			embedding vector(%d) NOT NULL,
			mtime BIGINT NOT NULL,
			PRIMARY KEY (collection, id)
		);
	`, dimension)
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &postgresStore{db: db, dimension: dimension}, nil
}

func (s *postgresStore) EnsureCollection(ctx context.Context, name string) error {
	const query = `INSERT INTO collections (name, ctime) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`
	_, err := s.db.ExecContext(ctx, query, name, time.Now().UnixMilli())
	return err
}

func (s *postgresStore) Upsert(ctx context.Context, collection string, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	const query = `
		INSERT INTO passages (collection, id, content, metadata, embedding, mtime)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (collection, id) DO UPDATE SET
			content = EXCLUDED.content,
			metadata = EXCLUDED.metadata,
			embedding = EXCLUDED.embedding,
			mtime = EXCLUDED.mtime
	`
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	now := time.Now().UnixMilli()
	for _, rec := range records {
		if len(rec.Embedding) != s.dimension {
			return fmt.Errorf("embedding for %s has dimension %d, store expects %d", rec.ID, len(rec.Embedding), s.dimension)
		}
		metaBlob, err := json.Marshal(rec.Metadata)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, collection, rec.ID, rec.Text, metaBlob, pgvector.NewVector(rec.Embedding), now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *postgresStore) Query(ctx context.Context, collection string, vector []float32, limit int) ([]model.SearchResult, error) {
	if limit <= 0 {
		return nil, nil
	}
	const query = `
		SELECT id, content, metadata, embedding <=> $1 AS distance
		FROM passages
		WHERE collection = $2
		ORDER BY distance
		LIMIT $3
	`
	rows, err := s.db.QueryContext(ctx, query, pgvector.NewVector(vector), collection, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.SearchResult
	for rows.Next() {
		var item model.SearchResult
		var metaBlob []byte
		var distance float64
		if err := rows.Scan(&item.ID, &item.Text, &metaBlob, &distance); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(metaBlob, &item.Metadata); err != nil {
			return nil, err
		}
		item.Distance = &distance
		results = append(results, item)
	}
	return results, rows.Err()
}

func (s *postgresStore) Count(ctx context.Context, collection string) (int64, error) {
	const query = `SELECT COUNT(*) FROM passages WHERE collection = $1`
	var count int64
	if err := s.db.QueryRowContext(ctx, query, collection).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *postgresStore) DropCollection(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM passages WHERE collection = $1`, name); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE name = $1`, name)
	return err
}

func (s *postgresStore) Close() error {
	return s.db.Close()
}
