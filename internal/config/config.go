package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port        int              `json:"port"`
	LogConfig   logger.LogConfig `json:"log_config"`
	Source      SourceConfig     `json:"source"`
	Store       StoreConfig      `json:"store"`
	AI          AIConfig         `json:"ai"`
	Chunk       ChunkConfig      `json:"chunk"`
	EmbedCache  EmbedCacheConfig `json:"embed_cache"`
	ReindexSpec string           `json:"reindex_spec"`
	CORSOrigins []string         `json:"cors_origins"`
}

// SourceConfig selects where career documents are read from.
type SourceConfig struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// StoreConfig selects the passage store backend. Path is the sqlite file
// location; DSN and Dimension apply to the postgres backend.
type StoreConfig struct {
	Type       string `json:"type"`
	Path       string `json:"path"`
	Collection string `json:"collection"`
	DSN        string `json:"dsn"`
	Dimension  int    `json:"dimension"`
}

type AIConfig struct {
	Provider   string      `json:"provider"`
	Model      string      `json:"model"`
	EmbedModel string      `json:"embed_model"`
	Timeout    int         `json:"timeout"`
	Data       interface{} `json:"data"`
}

type ChunkConfig struct {
	TargetSize int `json:"target_size"`
	Overlap    int `json:"overlap"`
}

type EmbedCacheConfig struct {
	Size       int `json:"size"`
	TTLMinutes int `json:"ttl_minutes"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.AI.Provider == "" {
		return nil, fmt.Errorf("ai.provider is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 8380
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.Source.Type == "" {
		cfg.Source.Type = "local"
	}
	switch cfg.Store.Type {
	case "", "sqlite":
		cfg.Store.Type = "sqlite"
		if cfg.Store.Path == "" {
			cfg.Store.Path = "data/jobforge.db"
		}
	case "postgres":
		if cfg.Store.DSN == "" {
			return nil, fmt.Errorf("store.dsn is required for postgres store")
		}
		if cfg.Store.Dimension == 0 {
			cfg.Store.Dimension = 1536
		}
	default:
		return nil, fmt.Errorf("store.type must be sqlite or postgres")
	}
	if cfg.Store.Collection == "" {
		cfg.Store.Collection = "job_assistant"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gpt-4o-mini"
	}
	if cfg.AI.EmbedModel == "" {
		cfg.AI.EmbedModel = "text-embedding-3-small"
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 120
	}
	if cfg.Chunk.TargetSize == 0 {
		cfg.Chunk.TargetSize = 500
	}
	if cfg.Chunk.Overlap == 0 {
		cfg.Chunk.Overlap = 50
	}
	if cfg.EmbedCache.Size == 0 {
		cfg.EmbedCache.Size = 4096
	}
	if cfg.EmbedCache.TTLMinutes == 0 {
		cfg.EmbedCache.TTLMinutes = 120
	}
	return &cfg, nil
}
