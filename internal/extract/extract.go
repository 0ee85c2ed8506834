// Package extract turns raw file bytes into plain-text Documents. One
// extractor is registered per file extension; formats without an extractor
// (or files that fail to parse) yield a Document with empty content, which
// downstream chunking skips. Extraction never fails an ingest pass.
package extract

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/jobforge/jobforge/internal/model"
)

// Func extracts plain text from one file's bytes.
type Func func(filename string, data []byte) (string, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Func{}
)

func Register(ext string, fn Func) {
	key := strings.ToLower(strings.TrimSpace(ext))
	if key == "" || fn == nil {
		return
	}
	registryMu.Lock()
	registry[key] = fn
	registryMu.Unlock()
}

// Supported reports whether an extractor is registered for the filename's
// extension.
func Supported(filename string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[strings.ToLower(filepath.Ext(filename))] != nil
}

// Document extracts filename's content. Unsupported formats and extraction
// failures are logged and produce empty content, never an error.
func Document(ctx context.Context, filename string, data []byte) model.Document {
	logger := logutil.GetLogger(ctx).With(zap.String("filename", filename))
	ext := strings.ToLower(filepath.Ext(filename))

	registryMu.RLock()
	fn := registry[ext]
	registryMu.RUnlock()
	if fn == nil {
		logger.Warn("unsupported file format")
		return model.Document{Filename: filename, FileType: model.FileTypeUnknown}
	}

	content, err := fn(filename, data)
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		content = ""
	}
	return model.Document{
		Content:  strings.TrimSpace(content),
		Filename: filename,
		FileType: model.FileTypeFromExt(ext),
	}
}
