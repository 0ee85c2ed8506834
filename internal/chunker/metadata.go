package chunker

import (
	"strings"
	"time"

	"github.com/jobforge/jobforge/internal/model"
)

// ExtractMetadata builds the metadata template shared by all chunks of a
// document. ChunkIndex is filled in later by the builder. WordCount counts
// whitespace-separated tokens of the full document content.
func ExtractMetadata(doc model.Document) model.ChunkMetadata {
	filename := doc.Filename
	if filename == "" {
		filename = "unknown"
	}
	fileType := doc.FileType
	if fileType == "" {
		fileType = model.FileTypeUnknown
	}
	return model.ChunkMetadata{
		Filename:      filename,
		FileType:      fileType,
		DateProcessed: time.Now().Format(time.RFC3339),
		WordCount:     len(strings.Fields(doc.Content)),
	}
}
