package model

import "fmt"

// ChunkMetadata carries provenance for one chunk. WordCount refers to the
// full source document, not the chunk itself. ChunkIndex values for a given
// filename are contiguous from 0 in emission order.
type ChunkMetadata struct {
	Filename      string   `json:"filename"`
	FileType      FileType `json:"file_type"`
	DateProcessed string   `json:"date_processed"`
	WordCount     int      `json:"word_count"`
	ChunkIndex    int      `json:"chunk_index"`
}

// Chunk is one bounded text segment of a document plus its metadata.
// Chunks are created per indexing pass and never mutated afterwards.
type Chunk struct {
	Text     string        `json:"text"`
	Metadata ChunkMetadata `json:"metadata"`
}

// ID is the chunk's storage identity. Re-indexing the same file overwrites
// prior chunks at the same indices.
func (c Chunk) ID() string {
	return fmt.Sprintf("%s_%d", c.Metadata.Filename, c.Metadata.ChunkIndex)
}
