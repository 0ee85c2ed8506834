package model

// SearchResult is one scored passage from a similarity query. Distance is
// nil when the backing store does not report one; results are ordered by
// ascending distance, best match first.
type SearchResult struct {
	ID       string        `json:"id"`
	Text     string        `json:"text"`
	Metadata ChunkMetadata `json:"metadata"`
	Distance *float64      `json:"distance"`
}
