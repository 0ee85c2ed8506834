package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	DefaultTargetSize = 500
	DefaultOverlap    = 50
)

var (
	newlineRun = regexp.MustCompile(`\n+`)
	disallowed = regexp.MustCompile(`[^a-zA-Z0-9\s.,!?'-]`)
	spaceRun   = regexp.MustCompile(`\s+`)
)

// Clean normalizes raw extracted text: newline runs become a single space,
// characters outside letters/digits/whitespace/.,!?'- are stripped, and
// whitespace runs collapse to one space.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = newlineRun.ReplaceAllString(text, " ")
	text = disallowed.ReplaceAllString(text, "")
	text = spaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Chunk splits text into segments of roughly targetSize characters,
// respecting sentence boundaries and carrying up to overlap characters of
// trailing sentences into the next segment. A single sentence longer than
// targetSize is emitted whole rather than split; the chunker never drops or
// fabricates content. Deterministic for a given input and parameters.
func Chunk(text string, targetSize, overlap int) []string {
	if text == "" {
		return nil
	}
	if targetSize <= 0 {
		targetSize = DefaultTargetSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= targetSize {
		overlap = targetSize - 1
	}

	sentences := splitSentences(text)
	var chunks []string
	var current []string
	currentLen := 0

	for _, sentence := range sentences {
		n := len(sentence)
		if currentLen+n > targetSize && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			// Seed the next segment with trailing sentences that fit
			// strictly under the overlap budget.
			var seed []string
			seedLen := 0
			for i := len(current) - 1; i >= 0; i-- {
				if seedLen+len(current[i]) >= overlap {
					break
				}
				seed = append([]string{current[i]}, seed...)
				seedLen += len(current[i])
			}
			current = seed
			currentLen = seedLen
		}
		current = append(current, sentence)
		currentLen += n
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

// splitSentences splits after `.`, `!` or `?` followed by whitespace.
// A trailing run without terminal punctuation is still a sentence unit.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '.' || r == '!' || r == '?' {
			j := i + size
			if j < len(text) && isSpace(text[j]) {
				sentences = append(sentences, text[start:j])
				for j < len(text) && isSpace(text[j]) {
					j++
				}
				start = j
				i = j
				continue
			}
		}
		i += size
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
