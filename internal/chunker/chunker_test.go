package chunker

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "newlines collapse to space",
			in:   "line one\n\n\nline two",
			want: "line one line two",
		},
		{
			name: "special characters stripped, punctuation kept",
			in:   "Hello\nWorld! It's 100% fine — ok?",
			want: "Hello World! It's 100 fine ok?",
		},
		{
			name: "whitespace runs collapse and trim",
			in:   "  a \t b   c  ",
			want: "a b c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestChunkEmptyInput(t *testing.T) {
	if got := Chunk("", 500, 50); got != nil {
		t.Errorf("Chunk(\"\") = %v, want nil", got)
	}
}

func TestChunkSingleShortText(t *testing.T) {
	got := Chunk("Just one short sentence.", 500, 50)
	if len(got) != 1 || got[0] != "Just one short sentence." {
		t.Errorf("unexpected chunks: %v", got)
	}
}

func TestChunkOversizedSentenceEmittedWhole(t *testing.T) {
	long := strings.Repeat("word ", 120) + "end."
	got := Chunk(long+" Short tail.", 100, 10)
	if len(got) < 2 {
		t.Fatalf("expected oversized sentence plus tail, got %v", got)
	}
	if got[0] != long {
		t.Errorf("oversized sentence was split or altered: %q", got[0])
	}
}

func TestChunkSizeBound(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 60; i++ {
		sb.WriteString("The quick brown fox jumps over the lazy dog. ")
	}
	sentenceLen := len("The quick brown fox jumps over the lazy dog.")
	chunks := Chunk(strings.TrimSpace(sb.String()), 500, 50)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 500+sentenceLen {
			t.Errorf("chunk %d exceeds size bound: %d chars", i, len(c))
		}
	}
}

func TestChunkOverlapReappears(t *testing.T) {
	sentences := []string{
		"Red fox runs.",
		"Blue owl sees.",
		"Green elk naps.",
		"Gray cat sits.",
		"Black dog digs.",
		"White hen pecks.",
	}
	chunks := Chunk(strings.Join(sentences, " "), 50, 30)
	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}
	for i := 1; i < len(chunks); i++ {
		ov := commonOverlap(chunks[i-1], chunks[i])
		if !strings.Contains(ov, ".") {
			t.Errorf("chunk %d does not lead with a full sentence from chunk %d:\nprev=%q\nnext=%q", i, i-1, chunks[i-1], chunks[i])
		}
	}
}

// commonOverlap returns the longest suffix of a that is also a prefix of b.
func commonOverlap(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for ; n > 0; n-- {
		if strings.HasSuffix(a, b[:n]) {
			return b[:n]
		}
	}
	return ""
}

func TestChunkOverlapCappedToTargetSize(t *testing.T) {
	text := "One sentence here. Another sentence there. A third one follows. And a fourth closes."
	// overlap >= target would otherwise never shrink the carried seed
	chunks := Chunk(text, 30, 30)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %v", chunks)
	}
}

func TestChunkDeterminism(t *testing.T) {
	text := "First point made. Second point follows. Third point lands. Fourth wraps up."
	a := Chunk(text, 40, 10)
	b := Chunk(text, 40, 10)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic chunk count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestChunkExperienceScenario(t *testing.T) {
	raw := "Experience: Built systems. Reduced latency by 40%. Led a team of 5 engineers."
	cleaned := Clean(raw)
	chunks := Chunk(cleaned, 40, 10)
	if len(chunks) < 2 {
		t.Fatalf("expected 2+ chunks, got %d: %v", len(chunks), chunks)
	}
	for i, c := range chunks {
		if len(c) > 50 {
			t.Errorf("chunk %d too large: %d chars (%q)", i, len(c), c)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "terminal punctuation variants",
			in:   "One. Two! Three? Four",
			want: []string{"One.", "Two!", "Three?", "Four"},
		},
		{
			name: "ellipsis stays with sentence",
			in:   "Wait... Done.",
			want: []string{"Wait...", "Done."},
		},
		{
			name: "no terminal punctuation",
			in:   "just a fragment",
			want: []string{"just a fragment"},
		},
		{
			name: "decimal point is not a boundary",
			in:   "Grew revenue 3.5x in a year. Then left.",
			want: []string{"Grew revenue 3.5x in a year.", "Then left."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("splitSentences(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
