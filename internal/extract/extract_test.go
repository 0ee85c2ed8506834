package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/jobforge/jobforge/internal/model"
)

func TestDocumentPlaintext(t *testing.T) {
	doc := Document(context.Background(), "resume.txt", []byte("  Built systems.  \n"))
	if doc.Content != "Built systems." {
		t.Errorf("content = %q", doc.Content)
	}
	if doc.FileType != model.FileTypeTXT {
		t.Errorf("file type = %q", doc.FileType)
	}
	if doc.Filename != "resume.txt" {
		t.Errorf("filename = %q", doc.Filename)
	}
}

func TestDocumentMarkdown(t *testing.T) {
	md := "# Experience\n\nBuilt **systems** at scale.\n\n- Led a team\n- Cut latency\n"
	doc := Document(context.Background(), "notes.md", []byte(md))
	if doc.FileType != model.FileTypeMarkdown {
		t.Errorf("file type = %q", doc.FileType)
	}
	for _, want := range []string{"Experience", "Built", "systems", "Led a team", "Cut latency"} {
		if !strings.Contains(doc.Content, want) {
			t.Errorf("content missing %q: %q", want, doc.Content)
		}
	}
	if strings.Contains(doc.Content, "**") || strings.Contains(doc.Content, "#") {
		t.Errorf("markup leaked into content: %q", doc.Content)
	}
}

func TestDocumentUnsupportedFormat(t *testing.T) {
	doc := Document(context.Background(), "photo.png", []byte{0x89, 0x50})
	if doc.Content != "" {
		t.Errorf("expected empty content, got %q", doc.Content)
	}
	if doc.FileType != model.FileTypeUnknown {
		t.Errorf("file type = %q", doc.FileType)
	}
}

func TestSupported(t *testing.T) {
	if !Supported("a.txt") || !Supported("b.md") {
		t.Error("txt/md should be supported")
	}
	if Supported("c.pdf") {
		t.Error("pdf has no registered extractor here")
	}
}
