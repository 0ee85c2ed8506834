package model

// FileType identifies the source format of an ingested document.
type FileType string

const (
	FileTypePDF      FileType = "pdf"
	FileTypeDOCX     FileType = "docx"
	FileTypeTXT      FileType = "txt"
	FileTypeMarkdown FileType = "md"
	FileTypeUnknown  FileType = "unknown"
)

// Document is the plain-text form of one source file, produced by the
// extraction layer. It lives for a single processing pass and is never
// persisted as-is.
type Document struct {
	Content  string   `json:"content"`
	Filename string   `json:"filename"`
	FileType FileType `json:"file_type"`
}

func (t FileType) String() string {
	return string(t)
}

// FileTypeFromExt maps a file extension (with or without the leading dot) to a FileType.
func FileTypeFromExt(ext string) FileType {
	switch ext {
	case "pdf", ".pdf":
		return FileTypePDF
	case "docx", ".docx":
		return FileTypeDOCX
	case "txt", ".txt":
		return FileTypeTXT
	case "md", ".md", "markdown", ".markdown":
		return FileTypeMarkdown
	default:
		return FileTypeUnknown
	}
}
