package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Source is DC source text extracted from a document.
type Source struct {
	Name string // File name without directory or extension
	Text string
}

// Loader extracts DC source text from raw document bytes.
type Loader interface {
	Load(r io.Reader, filename string) (*Source, error)
}

// SupportedExtensions lists file extensions DC source can be loaded from.
var SupportedExtensions = map[string]bool{
	".dc":   true,
	".txt":  true,
	".docx": true,
	".pdf":  true,
}

// ForFile returns the appropriate loader for a filename.
func ForFile(filename string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".dc", ".txt":
		return &TextLoader{}, nil
	case ".docx":
		return &DOCXLoader{}, nil
	case ".pdf":
		return &PDFLoader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %q", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Name strips directory and extension from a filename.
func Name(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
