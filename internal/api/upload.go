package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/dc4u/internal/source"
)

// upload is a source file received from a client.
type upload struct {
	filename string
	data     []byte
}

// uploadError carries the HTTP status a failed upload should produce.
type uploadError struct {
	status int
	msg    string
}

func (e *uploadError) Error() string { return e.msg }

// readUpload accepts either a multipart form with a "file" part or a raw
// text body named by the "filename" query parameter.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*upload, error) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	var (
		filename string
		body     io.Reader
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, &uploadError{http.StatusBadRequest, "invalid multipart form: " + err.Error()}
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, &uploadError{http.StatusBadRequest, "file is required: " + err.Error()}
		}
		defer file.Close()
		filename = header.Filename
		body = file
	} else {
		filename = r.URL.Query().Get("filename")
		if filename == "" {
			filename = "charges.dc"
		}
		body = r.Body
	}

	filename = sanitizeFilename(filename)
	if !source.IsSupportedExtension(filename) {
		return nil, &uploadError{http.StatusBadRequest, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename))}
	}

	data, err := io.ReadAll(io.LimitReader(body, s.cfg.MaxUploadBytes+1))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &uploadError{http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)}
		}
		return nil, &uploadError{http.StatusInternalServerError, "failed to read file"}
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, &uploadError{http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)}
	}
	return &upload{filename: filename, data: data}, nil
}

func writeUploadError(w http.ResponseWriter, err error) {
	var ue *uploadError
	if errors.As(err, &ue) {
		jsonError(w, ue.msg, ue.status)
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
