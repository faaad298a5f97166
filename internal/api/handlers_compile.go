package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dgallion1/dc4u/internal/dc"
	"github.com/dgallion1/dc4u/internal/pipeline"
	"github.com/dgallion1/dc4u/internal/source"
)

// blockResponse is the JSON form of one compiled block.
type blockResponse struct {
	Block       int          `json:"block"`
	Line        int          `json:"line"`
	FileName    string       `json:"file_name,omitempty"`
	ContentType string       `json:"content_type,omitempty"`
	Data        []byte       `json:"data,omitempty"`
	Record      *dc.Record   `json:"record,omitempty"`
	Kind        dc.ErrorKind `json:"kind,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// handleCompile compiles an upload synchronously. Rendered payloads are
// included base64-encoded when include_data=true.
func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		writeUploadError(w, err)
		return
	}

	src, err := loadSource(up)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	batch := pipeline.Compile(r.Context(), src, s.orchestrator.Options())
	includeData := r.URL.Query().Get("include_data") == "true"

	blocks := make([]blockResponse, 0, len(batch.Results))
	for _, res := range batch.Results {
		br := blockResponse{Block: res.Index, Line: res.Line, Record: res.Record}
		if res.Err != nil {
			br.Error = res.Err.Error()
			var be *pipeline.BlockError
			if errors.As(res.Err, &be) {
				br.Kind = be.Kind
			}
		} else {
			br.FileName = res.Output.FileName
			br.ContentType = res.Output.ContentType
			if includeData {
				br.Data = res.Output.Data
			}
		}
		blocks = append(blocks, br)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"source":   batch.Source,
		"rendered": batch.Succeeded(),
		"failed":   batch.Failed(),
		"blocks":   blocks,
	})
}

func loadSource(up *upload) (*source.Source, error) {
	loader, err := source.ForFile(up.filename)
	if err != nil {
		return nil, err
	}
	src, err := loader.Load(bytes.NewReader(up.data), up.filename)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", up.filename, err)
	}
	return src, nil
}
