package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/dc4u/internal/pipeline"
	"github.com/dgallion1/dc4u/internal/register"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleSubmitJob(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		writeUploadError(w, err)
		return
	}

	job := pipeline.NewJob(up.filename, up.data)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":       job.ID,
		"status":       pipeline.StatusQueued,
		"content_hash": job.ContentHash,
		"poll_url":     fmt.Sprintf("/api/jobs/%s/status", job.ID),
	})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

func (s *Server) handleJobOutput(w http.ResponseWriter, r *http.Request) {
	batch, ok := s.finishedBatch(w, r)
	if !ok {
		return
	}

	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil || n < 1 {
		jsonError(w, "block number must be a positive integer", http.StatusBadRequest)
		return
	}
	if n > len(batch.Results) {
		jsonError(w, fmt.Sprintf("block %d not found", n), http.StatusNotFound)
		return
	}
	if res := batch.Results[n-1]; res.Err != nil {
		jsonError(w, res.Err.Error(), http.StatusNotFound)
		return
	}

	out, _ := batch.Output(n)
	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	w.Write(out.Data)
}

func (s *Server) handleJobRegister(w http.ResponseWriter, r *http.Request) {
	batch, ok := s.finishedBatch(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", batch.Source+"-Register.xlsx"))
	if err := register.Write(w, batch); err != nil {
		s.log.Error("register failed", "error", err)
	}
}

// finishedBatch resolves the job in the URL and writes the error response
// when it is missing or not yet compiled.
func (s *Server) finishedBatch(w http.ResponseWriter, r *http.Request) (*pipeline.Batch, bool) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return nil, false
	}
	batch := job.Batch()
	if batch == nil {
		jsonError(w, fmt.Sprintf("job %s has no compiled output (status %s)", jobID, job.Snapshot().Status), http.StatusConflict)
		return nil, false
	}
	return batch, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
