package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the state of a compile job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusLoading   JobStatus = "loading"
	StatusCompiling JobStatus = "compiling"
	StatusCompleted JobStatus = "completed"
	StatusPartial   JobStatus = "partial"
	StatusFailed    JobStatus = "failed"
)

// Job tracks the compilation of one uploaded source file.
type Job struct {
	mu sync.Mutex

	ID       string    `json:"job_id"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`

	Progress Progress `json:"progress"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	batch    *Batch
	errors   []string
}

// Progress tracks processing progress.
type Progress struct {
	TotalBlocks    int      `json:"total_blocks"`
	BlocksRendered int      `json:"blocks_rendered"`
	BlocksFailed   int      `json:"blocks_failed"`
	Errors         []string `json:"errors"`
}

// NewJob creates a queued job for an uploaded file.
func NewJob(filename string, data []byte) *Job {
	now := time.Now()
	return &Job{
		ID:          uuid.NewString(),
		Status:      StatusQueued,
		Phase:       "queued",
		Filename:    filename,
		ContentHash: ContentHashHex(data),
		CreatedAt:   now,
		UpdatedAt:   now,
		fileData:    data,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.updatedAt()) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// Len returns the number of tracked jobs.
func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

func (j *Job) updatedAt() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.UpdatedAt
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetBatch stores the compiled batch and derives progress counts from it.
func (j *Job) SetBatch(b *Batch) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.batch = b
	j.Progress.TotalBlocks = len(b.Results)
	j.Progress.BlocksRendered = b.Succeeded()
	j.Progress.BlocksFailed = b.Failed()
	j.UpdatedAt = time.Now()
}

// Batch returns the compiled batch, or nil while the job is pending.
func (j *Job) Batch() *Batch {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.batch
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// releaseFileData drops the upload once it has been compiled.
func (j *Job) releaseFileData() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = nil
}

// OutputInfo describes one block of a finished job.
type OutputInfo struct {
	Block    int    `json:"block"`
	Line     int    `json:"line"`
	FileName string `json:"file_name,omitempty"`
	Error    string `json:"error,omitempty"`
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string       `json:"job_id"`
	Status      JobStatus    `json:"status"`
	Phase       string       `json:"phase"`
	Filename    string       `json:"filename"`
	ContentHash string       `json:"content_hash,omitempty"`
	Progress    Progress     `json:"progress"`
	Outputs     []OutputInfo `json:"outputs"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := make([]string, len(j.Progress.Errors))
	copy(errs, j.Progress.Errors)

	outputs := []OutputInfo{}
	if j.batch != nil {
		for _, r := range j.batch.Results {
			info := OutputInfo{Block: r.Index, Line: r.Line}
			if r.Err != nil {
				info.Error = r.Err.Error()
			} else {
				info.FileName = r.Output.FileName
			}
			outputs = append(outputs, info)
		}
	}

	return JobSnapshot{
		ID:          j.ID,
		Status:      j.Status,
		Phase:       j.Phase,
		Filename:    j.Filename,
		ContentHash: j.ContentHash,
		Progress: Progress{
			TotalBlocks:    j.Progress.TotalBlocks,
			BlocksRendered: j.Progress.BlocksRendered,
			BlocksFailed:   j.Progress.BlocksFailed,
			Errors:         errs,
		},
		Outputs:   outputs,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
