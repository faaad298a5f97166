package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/dc4u/internal/source"
)

// Worker compiles queued jobs.
type Worker struct {
	log  *slog.Logger
	opts Options
}

func NewWorker(log *slog.Logger, opts Options) *Worker {
	return &Worker{log: log, opts: opts}
}

// Process loads the job's source, compiles every block and records the
// final status: completed when every block rendered, partial when some did,
// failed otherwise.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	job.SetStatus(StatusLoading, "loading")
	loader, err := source.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "loading")
		return
	}
	src, err := loader.Load(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("load failed", "error", err)
		job.AddError(fmt.Sprintf("load: %s", err))
		job.SetStatus(StatusFailed, "loading")
		return
	}
	job.releaseFileData()

	job.SetStatus(StatusCompiling, "compiling")
	batch := Compile(ctx, src, w.opts)
	job.SetBatch(batch)

	for _, r := range batch.Results {
		if r.Err != nil {
			log.Warn("block failed", "block", r.Index, "line", r.Line, "error", r.Err)
			job.AddError(r.Err.Error())
		}
	}

	switch {
	case len(batch.Results) == 0:
		job.AddError("no charge blocks found")
		job.SetStatus(StatusFailed, "compiling")
	case batch.Failed() == 0:
		job.SetStatus(StatusCompleted, "done")
	case batch.Succeeded() > 0:
		job.SetStatus(StatusPartial, "done")
	default:
		job.SetStatus(StatusFailed, "compiling")
	}
	log.Info("job finished", "blocks", len(batch.Results), "rendered", batch.Succeeded(), "failed", batch.Failed())
}
