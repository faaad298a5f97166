package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/dc4u/internal/config"
)

func testConfig() config.Config {
	cfg := config.Defaults()
	cfg.WorkerCount = 2
	cfg.MaxQueueSize = 4
	return cfg
}

func waitFor(t *testing.T, job *Job, statuses ...JobStatus) JobSnapshot {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snap := job.Snapshot()
		for _, s := range statuses {
			if snap.Status == s {
				return snap
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s did not reach %v, last status %q", job.ID, statuses, job.Snapshot().Status)
	return JobSnapshot{}
}

func TestOrchestrator_SubmitAndComplete(t *testing.T) {
	o := NewOrchestrator(testConfig(), discardLogger())
	o.Start(context.Background())
	defer o.Stop()

	job := NewJob("sample1.dc", []byte(chargeBlock("MD")+"\n---\n"+chargeBlock("DOC")))
	require.NoError(t, o.Submit(job))
	assert.Same(t, job, o.GetJob(job.ID))

	snap := waitFor(t, job, StatusCompleted, StatusPartial, StatusFailed)
	assert.Equal(t, StatusCompleted, snap.Status)
	require.Len(t, snap.Outputs, 2)
	assert.Equal(t, "sample1-Draft-Charge-1.md", snap.Outputs[0].FileName)
	assert.Equal(t, "sample1-Draft-Charge-2.docx", snap.Outputs[1].FileName)
	assert.Equal(t, 2, o.Stats().Snapshot().Count)
}

func TestOrchestrator_QueueFull(t *testing.T) {
	cfg := testConfig()
	cfg.MaxQueueSize = 1
	// Not started: nothing drains the queue.
	o := NewOrchestrator(cfg, discardLogger())

	require.NoError(t, o.Submit(NewJob("a.dc", nil)))
	assert.Equal(t, 1, o.QueueDepth())

	overflow := NewJob("b.dc", nil)
	assert.EqualError(t, o.Submit(overflow), "job queue is full (1)")
	assert.Equal(t, StatusFailed, overflow.Snapshot().Status)
	assert.NotNil(t, o.GetJob(overflow.ID))
}

func TestOrchestrator_Options(t *testing.T) {
	cfg := testConfig()
	cfg.BlockSeparator = "==="
	cfg.MaxConcurrentBlocks = 3
	o := NewOrchestrator(cfg, discardLogger())

	opts := o.Options()
	assert.Equal(t, "===", opts.Separator)
	assert.Equal(t, 3, opts.MaxConcurrent)
	assert.Same(t, o.Stats(), opts.Stats)
}

func TestCleanupInterval(t *testing.T) {
	assert.Equal(t, time.Minute, cleanupInterval(time.Minute))
	assert.Equal(t, 5*time.Minute, cleanupInterval(time.Hour))
	assert.Equal(t, 5*time.Minute, cleanupInterval(0))
}
