package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/dc4u/internal/block"
	"github.com/dgallion1/dc4u/internal/dc"
	"github.com/dgallion1/dc4u/internal/render"
	"github.com/dgallion1/dc4u/internal/source"
)

// Options controls a compilation.
type Options struct {
	Separator     string
	MaxConcurrent int

	// Stats, when set, receives the duration of every block compile.
	Stats *CompileStats
}

// BlockError attributes a failure to the block that produced it.
type BlockError struct {
	Index int
	Line  int
	Kind  dc.ErrorKind
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d: %s: %v", e.Index, e.Kind, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }

// Result is the outcome of one block. Exactly one of Output and Err is set.
type Result struct {
	Source string
	Index  int
	Line   int
	Record *dc.Record
	Output *render.Output
	Err    error
}

// Batch holds the results of every block of a source, in source order.
type Batch struct {
	Source  string
	Results []Result
}

// Succeeded counts the blocks that rendered.
func (b *Batch) Succeeded() int {
	n := 0
	for _, r := range b.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failed counts the blocks that did not render.
func (b *Batch) Failed() int {
	return len(b.Results) - b.Succeeded()
}

// Output returns the n-th block's rendered output, if it has one.
func (b *Batch) Output(n int) (*render.Output, bool) {
	if n < 1 || n > len(b.Results) || b.Results[n-1].Output == nil {
		return nil, false
	}
	return b.Results[n-1].Output, true
}

// Compile splits src into blocks and compiles them concurrently. A failing
// block never affects its siblings; results keep the order of the source.
func Compile(ctx context.Context, src *source.Source, opts Options) *Batch {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	blocks := block.Split(src.Text, block.Config{Separator: opts.Separator})

	batch := &Batch{Source: src.Name, Results: make([]Result, len(blocks))}
	sem := make(chan struct{}, opts.MaxConcurrent)
	var wg sync.WaitGroup

	for i, b := range blocks {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			batch.Results[i] = failed(src.Name, b, ctx.Err())
			continue
		}
		wg.Add(1)
		go func(i int, b block.Block) {
			defer wg.Done()
			defer func() { <-sem }()
			start := time.Now()
			batch.Results[i] = compileBlock(src.Name, b)
			if opts.Stats != nil {
				opts.Stats.Record(time.Since(start))
			}
		}(i, b)
	}
	wg.Wait()
	return batch
}

func compileBlock(name string, b block.Block) Result {
	rec, err := dc.ParseBlock(b.Text)
	if err != nil {
		return failed(name, b, err)
	}
	out, err := render.Render(rec, name, b.Index)
	if err != nil {
		res := failed(name, b, err)
		res.Record = rec
		return res
	}
	return Result{Source: name, Index: b.Index, Line: b.Line, Record: rec, Output: out}
}

func failed(name string, b block.Block, err error) Result {
	return Result{
		Source: name,
		Index:  b.Index,
		Line:   b.Line,
		Err:    &BlockError{Index: b.Index, Line: b.Line, Kind: dc.Classify(err), Err: err},
	}
}
