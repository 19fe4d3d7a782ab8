package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
)

// tmpSuffix marks in-flight output files. The final path is only ever
// produced by renaming a fully written temporary, so an interrupted run can
// leave a .tmp orphan but never a half-written output.
const tmpSuffix = ".tmp"

// Outcome is the single record a worker produces for each claimed task.
type Outcome struct {
	Index  int
	Source string
	Output string
	OK     bool
	Detail string
}

// Tally accumulates run results across workers. Counters are atomic; the
// totals are only meaningful after the pool has joined.
type Tally struct {
	converted atomic.Uint64
	failed    atomic.Uint64
	inBytes   atomic.Int64
	outBytes  atomic.Int64
}

func (t *Tally) Converted() uint64 { return t.converted.Load() }
func (t *Tally) Failed() uint64    { return t.failed.Load() }
func (t *Tally) InBytes() int64    { return t.inBytes.Load() }
func (t *Tally) OutBytes() int64   { return t.outBytes.Load() }

// Pool drains a TaskQueue with a fixed set of workers. The queue, config and
// codec are shared read-only; the reporter and tally absorb all results.
type Pool struct {
	Queue    *TaskQueue
	Config   *Config
	Codec    Codec
	Reporter *Reporter
}

// Run starts Config.Workers goroutines, waits for all of them to drain the
// queue, and returns the final tally. The tally must not be read before Run
// returns.
func (p *Pool) Run(ctx context.Context) *Tally {
	tally := &Tally{}

	var wg sync.WaitGroup
	for w := 0; w < p.Config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, tally)
		}()
	}
	wg.Wait()

	return tally
}

// worker claims indices until the queue is exhausted. A failing task is
// recorded and the worker moves on; nothing a single file does can stop the
// run. Each task is attempted exactly once.
func (p *Pool) worker(ctx context.Context, tally *Tally) {
	for {
		if ctx.Err() != nil {
			return
		}
		index, ok := p.Queue.ClaimNext()
		if !ok {
			return
		}

		outcome := p.convertOne(index)

		if outcome.OK {
			tally.converted.Add(1)
			if fi, err := os.Stat(outcome.Source); err == nil {
				tally.inBytes.Add(fi.Size())
			}
			if fi, err := os.Stat(outcome.Output); err == nil {
				tally.outBytes.Add(fi.Size())
			}
		} else {
			tally.failed.Add(1)
		}

		p.Reporter.Report(outcome)
	}
}

// convertOne runs the full per-task protocol: encode into a temporary file,
// then publish it with delete-and-rename. Any failure removes the orphaned
// temporary.
func (p *Pool) convertOne(index int) Outcome {
	src := p.Queue.Item(index)
	final := filepath.Join(p.Config.OutputDir, p.Config.Mode.OutputName(src))
	tmp := final + tmpSuffix

	outcome := Outcome{Index: index, Source: src, Output: final}

	err := p.Codec.Convert(src, tmp, p.Config.Quality)
	if err != nil {
		outcome.Detail = failureDetail(err)
		os.Remove(tmp)
		return outcome
	}

	// Overwrite semantics: a stale output at the final path is removed first,
	// then the temporary takes its place in a single rename.
	os.Remove(final)
	if err := os.Rename(tmp, final); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			outcome.Detail = "FAILED (Permission Denied to Finalize)"
		} else {
			outcome.Detail = fmt.Sprintf("FAILED (Move Error: %v)", err)
		}
		os.Remove(tmp)
		return outcome
	}

	outcome.OK = true
	outcome.Detail = "OK"
	return outcome
}

// failureDetail folds a codec error into one of the human-meaningful status
// categories; anything unrecognized keeps its raw error text.
func failureDetail(err error) string {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return "FAILED (Permission Denied)"
	case errors.Is(err, syscall.ENOSPC):
		return "FAILED (Disk Full)"
	case errors.Is(err, errCorruptInput), errors.Is(err, image.ErrFormat):
		return "FAILED (Corrupt Input File)"
	default:
		return fmt.Sprintf("FAILED (%v)", err)
	}
}
