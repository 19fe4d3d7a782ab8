package main

import (
	"fmt"
	"path/filepath"
	"sync"

	"heicconv/logger"
)

// Reporter serializes per-task status lines from concurrent workers. The
// mutex covers formatting and writing a whole line, so output from different
// workers never interleaves. Completion order is whatever the workers
// produce; the [index/total] prefix preserves the original claim order.
type Reporter struct {
	mu      sync.Mutex
	console *logger.Console
	bar     *logger.ProgressBar
	total   int
}

func NewReporter(console *logger.Console, total int) *Reporter {
	return &Reporter{
		console: console,
		total:   total,
	}
}

// WithProgressBar attaches a bar that advances one step per reported outcome.
func (r *Reporter) WithProgressBar(bar *logger.ProgressBar) *Reporter {
	r.bar = bar
	return r
}

func (r *Reporter) Report(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := fmt.Sprintf("[%d/%d] Converting %s -> %s ... %s",
		o.Index+1, r.total, filepath.Base(o.Source), filepath.Base(o.Output), o.Detail)

	if o.OK {
		r.console.Log("%s", line)
	} else {
		r.console.Error("%s", line)
	}

	if r.bar != nil {
		r.bar.Increment(1)
	}
}

// Summary prints the end-of-run table once all workers have joined.
func (r *Reporter) Summary(t *Tally) {
	if r.bar != nil {
		r.bar.Complete()
	}

	table := r.console.NewTable([]string{"Metric", "Value"})
	table.AddRow("Converted files", fmt.Sprintf("%d/%d", t.Converted(), r.total))
	table.AddRow("Failed files", fmt.Sprintf("%d", t.Failed()))
	if t.InBytes() > 0 {
		table.AddRow("Input size", fmt.Sprintf("%.2f MB", float64(t.InBytes())/1024/1024))
		table.AddRow("Output size", fmt.Sprintf("%.2f MB", float64(t.OutBytes())/1024/1024))
		ratio := float64(t.OutBytes()) / float64(t.InBytes()) * 100
		table.AddRow("Size ratio", fmt.Sprintf("%.1f%%", ratio))
	}

	r.console.Info("Conversion finished. %d successful, %d failed.", t.Converted(), t.Failed())
	table.Print()
}
