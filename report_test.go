package main

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"heicconv/logger"
)

func bufferedConsole(buf *bytes.Buffer) *logger.Console {
	opts := logger.DefaultOptions()
	opts.Output = buf
	opts.EnableColors = false
	return logger.NewConsole(opts)
}

func TestReportLinesNeverInterleave(t *testing.T) {
	const n = 200

	var buf bytes.Buffer
	reporter := NewReporter(bufferedConsole(&buf), n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok := i%3 != 0
			detail := "OK"
			if !ok {
				detail = "FAILED (Disk Full)"
			}
			reporter.Report(Outcome{
				Index:  i,
				Source: fmt.Sprintf("in/img%03d.jpg", i),
				Output: fmt.Sprintf("out/img%03d.heic", i),
				OK:     ok,
				Detail: detail,
			})
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != n {
		t.Fatalf("got %d lines, want %d", len(lines), n)
	}

	seen := make(map[int]bool)
	for _, line := range lines {
		if strings.Count(line, "Converting") != 1 {
			t.Fatalf("corrupted line: %q", line)
		}
		var ordinal, total int
		idx := strings.Index(line, "[")
		if idx < 0 {
			t.Fatalf("line missing ordinal: %q", line)
		}
		if _, err := fmt.Sscanf(line[idx:], "[%d/%d]", &ordinal, &total); err != nil {
			t.Fatalf("line missing ordinal: %q", line)
		}
		if total != n {
			t.Fatalf("line reports total %d, want %d", total, n)
		}
		if seen[ordinal] {
			t.Fatalf("ordinal %d reported twice", ordinal)
		}
		seen[ordinal] = true
	}
	if len(seen) != n {
		t.Fatalf("saw %d distinct ordinals, want %d", len(seen), n)
	}
}

func TestReportLineContent(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(bufferedConsole(&buf), 2)

	reporter.Report(Outcome{
		Index:  1,
		Source: "/in/dir/b.png",
		Output: "/out/b.heic",
		OK:     true,
		Detail: "OK",
	})

	line := buf.String()
	for _, want := range []string{"[2/2]", "b.png", "b.heic", "OK"} {
		if !strings.Contains(line, want) {
			t.Errorf("report line %q missing %q", line, want)
		}
	}
}

func TestSummaryCounts(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(bufferedConsole(&buf), 3)

	tally := &Tally{}
	tally.converted.Add(2)
	tally.failed.Add(1)

	reporter.Summary(tally)

	out := buf.String()
	if !strings.Contains(out, "2 successful, 1 failed") {
		t.Fatalf("summary output missing counts: %q", out)
	}
}
