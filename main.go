package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"heicconv/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	console := logger.NewConsole(logger.DefaultOptions())

	cfg, err := ParseConfig(args, console)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		console.Error("Configuration error: %v", err)
		return 1
	}

	if err := probeCapability(cfg.Mode); err != nil {
		printProbeGuidance(console, cfg.Mode, err)
		return 1
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		console.Error("Failed to create output directory %s: %v", cfg.OutputDir, err)
		return 1
	}

	console.Info("Mode: %s", cfg.Mode.Label)

	files := collectFiles(console, cfg.Mode, cfg.InputPaths)
	if len(files) == 0 {
		console.Warn("No supported image files found to process for the selected mode")
		return 0
	}

	console.Info("Found %d files. Starting conversion on %d workers...", len(files), cfg.Workers)

	timer := console.StartTimer("Conversion")

	queue := NewTaskQueue(files)
	reporter := NewReporter(console, queue.Len()).
		WithProgressBar(console.NewProgressBar(int64(queue.Len()), "Converting images"))

	pool := &Pool{
		Queue:    queue,
		Config:   cfg,
		Codec:    NewCodec(cfg.Mode),
		Reporter: reporter,
	}

	tally := pool.Run(context.Background())

	reporter.Summary(tally)
	timer.End()

	return 0
}
