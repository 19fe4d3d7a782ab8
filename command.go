package main

import (
	"bytes"
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"heicconv/logger"
)

// Config carries the settings for one run. It is built once by ParseConfig
// and shared read-only across all workers.
type Config struct {
	InputPaths []string
	OutputDir  string
	Mode       *Mode
	Quality    float64 // fraction in [0,1]; negative means encoder default
	Workers    int
}

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ", ")
}

func (p *pathList) Set(value string) error {
	*p = append(*p, value)
	return nil
}

func ParseConfig(args []string, console *logger.Console) (*Config, error) {
	cfg := &Config{
		Quality: -1,
		Workers: runtime.NumCPU(),
	}

	var (
		inputs      pathList
		target      string
		quality     string
		showVersion bool
	)

	fs := flag.NewFlagSet("heicconv", flag.ContinueOnError)
	fs.Var(&inputs, "input", "Input file or directory (repeatable)")
	fs.Var(&inputs, "i", "Same as --input")
	fs.StringVar(&cfg.OutputDir, "output", "", "Directory where converted files are written")
	fs.StringVar(&cfg.OutputDir, "o", "", "Same as --output")
	fs.StringVar(&target, "to", "heic", "Target format: heic, jpeg or avif")
	fs.StringVar(&quality, "quality", "", "Output quality 0-100 (default: encoder default)")
	fs.StringVar(&quality, "q", "", "Same as --quality")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of concurrent workers")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.Usage = func() { printUsage(fs, console) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if showVersion {
		console.Info("Version: %s", Version)
		console.Info("Build date: %s", BuildDate)
		console.Info("Git commit: %s", GitCommit)
		return nil, flag.ErrHelp
	}

	mode, err := ModeFor(target)
	if err != nil {
		return nil, err
	}
	cfg.Mode = mode

	cfg.InputPaths = inputs
	if len(cfg.InputPaths) == 0 || cfg.OutputDir == "" {
		fs.Usage()
		return nil, fmt.Errorf("both input and output paths must be specified")
	}

	cfg.Quality = parseQuality(quality, console)

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}

// parseQuality maps a 0-100 flag value to a [0,1] fraction. Invalid or
// out-of-range values degrade to the encoder default with a warning rather
// than failing the run.
func parseQuality(raw string, console *logger.Console) float64 {
	if raw == "" {
		return -1
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		console.Warn("Invalid quality value. It must be a number. Using default quality.")
		return -1
	}
	if v < 0 || v > 100 {
		console.Warn("Quality must be between 0 and 100. Using default quality.")
		return -1
	}
	return v / 100
}

func printUsage(fs *flag.FlagSet, console *logger.Console) {
	console.Info("heicconv - converts images to/from HEIC (and AVIF)")
	console.Log("Usage: heicconv -i <input>... -o <output_dir> [--to format] [-q quality]")
	console.Log("Options:")

	var buf bytes.Buffer
	old := fs.Output()
	fs.SetOutput(&buf)
	fs.PrintDefaults()
	fs.SetOutput(old)

	for _, line := range strings.Split(buf.String(), "\n") {
		if line != "" {
			console.Log("  %s", line)
		}
	}

	console.Log("Examples:")
	console.Log("  heicconv -i ./pics -o ./out")
	console.Log("  heicconv -i ./heic_pics -o ./out --to jpeg -q 90")
}
