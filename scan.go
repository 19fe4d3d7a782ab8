package main

import (
	"os"
	"path/filepath"

	"heicconv/logger"
)

// collectFiles resolves the -i arguments into the flat, ordered task list.
// Directories are scanned exactly one level deep; files whose extension the
// active mode does not accept are skipped with a warning. Missing paths warn
// and are skipped rather than failing the run.
func collectFiles(console *logger.Console, mode *Mode, inputs []string) []string {
	var files []string

	for _, path := range inputs {
		info, err := os.Stat(path)
		if err != nil {
			console.Warn("Input path not found, skipping: %s", path)
			continue
		}

		if !info.IsDir() {
			if mode.Supports(path) {
				files = append(files, path)
			} else {
				console.Warn("Unsupported input file for this mode, skipping: %s", path)
			}
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			console.Warn("Cannot read directory, skipping: %s (%v)", path, err)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			full := filepath.Join(path, entry.Name())
			if mode.Supports(full) {
				files = append(files, full)
			} else {
				console.Warn("Unsupported input file for this mode, skipping: %s", full)
			}
		}
	}

	return files
}
