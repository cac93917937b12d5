package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/cp"
)

// readInput finds the puzzle input for a solution. An explicit file
// argument wins ("-" means stdin); then the day's file in the configured
// input directory; then stdin.
func (e *env) readInput(name string, args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	if len(args) == 0 && e.cfg.inputDir != "" {
		day, _ := splitName(name)
		b, err := os.ReadFile(inputPath(e.cfg.inputDir, day))
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return io.ReadAll(e.stdin)
}

func inputPath(dir string, day int) string {
	return filepath.Join(dir, strconv.Itoa(day)+".txt")
}

// runImport copies a puzzle input into the input directory:
//
//	advent import 16 ~/Downloads/input
func runImport(e *env, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: advent import day file")
	}
	if e.cfg.inputDir == "" {
		return errors.New("import: no inputdir set in the config file")
	}
	day, err := strconv.Atoi(args[0])
	if err != nil || day < 1 || day > 25 {
		return fmt.Errorf("import: bad day %q", args[0])
	}
	if err := os.MkdirAll(e.cfg.inputDir, 0o755); err != nil {
		return err
	}
	dst := inputPath(e.cfg.inputDir, day)
	if err := cp.CopyFile(dst, args[1]); err != nil {
		return fmt.Errorf("import: %s", err)
	}
	fmt.Fprintf(e.stdout, "copied %s to %s\n", args[1], dst)
	return nil
}
