package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/cespare/aoc2021/sample"
	"github.com/dustin/go-humanize"
)

// runCheck runs every sample in a markdown notes file against its solution.
func runCheck(e *env, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: advent check notes.md")
	}
	path := args[0]
	samples, err := sample.Load(path)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples in %s", path)
	}

	// Answers are compared as plain numbers.
	plain := *e
	plain.cfg.human = false

	var failed int
	var size uint64
	for _, s := range samples {
		size += uint64(len(s.Input))
		fn, ok := solutions[s.Solution]
		if !ok {
			fmt.Fprintf(e.stdout, "%s:%d: FAIL unknown solution %q\n", path, s.Line, s.Solution)
			failed++
			continue
		}
		start := time.Now()
		got, err := fn(&plain, []byte(s.Input))
		elapsed := time.Since(start).Round(time.Microsecond)
		switch {
		case err != nil:
			fmt.Fprintf(e.stdout, "%s:%d: FAIL %s: %s\n", path, s.Line, s.Solution, err)
			failed++
		case got != s.Want:
			fmt.Fprintf(e.stdout, "%s:%d: FAIL %s: got %s; want %s\n", path, s.Line, s.Solution, got, s.Want)
			failed++
		default:
			fmt.Fprintf(e.stdout, "%s:%d: ok %s = %s (%s)\n", path, s.Line, s.Solution, got, elapsed)
		}
	}
	fmt.Fprintf(e.stdout, "%d/%d samples passed (%s of input)\n",
		len(samples)-failed, len(samples), humanize.Bytes(size))
	if failed > 0 {
		return fmt.Errorf("%d of %d samples failed", failed, len(samples))
	}
	return nil
}
