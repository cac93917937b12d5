package chunk

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/wait"
)

// Result is the analysis of one line.
type Result struct {
	Line       int // 1-based
	HasIllegal bool
	Illegal    byte
	Complete   bool   // nothing was left open
	Completion string // closers for an incomplete, uncorrupted line
}

// ErrNoIncomplete is returned by MiddleCompletionScore when no line needs
// completing.
var ErrNoIncomplete = errors.New("no incomplete lines")

// Analyze parses and analyzes each non-blank line using up to workers
// goroutines. Results are in input order.
func Analyze(lines []string, workers int) ([]Result, error) {
	type job struct {
		i    int
		line string
	}
	var jobs []job
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		jobs = append(jobs, job{i, line})
	}
	results := make([]Result, len(jobs))
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	work := make(chan int)
	var wg wait.Group
	for w := 0; w < workers; w++ {
		wg.Go(func(quit <-chan struct{}) error {
			for {
				select {
				case j, ok := <-work:
					if !ok {
						return nil
					}
					r, err := analyzeLine(jobs[j].line)
					if err != nil {
						return fmt.Errorf("line %d: %w", jobs[j].i+1, err)
					}
					r.Line = jobs[j].i + 1
					results[j] = r
				case <-quit:
					return nil
				}
			}
		})
	}
	wg.Go(func(quit <-chan struct{}) error {
		defer close(work)
		for j := range jobs {
			select {
			case work <- j:
			case <-quit:
				return nil
			}
		}
		return nil
	})
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func analyzeLine(line string) (Result, error) {
	chunks, err := Parse(line)
	if err != nil {
		return Result{}, err
	}
	var r Result
	if c, ok := FirstIllegal(chunks); ok {
		r.HasIllegal = true
		r.Illegal = c
		return r, nil
	}
	completion, ok := Autocomplete(chunks)
	r.Completion = completion
	r.Complete = !ok
	return r, nil
}

// SyntaxErrorScore sums the scores of the first illegal character of every
// corrupted line.
func SyntaxErrorScore(results []Result) int {
	var sum int
	for _, r := range results {
		if r.HasIllegal {
			sum += IllegalScore(r.Illegal)
		}
	}
	return sum
}

// MiddleCompletionScore returns the median completion score among the
// incomplete lines. With an even number of lines it takes the upper of the
// two middle scores.
func MiddleCompletionScore(results []Result) (int, error) {
	var scores []int
	for _, r := range results {
		if r.HasIllegal || r.Complete {
			continue
		}
		scores = append(scores, AutocompleteScore(r.Completion))
	}
	if len(scores) == 0 {
		return 0, ErrNoIncomplete
	}
	sort.Ints(scores)
	return scores[len(scores)/2], nil
}
