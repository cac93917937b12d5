// Package sample extracts worked examples from markdown puzzle notes.
//
// A sample is a fenced code block whose info string names a solution and
// the expected answer:
//
//	```16b want=3
//	C200B40A82
//	```
//
// Other code blocks are left alone.
package sample

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type Sample struct {
	Solution string
	Want     string
	Input    string
	Line     int // line of the first input line in the notes
}

// Load reads and extracts the samples in the markdown file at path.
func Load(path string) ([]Sample, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	samples, err := Extract(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}
	return samples, nil
}

// Extract returns the samples in src in document order.
func Extract(src []byte) ([]Sample, error) {
	root := goldmark.DefaultParser().Parse(text.NewReader(src))
	var samples []Sample
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok || block.Info == nil {
			return ast.WalkContinue, nil
		}
		info := string(block.Info.Segment.Value(src))
		s, ok, err := parseInfo(info)
		if err != nil {
			line := lineForOffset(src, block.Info.Segment.Start)
			return ast.WalkStop, fmt.Errorf("line %d: %s", line, err)
		}
		if !ok {
			return ast.WalkSkipChildren, nil
		}
		var input bytes.Buffer
		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			input.Write(seg.Value(src))
		}
		s.Input = input.String()
		if lines.Len() > 0 {
			s.Line = lineForOffset(src, lines.At(0).Start)
		} else {
			s.Line = lineForOffset(src, block.Info.Segment.Start) + 1
		}
		samples = append(samples, s)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// parseInfo parses a code block info string of the form
// "<solution> want=<answer>". It reports false for info strings with no
// want= field.
func parseInfo(info string) (Sample, bool, error) {
	var s Sample
	fields := strings.Fields(info)
	var haveWant bool
	for i, field := range fields {
		if v, ok := strings.CutPrefix(field, "want="); ok {
			if haveWant {
				return s, false, fmt.Errorf("duplicate want in %q", info)
			}
			haveWant = true
			s.Want = v
			continue
		}
		if i == 0 {
			s.Solution = field
		}
	}
	if !haveWant {
		return s, false, nil
	}
	if s.Solution == "" {
		return s, false, fmt.Errorf("sample %q does not name a solution", info)
	}
	return s, true, nil
}

func lineForOffset(src []byte, offset int) int {
	return bytes.Count(src[:offset], []byte("\n")) + 1
}
