package main

import (
	"strings"

	"github.com/cespare/aoc2021/chunk"
)

func init() {
	register("10a", day10a)
	register("10b", day10b)
}

func day10a(e *env, input []byte) (string, error) {
	results, err := chunk.Analyze(strings.Split(string(input), "\n"), e.cfg.workers)
	if err != nil {
		return "", err
	}
	return e.formatInt(int64(chunk.SyntaxErrorScore(results))), nil
}

func day10b(e *env, input []byte) (string, error) {
	results, err := chunk.Analyze(strings.Split(string(input), "\n"), e.cfg.workers)
	if err != nil {
		return "", err
	}
	score, err := chunk.MiddleCompletionScore(results)
	if err != nil {
		return "", err
	}
	return e.formatInt(int64(score)), nil
}
