package main

import (
	"github.com/cespare/aoc2021/packet"
)

func init() {
	register("16a", day16a)
	register("16b", day16b)
}

func day16a(e *env, input []byte) (string, error) {
	p, err := packet.Parse(string(input))
	if err != nil {
		return "", err
	}
	return e.formatInt(int64(packet.VersionSum(p))), nil
}

func day16b(e *env, input []byte) (string, error) {
	p, err := packet.Parse(string(input))
	if err != nil {
		return "", err
	}
	v, err := packet.Evaluate(p)
	if err != nil {
		return "", err
	}
	return e.formatBig(v), nil
}
