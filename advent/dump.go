package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/cespare/aoc2021/chunk"
	"github.com/cespare/aoc2021/packet"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"
)

// runDump prints the parse tree of a day's input:
//
//	advent dump --format yaml 16 input.txt
func runDump(e *env, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: advent dump day [input-file]")
	}
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("dump: bad day %q", args[0])
	}
	input, err := e.readInput(args[0], args[1:])
	if err != nil {
		return err
	}
	log.Printf("Read %s of input", humanize.Bytes(uint64(len(input))))

	var tree any
	var text []string
	switch day {
	case 16:
		p, err := packet.Parse(string(input))
		if err != nil {
			return err
		}
		tree = packetTree(p)
		text = []string{p.String()}
	case 10:
		var lines []lineNode
		for i, line := range strings.Split(string(input), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			chunks, err := chunk.Parse(line)
			if err != nil {
				return fmt.Errorf("line %d: %s", i+1, err)
			}
			lines = append(lines, lineNode{Line: i + 1, Chunks: chunkTrees(chunks)})
			text = append(text, describeLine(chunks))
		}
		tree = lines
	default:
		return fmt.Errorf("dump: no parser for day %d", day)
	}
	return writeTree(e.stdout, e.cfg.format, tree, text)
}

func writeTree(w io.Writer, format string, tree any, text []string) error {
	switch format {
	case "pretty":
		_, err := pretty.Fprintf(w, "%# v\n", tree)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		for _, line := range text {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown dump format %q", format)
}

type packetNode struct {
	Version  uint8        `yaml:"version"`
	Type     string       `yaml:"type"`
	Value    string       `yaml:"value,omitempty"`
	Children []packetNode `yaml:"children,omitempty"`
}

func packetTree(p *packet.Packet) packetNode {
	n := packetNode{Version: p.Version, Type: packet.TypeName(p.TypeID)}
	if lit, ok := p.Contents.(packet.Literal); ok {
		n.Value = lit.Value.String()
	}
	for _, child := range p.Children() {
		n.Children = append(n.Children, packetTree(child))
	}
	return n
}

type lineNode struct {
	Line   int         `yaml:"line"`
	Chunks []chunkNode `yaml:"chunks"`
}

type chunkNode struct {
	Brace    string      `yaml:"brace"`
	Close    string      `yaml:"close"`
	Children []chunkNode `yaml:"children,omitempty"`
}

func chunkTrees(chunks []*chunk.Chunk) []chunkNode {
	var nodes []chunkNode
	for _, c := range chunks {
		n := chunkNode{Brace: c.Open.String(), Close: c.Close.Kind.String()}
		if c.Close.Kind == chunk.Invalid {
			n.Close += " " + string(c.Close.Char)
		}
		n.Children = chunkTrees(c.Children)
		nodes = append(nodes, n)
	}
	return nodes
}

func describeLine(chunks []*chunk.Chunk) string {
	if c, ok := chunk.FirstIllegal(chunks); ok {
		return fmt.Sprintf("corrupted: first illegal %q", c)
	}
	if s, ok := chunk.Autocomplete(chunks); ok {
		return "incomplete: needs " + s
	}
	return "complete"
}
