// Package chunk parses lines of nested bracket chunks, such as "[(<>){}]",
// finds corrupted lines, and completes unfinished ones.
package chunk

import (
	"errors"
	"fmt"
)

// Brace is one of the four delimiter pairs.
type Brace int

const (
	Paren Brace = iota
	Square
	Curly
	Angle
)

const (
	opens  = "([{<"
	closes = ")]}>"
)

// Open returns b's opening delimiter.
func (b Brace) Open() byte { return opens[b] }

// Close returns b's closing delimiter.
func (b Brace) Close() byte { return closes[b] }

func (b Brace) String() string { return string([]byte{b.Open(), b.Close()}) }

func openBrace(c byte) (Brace, bool) {
	for i := 0; i < len(opens); i++ {
		if opens[i] == c {
			return Brace(i), true
		}
	}
	return 0, false
}

func isClose(c byte) bool {
	for i := 0; i < len(closes); i++ {
		if closes[i] == c {
			return true
		}
	}
	return false
}

// ClosingKind says how a chunk ended.
type ClosingKind int

const (
	// Correct means the matching closing delimiter was found.
	Correct ClosingKind = iota
	// Missing means the line ended while the chunk was still open.
	Missing
	// Invalid means a closing delimiter of the wrong kind ended the chunk.
	Invalid
)

func (k ClosingKind) String() string {
	switch k {
	case Correct:
		return "correct"
	case Missing:
		return "missing"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("ClosingKind(%d)", int(k))
}

// Closing is the end state of a chunk. Char is the offending delimiter for
// an Invalid closing and zero otherwise.
type Closing struct {
	Kind ClosingKind
	Char byte
}

type Chunk struct {
	Open     Brace
	Children []*Chunk
	Close    Closing
}

// MaxDepth bounds chunk nesting.
const MaxDepth = 1024

var ErrTooDeep = errors.New("chunks nested too deeply")

// A CharError reports a character that cannot start a chunk.
type CharError struct {
	Offset int
	Char   byte
}

func (e *CharError) Error() string {
	return fmt.Sprintf("unexpected %q at offset %d", e.Char, e.Offset)
}

// Parse parses a line into its top-level chunks.
//
// A chunk ends at the first closing delimiter found after its children. The
// delimiter is consumed whether or not it matches, so parsing of the
// enclosing chunk carries on after an Invalid child.
func Parse(line string) ([]*Chunk, error) {
	p := &parser{s: line}
	var chunks []*Chunk
	for p.pos < len(p.s) {
		c, err := p.chunk()
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}

type parser struct {
	s     string
	pos   int
	depth int
}

func (p *parser) chunk() (*Chunk, error) {
	open, ok := openBrace(p.s[p.pos])
	if !ok {
		return nil, &CharError{Offset: p.pos, Char: p.s[p.pos]}
	}
	if p.depth >= MaxDepth {
		return nil, ErrTooDeep
	}
	p.pos++
	p.depth++
	defer func() { p.depth-- }()

	c := &Chunk{Open: open, Close: Closing{Kind: Missing}}
	for p.pos < len(p.s) {
		ch := p.s[p.pos]
		if isClose(ch) {
			p.pos++
			if ch == open.Close() {
				c.Close = Closing{Kind: Correct}
			} else {
				c.Close = Closing{Kind: Invalid, Char: ch}
			}
			return c, nil
		}
		child, err := p.chunk()
		if err != nil {
			return nil, err
		}
		c.Children = append(c.Children, child)
	}
	return c, nil
}

// String reconstructs the text that c was parsed from.
func (c *Chunk) String() string {
	return string(c.appendText(nil))
}

func (c *Chunk) appendText(b []byte) []byte {
	b = append(b, c.Open.Open())
	for _, child := range c.Children {
		b = child.appendText(b)
	}
	switch c.Close.Kind {
	case Correct:
		b = append(b, c.Open.Close())
	case Invalid:
		b = append(b, c.Close.Char)
	}
	return b
}
