// Package packet decodes the nested binary packet format of the BITS
// transmission puzzle: a hex string expands to a bit sequence holding one
// outermost packet, which is either a literal value or an operator over
// sub-packets.
package packet

import (
	"errors"
	"fmt"
	"math/big"
)

// Packet type IDs. TypeLiteral marks a literal; every other ID is an
// operator.
const (
	TypeSum     = 0
	TypeProduct = 1
	TypeMin     = 2
	TypeMax     = 3
	TypeLiteral = 4
	TypeGreater = 5
	TypeLess    = 6
	TypeEqual   = 7
)

// MaxDepth bounds operator nesting.
const MaxDepth = 256

const (
	versionBits    = 3
	typeIDBits     = 3
	groupBits      = 4
	bitLengthBits  = 15
	subPacketsBits = 11
)

var (
	// ErrTruncated is returned when the input ends (or an operator's
	// declared bit-length block ends) before a packet is complete.
	ErrTruncated = errors.New("packet truncated")
	ErrTooDeep   = errors.New("packets nested too deeply")
)

// A DecodeError records where in the bit sequence decoding failed.
type DecodeError struct {
	Pos int
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding packet at bit %d: %s", e.Pos, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type Packet struct {
	Version  uint8
	TypeID   uint8
	Contents Contents
}

// Contents is either a Literal or an Operator.
type Contents interface {
	isContents()
}

type Literal struct {
	Value *big.Int
}

// Operator holds sub-packets in transmission order. The order is the
// argument order for the comparison operators.
type Operator struct {
	Children []*Packet
}

func (Literal) isContents()  {}
func (Operator) isContents() {}

// Children returns p's sub-packets, or nil for a literal.
func (p *Packet) Children() []*Packet {
	if op, ok := p.Contents.(Operator); ok {
		return op.Children
	}
	return nil
}

// Parse decodes the packet at the start of a hex transmission. Bits after
// the end of that packet are padding and are ignored.
func Parse(hex string) (*Packet, error) {
	bits, err := FromHex(hex)
	if err != nil {
		return nil, err
	}
	p, _, err := Decode(bits, 0)
	return p, err
}

// Decode decodes one packet from bits starting at pos and returns the packet
// along with the position just past it.
func Decode(bits Bits, pos int) (*Packet, int, error) {
	d := &decoder{bits: bits, pos: pos}
	p, err := d.packet(bits.Len())
	if err != nil {
		return nil, pos, &DecodeError{Pos: d.pos, Err: err}
	}
	return p, d.pos, nil
}

type decoder struct {
	bits  Bits
	pos   int
	depth int
}

// read consumes n bits, refusing to read at or past end.
func (d *decoder) read(n, end int) (uint64, error) {
	v, err := d.bits.uintBefore(d.pos, n, end)
	if err != nil {
		return 0, err
	}
	d.pos += n
	return v, nil
}

func (d *decoder) packet(end int) (*Packet, error) {
	version, err := d.read(versionBits, end)
	if err != nil {
		return nil, err
	}
	typeID, err := d.read(typeIDBits, end)
	if err != nil {
		return nil, err
	}
	p := &Packet{Version: uint8(version), TypeID: uint8(typeID)}
	if typeID == TypeLiteral {
		p.Contents, err = d.literal(end)
	} else {
		p.Contents, err = d.operator(end)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (d *decoder) literal(end int) (Literal, error) {
	v := new(big.Int)
	var group big.Int
	for {
		more, err := d.read(1, end)
		if err != nil {
			return Literal{}, err
		}
		g, err := d.read(groupBits, end)
		if err != nil {
			return Literal{}, err
		}
		v.Lsh(v, groupBits)
		v.Or(v, group.SetUint64(g))
		if more == 0 {
			return Literal{Value: v}, nil
		}
	}
}

func (d *decoder) operator(end int) (Operator, error) {
	if d.depth >= MaxDepth {
		return Operator{}, ErrTooDeep
	}
	d.depth++
	defer func() { d.depth-- }()

	lengthType, err := d.read(1, end)
	if err != nil {
		return Operator{}, err
	}
	var children []*Packet
	if lengthType == 1 {
		count, err := d.read(subPacketsBits, end)
		if err != nil {
			return Operator{}, err
		}
		children = make([]*Packet, 0, count)
		for i := uint64(0); i < count; i++ {
			child, err := d.packet(end)
			if err != nil {
				return Operator{}, err
			}
			children = append(children, child)
		}
		return Operator{Children: children}, nil
	}

	length, err := d.read(bitLengthBits, end)
	if err != nil {
		return Operator{}, err
	}
	blockEnd := d.pos + int(length)
	if blockEnd > end {
		return Operator{}, ErrTruncated
	}
	for d.pos < blockEnd {
		child, err := d.packet(blockEnd)
		if err != nil {
			return Operator{}, err
		}
		children = append(children, child)
	}
	return Operator{Children: children}, nil
}

var typeNames = [...]string{
	TypeSum:     "sum",
	TypeProduct: "product",
	TypeMin:     "min",
	TypeMax:     "max",
	TypeLiteral: "lit",
	TypeGreater: "gt",
	TypeLess:    "lt",
	TypeEqual:   "eq",
}

// TypeName returns a short mnemonic for a type ID.
func TypeName(typeID uint8) string {
	if int(typeID) < len(typeNames) {
		return typeNames[typeID]
	}
	return fmt.Sprintf("type%d", typeID)
}

// String renders p compactly on one line; for example,
// "v1:lt[v6:lit(10) v2:lit(20)]".
func (p *Packet) String() string {
	var b []byte
	b = p.appendString(b)
	return string(b)
}

func (p *Packet) appendString(b []byte) []byte {
	b = fmt.Appendf(b, "v%d:%s", p.Version, TypeName(p.TypeID))
	switch c := p.Contents.(type) {
	case Literal:
		b = fmt.Appendf(b, "(%s)", c.Value)
	case Operator:
		b = append(b, '[')
		for i, child := range c.Children {
			if i > 0 {
				b = append(b, ' ')
			}
			b = child.appendString(b)
		}
		b = append(b, ']')
	}
	return b
}
