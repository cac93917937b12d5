package packet

import (
	"fmt"
	"strings"
)

// Bits is an immutable sequence of bits, most significant bit first.
type Bits struct {
	b []byte
	n int
}

// HexError reports a character in a hex transmission that is neither a hex
// digit nor whitespace.
type HexError struct {
	Offset int
	Char   byte
}

func (e *HexError) Error() string {
	return fmt.Sprintf("invalid hex character %q at offset %d", e.Char, e.Offset)
}

// FromHex expands a hex string into 4 bits per digit. Whitespace is ignored.
func FromHex(s string) (Bits, error) {
	var bits Bits
	bits.b = make([]byte, 0, (len(s)+1)/2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		var v byte
		switch {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'A' && c <= 'F':
			v = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		case c == ' ', c == '\t', c == '\r', c == '\n':
			continue
		default:
			return Bits{}, &HexError{Offset: i, Char: c}
		}
		bits.appendUint(uint64(v), 4)
	}
	return bits, nil
}

// Len returns the number of bits in b.
func (b Bits) Len() int { return b.n }

// Bit reports whether bit i is set.
func (b Bits) Bit(i int) bool {
	if i < 0 || i >= b.n {
		panic("packet: bit index out of range")
	}
	return b.b[i/8]&(0x80>>(i%8)) != 0
}

// Uint reads n bits (at most 64) starting at pos as an unsigned integer.
// It returns ErrTruncated if fewer than n bits remain.
func (b Bits) Uint(pos, n int) (uint64, error) {
	return b.uintBefore(pos, n, b.n)
}

func (b Bits) uintBefore(pos, n, end int) (uint64, error) {
	if n > 64 {
		panic("packet: Uint reads at most 64 bits")
	}
	if pos < 0 || pos+n > end {
		return 0, ErrTruncated
	}
	var v uint64
	for i := pos; i < pos+n; i++ {
		v <<= 1
		if b.Bit(i) {
			v |= 1
		}
	}
	return v, nil
}

func (b *Bits) appendUint(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		if b.n%8 == 0 {
			b.b = append(b.b, 0)
		}
		if v&(1<<uint(i)) != 0 {
			b.b[b.n/8] |= 0x80 >> (b.n % 8)
		}
		b.n++
	}
}

func (b *Bits) appendBits(b1 Bits) {
	for i := 0; i < b1.n; i++ {
		var v uint64
		if b1.Bit(i) {
			v = 1
		}
		b.appendUint(v, 1)
	}
}

// String renders b as a string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Hex renders b as upper-case hex digits, zero-padding the final digit.
func (b Bits) Hex() string {
	const digits = "0123456789ABCDEF"
	var sb strings.Builder
	for pos := 0; pos < b.n; pos += 4 {
		var v uint64
		for i := pos; i < pos+4; i++ {
			v <<= 1
			if i < b.n && b.Bit(i) {
				v |= 1
			}
		}
		sb.WriteByte(digits[v])
	}
	return sb.String()
}
