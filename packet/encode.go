package packet

import (
	"errors"
	"fmt"
)

// Encode serializes p into the transmission format. Literals use the fewest
// groups that hold their value. Operators use the bit-length form when the
// sub-packets fit in it and the sub-packet count form otherwise.
func Encode(p *Packet) (Bits, error) {
	var bits Bits
	if err := encode(&bits, p); err != nil {
		return Bits{}, err
	}
	return bits, nil
}

func encode(bits *Bits, p *Packet) error {
	if p.Version > 7 || p.TypeID > 7 {
		return fmt.Errorf("version %d / type ID %d does not fit in 3 bits", p.Version, p.TypeID)
	}
	bits.appendUint(uint64(p.Version), versionBits)
	bits.appendUint(uint64(p.TypeID), typeIDBits)

	switch c := p.Contents.(type) {
	case Literal:
		if p.TypeID != TypeLiteral {
			return fmt.Errorf("literal with type ID %d", p.TypeID)
		}
		if c.Value == nil || c.Value.Sign() < 0 {
			return errors.New("literal value must be non-negative")
		}
		groups := (c.Value.BitLen() + groupBits - 1) / groupBits
		if groups == 0 {
			groups = 1
		}
		for i := groups - 1; i >= 0; i-- {
			var g uint64
			for j := groupBits - 1; j >= 0; j-- {
				g = g<<1 | uint64(c.Value.Bit(i*groupBits+j))
			}
			var more uint64
			if i > 0 {
				more = 1
			}
			bits.appendUint(more, 1)
			bits.appendUint(g, groupBits)
		}
		return nil
	case Operator:
		if p.TypeID == TypeLiteral {
			return errors.New("operator with the literal type ID")
		}
		var sub Bits
		for _, child := range c.Children {
			if err := encode(&sub, child); err != nil {
				return err
			}
		}
		if sub.Len() < 1<<bitLengthBits {
			bits.appendUint(0, 1)
			bits.appendUint(uint64(sub.Len()), bitLengthBits)
		} else {
			if len(c.Children) >= 1<<subPacketsBits {
				return fmt.Errorf("operator has too many sub-packets (%d)", len(c.Children))
			}
			bits.appendUint(1, 1)
			bits.appendUint(uint64(len(c.Children)), subPacketsBits)
		}
		bits.appendBits(sub)
		return nil
	default:
		return fmt.Errorf("unexpected contents %T", c)
	}
}
