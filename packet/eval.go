package packet

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrArity is returned when a comparison operator has fewer than two
// sub-packets.
var ErrArity = errors.New("comparison needs two sub-packets")

type UnsupportedOperatorError struct {
	TypeID uint8
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator type ID %d", e.TypeID)
}

// VersionSum adds up the version numbers of p and all of its descendants.
func VersionSum(p *Packet) uint64 {
	sum := uint64(p.Version)
	for _, child := range p.Children() {
		sum += VersionSum(child)
	}
	return sum
}

// Evaluate computes the value of p. The result is a new big.Int that the
// caller owns.
func Evaluate(p *Packet) (*big.Int, error) {
	switch c := p.Contents.(type) {
	case Literal:
		return new(big.Int).Set(c.Value), nil
	case Operator:
		return evaluateOperator(p.TypeID, c.Children)
	default:
		panic(fmt.Sprintf("packet: unexpected contents %T", c))
	}
}

func evaluateOperator(typeID uint8, children []*Packet) (*big.Int, error) {
	switch typeID {
	case TypeSum, TypeProduct, TypeMin, TypeMax, TypeGreater, TypeLess, TypeEqual:
	default:
		return nil, &UnsupportedOperatorError{TypeID: typeID}
	}
	vals := make([]*big.Int, len(children))
	for i, child := range children {
		v, err := Evaluate(child)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}

	switch typeID {
	case TypeSum:
		sum := new(big.Int)
		for _, v := range vals {
			sum.Add(sum, v)
		}
		return sum, nil
	case TypeProduct:
		product := big.NewInt(1)
		for _, v := range vals {
			product.Mul(product, v)
		}
		return product, nil
	case TypeMin, TypeMax:
		if len(vals) == 0 {
			return new(big.Int), nil
		}
		m := vals[0]
		for _, v := range vals[1:] {
			c := v.Cmp(m)
			if (typeID == TypeMin && c < 0) || (typeID == TypeMax && c > 0) {
				m = v
			}
		}
		return m, nil
	}

	if len(vals) < 2 {
		return nil, ErrArity
	}
	c := vals[0].Cmp(vals[1])
	var ok bool
	switch typeID {
	case TypeGreater:
		ok = c > 0
	case TypeLess:
		ok = c < 0
	case TypeEqual:
		ok = c == 0
	}
	if ok {
		return big.NewInt(1), nil
	}
	return new(big.Int), nil
}
