// This file is part of Gossim.
//
// Gossim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gossim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gossim.  If not, see <https://www.gnu.org/licenses/>.

package values

import (
	"math/big"
	"math/bits"

	"github.com/gossim/gossim/curated"
)

// error patterns for the values package.
const (
	ErrConstruction          = "logicvalue: construction: %v"
	ErrWidthMismatch         = "logicvalue: width mismatch: %v"
	ErrIndex                 = "logicvalue: index: %v"
	ErrInvalidTruncation     = "logicvalue: invalid truncation: %v"
	ErrInvalidValueOperation = "logicvalue: invalid value operation: %v"
	ErrNonSupportedType      = "logicvalue: non-supported type: %v"
)

// fail is used for defects in the circuit description rather than runtime
// conditions. see the package documentation for the panic/error split.
func fail(pattern string, values ...interface{}) {
	panic(curated.Errorf(pattern, values...))
}

type repr byte

const (
	// the zero value of LogicValue must be the empty (zero-width) value so
	// filledRepr is deliberately first
	filledRepr repr = iota
	smallRepr
	bigRepr
)

// LogicValue is an immutable fixed-width vector of four-state bits.
//
// The zero value of the type is the zero-width value, which is also the
// identity element of concatenation.
type LogicValue struct {
	width int
	repr  repr

	// filledRepr: every bit position holds fill
	fill Bit

	// smallRepr: the low 'width' bits of v and inv are meaningful. bits
	// beyond the width are always clear
	v, inv uint64

	// bigRepr: non-negative magnitudes, always less than 2^width. never
	// mutated once stored
	bv, binv *big.Int
}

// mask64 returns a word with the low w bits set. w must be in the range 0 to
// 64.
func mask64(w int) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(w)) - 1
}

// bigMask returns 2^w - 1.
func bigMask(w int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(w))
	return m.Sub(m, big.NewInt(1))
}

func newSmall(w int, v uint64, inv uint64) LogicValue {
	m := mask64(w)
	return LogicValue{width: w, repr: smallRepr, v: v & m, inv: inv & m}
}

// newBig takes ownership of bv and binv. values no wider than a machine word
// are demoted to the small representation.
func newBig(w int, bv *big.Int, binv *big.Int) LogicValue {
	m := bigMask(w)
	bv.And(bv, m)
	binv.And(binv, m)
	if w <= 64 {
		return newSmall(w, bv.Uint64(), binv.Uint64())
	}
	return LogicValue{width: w, repr: bigRepr, bv: bv, binv: binv}
}

// words returns the value and invalid words for values no wider than a
// machine word.
func (lv LogicValue) words() (uint64, uint64) {
	switch lv.repr {
	case smallRepr:
		return lv.v, lv.inv
	case filledRepr:
		m := mask64(lv.width)
		var v, inv uint64
		if lv.fill.valueBit() == 1 {
			v = m
		}
		if lv.fill.invalidBit() == 1 {
			inv = m
		}
		return v, inv
	case bigRepr:
		// only possible through misuse inside this package
		return lv.bv.Uint64(), lv.binv.Uint64()
	}
	return 0, 0
}

// bigs returns the value and invalid magnitudes. the returned integers must
// be treated as read-only.
func (lv LogicValue) bigs() (*big.Int, *big.Int) {
	switch lv.repr {
	case bigRepr:
		return lv.bv, lv.binv
	case smallRepr:
		return new(big.Int).SetUint64(lv.v), new(big.Int).SetUint64(lv.inv)
	case filledRepr:
		var v, inv *big.Int
		if lv.fill.valueBit() == 1 {
			v = bigMask(lv.width)
		} else {
			v = big.NewInt(0)
		}
		if lv.fill.invalidBit() == 1 {
			inv = bigMask(lv.width)
		} else {
			inv = big.NewInt(0)
		}
		return v, inv
	}
	return nil, nil
}

func (lv LogicValue) bitAt(i int) Bit {
	switch lv.repr {
	case filledRepr:
		return lv.fill
	case smallRepr:
		return bitOf(uint(lv.v>>uint(i))&1, uint(lv.inv>>uint(i))&1)
	case bigRepr:
		return bitOf(lv.bv.Bit(i), lv.binv.Bit(i))
	}
	return Zero
}

// Width returns the number of bits in the value.
func (lv LogicValue) Width() int {
	return lv.width
}

// IsValid is true when no bit of the value is x or z.
func (lv LogicValue) IsValid() bool {
	switch lv.repr {
	case filledRepr:
		return lv.width == 0 || lv.fill.IsValid()
	case smallRepr:
		return lv.inv == 0
	case bigRepr:
		return lv.binv.Sign() == 0
	}
	return false
}

// IsFloating is true when every bit of the value is z. signal nets are
// floating from construction until their first put.
func (lv LogicValue) IsFloating() bool {
	return lv.width > 0 && lv.allIs(Z)
}

func (lv LogicValue) allIs(b Bit) bool {
	switch lv.repr {
	case filledRepr:
		return lv.fill == b
	case smallRepr:
		m := mask64(lv.width)
		return lv.v == b.valueBit()*m && lv.inv == b.invalidBit()*m
	case bigRepr:
		var wantV, wantInv *big.Int
		if b.valueBit() == 1 {
			wantV = bigMask(lv.width)
		} else {
			wantV = big.NewInt(0)
		}
		if b.invalidBit() == 1 {
			wantInv = bigMask(lv.width)
		} else {
			wantInv = big.NewInt(0)
		}
		return lv.bv.Cmp(wantV) == 0 && lv.binv.Cmp(wantInv) == 0
	}
	return false
}

// Equals compares two values structurally: widths must match and every bit
// must match, including x and z bits. the internal representation plays no
// part in the comparison.
func (lv LogicValue) Equals(o LogicValue) bool {
	if lv.width != o.width {
		return false
	}
	if lv.width == 0 {
		return true
	}
	if lv.width <= 64 {
		av, ai := lv.words()
		bv, bi := o.words()
		return av == bv && ai == bi
	}
	av, ai := lv.bigs()
	bv, bi := o.bigs()
	return av.Cmp(bv) == 0 && ai.Cmp(bi) == 0
}

// Bits returns the individual bits of the value. index 0 is the least
// significant bit.
func (lv LogicValue) Bits() []Bit {
	b := make([]Bit, lv.width)
	for i := 0; i < lv.width; i++ {
		b[i] = lv.bitAt(i)
	}
	return b
}

// Empty returns the zero-width value.
func Empty() LogicValue {
	return LogicValue{}
}

// Filled returns a value of the given width with every bit set to fill.
// negative widths and unknown fill bits are defects and cause a panic.
func Filled(width int, fill Bit) LogicValue {
	if width < 0 {
		fail(ErrConstruction, "negative width")
	}
	if fill > Z {
		fail(ErrConstruction, "unknown fill bit")
	}
	if width == 0 {
		return LogicValue{}
	}
	return LogicValue{width: width, repr: filledRepr, fill: fill}
}

// FromBool returns a 1-bit value: 1 for true and 0 for false.
func FromBool(b bool) LogicValue {
	if b {
		return Filled(1, One)
	}
	return Filled(1, Zero)
}

// FromUint builds a value of the given width from an unsigned integer. the
// integer must be representable in the given width.
func FromUint(v uint64, width int) (LogicValue, error) {
	if width < 0 {
		return LogicValue{}, curated.Errorf(ErrConstruction, "negative width")
	}
	if width < 64 && v>>uint(width) != 0 {
		return LogicValue{}, curated.Errorf(ErrConstruction,
			curated.Errorf("value %d does not fit in %d bits", v, width))
	}
	if width > 64 {
		return newBig(width, new(big.Int).SetUint64(v), big.NewInt(0)), nil
	}
	return newSmall(width, v, 0), nil
}

// FromInt builds a value of the given width from a signed integer,
// interpreted as two's-complement. the integer must be representable in the
// given width.
func FromInt(i int64, width int) (LogicValue, error) {
	if width < 0 {
		return LogicValue{}, curated.Errorf(ErrConstruction, "negative width")
	}
	if i >= 0 {
		return FromUint(uint64(i), width)
	}
	if width < 64 && (width == 0 || i < -(int64(1)<<uint(width-1))) {
		return LogicValue{}, curated.Errorf(ErrConstruction,
			curated.Errorf("value %d does not fit in %d bits", i, width))
	}
	if width > 64 {
		b := big.NewInt(i)
		b.Add(b, new(big.Int).Lsh(big.NewInt(1), uint(width)))
		return newBig(width, b, big.NewInt(0)), nil
	}
	return newSmall(width, uint64(i), 0), nil
}

// FromBigInt builds a value of the given width from an arbitrary precision
// integer. negative integers are interpreted as two's-complement. the
// integer must be representable in the given width.
func FromBigInt(b *big.Int, width int) (LogicValue, error) {
	if b == nil {
		return LogicValue{}, curated.Errorf(ErrConstruction, "nil big integer")
	}
	if width < 0 {
		return LogicValue{}, curated.Errorf(ErrConstruction, "negative width")
	}

	lim := new(big.Int).Lsh(big.NewInt(1), uint(width))
	if b.Sign() >= 0 {
		if b.Cmp(lim) >= 0 {
			return LogicValue{}, curated.Errorf(ErrConstruction,
				curated.Errorf("value %s does not fit in %d bits", b.String(), width))
		}
		return newBig(width, new(big.Int).Set(b), big.NewInt(0)), nil
	}

	if width == 0 {
		return LogicValue{}, curated.Errorf(ErrConstruction,
			curated.Errorf("value %s does not fit in %d bits", b.String(), width))
	}
	min := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(width)-1))
	if b.Cmp(min) < 0 {
		return LogicValue{}, curated.Errorf(ErrConstruction,
			curated.Errorf("value %s does not fit in %d bits", b.String(), width))
	}
	return newBig(width, new(big.Int).Add(b, lim), big.NewInt(0)), nil
}

// FromBits builds a value from individual bits. index 0 of the slice is the
// least significant bit.
func FromBits(b []Bit) (LogicValue, error) {
	if len(b) == 0 {
		return LogicValue{}, nil
	}
	if len(b) <= 64 {
		var v, inv uint64
		for i, bit := range b {
			if bit > Z {
				return LogicValue{}, curated.Errorf(ErrConstruction, "unknown bit")
			}
			v |= bit.valueBit() << uint(i)
			inv |= bit.invalidBit() << uint(i)
		}
		return newSmall(len(b), v, inv), nil
	}

	bv := new(big.Int)
	binv := new(big.Int)
	for i, bit := range b {
		if bit > Z {
			return LogicValue{}, curated.Errorf(ErrConstruction, "unknown bit")
		}
		bv.SetBit(bv, i, uint(bit.valueBit()))
		binv.SetBit(binv, i, uint(bit.invalidBit()))
	}
	return newBig(len(b), bv, binv), nil
}

// FromString parses a bit-string written most significant bit first, using
// the digits 0, 1, x and z. underscores may be used as separators and are
// ignored. the width of the result is the number of digit characters.
func FromString(s string) (LogicValue, error) {
	var b []Bit
	for _, r := range s {
		if r == '_' {
			continue
		}
		bit, ok := bitFromRune(r)
		if !ok {
			return LogicValue{}, curated.Errorf(ErrConstruction,
				curated.Errorf("unrecognised character %q", r))
		}
		b = append(b, bit)
	}

	// reverse to LSB first
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return FromBits(b)
}

// Infer builds a value whose width is the smallest that can hold the given
// quantity (never less than one bit). accepted types are int, int64, uint64,
// *big.Int and LogicValue. negative quantities have no inferable width.
func Infer(v interface{}) (LogicValue, error) {
	switch v := v.(type) {
	case LogicValue:
		return v, nil
	case int:
		return Infer(int64(v))
	case int64:
		if v < 0 {
			return LogicValue{}, curated.Errorf(ErrConstruction,
				"cannot infer a width for a negative value")
		}
		return Infer(uint64(v))
	case uint64:
		w := bits.Len64(v)
		if w == 0 {
			w = 1
		}
		return FromUint(v, w)
	case *big.Int:
		if v == nil {
			return LogicValue{}, curated.Errorf(ErrConstruction, "nil big integer")
		}
		if v.Sign() < 0 {
			return LogicValue{}, curated.Errorf(ErrConstruction,
				"cannot infer a width for a negative value")
		}
		w := v.BitLen()
		if w == 0 {
			w = 1
		}
		return FromBigInt(v, w)
	}
	return LogicValue{}, curated.Errorf(ErrNonSupportedType, curated.Errorf("%T", v))
}

// MustFromUint is like FromUint but panics on error. for use during circuit
// elaboration.
func MustFromUint(v uint64, width int) LogicValue {
	lv, err := FromUint(v, width)
	if err != nil {
		panic(err)
	}
	return lv
}

// MustFromInt is like FromInt but panics on error.
func MustFromInt(i int64, width int) LogicValue {
	lv, err := FromInt(i, width)
	if err != nil {
		panic(err)
	}
	return lv
}

// MustFromString is like FromString but panics on error.
func MustFromString(s string) LogicValue {
	lv, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return lv
}
