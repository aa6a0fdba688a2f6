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

	"github.com/gossim/gossim/curated"
)

// normalise a bit index: negative indices count back from the most
// significant bit, so -1 is the MSB.
func (lv LogicValue) index(i int) int {
	n := i
	if n < 0 {
		n += lv.width
	}
	if n < 0 || n >= lv.width {
		fail(ErrIndex, curated.Errorf("index %d out of range for width %d", i, lv.width))
	}
	return n
}

// Get returns the single bit at the given position as a 1-bit value. index 0
// is the least significant bit; negative indices count back from the most
// significant bit.
func (lv LogicValue) Get(i int) LogicValue {
	return Filled(1, lv.bitAt(lv.index(i)))
}

// Range returns the half-open bit range [start, end). negative endpoints
// count back from the most significant bit. start equal to end gives the
// zero-width value.
func (lv LogicValue) Range(start int, end int) LogicValue {
	s := start
	if s < 0 {
		s += lv.width
	}
	e := end
	if e < 0 {
		e += lv.width
	}
	if s < 0 || e > lv.width {
		fail(ErrIndex, curated.Errorf("range [%d, %d) out of range for width %d", start, end, lv.width))
	}
	if s > e {
		fail(ErrIndex, curated.Errorf("range [%d, %d) in the wrong order", start, end))
	}
	if s == e {
		return Empty()
	}

	w := e - s
	if lv.width <= 64 {
		v, inv := lv.words()
		return newSmall(w, v>>uint(s), inv>>uint(s))
	}
	bv, binv := lv.bigs()
	return newBig(w, new(big.Int).Rsh(bv, uint(s)), new(big.Int).Rsh(binv, uint(s)))
}

// Slice returns the inclusive bit range between the two endpoints. when
// a < b the natural subrange is returned, with bit a in the least
// significant position; when a > b the subrange is reversed, with bit a
// still in the least significant position. negative endpoints count back
// from the most significant bit.
func (lv LogicValue) Slice(a int, b int) LogicValue {
	an := lv.index(a)
	bn := lv.index(b)
	if an <= bn {
		return lv.Range(an, bn+1)
	}
	return lv.Range(bn, an+1).Reversed()
}

// Reversed returns the value with its bit order swapped end to end.
func (lv LogicValue) Reversed() LogicValue {
	if lv.width == 0 {
		return lv
	}
	if lv.repr == filledRepr {
		return lv
	}

	b := lv.Bits()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	r, _ := FromBits(b)
	return r
}

// Swizzle concatenates the given values with the first at the most
// significant end. the width of the result is the sum of the component
// widths; zero-width components are the identity.
func Swizzle(vs []LogicValue) LogicValue {
	w := 0
	for _, v := range vs {
		w += v.width
	}
	b := make([]Bit, 0, w)
	for i := len(vs) - 1; i >= 0; i-- {
		b = append(b, vs[i].Bits()...)
	}
	r, _ := FromBits(b)
	return r
}

// RSwizzle concatenates the given values with the first at the least
// significant end.
func RSwizzle(vs []LogicValue) LogicValue {
	w := 0
	for _, v := range vs {
		w += v.width
	}
	b := make([]Bit, 0, w)
	for _, v := range vs {
		b = append(b, v.Bits()...)
	}
	r, _ := FromBits(b)
	return r
}
