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

// the four-state tables treat z identically to x on input. the dominance
// rules are: AND with a definite 0 is 0, OR with a definite 1 is 1, XOR with
// any invalid input is x.

func (lv LogicValue) checkWidth(o LogicValue) {
	if lv.width != o.width {
		fail(ErrWidthMismatch, curated.Errorf("%d bits and %d bits", lv.width, o.width))
	}
}

// Not returns the per-bit inversion of the value. inverting x or z gives x.
func (lv LogicValue) Not() LogicValue {
	if lv.width == 0 {
		return lv
	}
	if lv.width <= 64 {
		v, inv := lv.words()
		return newSmall(lv.width, ^v&^inv, inv)
	}

	bv, binv := lv.bigs()
	m := bigMask(lv.width)
	rv := new(big.Int).AndNot(m, bv)
	rv.AndNot(rv, binv)
	return newBig(lv.width, rv, new(big.Int).Set(binv))
}

// And returns the per-bit conjunction of two equal-width values.
func (lv LogicValue) And(o LogicValue) LogicValue {
	lv.checkWidth(o)
	if lv.width == 0 {
		return lv
	}
	if lv.width <= 64 {
		av, ai := lv.words()
		bv, bi := o.words()
		zero := (^av & ^ai) | (^bv & ^bi)
		inv := (ai | bi) &^ zero
		one := (av &^ ai) & (bv &^ bi)
		return newSmall(lv.width, one, inv)
	}

	av, ai := lv.bigs()
	bv, bi := o.bigs()
	m := bigMask(lv.width)

	zero := new(big.Int).Or(
		new(big.Int).AndNot(new(big.Int).AndNot(m, av), ai),
		new(big.Int).AndNot(new(big.Int).AndNot(m, bv), bi))
	inv := new(big.Int).AndNot(new(big.Int).Or(ai, bi), zero)
	one := new(big.Int).And(new(big.Int).AndNot(av, ai), new(big.Int).AndNot(bv, bi))
	return newBig(lv.width, one, inv)
}

// Or returns the per-bit disjunction of two equal-width values.
func (lv LogicValue) Or(o LogicValue) LogicValue {
	lv.checkWidth(o)
	if lv.width == 0 {
		return lv
	}
	if lv.width <= 64 {
		av, ai := lv.words()
		bv, bi := o.words()
		one := (av &^ ai) | (bv &^ bi)
		inv := (ai | bi) &^ one
		return newSmall(lv.width, one, inv)
	}

	av, ai := lv.bigs()
	bv, bi := o.bigs()

	one := new(big.Int).Or(new(big.Int).AndNot(av, ai), new(big.Int).AndNot(bv, bi))
	inv := new(big.Int).AndNot(new(big.Int).Or(ai, bi), one)
	return newBig(lv.width, new(big.Int).Set(one), inv)
}

// Xor returns the per-bit exclusive-or of two equal-width values.
func (lv LogicValue) Xor(o LogicValue) LogicValue {
	lv.checkWidth(o)
	if lv.width == 0 {
		return lv
	}
	if lv.width <= 64 {
		av, ai := lv.words()
		bv, bi := o.words()
		inv := ai | bi
		return newSmall(lv.width, (av^bv)&^inv, inv)
	}

	av, ai := lv.bigs()
	bv, bi := o.bigs()

	inv := new(big.Int).Or(ai, bi)
	rv := new(big.Int).AndNot(new(big.Int).Xor(av, bv), inv)
	return newBig(lv.width, rv, new(big.Int).Set(inv))
}

// AndReduce collapses the value to a single bit: 0 if any bit is a definite
// 0, x if any remaining bit is invalid, 1 otherwise. reducing a zero-width
// value gives 1, the conjunction of nothing.
func (lv LogicValue) AndReduce() LogicValue {
	for i := 0; i < lv.width; i++ {
		if lv.bitAt(i) == Zero {
			return Filled(1, Zero)
		}
	}
	if !lv.IsValid() {
		return Filled(1, X)
	}
	return Filled(1, One)
}

// OrReduce collapses the value to a single bit: 1 if any bit is a definite 1,
// x if any remaining bit is invalid, 0 otherwise.
func (lv LogicValue) OrReduce() LogicValue {
	for i := 0; i < lv.width; i++ {
		if lv.bitAt(i) == One {
			return Filled(1, One)
		}
	}
	if !lv.IsValid() {
		return Filled(1, X)
	}
	return Filled(1, Zero)
}

// XorReduce collapses the value to its single-bit parity; x if any bit is
// invalid.
func (lv LogicValue) XorReduce() LogicValue {
	if !lv.IsValid() {
		return Filled(1, X)
	}

	var parity int
	if lv.width <= 64 {
		v, _ := lv.words()
		parity = bits.OnesCount64(v)
	} else {
		bv, _ := lv.bigs()
		for _, w := range bv.Bits() {
			parity += bits.OnesCount(uint(w))
		}
	}

	if parity&1 == 1 {
		return Filled(1, One)
	}
	return Filled(1, Zero)
}
