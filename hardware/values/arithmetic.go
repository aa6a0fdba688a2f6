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

import "math/big"

// arithmetic is unsigned and wraps modulo 2^width. any invalid bit in any
// operand produces an all-x result of the same width. division and modulo by
// zero also produce all-x; in four-state logic an impossible quantity is an
// unknown quantity, not a halt.

func (lv LogicValue) arithReady(o LogicValue) bool {
	lv.checkWidth(o)
	return lv.IsValid() && o.IsValid()
}

// Add returns the sum of two equal-width values, wrapping on overflow.
func (lv LogicValue) Add(o LogicValue) LogicValue {
	if !lv.arithReady(o) {
		return Filled(lv.width, X)
	}
	if lv.width <= 64 {
		av, _ := lv.words()
		bv, _ := o.words()
		return newSmall(lv.width, av+bv, 0)
	}
	av, _ := lv.bigs()
	bv, _ := o.bigs()
	return newBig(lv.width, new(big.Int).Add(av, bv), big.NewInt(0))
}

// Sub returns the difference of two equal-width values, wrapping when the
// subtrahend is the larger.
func (lv LogicValue) Sub(o LogicValue) LogicValue {
	if !lv.arithReady(o) {
		return Filled(lv.width, X)
	}
	if lv.width <= 64 {
		av, _ := lv.words()
		bv, _ := o.words()
		return newSmall(lv.width, av-bv, 0)
	}
	av, _ := lv.bigs()
	bv, _ := o.bigs()
	r := new(big.Int).Sub(av, bv)
	if r.Sign() < 0 {
		r.Add(r, new(big.Int).Lsh(big.NewInt(1), uint(lv.width)))
	}
	return newBig(lv.width, r, big.NewInt(0))
}

// Mul returns the product of two equal-width values, truncated to width.
func (lv LogicValue) Mul(o LogicValue) LogicValue {
	if !lv.arithReady(o) {
		return Filled(lv.width, X)
	}
	if lv.width <= 64 {
		av, _ := lv.words()
		bv, _ := o.words()
		return newSmall(lv.width, av*bv, 0)
	}
	av, _ := lv.bigs()
	bv, _ := o.bigs()
	return newBig(lv.width, new(big.Int).Mul(av, bv), big.NewInt(0))
}

// Div returns the integer quotient of two equal-width values. division by
// zero gives all-x.
func (lv LogicValue) Div(o LogicValue) LogicValue {
	if !lv.arithReady(o) {
		return Filled(lv.width, X)
	}
	if lv.width <= 64 {
		av, _ := lv.words()
		bv, _ := o.words()
		if bv == 0 {
			return Filled(lv.width, X)
		}
		return newSmall(lv.width, av/bv, 0)
	}
	av, _ := lv.bigs()
	bv, _ := o.bigs()
	if bv.Sign() == 0 {
		return Filled(lv.width, X)
	}
	return newBig(lv.width, new(big.Int).Div(av, bv), big.NewInt(0))
}

// Mod returns the remainder of two equal-width values. modulo by zero gives
// all-x.
func (lv LogicValue) Mod(o LogicValue) LogicValue {
	if !lv.arithReady(o) {
		return Filled(lv.width, X)
	}
	if lv.width <= 64 {
		av, _ := lv.words()
		bv, _ := o.words()
		if bv == 0 {
			return Filled(lv.width, X)
		}
		return newSmall(lv.width, av%bv, 0)
	}
	av, _ := lv.bigs()
	bv, _ := o.bigs()
	if bv.Sign() == 0 {
		return Filled(lv.width, X)
	}
	return newBig(lv.width, new(big.Int).Mod(av, bv), big.NewInt(0))
}

// Pow raises the value to the power of an equal-width exponent, truncating
// to width as it goes. an exponent whose magnitude does not fit in a machine
// word is a defect and causes a panic.
func (lv LogicValue) Pow(o LogicValue) LogicValue {
	lv.checkWidth(o)
	if !lv.IsValid() || !o.IsValid() {
		return Filled(lv.width, X)
	}

	ev, _ := o.bigs()
	if ev.BitLen() > 64 {
		fail(ErrInvalidTruncation, "exponent does not fit in a machine word")
	}
	if lv.width == 0 {
		return lv
	}

	av, _ := lv.bigs()
	mod := new(big.Int).Lsh(big.NewInt(1), uint(lv.width))
	return newBig(lv.width, new(big.Int).Exp(av, ev, mod), big.NewInt(0))
}

// Abs reinterprets the value as two's-complement: if the sign bit is set the
// result is the negation truncated to width, otherwise the value is
// unchanged.
func (lv LogicValue) Abs() LogicValue {
	if lv.width == 0 {
		return lv
	}
	if !lv.IsValid() {
		return Filled(lv.width, X)
	}
	if lv.bitAt(lv.width-1) != One {
		return lv
	}
	if lv.width <= 64 {
		v, _ := lv.words()
		return newSmall(lv.width, ^v+1, 0)
	}
	bv, _ := lv.bigs()
	lim := new(big.Int).Lsh(big.NewInt(1), uint(lv.width))
	return newBig(lv.width, new(big.Int).Sub(lim, bv), big.NewInt(0))
}
