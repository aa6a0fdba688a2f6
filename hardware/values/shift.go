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

// shift amounts may be given as an int, int64, uint64, *big.Int or
// LogicValue. the amount is normalised to the range 0 to width: anything
// larger, including a negative amount, saturates at the width and shifts
// every original bit out. the boolean return is false when a LogicValue
// amount carries invalid bits, in which case the shift result is all-x.
func shiftAmount(s interface{}, width int) (int, bool) {
	switch s := s.(type) {
	case int:
		if s < 0 || s > width {
			return width, true
		}
		return s, true
	case int64:
		if s < 0 || s > int64(width) {
			return width, true
		}
		return int(s), true
	case uint64:
		if s > uint64(width) {
			return width, true
		}
		return int(s), true
	case *big.Int:
		if s == nil {
			fail(ErrNonSupportedType, "nil big integer shift amount")
		}
		if s.Sign() < 0 || s.Cmp(big.NewInt(int64(width))) > 0 {
			return width, true
		}
		return int(s.Int64()), true
	case LogicValue:
		if !s.IsValid() {
			return 0, false
		}
		bv, _ := s.bigs()
		if bv.Cmp(big.NewInt(int64(width))) > 0 {
			return width, true
		}
		return int(bv.Int64()), true
	}
	fail(ErrNonSupportedType, curated.Errorf("shift amount of type %T", s))
	return 0, false
}

// Shl shifts the value left, filling vacated low bits with 0.
func (lv LogicValue) Shl(shamt interface{}) LogicValue {
	n, ok := shiftAmount(shamt, lv.width)
	if !ok {
		return Filled(lv.width, X)
	}
	if n == 0 || lv.width == 0 {
		return lv
	}
	if n >= lv.width {
		return Filled(lv.width, Zero)
	}

	if lv.width <= 64 {
		v, inv := lv.words()
		return newSmall(lv.width, v<<uint(n), inv<<uint(n))
	}
	bv, binv := lv.bigs()
	return newBig(lv.width, new(big.Int).Lsh(bv, uint(n)), new(big.Int).Lsh(binv, uint(n)))
}

// Shr shifts the value right logically, filling vacated high bits with 0.
func (lv LogicValue) Shr(shamt interface{}) LogicValue {
	n, ok := shiftAmount(shamt, lv.width)
	if !ok {
		return Filled(lv.width, X)
	}
	if n == 0 || lv.width == 0 {
		return lv
	}
	if n >= lv.width {
		return Filled(lv.width, Zero)
	}

	if lv.width <= 64 {
		v, inv := lv.words()
		return newSmall(lv.width, v>>uint(n), inv>>uint(n))
	}
	bv, binv := lv.bigs()
	return newBig(lv.width, new(big.Int).Rsh(bv, uint(n)), new(big.Int).Rsh(binv, uint(n)))
}

// Sra shifts the value right arithmetically, replicating the most
// significant bit into the vacated positions. an x or z sign bit replicates
// as x.
func (lv LogicValue) Sra(shamt interface{}) LogicValue {
	n, ok := shiftAmount(shamt, lv.width)
	if !ok {
		return Filled(lv.width, X)
	}
	if n == 0 || lv.width == 0 {
		return lv
	}

	sign := lv.bitAt(lv.width - 1)
	if !sign.IsValid() {
		sign = X
	}
	if n >= lv.width {
		return Filled(lv.width, sign)
	}

	if lv.width <= 64 {
		v, inv := lv.words()
		top := mask64(lv.width) &^ mask64(lv.width-n)
		rv := v >> uint(n)
		rinv := inv >> uint(n)
		if sign.valueBit() == 1 {
			rv |= top
		}
		if sign.invalidBit() == 1 {
			rinv |= top
		}
		return newSmall(lv.width, rv, rinv)
	}

	bv, binv := lv.bigs()
	top := new(big.Int).AndNot(bigMask(lv.width), bigMask(lv.width-n))
	rv := new(big.Int).Rsh(bv, uint(n))
	rinv := new(big.Int).Rsh(binv, uint(n))
	if sign.valueBit() == 1 {
		rv.Or(rv, top)
	}
	if sign.invalidBit() == 1 {
		rinv.Or(rinv, top)
	}
	return newBig(lv.width, rv, rinv)
}
