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

// Eq returns a 1-bit value: 1 when both operands are fully valid and equal,
// 0 when both are fully valid and unequal, x when either operand carries an
// invalid bit.
func (lv LogicValue) Eq(o LogicValue) LogicValue {
	lv.checkWidth(o)
	if !lv.IsValid() || !o.IsValid() {
		return Filled(1, X)
	}
	if lv.Equals(o) {
		return Filled(1, One)
	}
	return Filled(1, Zero)
}

// Neq is the complement of Eq. invalid operands give x.
func (lv LogicValue) Neq(o LogicValue) LogicValue {
	return lv.Eq(o).Not()
}

// unsigned magnitude comparison. operands must be fully valid.
func (lv LogicValue) ucmp(o LogicValue) int {
	if lv.width <= 64 {
		av, _ := lv.words()
		bv, _ := o.words()
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
		return 0
	}
	av, _ := lv.bigs()
	bv, _ := o.bigs()
	return av.Cmp(bv)
}

func (lv LogicValue) compare(o LogicValue, want func(int) bool) LogicValue {
	lv.checkWidth(o)
	if !lv.IsValid() || !o.IsValid() {
		return Filled(1, X)
	}
	if want(lv.ucmp(o)) {
		return Filled(1, One)
	}
	return Filled(1, Zero)
}

// Lt compares two equal-width values as unsigned integers. the result is a
// single bit; x when either operand carries an invalid bit.
func (lv LogicValue) Lt(o LogicValue) LogicValue {
	return lv.compare(o, func(c int) bool { return c < 0 })
}

// Lte is the less-than-or-equal companion of Lt.
func (lv LogicValue) Lte(o LogicValue) LogicValue {
	return lv.compare(o, func(c int) bool { return c <= 0 })
}

// Gt compares two equal-width values as unsigned integers.
func (lv LogicValue) Gt(o LogicValue) LogicValue {
	return lv.compare(o, func(c int) bool { return c > 0 })
}

// Gte is the greater-than-or-equal companion of Gt.
func (lv LogicValue) Gte(o LogicValue) LogicValue {
	return lv.compare(o, func(c int) bool { return c >= 0 })
}

// EqualsWithDontCare compares two equal-width values treating x and z bits
// on either side as wildcards. positions where both sides are valid must
// match.
func (lv LogicValue) EqualsWithDontCare(o LogicValue) bool {
	lv.checkWidth(o)
	for i := 0; i < lv.width; i++ {
		a := lv.bitAt(i)
		b := o.bitAt(i)
		if a.IsValid() && b.IsValid() && a != b {
			return false
		}
	}
	return true
}
