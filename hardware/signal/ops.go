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

package signal

import (
	"github.com/gossim/gossim/curated"
	"github.com/gossim/gossim/hardware/values"
)

// Op describes an operator net for external consumers: the netlist emitter
// walks the graph through these descriptors. Variant tags are stable.
type Op struct {
	Variant string
	Inputs  []*Logic
	Output  *Logic
}

// operator builds a net whose value follows compute() over the input nets.
// the initial value is computed immediately so that combinational fan-out
// holds a deterministic value before anything has been put.
func operator(variant string, width int, ins []*Logic, compute func() values.LogicValue) *Logic {
	out := NewLogic(variant, width)
	out.hasDriver = true
	out.op = &Op{Variant: variant, Inputs: ins, Output: out}

	recompute := func(Changed) {
		out.set(compute())
	}
	for _, in := range ins {
		in.listen(recompute)
	}

	out.set(compute())
	return out
}

// Not returns a net following the per-bit inversion of a.
func Not(a *Logic) *Logic {
	return operator("not", a.width, []*Logic{a}, func() values.LogicValue {
		return a.value.Not()
	})
}

// And returns a net following the per-bit conjunction of two equal-width
// nets.
func And(a *Logic, b *Logic) *Logic {
	return operator("and", a.width, []*Logic{a, b}, func() values.LogicValue {
		return a.value.And(b.value)
	})
}

// Or returns a net following the per-bit disjunction of two equal-width
// nets.
func Or(a *Logic, b *Logic) *Logic {
	return operator("or", a.width, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Or(b.value)
	})
}

// Xor returns a net following the per-bit exclusive-or of two equal-width
// nets.
func Xor(a *Logic, b *Logic) *Logic {
	return operator("xor", a.width, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Xor(b.value)
	})
}

// AndReduce returns a 1-bit net following the AND reduction of a.
func AndReduce(a *Logic) *Logic {
	return operator("andReduce", 1, []*Logic{a}, func() values.LogicValue {
		return a.value.AndReduce()
	})
}

// OrReduce returns a 1-bit net following the OR reduction of a.
func OrReduce(a *Logic) *Logic {
	return operator("orReduce", 1, []*Logic{a}, func() values.LogicValue {
		return a.value.OrReduce()
	})
}

// XorReduce returns a 1-bit net following the parity of a.
func XorReduce(a *Logic) *Logic {
	return operator("xorReduce", 1, []*Logic{a}, func() values.LogicValue {
		return a.value.XorReduce()
	})
}

// Add returns a net following the wrapping sum of two equal-width nets.
func Add(a *Logic, b *Logic) *Logic {
	return operator("add", a.width, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Add(b.value)
	})
}

// Sub returns a net following the wrapping difference of two equal-width
// nets.
func Sub(a *Logic, b *Logic) *Logic {
	return operator("sub", a.width, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Sub(b.value)
	})
}

// Mul returns a net following the truncated product of two equal-width
// nets.
func Mul(a *Logic, b *Logic) *Logic {
	return operator("mul", a.width, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Mul(b.value)
	})
}

// Div returns a net following the integer quotient of two equal-width nets.
func Div(a *Logic, b *Logic) *Logic {
	return operator("div", a.width, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Div(b.value)
	})
}

// Mod returns a net following the remainder of two equal-width nets.
func Mod(a *Logic, b *Logic) *Logic {
	return operator("mod", a.width, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Mod(b.value)
	})
}

// Eq returns a 1-bit net: 1 when the operands are valid and equal, 0 when
// valid and unequal, x otherwise.
func Eq(a *Logic, b *Logic) *Logic {
	return operator("eq", 1, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Eq(b.value)
	})
}

// Neq is the complement of Eq.
func Neq(a *Logic, b *Logic) *Logic {
	return operator("neq", 1, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Neq(b.value)
	})
}

// Lt returns a 1-bit net comparing the operands as unsigned integers.
func Lt(a *Logic, b *Logic) *Logic {
	return operator("lt", 1, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Lt(b.value)
	})
}

// Lte returns a 1-bit net comparing the operands as unsigned integers.
func Lte(a *Logic, b *Logic) *Logic {
	return operator("lte", 1, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Lte(b.value)
	})
}

// Gt returns a 1-bit net comparing the operands as unsigned integers.
func Gt(a *Logic, b *Logic) *Logic {
	return operator("gt", 1, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Gt(b.value)
	})
}

// Gte returns a 1-bit net comparing the operands as unsigned integers.
func Gte(a *Logic, b *Logic) *Logic {
	return operator("gte", 1, []*Logic{a, b}, func() values.LogicValue {
		return a.value.Gte(b.value)
	})
}

// Shl returns a net following a shifted left by the value of the shamt net.
func Shl(a *Logic, shamt *Logic) *Logic {
	return operator("shl", a.width, []*Logic{a, shamt}, func() values.LogicValue {
		return a.value.Shl(shamt.value)
	})
}

// Shr returns a net following a shifted right logically by the value of the
// shamt net.
func Shr(a *Logic, shamt *Logic) *Logic {
	return operator("shr", a.width, []*Logic{a, shamt}, func() values.LogicValue {
		return a.value.Shr(shamt.value)
	})
}

// Sra returns a net following a shifted right arithmetically by the value
// of the shamt net.
func Sra(a *Logic, shamt *Logic) *Logic {
	return operator("sra", a.width, []*Logic{a, shamt}, func() values.LogicValue {
		return a.value.Sra(shamt.value)
	})
}

// ShlInt, ShrInt and SraInt shift by a fixed amount.
func ShlInt(a *Logic, n int) *Logic {
	return operator("shl", a.width, []*Logic{a}, func() values.LogicValue {
		return a.value.Shl(n)
	})
}

// ShrInt shifts right logically by a fixed amount.
func ShrInt(a *Logic, n int) *Logic {
	return operator("shr", a.width, []*Logic{a}, func() values.LogicValue {
		return a.value.Shr(n)
	})
}

// SraInt shifts right arithmetically by a fixed amount.
func SraInt(a *Logic, n int) *Logic {
	return operator("sra", a.width, []*Logic{a}, func() values.LogicValue {
		return a.value.Sra(n)
	})
}

// Index returns a 1-bit net following a single bit of a. negative indices
// count back from the most significant bit.
func Index(a *Logic, i int) *Logic {
	// resolve the index once so a defect surfaces at elaboration
	_ = a.value.Get(i)
	return operator("index", 1, []*Logic{a}, func() values.LogicValue {
		return a.value.Get(i)
	})
}

// Range returns a net following the half-open bit range [start, end) of a.
// the range cannot be empty: a zero-width net does not exist.
func Range(a *Logic, start int, end int) *Logic {
	w := a.value.Range(start, end).Width()
	if w < 1 {
		fail(ErrIllegalConfiguration, "an empty range cannot drive a net")
	}
	return operator("range", w, []*Logic{a}, func() values.LogicValue {
		return a.value.Range(start, end)
	})
}

// Slice returns a net following the inclusive, possibly reversed, bit range
// of a between the two endpoints.
func Slice(a *Logic, x int, y int) *Logic {
	w := a.value.Slice(x, y).Width()
	return operator("slice", w, []*Logic{a}, func() values.LogicValue {
		return a.value.Slice(x, y)
	})
}

// Reversed returns a net following a with its bit order swapped.
func Reversed(a *Logic) *Logic {
	return operator("reversed", a.width, []*Logic{a}, func() values.LogicValue {
		return a.value.Reversed()
	})
}

// Swizzle returns a net following the catenation of the given nets, with
// the first at the most significant end.
func Swizzle(ins []*Logic) *Logic {
	w := 0
	for _, in := range ins {
		w += in.width
	}
	return operator("swizzle", w, ins, func() values.LogicValue {
		vs := make([]values.LogicValue, len(ins))
		for i, in := range ins {
			vs[i] = in.value
		}
		return values.Swizzle(vs)
	})
}

// RSwizzle returns a net following the catenation of the given nets, with
// the first at the least significant end.
func RSwizzle(ins []*Logic) *Logic {
	w := 0
	for _, in := range ins {
		w += in.width
	}
	return operator("rswizzle", w, ins, func() values.LogicValue {
		vs := make([]values.LogicValue, len(ins))
		for i, in := range ins {
			vs[i] = in.value
		}
		return values.RSwizzle(vs)
	})
}

// Mux returns a net following one of two equal-width nets, selected by a
// 1-bit net: onTrue when the selector is 1, onFalse when it is 0, all-x
// when the selector is invalid.
func Mux(sel *Logic, onTrue *Logic, onFalse *Logic) *Logic {
	if sel.width != 1 {
		fail(ErrWidthMismatch,
			curated.Errorf("mux selector must be one bit, not %d", sel.width))
	}
	if onTrue.width != onFalse.width {
		fail(ErrWidthMismatch,
			curated.Errorf("mux arms of %d bits and %d bits", onTrue.width, onFalse.width))
	}
	return operator("mux", onTrue.width, []*Logic{sel, onTrue, onFalse}, func() values.LogicValue {
		one := values.FromBool(true)
		zero := values.FromBool(false)
		switch {
		case sel.value.Equals(one):
			return onTrue.value
		case sel.value.Equals(zero):
			return onFalse.value
		}
		return values.Filled(onTrue.width, values.X)
	})
}

// CaseItem pairs a match constant with the net selected when the
// expression equals it.
type CaseItem struct {
	Match values.LogicValue
	Out   *Logic
}

// Cases returns a net following the Out of the first item whose Match
// equals the expression. with no matching item the net follows def, or
// holds all-x when def is nil. an invalid expression gives all-x.
func Cases(expr *Logic, items []CaseItem, def *Logic) *Logic {
	if len(items) == 0 {
		fail(ErrIllegalConfiguration, "cases with no items")
	}

	w := items[0].Out.width
	ins := []*Logic{expr}
	for _, it := range items {
		if it.Match.Width() != expr.width {
			fail(ErrWidthMismatch,
				curated.Errorf("case match of %d bits against a %d bit expression",
					it.Match.Width(), expr.width))
		}
		if it.Out.width != w {
			fail(ErrWidthMismatch,
				curated.Errorf("case outputs of %d bits and %d bits", w, it.Out.width))
		}
		ins = append(ins, it.Out)
	}
	if def != nil {
		if def.width != w {
			fail(ErrWidthMismatch,
				curated.Errorf("case default of %d bits among outputs of %d bits", def.width, w))
		}
		ins = append(ins, def)
	}

	return operator("cases", w, ins, func() values.LogicValue {
		if !expr.value.IsValid() {
			return values.Filled(w, values.X)
		}
		for _, it := range items {
			if expr.value.Equals(it.Match) {
				return it.Out.value
			}
		}
		if def != nil {
			return def.value
		}
		return values.Filled(w, values.X)
	})
}
