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

package signal_test

import (
	"testing"

	"github.com/gossim/gossim/hardware/signal"
	"github.com/gossim/gossim/hardware/values"
	"github.com/gossim/gossim/sim"
	"github.com/gossim/gossim/test"
)

func TestOperatorTracking(t *testing.T) {
	sim.Reset()

	a := signal.NewLogic("a", 4)
	n := signal.Not(a)

	// operators compute their initial value at creation: not of floating is
	// all-x
	test.ExpectSuccess(t, n.Value().Equals(values.Filled(4, values.X)))

	a.Put(values.MustFromString("01xz"))
	test.ExpectSuccess(t, n.Value().Equals(values.MustFromString("10xx")))

	a.PutUint(0)
	test.ExpectSuccess(t, n.Value().Equals(values.MustFromUint(0xf, 4)))
}

func TestOperatorChain(t *testing.T) {
	sim.Reset()

	a := signal.NewLogic("a", 8)
	b := signal.NewLogic("b", 8)
	sum := signal.Add(a, b)
	folded := signal.XorReduce(sum)

	a.PutUint(1)
	b.PutUint(2)
	test.ExpectSuccess(t, sum.Value().Equals(values.MustFromUint(3, 8)))
	test.ExpectSuccess(t, folded.Value().Equals(values.FromBool(false)))

	// the cascade from a single put reaches the whole chain synchronously
	b.PutUint(1)
	test.ExpectSuccess(t, sum.Value().Equals(values.MustFromUint(2, 8)))
	test.ExpectSuccess(t, folded.Value().Equals(values.FromBool(true)))

	b.PutUint(0)
	test.ExpectSuccess(t, sum.Value().Equals(values.MustFromUint(1, 8)))
	test.ExpectSuccess(t, folded.Value().Equals(values.FromBool(true)))

	a.PutUint(3)
	test.ExpectSuccess(t, sum.Value().Equals(values.MustFromUint(3, 8)))
	test.ExpectSuccess(t, folded.Value().Equals(values.FromBool(false)))
}

func TestOperatorDescriptor(t *testing.T) {
	sim.Reset()

	a := signal.NewLogic("a", 4)
	b := signal.NewLogic("b", 4)
	g := signal.And(a, b)

	op := g.Op()
	test.ExpectInequality(t, op, (*signal.Op)(nil))
	test.ExpectEquality(t, op.Variant, "and")
	test.ExpectEquality(t, len(op.Inputs), 2)
	test.ExpectEquality(t, op.Output, g)

	// plain nets carry no descriptor
	test.ExpectEquality(t, a.Op(), (*signal.Op)(nil))
}

func TestSwizzleAndRange(t *testing.T) {
	sim.Reset()

	a := signal.NewLogic("a", 8)
	b := signal.NewLogic("b", 8)
	cat := signal.Swizzle([]*signal.Logic{b, a})
	low := signal.Range(cat, 0, 3)

	a.PutUint(0xaa)
	b.PutUint(0x55)

	test.ExpectEquality(t, cat.Width(), 16)
	test.ExpectSuccess(t, cat.Value().Equals(values.MustFromUint(0x55aa, 16)))
	test.ExpectSuccess(t, low.Value().Equals(values.MustFromUint(0x2, 3)))
}

func TestMux(t *testing.T) {
	sim.Reset()

	sel := signal.NewLogic("sel", 1)
	a := signal.NewConstUint(0xa, 4)
	b := signal.NewConstUint(0xb, 4)
	m := signal.Mux(sel, a, b)

	// a floating selector yields all-x
	test.ExpectSuccess(t, m.Value().Equals(values.Filled(4, values.X)))

	sel.PutUint(1)
	test.ExpectSuccess(t, m.Value().Equals(values.MustFromUint(0xa, 4)))

	sel.PutUint(0)
	test.ExpectSuccess(t, m.Value().Equals(values.MustFromUint(0xb, 4)))

	test.ExpectPanic(t, signal.ErrWidthMismatch, func() {
		signal.Mux(signal.NewLogic("wide", 2), a, b)
	})
}

func TestCases(t *testing.T) {
	sim.Reset()

	expr := signal.NewLogic("expr", 2)
	r0 := signal.NewConstUint(0x1, 4)
	r1 := signal.NewConstUint(0x2, 4)
	def := signal.NewConstUint(0xf, 4)

	c := signal.Cases(expr, []signal.CaseItem{
		{Match: values.MustFromUint(0, 2), Out: r0},
		{Match: values.MustFromUint(1, 2), Out: r1},
	}, def)

	// floating expression selects nothing
	test.ExpectSuccess(t, c.Value().Equals(values.Filled(4, values.X)))

	expr.PutUint(0)
	test.ExpectSuccess(t, c.Value().Equals(values.MustFromUint(0x1, 4)))

	expr.PutUint(1)
	test.ExpectSuccess(t, c.Value().Equals(values.MustFromUint(0x2, 4)))

	expr.PutUint(3)
	test.ExpectSuccess(t, c.Value().Equals(values.MustFromUint(0xf, 4)))
}

func TestShiftOperators(t *testing.T) {
	sim.Reset()

	a := signal.NewLogic("a", 4)
	shamt := signal.NewLogic("shamt", 2)
	l := signal.Shl(a, shamt)
	r := signal.SraInt(a, 1)

	a.Put(values.MustFromString("1001"))
	shamt.PutUint(1)

	test.ExpectSuccess(t, l.Value().Equals(values.MustFromString("0010")))
	test.ExpectSuccess(t, r.Value().Equals(values.MustFromString("1100")))
}
