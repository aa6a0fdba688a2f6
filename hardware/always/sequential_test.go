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

package always_test

import (
	"testing"

	"github.com/gossim/gossim/hardware/always"
	"github.com/gossim/gossim/hardware/signal"
	"github.com/gossim/gossim/hardware/values"
	"github.com/gossim/gossim/sim"
	"github.com/gossim/gossim/test"
)

// tickClock drives one full clock cycle: a rising edge at one timestamp and
// a falling edge at the next.
func tickClock(t *testing.T, clk *signal.Logic) {
	t.Helper()

	clk.InjectUint(1)
	test.ExpectSuccess(t, sim.Tick())
	clk.InjectUint(0)
	test.ExpectSuccess(t, sim.Tick())
}

func TestFlop(t *testing.T) {
	sim.Reset()

	clk := signal.NewLogic("clk", 1)
	clk.PutUint(0)
	d := signal.NewLogic("d", 4)
	q := signal.NewLogic("q", 4)

	always.NewSequential(clk, always.NewAssign(q, d))

	// nothing moves before the first edge
	d.PutUint(0x5)
	test.ExpectSuccess(t, q.Value().IsFloating())

	tickClock(t, clk)
	test.ExpectSuccess(t, q.Value().Equals(values.MustFromUint(0x5, 4)))

	// a falling edge is not a trigger
	d.PutUint(0x6)
	clk.InjectUint(0)
	sim.Tick()
	test.ExpectSuccess(t, q.Value().Equals(values.MustFromUint(0x5, 4)))
}

func TestShiftRegisterNotTransparent(t *testing.T) {
	sim.Reset()

	clk := signal.NewLogic("clk", 1)
	clk.PutUint(0)
	d := signal.NewLogic("d", 4)
	q1 := signal.NewLogic("q1", 4)
	q2 := signal.NewLogic("q2", 4)

	always.NewSequential(clk, always.NewAssign(q1, d))
	always.NewSequential(clk, always.NewAssign(q2, q1))

	d.PutUint(0x1)
	tickClock(t, clk)

	// q1 took d but q2 took the pre-edge q1, which was floating
	test.ExpectSuccess(t, q1.Value().Equals(values.MustFromUint(0x1, 4)))
	test.ExpectSuccess(t, q2.Value().IsFloating())

	d.PutUint(0x2)
	tickClock(t, clk)
	test.ExpectSuccess(t, q1.Value().Equals(values.MustFromUint(0x2, 4)))
	test.ExpectSuccess(t, q2.Value().Equals(values.MustFromUint(0x1, 4)))
}

func TestResetValues(t *testing.T) {
	sim.Reset()

	clk := signal.NewLogic("clk", 1)
	clk.PutUint(0)
	reset := signal.NewLogic("reset", 1)
	reset.PutUint(1)

	piOut := signal.NewLogic("piOut", 8)
	pdOut := signal.NewLogic("pdOut", 8)
	maOut := signal.NewLogic("maOut", 8)
	daOut := signal.NewLogic("daOut", 8)

	one := signal.NewConstUint(1, 8)
	two := signal.NewConstUint(2, 8)
	sixteen := values.MustFromUint(16, 8)

	always.NewSequentialMulti(always.SequentialDef{
		Triggers: []always.Trigger{always.PosedgeOf(clk)},
		Reset:    reset,
		ResetValues: []always.ResetValue{
			{Receiver: piOut, Value: sixteen},
			{Receiver: pdOut, Value: sixteen},
			{Receiver: maOut, Value: sixteen},
			{Receiver: daOut, Value: sixteen},
		},
		Conds: []always.Conditional{
			always.NewAssign(piOut, signal.Add(piOut, one)),
			always.NewAssign(pdOut, signal.Sub(pdOut, one)),
			always.NewAssign(maOut, signal.Mul(maOut, two)),
			always.NewAssign(daOut, signal.Div(daOut, two)),
		},
	})

	// a clock edge under reset loads the reset values
	tickClock(t, clk)
	test.ExpectSuccess(t, piOut.Value().Equals(values.MustFromUint(16, 8)))
	test.ExpectSuccess(t, pdOut.Value().Equals(values.MustFromUint(16, 8)))
	test.ExpectSuccess(t, maOut.Value().Equals(values.MustFromUint(16, 8)))
	test.ExpectSuccess(t, daOut.Value().Equals(values.MustFromUint(16, 8)))

	// one edge after deassertion the block computes
	reset.PutUint(0)
	tickClock(t, clk)
	test.ExpectSuccess(t, piOut.Value().Equals(values.MustFromUint(17, 8)))
	test.ExpectSuccess(t, pdOut.Value().Equals(values.MustFromUint(15, 8)))
	test.ExpectSuccess(t, maOut.Value().Equals(values.MustFromUint(32, 8)))
	test.ExpectSuccess(t, daOut.Value().Equals(values.MustFromUint(8, 8)))
}

func TestResetValueValidation(t *testing.T) {
	sim.Reset()

	clk := signal.NewLogic("clk", 1)
	reset := signal.NewLogic("reset", 1)
	q := signal.NewLogic("q", 4)
	d := signal.NewLogic("d", 4)

	// missing reset value for a driven receiver
	test.ExpectPanic(t, always.ErrIllegalConfiguration, func() {
		always.NewSequentialMulti(always.SequentialDef{
			Triggers: []always.Trigger{always.PosedgeOf(clk)},
			Reset:    reset,
			Conds:    []always.Conditional{always.NewAssign(q, d)},
		})
	})

	// duplicate reset value
	test.ExpectPanic(t, always.ErrIllegalConfiguration, func() {
		always.NewSequentialMulti(always.SequentialDef{
			Triggers: []always.Trigger{always.PosedgeOf(clk)},
			Reset:    reset,
			ResetValues: []always.ResetValue{
				{Receiver: q, Value: values.MustFromUint(0, 4)},
				{Receiver: q, Value: values.MustFromUint(1, 4)},
			},
			Conds: []always.Conditional{always.NewAssign(q, d)},
		})
	})
}

func TestAsyncReset(t *testing.T) {
	sim.Reset()

	clk := signal.NewLogic("clk", 1)
	clk.PutUint(0)
	reset := signal.NewLogic("reset", 1)
	reset.PutUint(0)
	q := signal.NewLogic("q", 4)
	d := signal.NewLogic("d", 4)

	always.NewSequentialMulti(always.SequentialDef{
		Triggers:    []always.Trigger{always.PosedgeOf(clk)},
		Reset:       reset,
		ResetValues: []always.ResetValue{{Receiver: q, Value: values.MustFromUint(0, 4)}},
		AsyncReset:  true,
		Conds:       []always.Conditional{always.NewAssign(q, d)},
	})

	d.PutUint(0x9)
	tickClock(t, clk)
	test.ExpectSuccess(t, q.Value().Equals(values.MustFromUint(0x9, 4)))

	// the reset asserts with no clock edge in sight and acts immediately
	reset.InjectUint(1)
	test.ExpectSuccess(t, sim.Tick())
	test.ExpectSuccess(t, q.Value().Equals(values.MustFromUint(0, 4)))
}

func TestInvalidClock(t *testing.T) {
	sim.Reset()

	clk := signal.NewLogic("clk", 1)
	clk.PutUint(0)
	q := signal.NewLogic("q", 4)
	d := signal.NewLogic("d", 4)

	always.NewSequential(clk, always.NewAssign(q, d))

	d.PutUint(0x3)
	tickClock(t, clk)
	test.ExpectSuccess(t, q.Value().Equals(values.MustFromUint(0x3, 4)))

	// an x on the clock poisons the state
	clk.Inject(values.Filled(1, values.X))
	test.ExpectSuccess(t, sim.Tick())
	test.ExpectSuccess(t, q.Value().Equals(values.Filled(4, values.X)))
}

func TestRedrivenOnOnePath(t *testing.T) {
	sim.Reset()

	clk := signal.NewLogic("clk", 1)
	clk.PutUint(0)
	q := signal.NewLogic("q", 4)
	a := signal.NewLogic("a", 4)
	b := signal.NewLogic("b", 4)
	sel := signal.NewLogic("sel", 1)

	// two assignments on one path fault at the offending tick
	always.NewSequential(clk,
		always.NewAssign(q, a),
		always.NewAssign(q, b),
	)

	test.ExpectPanic(t, always.ErrSignalRedriven, func() {
		tickClock(t, clk)
	})

	sim.Reset()

	// mutually exclusive branches are legal
	clk2 := signal.NewLogic("clk2", 1)
	clk2.PutUint(0)
	q2 := signal.NewLogic("q2", 4)

	always.NewSequential(clk2,
		always.NewIf(sel,
			[]always.Conditional{always.NewAssign(q2, a)},
			[]always.Conditional{always.NewAssign(q2, b)}),
	)

	a.PutUint(0x1)
	b.PutUint(0x2)
	sel.PutUint(0)
	tickClock(t, clk2)
	test.ExpectSuccess(t, q2.Value().Equals(values.MustFromUint(0x2, 4)))
}

func TestCombinationalSequentialAgreement(t *testing.T) {
	sim.Reset()

	a := signal.NewLogic("a", 4)
	b := signal.NewLogic("b", 4)
	sel := signal.NewLogic("sel", 1)

	build := func(out *signal.Logic) []always.Conditional {
		return []always.Conditional{
			always.NewIf(sel,
				[]always.Conditional{always.NewAssign(out, signal.Add(a, b))},
				[]always.Conditional{always.NewAssign(out, signal.Xor(a, b))}),
		}
	}

	combOut := signal.NewLogic("combOut", 4)
	seqOut := signal.NewLogic("seqOut", 4)
	clk := signal.NewLogic("clk", 1)
	clk.PutUint(0)

	always.NewCombinational(build(combOut)...)
	always.NewSequentialMulti(always.SequentialDef{
		Triggers: []always.Trigger{always.PosedgeOf(clk)},
		Conds:    build(seqOut),
	})

	for _, tc := range []struct{ a, b, sel uint64 }{
		{3, 5, 1}, {3, 5, 0}, {15, 1, 1}, {9, 9, 0},
	} {
		a.PutUint(tc.a)
		b.PutUint(tc.b)
		sel.PutUint(tc.sel)
		tickClock(t, clk)

		// with valid conditions the two containers produce the same
		// mapping
		test.ExpectSuccess(t, seqOut.Value().Equals(combOut.Value()))
	}
}
