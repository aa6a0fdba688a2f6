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

// Package clocks generates clock nets on top of the simulator timeline. A
// clock is an ordinary 1-bit Logic toggled by a self-rescheduling action;
// the simulator knows nothing of frequency and the clocked logic knows
// nothing of the timeline.
package clocks

import (
	"github.com/gossim/gossim/curated"
	"github.com/gossim/gossim/hardware/signal"
	"github.com/gossim/gossim/hardware/values"
	"github.com/gossim/gossim/sim"
)

// error patterns for the clocks package.
const (
	ErrBadPeriod = "clocks: unusable period: %v"
)

// NewSimpleClock returns a free-running clock net with the given period.
// The net starts low and rises for the first time half a period from now. A
// free-running clock keeps the timeline alive forever: bound the run with
// sim.SetMaxSimTime() or sim.EndSimulation().
func NewSimpleClock(name string, period uint64) *signal.Logic {
	return clock(name, period, 0)
}

// NewSimpleClockFor is NewSimpleClock limited to the given number of whole
// cycles, after which the net stays low.
func NewSimpleClockFor(name string, period uint64, cycles uint64) *signal.Logic {
	if cycles == 0 {
		panic(curated.Errorf(ErrBadPeriod, "a bounded clock needs at least one cycle"))
	}
	return clock(name, period, cycles*2)
}

// clock builds the net and its self-rescheduling toggler. a toggle budget
// of zero means run forever.
func clock(name string, period uint64, toggles uint64) *signal.Logic {
	if period < 2 || period%2 != 0 {
		panic(curated.Errorf(ErrBadPeriod,
			curated.Errorf("the period must be even and at least two, not %d", period)))
	}

	clk := signal.NewLogic(name, 1)
	clk.PutUint(0)

	half := period / 2
	done := uint64(0)

	var flip func()
	flip = func() {
		if clk.Value().Equals(values.FromBool(true)) {
			clk.PutUint(0)
		} else {
			clk.PutUint(1)
		}

		done++
		if toggles > 0 && done >= toggles {
			return
		}
		// re-registration cannot fail: the next timestamp is in the future
		_ = sim.RegisterAction(sim.Time()+half, flip)
	}

	_ = sim.RegisterAction(sim.Time()+half, flip)
	return clk
}
