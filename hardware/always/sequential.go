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

package always

import (
	"github.com/gossim/gossim/curated"
	"github.com/gossim/gossim/hardware/signal"
	"github.com/gossim/gossim/hardware/values"
	"github.com/gossim/gossim/sim"
)

// Trigger names one clock input of a Sequential and the edge it is
// sensitive to.
type Trigger struct {
	Net  *signal.Logic
	Kind signal.EdgeKind
}

// PosedgeOf builds a rising-edge trigger.
func PosedgeOf(n *signal.Logic) Trigger {
	return Trigger{Net: n, Kind: signal.Posedge}
}

// NegedgeOf builds a falling-edge trigger.
func NegedgeOf(n *signal.Logic) Trigger {
	return Trigger{Net: n, Kind: signal.Negedge}
}

// ResetValue declares the value a receiver takes while the block is in
// reset.
type ResetValue struct {
	Receiver *signal.Logic
	Value    values.LogicValue
}

// SequentialDef is the full description of a clocked block. Reset may be
// nil; when it is not, ResetValues must name every driven receiver exactly
// once.
type SequentialDef struct {
	Triggers    []Trigger
	Reset       *signal.Logic
	ResetValues []ResetValue
	AsyncReset  bool
	Conds       []Conditional
}

// Sequential is the clocked always-block: its conditional tree executes on
// the declared trigger edges, sampling pre-tick values and driving its
// receivers in the settle phase of the same tick.
type Sequential struct {
	blk *block
	def SequentialDef

	receivers []*signal.Logic
	reads     []*signal.Logic
	resetFor  map[*signal.Logic]values.LogicValue

	// a block executes at most once per tick, whichever trigger fires
	// first. tick serial numbers start at one so zero is a safe sentinel
	lastExecTick uint64
}

// NewSequential builds a clocked block with a single rising-edge trigger
// and no reset.
func NewSequential(clk *signal.Logic, conds ...Conditional) *Sequential {
	return NewSequentialMulti(SequentialDef{
		Triggers: []Trigger{PosedgeOf(clk)},
		Conds:    conds,
	})
}

// NewSequentialMulti builds a clocked block from a full definition.
func NewSequentialMulti(def SequentialDef) *Sequential {
	if len(def.Triggers) == 0 {
		fail(ErrIllegalConfiguration, "a sequential block needs at least one trigger")
	}
	for _, t := range def.Triggers {
		if t.Kind != signal.Posedge && t.Kind != signal.Negedge {
			fail(ErrIllegalConfiguration, "a trigger is sensitive to posedge or negedge")
		}
	}

	s := &Sequential{
		blk: &block{name: "sequential"},
		def: def,
	}

	attachAll(s.blk, def.Conds)

	col := newCollector()
	collectAll(col, def.Conds)
	s.receivers = col.receivers
	s.reads = col.reads

	if def.Reset != nil {
		s.resetFor = make(map[*signal.Logic]values.LogicValue)
		driven := make(map[*signal.Logic]bool)
		for _, r := range s.receivers {
			driven[r] = true
		}

		for _, rv := range def.ResetValues {
			if !driven[rv.Receiver] {
				fail(ErrIllegalConfiguration,
					curated.Errorf("reset value for %s, which the block does not drive",
						rv.Receiver.Name()))
			}
			if _, dup := s.resetFor[rv.Receiver]; dup {
				fail(ErrIllegalConfiguration,
					curated.Errorf("duplicate reset value for %s", rv.Receiver.Name()))
			}
			if rv.Value.Width() != rv.Receiver.Width() {
				fail(ErrWidthMismatch,
					curated.Errorf("reset value of %d bits for the %d bit net %s",
						rv.Value.Width(), rv.Receiver.Width(), rv.Receiver.Name()))
			}
			s.resetFor[rv.Receiver] = rv.Value
		}

		for _, r := range s.receivers {
			if _, ok := s.resetFor[r]; !ok {
				fail(ErrIllegalConfiguration,
					curated.Errorf("no reset value for the driven net %s", r.Name()))
			}
		}
	}

	for _, r := range s.receivers {
		r.DriveFromBlock()
	}

	for _, t := range def.Triggers {
		t := t
		t.Net.OnEdge(func(e signal.Edge) {
			s.onTriggerEdge(t, e)
		}, false)
	}

	// an asynchronous reset acts on its own assertion, outside the trigger
	// edge filter
	if def.Reset != nil && def.AsyncReset {
		def.Reset.OnEdge(func(e signal.Edge) {
			s.onResetEdge(e)
		}, false)
	}

	return s
}

// Receivers returns the nets this block drives, in first-encounter order.
func (s *Sequential) Receivers() []*signal.Logic {
	return s.receivers
}

// Reads returns the nets this block samples, in first-encounter order.
func (s *Sequential) Reads() []*signal.Logic {
	return s.reads
}

func (s *Sequential) onTriggerEdge(t Trigger, e signal.Edge) {
	if e.Kind == signal.InvalidEdge {
		// an x or z clock poisons the whole state
		s.runOnce(s.driveAllX)
		return
	}
	if e.Kind != t.Kind {
		return
	}
	s.runOnce(s.execute)
}

func (s *Sequential) onResetEdge(e signal.Edge) {
	if e.Kind == signal.InvalidEdge {
		s.runOnce(s.driveAllX)
		return
	}
	if s.def.Reset.Value().Get(0).Equals(values.FromBool(true)) {
		s.runOnce(s.driveReset)
	}
}

func (s *Sequential) runOnce(f func()) {
	tick := sim.TickID()
	if s.lastExecTick == tick {
		return
	}
	s.lastExecTick = tick
	f()
}

// resetAsserted samples the reset net. a synchronous reset is sampled at
// the clock edge, meaning the pre-tick value; an asynchronous reset is
// live.
func (s *Sequential) resetAsserted() (asserted bool, invalid bool) {
	if s.def.Reset == nil {
		return false, false
	}
	var b values.LogicValue
	if s.def.AsyncReset {
		b = s.def.Reset.Value().Get(0)
	} else {
		b = s.def.Reset.PreTickValue().Get(0)
	}
	if !b.IsValid() {
		return false, true
	}
	return b.Equals(values.FromBool(true)), false
}

func (s *Sequential) execute() {
	asserted, invalid := s.resetAsserted()
	if invalid {
		s.driveAllX()
		return
	}
	if asserted {
		s.driveReset()
		return
	}

	x := &execution{
		sequential: true,
		read:       func(l *signal.Logic) values.LogicValue { return l.PreTickValue() },
		pending:    make(map[*signal.Logic]values.LogicValue),
		reached:    make(map[*signal.Logic]bool),
	}
	executeAll(x, s.def.Conds)

	// drives land in the settle phase so that every clocked block of this
	// tick has sampled before anything moves. unreached receivers hold
	sim.ScheduleSettle(func() {
		for _, r := range s.receivers {
			if v, ok := x.pending[r]; ok {
				r.PutFromBlock(v)
			}
		}
	})
}

func (s *Sequential) driveReset() {
	sim.ScheduleSettle(func() {
		for _, r := range s.receivers {
			r.PutFromBlock(s.resetFor[r])
		}
	})
}

func (s *Sequential) driveAllX() {
	sim.ScheduleSettle(func() {
		for _, r := range s.receivers {
			r.PutFromBlock(values.Filled(r.Width(), values.X))
		}
	})
}
