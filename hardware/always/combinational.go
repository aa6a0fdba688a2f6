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
	"github.com/gossim/gossim/hardware/signal"
	"github.com/gossim/gossim/hardware/values"
	"github.com/gossim/gossim/logger"
)

// DefaultLoopLimit is the number of walks a Combinational will perform
// for one trigger before declaring a combinational loop.
const DefaultLoopLimit = 6

// Combinational is the unclocked always-block: its conditional tree
// re-executes whenever any net it reads changes.
type Combinational struct {
	blk   *block
	conds []Conditional

	receivers []*signal.Logic
	reads     []*signal.Logic

	loopLimit int

	executing bool
	retrigger bool
}

// NewCombinational builds a combinational block over the given conditional
// tree. the block claims every driven net (one block is one driver),
// subscribes to every read net, and executes once so that its outputs are
// deterministic from the start.
func NewCombinational(conds ...Conditional) *Combinational {
	c := &Combinational{
		blk:       &block{name: "combinational"},
		conds:     conds,
		loopLimit: DefaultLoopLimit,
	}

	attachAll(c.blk, conds)

	col := newCollector()
	collectAll(col, conds)
	c.receivers = col.receivers
	c.reads = col.reads

	for _, r := range c.receivers {
		r.DriveFromBlock()
	}

	// sensitivity: any read net that is not also one of our receivers. a
	// receiver that is read feeds back through the walk itself
	recv := make(map[*signal.Logic]bool)
	for _, r := range c.receivers {
		recv[r] = true
	}
	for _, in := range c.reads {
		if !recv[in] {
			in.OnGlitch(func(signal.Changed) {
				c.trigger()
			})
		}
	}

	c.trigger()
	return c
}

// SetLoopLimit overrides DefaultLoopLimit for this block.
func (c *Combinational) SetLoopLimit(n int) {
	if n < 1 {
		fail(ErrIllegalConfiguration, "the loop limit must be at least one")
	}
	c.loopLimit = n
}

// Receivers returns the nets this block drives, in first-encounter order.
func (c *Combinational) Receivers() []*signal.Logic {
	return c.receivers
}

// Reads returns the nets this block is sensitive to, in first-encounter
// order.
func (c *Combinational) Reads() []*signal.Logic {
	return c.reads
}

// trigger performs walks until the block's own drives stop provoking new
// ones, or the loop limit is hit.
func (c *Combinational) trigger() {
	if c.executing {
		// a glitch caused by one of our own drives: finish the walk first
		c.retrigger = true
		return
	}

	c.executing = true
	defer func() { c.executing = false }()

	walks := 0
	for {
		walks++
		if walks > c.loopLimit {
			logger.Logf("always", "combinational loop detected after %d walks, driving x", c.loopLimit)
			for _, r := range c.receivers {
				r.PutFromBlock(values.Filled(r.Width(), values.X))
			}
			c.retrigger = false
			return
		}

		x := &execution{
			read:    func(l *signal.Logic) values.LogicValue { return l.Value() },
			apply:   func(r *signal.Logic, v values.LogicValue) { r.PutFromBlock(v) },
			reached: make(map[*signal.Logic]bool),
		}
		executeAll(x, c.conds)

		// a receiver the walk never reached holds unknown, not a latch
		for _, r := range c.receivers {
			if !x.reached[r] {
				r.PutFromBlock(values.Filled(r.Width(), values.X))
			}
		}

		if !c.retrigger {
			return
		}
		c.retrigger = false
	}
}
