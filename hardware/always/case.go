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
	"github.com/gossim/gossim/logger"
)

// CaseMode is the matching discipline of a Case.
type CaseMode int

// The case modes. CaseNone and CasePriority are identical at simulation
// time; the priority marker exists for the netlist emitter. CaseUnique
// asserts that at most one item matches: when several do, the result is
// undefined and every receiver is driven all-x.
const (
	CaseNone CaseMode = iota
	CasePriority
	CaseUnique
)

// CaseEntry pairs a match net with the statements executed when the
// expression equals it.
type CaseEntry struct {
	Match *signal.Logic
	Body  []Conditional
}

// Case selects among its items by equality with an expression.
type Case struct {
	node
	expr  *signal.Logic
	items []CaseEntry
	def   []Conditional
	mode  CaseMode
	caseZ bool
}

// NewCase builds a case statement. every item's match width must equal the
// expression width. the default body may be nil; with no default and no
// matching item the enclosing block's unreached-receiver policy applies.
func NewCase(expr *signal.Logic, items []CaseEntry, def []Conditional, mode CaseMode) *Case {
	for _, it := range items {
		if it.Match.Width() != expr.Width() {
			fail(ErrWidthMismatch,
				curated.Errorf("case match %s of %d bits against the %d bit expression %s",
					it.Match.Name(), it.Match.Width(), expr.Width(), expr.Name()))
		}
	}
	return &Case{expr: expr, items: items, def: def, mode: mode}
}

// NewCaseZ builds a case statement in which x and z bits of an item's match
// pattern are don't-cares.
func NewCaseZ(expr *signal.Logic, items []CaseEntry, def []Conditional, mode CaseMode) *Case {
	c := NewCase(expr, items, def, mode)
	c.caseZ = true
	return c
}

// Variant implements Conditional.
func (c *Case) Variant() string {
	if c.caseZ {
		return "caseZ"
	}
	return "case"
}

// Mode returns the matching discipline, for the netlist emitter.
func (c *Case) Mode() CaseMode { return c.mode }

func (c *Case) attach(owner *block) {
	c.node.attach(owner)
	for _, it := range c.items {
		attachAll(owner, it.Body)
	}
	attachAll(owner, c.def)
}

func (c *Case) collect(col *collector) {
	col.read(c.expr)
	for _, it := range c.items {
		col.read(it.Match)
		collectAll(col, it.Body)
	}
	collectAll(col, c.def)
}

// poisonEverything marks every receiver under every branch of the case.
func (c *Case) poisonEverything(x *execution) {
	for _, it := range c.items {
		poisonAll(x, it.Body)
	}
	poisonAll(x, c.def)
}

func (c *Case) execute(x *execution) {
	ev := x.read(c.expr)

	// an expression carrying x or z cannot be matched definitively
	if !ev.IsValid() {
		c.poisonEverything(x)
		return
	}

	matched := -1
	for i, it := range c.items {
		mv := x.read(it.Match)

		var hit bool
		if c.caseZ {
			hit = ev.EqualsWithDontCare(mv)
		} else {
			hit = ev.Equals(mv)
		}
		if !hit {
			continue
		}

		if c.mode != CaseUnique {
			executeAll(x, it.Body)
			return
		}

		if matched >= 0 {
			// a unique case with two live items is undefined
			logger.Logf("always", "unique case matched items %d and %d", matched, i)
			c.poisonEverything(x)
			return
		}
		matched = i
	}

	if matched >= 0 {
		executeAll(x, c.items[matched].Body)
		return
	}

	executeAll(x, c.def)
}
