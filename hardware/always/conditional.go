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
)

// error patterns for the always package.
const (
	ErrWidthMismatch        = "always: width mismatch: %v"
	ErrMultiBlock           = "always: conditional attached to a second block: %v"
	ErrSignalRedriven       = "always: signal redriven: %v"
	ErrIllegalConfiguration = "always: illegal configuration: %v"
	ErrUninitializedSignal  = "always: ssa read before write: %v"
)

func fail(pattern string, v ...interface{}) {
	panic(curated.Errorf(pattern, v...))
}

// Conditional is one statement of a conditional tree. The set of
// implementations is closed: Assign, If, IfBlock, Case and CaseZ.
type Conditional interface {
	// Variant returns the stable tag a netlist emitter keys on.
	Variant() string

	attach(owner *block)
	collect(c *collector)
	execute(x *execution)
}

// block is the identity a conditional tree is bound to. a tree belongs to
// exactly one block.
type block struct {
	name string
}

// node carries the owner pointer common to every Conditional.
type node struct {
	owner *block
}

func (n *node) attach(owner *block) {
	if n.owner != nil && n.owner != owner {
		fail(ErrMultiBlock,
			curated.Errorf("already attached to %s, cannot attach to %s",
				n.owner.name, owner.name))
	}
	n.owner = owner
}

func attachAll(owner *block, conds []Conditional) {
	for _, c := range conds {
		c.attach(owner)
	}
}

// collector accumulates the receivers and the read (sensitivity) nets of a
// tree, in deterministic first-encounter order.
type collector struct {
	receivers []*signal.Logic
	reads     []*signal.Logic
	seenRecv  map[*signal.Logic]bool
	seenRead  map[*signal.Logic]bool
}

func newCollector() *collector {
	return &collector{
		seenRecv: make(map[*signal.Logic]bool),
		seenRead: make(map[*signal.Logic]bool),
	}
}

func (c *collector) receiver(l *signal.Logic) {
	if !c.seenRecv[l] {
		c.seenRecv[l] = true
		c.receivers = append(c.receivers, l)
	}
}

func (c *collector) read(l *signal.Logic) {
	if !c.seenRead[l] {
		c.seenRead[l] = true
		c.reads = append(c.reads, l)
	}
}

func collectAll(c *collector, conds []Conditional) {
	for _, cc := range conds {
		cc.collect(c)
	}
}

// execution is the state of one walk over a tree.
type execution struct {
	// sequential walks sample pre-tick values and defer their drives;
	// combinational walks read live values and apply at once
	sequential bool

	read func(l *signal.Logic) values.LogicValue

	// combinational: apply immediately through here
	apply func(r *signal.Logic, v values.LogicValue)

	// sequential: pending drives of this walk
	pending map[*signal.Logic]values.LogicValue

	// receivers touched on this walk, for the unreached-receiver policy
	reached map[*signal.Logic]bool
}

// assign records one reached assignment. along a sequential path a receiver
// takes one assignment only.
func (x *execution) assign(r *signal.Logic, v values.LogicValue) {
	if x.sequential {
		if x.reached[r] {
			fail(ErrSignalRedriven,
				curated.Errorf("net %s assigned twice on one execution path", r.Name()))
		}
		x.reached[r] = true
		x.pending[r] = v
		return
	}
	x.reached[r] = true
	x.apply(r, v)
}

// poison marks a receiver all-x without the redriven bookkeeping: the
// invalid-condition policy, not an assignment.
func (x *execution) poison(r *signal.Logic) {
	v := values.Filled(r.Width(), values.X)
	if x.sequential {
		x.reached[r] = true
		x.pending[r] = v
		return
	}
	x.reached[r] = true
	x.apply(r, v)
}

func executeAll(x *execution, conds []Conditional) {
	for _, c := range conds {
		c.execute(x)
	}
}

// poisonAll marks every receiver under the given conditionals all-x.
func poisonAll(x *execution, conds []Conditional) {
	c := newCollector()
	collectAll(c, conds)
	for _, r := range c.receivers {
		x.poison(r)
	}
}

// Assign is the leaf conditional: when reached, the receiver takes the
// driver's value.
type Assign struct {
	node
	receiver *signal.Logic
	driver   *signal.Logic
}

// NewAssign builds an assignment of driver to receiver. widths must agree.
func NewAssign(receiver *signal.Logic, driver *signal.Logic) *Assign {
	if receiver.Width() != driver.Width() {
		fail(ErrWidthMismatch,
			curated.Errorf("cannot assign %d bits of %s to the %d bit net %s",
				driver.Width(), driver.Name(), receiver.Width(), receiver.Name()))
	}
	return &Assign{receiver: receiver, driver: driver}
}

// Variant implements Conditional.
func (a *Assign) Variant() string { return "assign" }

// Receiver returns the assigned net.
func (a *Assign) Receiver() *signal.Logic { return a.receiver }

// Driver returns the net whose value is assigned.
func (a *Assign) Driver() *signal.Logic { return a.driver }

func (a *Assign) collect(c *collector) {
	c.receiver(a.receiver)
	c.read(a.driver)
}

func (a *Assign) execute(x *execution) {
	x.assign(a.receiver, x.read(a.driver))
}

// If executes one of two branches on a 1-bit condition. an invalid
// condition executes neither branch and poisons every receiver under both.
type If struct {
	node
	cond   *signal.Logic
	then   []Conditional
	orElse []Conditional
}

// NewIf builds a two-way branch. the condition must be one bit wide; the
// orElse branch may be nil.
func NewIf(cond *signal.Logic, then []Conditional, orElse []Conditional) *If {
	if cond.Width() != 1 {
		fail(ErrWidthMismatch,
			curated.Errorf("an if condition must be one bit, not %d", cond.Width()))
	}
	return &If{cond: cond, then: then, orElse: orElse}
}

// Variant implements Conditional.
func (i *If) Variant() string { return "if" }

func (i *If) attach(owner *block) {
	i.node.attach(owner)
	attachAll(owner, i.then)
	attachAll(owner, i.orElse)
}

func (i *If) collect(c *collector) {
	c.read(i.cond)
	collectAll(c, i.then)
	collectAll(c, i.orElse)
}

func (i *If) execute(x *execution) {
	c := x.read(i.cond)
	switch {
	case c.Equals(values.FromBool(true)):
		executeAll(x, i.then)
	case c.Equals(values.FromBool(false)):
		executeAll(x, i.orElse)
	default:
		poisonAll(x, i.then)
		poisonAll(x, i.orElse)
	}
}

// IfArm is one arm of an IfBlock.
type IfArm struct {
	cond *signal.Logic // nil for the final else
	body []Conditional
}

// Iff opens an IfBlock chain. the name avoids the language keyword.
func Iff(cond *signal.Logic, body ...Conditional) IfArm {
	return IfArm{cond: cond, body: body}
}

// ElseIf continues an IfBlock chain.
func ElseIf(cond *signal.Logic, body ...Conditional) IfArm {
	return IfArm{cond: cond, body: body}
}

// Else terminates an IfBlock chain unconditionally.
func Else(body ...Conditional) IfArm {
	return IfArm{body: body}
}

// IfBlock is an ordered chain of conditions; the first arm whose condition
// is 1 wins.
type IfBlock struct {
	node
	lowered Conditional
}

// NewIfBlock builds the chain from its arms. the first arm must carry a
// condition and only the last arm may be an Else.
func NewIfBlock(arms ...IfArm) *IfBlock {
	if len(arms) == 0 {
		fail(ErrIllegalConfiguration, "an if block needs at least one arm")
	}
	if arms[0].cond == nil {
		fail(ErrIllegalConfiguration, "an if block cannot open with an else")
	}
	for i, a := range arms {
		if a.cond == nil && i != len(arms)-1 {
			fail(ErrIllegalConfiguration, "an else arm must come last in an if block")
		}
	}

	// lower to a right-associative chain of Ifs
	var low Conditional
	for i := len(arms) - 1; i >= 0; i-- {
		a := arms[i]
		if a.cond == nil {
			// the else arm seeds the chain; execution of the body needs no
			// condition so wrap is deferred to the enclosing if
			low = &elseBody{body: a.body}
			continue
		}
		var orElse []Conditional
		if low != nil {
			orElse = []Conditional{low}
		}
		low = NewIf(a.cond, a.body, orElse)
	}
	return &IfBlock{lowered: low}
}

// elseBody is the unconditional tail of a lowered IfBlock.
type elseBody struct {
	node
	body []Conditional
}

func (e *elseBody) Variant() string { return "else" }

func (e *elseBody) attach(owner *block) {
	e.node.attach(owner)
	attachAll(owner, e.body)
}

func (e *elseBody) collect(c *collector) {
	collectAll(c, e.body)
}

func (e *elseBody) execute(x *execution) {
	executeAll(x, e.body)
}

// Variant implements Conditional.
func (b *IfBlock) Variant() string { return "ifBlock" }

func (b *IfBlock) attach(owner *block) {
	b.node.attach(owner)
	b.lowered.attach(owner)
}

func (b *IfBlock) collect(c *collector) {
	b.lowered.collect(c)
}

func (b *IfBlock) execute(x *execution) {
	b.lowered.execute(x)
}
