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
	"github.com/gossim/gossim/sim"
)

// error patterns for the signal package.
const (
	ErrWidthMismatch        = "logic: width mismatch: %v"
	ErrSignalRedriven       = "logic: signal redriven: %v"
	ErrConstReassigned      = "logic: const reassigned: %v"
	ErrPortRules            = "logic: port rules violation: %v"
	ErrIllegalConfiguration = "logic: illegal configuration: %v"
)

func fail(pattern string, v ...interface{}) {
	panic(curated.Errorf(pattern, v...))
}

// Changed describes one glitch: the value a net moved away from and the
// value it moved to.
type Changed struct {
	Previous values.LogicValue
	New      values.LogicValue
}

// Scope is the ownership context of a net, implemented by the module
// scaffold. nets owned by different scopes can only be wired together
// through registered ports.
type Scope interface {
	ScopeName() string
}

// PortDirection records whether a net has been registered as a module port.
type PortDirection int

// The port directions. NotPort is the zero value.
const (
	NotPort PortDirection = iota
	InputPort
	OutputPort
)

// Logic is a single mutable net. The zero value is not usable; use
// NewLogic().
type Logic struct {
	name  string
	width int
	value values.LogicValue

	// a net accepts at most one permanent driver. the driver is either
	// another net (continuous assignment), the net itself (consts), an
	// operator, or an always-block aggregator
	hasDriver bool
	constant  bool
	op        *Op

	// glitch listeners. indices into this table are the only reference an
	// observer holds, so the wire graph contains no ownership cycles
	listeners []func(Changed)

	// one-shot futures, resolved on the next glitch
	nextChanged []chan Changed

	// pre-tick capture for edge-sensitive sampling. preTick is only
	// meaningful when lastTickSeen equals the simulator's current tick
	lastTickSeen uint64
	preTick      values.LogicValue

	// edge decision state, maintained by the clkStable hook
	edgeHooked  bool
	edgePrev    values.LogicValue
	edgeSubs    []edgeSub
	nextPosedge []chan Edge
	nextNegedge []chan Edge

	// module scaffold bookkeeping
	scope Scope
	port  PortDirection
}

// NewLogic creates a floating net of the given width. The name is
// decorative; it appears in graph dumps and netlist emission but is not
// required to be unique.
func NewLogic(name string, width int) *Logic {
	if width < 1 {
		fail(ErrIllegalConfiguration,
			curated.Errorf("a net must be at least one bit wide, not %d", width))
	}
	return &Logic{
		name:  name,
		width: width,
		value: values.Filled(width, values.Z),
	}
}

// NewConst creates a net holding a fixed value. The net drives itself; any
// later attempt to change it is a defect.
func NewConst(v values.LogicValue) *Logic {
	l := NewLogic("const", v.Width())
	l.hasDriver = true
	l.set(v)
	l.constant = true
	return l
}

// NewConstUint is a convenience for NewConst of an integer value.
func NewConstUint(v uint64, width int) *Logic {
	return NewConst(values.MustFromUint(v, width))
}

// Name returns the decorative name given at construction.
func (l *Logic) Name() string {
	return l.name
}

// Width returns the net's declared width. Width never changes after
// construction.
func (l *Logic) Width() int {
	return l.width
}

// Value returns the net's current value as an immutable snapshot.
func (l *Logic) Value() values.LogicValue {
	return l.value
}

// Op returns the operator descriptor when the net is the output of an
// operator, or nil for a plain net.
func (l *Logic) Op() *Op {
	return l.op
}

// listen adds a glitch listener and returns its index in the listener
// table.
func (l *Logic) listen(f func(Changed)) int {
	l.listeners = append(l.listeners, f)
	return len(l.listeners) - 1
}

// OnGlitch subscribes to every value change of the net. Subscribers joining
// after a change do not see it; this is a broadcast stream with no history.
func (l *Logic) OnGlitch(f func(Changed)) {
	l.listen(f)
}

// NextChanged returns a channel that yields the net's next value change and
// nothing further.
func (l *Logic) NextChanged() <-chan Changed {
	ch := make(chan Changed, 1)
	l.nextChanged = append(l.nextChanged, ch)
	return ch
}

// PreTickValue returns the value the net held when the current simulator
// tick began. Clocked processes sample through this so that a chain of
// flops is not transparent within a single tick.
func (l *Logic) PreTickValue() values.LogicValue {
	if l.lastTickSeen == sim.TickID() {
		return l.preTick
	}
	return l.value
}

// set is the primitive mutation: record the value and propagate the glitch
// synchronously. callers have validated the value already.
func (l *Logic) set(v values.LogicValue) {
	// capture the start-of-tick value on the first change of the tick
	if tick := sim.TickID(); l.lastTickSeen != tick {
		l.lastTickSeen = tick
		l.preTick = l.value
	}

	if v.Equals(l.value) {
		return
	}

	prev := l.value
	l.value = v
	c := Changed{Previous: prev, New: v}

	// iterate a snapshot of the listener table: a listener may grow the
	// table (never shrink it) while the cascade runs
	subs := l.listeners
	for _, f := range subs {
		f(c)
	}

	for _, ch := range l.nextChanged {
		ch <- c
	}
	l.nextChanged = nil
}

// Put replaces the net's value, propagating the change synchronously to
// every glitch listener. The value must be of the net's width. Putting
// during the postTick phase is a defect: that phase is for observers.
//
// A Put is invisible to edge detection unless a tick is in flight; see
// Inject.
func (l *Logic) Put(v values.LogicValue) {
	if l.constant {
		fail(ErrConstReassigned, curated.Errorf("net %s", l.name))
	}
	l.putChecked(v)
}

// PutFromBlock is the drive path of an always-block aggregator. the block
// claimed the net with DriveFromBlock at elaboration so the const check is
// already settled.
func (l *Logic) PutFromBlock(v values.LogicValue) {
	l.putChecked(v)
}

func (l *Logic) putChecked(v values.LogicValue) {
	if v.Width() != l.width {
		fail(ErrWidthMismatch,
			curated.Errorf("cannot put %d bits on the %d bit net %s", v.Width(), l.width, l.name))
	}
	if sim.CurrentPhase() == sim.PhasePostTick {
		fail(ErrIllegalConfiguration,
			curated.Errorf("driver change in the postTick phase on net %s", l.name))
	}
	l.set(v)
}

// Inject schedules a Put into the injection phase of the simulator's
// current timestamp, so that the change takes part in this tick's edge
// decisions. This is the way a testbench toggles clocks and stimulus.
func (l *Logic) Inject(v values.LogicValue) {
	sim.InjectAction(func() {
		l.Put(v)
	})
}

// PutUint is a convenience for Put of an integer value.
func (l *Logic) PutUint(v uint64) {
	l.Put(values.MustFromUint(v, l.width))
}

// InjectUint is a convenience for Inject of an integer value.
func (l *Logic) InjectUint(v uint64) {
	l.Inject(values.MustFromUint(v, l.width))
}

// Drive records src as the net's permanent driver: the net takes src's
// value now and follows every change of it. A net accepts one driver; a
// second Drive is a defect.
func (l *Logic) Drive(src *Logic) {
	if src.width != l.width {
		fail(ErrWidthMismatch,
			curated.Errorf("cannot drive the %d bit net %s from the %d bit net %s",
				l.width, l.name, src.width, src.name))
	}
	if l.hasDriver {
		fail(ErrSignalRedriven, curated.Errorf("net %s already has a driver", l.name))
	}
	if l.constant {
		fail(ErrConstReassigned, curated.Errorf("net %s", l.name))
	}
	l.checkPortRules(src)

	l.hasDriver = true
	src.listen(func(c Changed) {
		l.set(c.New)
	})
	l.set(src.value)
}

// DriveFromBlock marks the net as driven by an always-block aggregator.
// the aggregator performs its own puts through PutFromBlock; only the
// single-driver rule is recorded here.
func (l *Logic) DriveFromBlock() {
	if l.hasDriver {
		fail(ErrSignalRedriven, curated.Errorf("net %s already has a driver", l.name))
	}
	if l.constant {
		fail(ErrConstReassigned, curated.Errorf("net %s", l.name))
	}
	l.hasDriver = true
}

// nets in different scopes can only be wired through a registered port on
// at least one side.
func (l *Logic) checkPortRules(src *Logic) {
	if l.scope == nil || src.scope == nil || l.scope == src.scope {
		return
	}
	if l.port == NotPort && src.port == NotPort {
		fail(ErrPortRules,
			curated.Errorf("nets %s (%s) and %s (%s) meet without a registered port",
				l.name, l.scope.ScopeName(), src.name, src.scope.ScopeName()))
	}
}

// SetScope records the owning scope of the net. The module scaffold calls
// this for nets created inside a module.
func (l *Logic) SetScope(s Scope) {
	l.scope = s
}

// ScopeOf returns the owning scope of the net, or nil.
func (l *Logic) ScopeOf() Scope {
	return l.scope
}

// MarkPort registers the net as a module port. A net registers once.
func (l *Logic) MarkPort(d PortDirection) {
	if l.port != NotPort {
		fail(ErrPortRules, curated.Errorf("net %s is already a port", l.name))
	}
	l.port = d
}

// Port returns the net's port registration.
func (l *Logic) Port() PortDirection {
	return l.port
}
