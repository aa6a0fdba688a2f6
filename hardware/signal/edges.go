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
	"github.com/gossim/gossim/hardware/values"
	"github.com/gossim/gossim/sim"
)

// EdgeKind classifies a transition of a net's low-order bit.
type EdgeKind int

// The edge kinds. An InvalidEdge is a transition in which the previous or
// new bit was x or z; consumers that have not opted in never see one.
const (
	Posedge EdgeKind = iota
	Negedge
	InvalidEdge
)

func (k EdgeKind) String() string {
	switch k {
	case Posedge:
		return "posedge"
	case Negedge:
		return "negedge"
	case InvalidEdge:
		return "invalid edge"
	}
	return "unknown"
}

// Edge describes one validated transition of a net's low-order bit, as
// decided during the clkStable phase of a tick.
type Edge struct {
	Kind     EdgeKind
	Previous values.LogicValue
	New      values.LogicValue
}

type edgeSub struct {
	f             func(Edge)
	kind          EdgeKind
	any           bool // deliver posedge and negedge both
	ignoreInvalid bool
}

// hookEdges couples the net to the simulator's clkStable phase. done once,
// on the first edge subscription.
func (l *Logic) hookEdges() {
	if l.edgeHooked {
		return
	}
	l.edgeHooked = true
	l.edgePrev = l.value
	sim.OnClkStable(l.decideEdge)
}

// decideEdge runs in the clkStable phase: compare the value observed at the
// previous clkStable with the value now and fire at most one edge. glitch
// storms inside the tick are invisible here.
func (l *Logic) decideEdge() {
	prev := l.edgePrev
	cur := l.value
	l.edgePrev = cur

	pb := prev.Get(0)
	cb := cur.Get(0)
	if pb.Equals(cb) {
		return
	}

	one := values.FromBool(true)
	zero := values.FromBool(false)

	var kind EdgeKind
	switch {
	case pb.Equals(zero) && cb.Equals(one):
		kind = Posedge
	case pb.Equals(one) && cb.Equals(zero):
		kind = Negedge
	default:
		kind = InvalidEdge
	}

	e := Edge{Kind: kind, Previous: prev, New: cur}

	subs := l.edgeSubs
	for _, s := range subs {
		switch kind {
		case InvalidEdge:
			if !s.ignoreInvalid {
				s.f(e)
			}
		default:
			if s.any || s.kind == kind {
				s.f(e)
			}
		}
	}

	if kind == Posedge || kind == InvalidEdge {
		for _, ch := range l.nextPosedge {
			ch <- e
		}
		l.nextPosedge = nil
	}
	if kind == Negedge || kind == InvalidEdge {
		for _, ch := range l.nextNegedge {
			ch <- e
		}
		l.nextNegedge = nil
	}
}

// OnPosedge subscribes to validated 0 to 1 transitions of the net's
// low-order bit. transitions involving x or z are suppressed.
func (l *Logic) OnPosedge(f func(Edge)) {
	l.hookEdges()
	l.edgeSubs = append(l.edgeSubs, edgeSub{f: f, kind: Posedge, ignoreInvalid: true})
}

// OnNegedge subscribes to validated 1 to 0 transitions of the net's
// low-order bit. transitions involving x or z are suppressed.
func (l *Logic) OnNegedge(f func(Edge)) {
	l.hookEdges()
	l.edgeSubs = append(l.edgeSubs, edgeSub{f: f, kind: Negedge, ignoreInvalid: true})
}

// OnEdge subscribes to every transition of the net's low-order bit, in both
// directions. when ignoreInvalid is false the subscriber additionally
// receives InvalidEdge notifications; clocked processes use those to
// propagate x through their receivers.
func (l *Logic) OnEdge(f func(Edge), ignoreInvalid bool) {
	l.hookEdges()
	l.edgeSubs = append(l.edgeSubs, edgeSub{f: f, any: true, ignoreInvalid: ignoreInvalid})
}

// NextPosedge returns a channel that yields the net's next posedge and
// nothing further. an InvalidEdge resolves the channel too, so that a
// waiting testbench is not left hanging by an x clock.
func (l *Logic) NextPosedge() <-chan Edge {
	l.hookEdges()
	ch := make(chan Edge, 1)
	l.nextPosedge = append(l.nextPosedge, ch)
	return ch
}

// NextNegedge returns a channel that yields the net's next negedge and
// nothing further.
func (l *Logic) NextNegedge() <-chan Edge {
	l.hookEdges()
	ch := make(chan Edge, 1)
	l.nextNegedge = append(l.nextNegedge, ch)
	return ch
}
