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

// Package trace records the value of chosen nets over simulated time. The
// tracer samples during the postTick phase, once per executed timestamp, so
// a trace holds settled values only, never mid-tick glitches.
//
// A recorded trace can be rendered as a WAV file. It sounds like nothing
// worth hearing but any audio editor then serves as a free waveform viewer
// for squinting at clocks and strobes.
package trace

import (
	"github.com/gossim/gossim/hardware/signal"
	"github.com/gossim/gossim/hardware/values"
	"github.com/gossim/gossim/sim"
)

// Sample is one recorded point of a trace.
type Sample struct {
	Time  uint64
	Value values.LogicValue
}

// Tracer records the values of registered nets at the end of every
// simulator tick.
type Tracer struct {
	targets []*signal.Logic
	samples map[*signal.Logic][]Sample
}

// NewTracer is the preferred method of initialisation for the Tracer type.
// the tracer hooks the simulator's postTick phase immediately.
func NewTracer() *Tracer {
	t := &Tracer{
		samples: make(map[*signal.Logic][]Sample),
	}
	sim.OnPostTick(t.sample)
	return t
}

// Trace adds a net to the recording set.
func (t *Tracer) Trace(l *signal.Logic) {
	t.targets = append(t.targets, l)
}

func (t *Tracer) sample() {
	now := sim.Time()
	for _, l := range t.targets {
		t.samples[l] = append(t.samples[l], Sample{Time: now, Value: l.Value()})
	}
}

// Samples returns the recording of one net, in time order.
func (t *Tracer) Samples(l *signal.Logic) []Sample {
	return t.samples[l]
}
