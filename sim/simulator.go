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

package sim

import (
	"sort"

	"github.com/gossim/gossim/curated"
	"github.com/gossim/gossim/logger"
)

// error patterns for the sim package.
const (
	ErrPastTime = "simulator: action registered for a past time: %v"
)

// Action is a unit of work on the simulator timeline.
type Action func()

// Phase identifies where in the current tick the simulator is.
type Phase int

// The phases of a tick, in execution order. PhaseIdle means no tick is in
// flight.
const (
	PhaseIdle Phase = iota
	PhaseInjection
	PhaseMain
	PhaseClkStable
	PhaseSettle
	PhasePostTick
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInjection:
		return "injection"
	case PhaseMain:
		return "main"
	case PhaseClkStable:
		return "clkStable"
	case PhaseSettle:
		return "settle"
	case PhasePostTick:
		return "postTick"
	}
	return "unknown"
}

// Simulator is a timestamped action queue. The process-wide instance is
// reached through the package level functions; independent instances only
// appear in tests of the simulator itself.
type Simulator struct {
	time  uint64
	phase Phase

	// every executed tick increments tickID. per-tick bookkeeping elsewhere
	// in the project (pre-tick value capture, once-per-tick execution of
	// clocked blocks) keys off this
	tickID uint64

	pending  map[uint64][]Action
	injected []Action
	settled  []Action

	// persistent phase subscribers. clkStable subscribers decide and fire
	// edges; postTick subscribers observe
	clkStableSubs []func()
	postTickSubs  []func()

	maxSimTime   uint64
	hasMaxTime   bool
	endRequested bool
}

// NewSimulator is the preferred method of initialisation for the Simulator
// type.
func NewSimulator() *Simulator {
	return &Simulator{
		pending: make(map[uint64][]Action),
	}
}

// Time returns the current simulated time.
func (s *Simulator) Time() uint64 {
	return s.time
}

// TickID returns the serial number of the tick in flight. It increments
// once per executed timestamp and never runs backwards, even across Reset().
func (s *Simulator) TickID() uint64 {
	return s.tickID
}

// Phase returns the phase of the tick in flight, or PhaseIdle between
// ticks.
func (s *Simulator) Phase() Phase {
	return s.phase
}

// RegisterAction places an action on the timeline at time t. Registering at
// the current time is allowed and the action runs during the current or next
// tick's main phase. Registering in the past is an error.
func (s *Simulator) RegisterAction(t uint64, a Action) error {
	if t < s.time {
		return curated.Errorf(ErrPastTime,
			curated.Errorf("time %d with the simulator at %d", t, s.time))
	}
	s.pending[t] = append(s.pending[t], a)
	return nil
}

// InjectAction adds an action to the current timestamp's injection list.
// Injections run before the main phase of the tick and may deposit further
// injections, which run in the same phase.
func (s *Simulator) InjectAction(a Action) {
	s.injected = append(s.injected, a)
}

// ScheduleSettle adds an action to the settle phase of the tick in flight.
// Clocked processes use this to apply their drives after every edge consumer
// has sampled.
func (s *Simulator) ScheduleSettle(a Action) {
	s.settled = append(s.settled, a)
}

// OnClkStable registers a persistent subscriber to the clkStable phase.
// Subscribers survive Reset(); they are the wiring of the circuit, not items
// of work.
func (s *Simulator) OnClkStable(f func()) {
	s.clkStableSubs = append(s.clkStableSubs, f)
}

// OnPostTick registers a persistent subscriber to the postTick phase.
func (s *Simulator) OnPostTick(f func()) {
	s.postTickSubs = append(s.postTickSubs, f)
}

// SetMaxSimTime halts the simulation once the timeline moves past time t.
func (s *Simulator) SetMaxSimTime(t uint64) {
	s.maxSimTime = t
	s.hasMaxTime = true
}

// EndSimulation asks the simulator to halt at the end of the current tick.
// Queued actions beyond the current tick are discarded; injections already
// deposited in the current tick still run.
func (s *Simulator) EndSimulation() {
	s.endRequested = true
}

// Reset returns the simulator to time zero and clears the timeline, the
// injection list and the per-tick work lists. Phase subscribers registered
// with OnClkStable() and OnPostTick() survive, as do the values of every
// Logic in the process: reset of the simulator is not reset of the circuit.
func (s *Simulator) Reset() {
	s.time = 0
	s.phase = PhaseIdle
	s.pending = make(map[uint64][]Action)
	s.injected = nil
	s.settled = nil
	s.maxSimTime = 0
	s.hasMaxTime = false
	s.endRequested = false
}

// HasPending returns true if any work remains on the timeline or in the
// injection list.
func (s *Simulator) HasPending() bool {
	return len(s.injected) > 0 || len(s.pending) > 0
}

// nextTime returns the earliest timestamp with pending work. the boolean
// return is false when the timeline is empty.
func (s *Simulator) nextTime() (uint64, bool) {
	if len(s.injected) > 0 {
		return s.time, true
	}

	var ts []uint64
	for t := range s.pending {
		ts = append(ts, t)
	}
	if len(ts) == 0 {
		return 0, false
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })
	return ts[0], true
}

// Tick executes the earliest pending timestamp. It returns false when there
// is nothing left to do or the simulation has been asked to end.
func (s *Simulator) Tick() bool {
	if s.endRequested {
		return false
	}

	t, ok := s.nextTime()
	if !ok {
		return false
	}
	if s.hasMaxTime && t > s.maxSimTime {
		logger.Logf("simulator", "max simulation time of %d reached", s.maxSimTime)
		return false
	}

	s.time = t
	s.tickID++

	// injection
	s.phase = PhaseInjection
	for len(s.injected) > 0 {
		a := s.injected[0]
		s.injected = s.injected[1:]
		a()
	}

	// main. actions may register more work at the current time while the
	// phase runs
	s.phase = PhaseMain
	for len(s.pending[t]) > 0 {
		a := s.pending[t][0]
		s.pending[t] = s.pending[t][1:]
		a()
	}
	delete(s.pending, t)

	// clkStable. iterate over a snapshot so that subscribers appearing
	// mid-phase (newly elaborated hardware) wait for the next tick
	s.phase = PhaseClkStable
	subs := s.clkStableSubs
	for _, f := range subs {
		f()
	}

	// settle. applying a drive can cascade and schedule nothing further;
	// clocked processes only add to this list during clkStable
	s.phase = PhaseSettle
	for len(s.settled) > 0 {
		a := s.settled[0]
		s.settled = s.settled[1:]
		a()
	}

	// postTick
	s.phase = PhasePostTick
	subs = s.postTickSubs
	for _, f := range subs {
		f()
	}

	if s.endRequested {
		// injections deposited during this tick still run before the halt
		s.phase = PhaseInjection
		for len(s.injected) > 0 {
			a := s.injected[0]
			s.injected = s.injected[1:]
			a()
		}
		s.pending = make(map[uint64][]Action)
	}

	s.phase = PhaseIdle

	return true
}

// Run consumes the timeline until it is empty, the maximum simulation time
// is exceeded, or EndSimulation() is called.
func (s *Simulator) Run() {
	for s.Tick() {
	}
}
