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

// central is the simulator used by the package level functions. signal nets
// and always-blocks couple themselves to this instance.
var central = NewSimulator()

// Time returns the current simulated time of the central simulator.
func Time() uint64 {
	return central.Time()
}

// TickID returns the serial number of the central simulator's tick in
// flight.
func TickID() uint64 {
	return central.TickID()
}

// CurrentPhase returns the phase of the central simulator's tick in flight.
func CurrentPhase() Phase {
	return central.Phase()
}

// RegisterAction places an action on the central simulator's timeline.
func RegisterAction(t uint64, a Action) error {
	return central.RegisterAction(t, a)
}

// InjectAction adds an action to the central simulator's injection list.
func InjectAction(a Action) {
	central.InjectAction(a)
}

// ScheduleSettle adds an action to the settle phase of the central
// simulator's tick in flight.
func ScheduleSettle(a Action) {
	central.ScheduleSettle(a)
}

// OnClkStable registers a persistent clkStable subscriber with the central
// simulator.
func OnClkStable(f func()) {
	central.OnClkStable(f)
}

// OnPostTick registers a persistent postTick subscriber with the central
// simulator.
func OnPostTick(f func()) {
	central.OnPostTick(f)
}

// SetMaxSimTime halts the central simulator once the timeline moves past
// time t.
func SetMaxSimTime(t uint64) {
	central.SetMaxSimTime(t)
}

// EndSimulation asks the central simulator to halt at the end of the
// current tick.
func EndSimulation() {
	central.EndSimulation()
}

// Reset returns the central simulator to its initial state. Tests call this
// between simulations.
func Reset() {
	central.Reset()
}

// HasPending returns true if any work remains on the central simulator's
// timeline.
func HasPending() bool {
	return central.HasPending()
}

// Tick executes the earliest pending timestamp on the central simulator.
func Tick() bool {
	return central.Tick()
}

// Run consumes the central simulator's timeline until it is empty, the
// maximum simulation time is exceeded, or EndSimulation() is called.
func Run() {
	central.Run()
}
