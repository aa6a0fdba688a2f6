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

// Package sim is the event-driven simulator at the centre of the project.
// There is one simulator per process, reached through the package level
// functions; Reset() returns it to its initial state between simulations.
//
// Simulated time is an unsigned integer and only ever moves forward. Work is
// placed on the timeline with RegisterAction(); the Run() function then
// consumes the timeline one timestamp at a time. The execution of a single
// timestamp is a tick, and a tick moves through five phases in a fixed
// order:
//
//	injection   actions deposited with InjectAction(), drained first
//	main        actions registered for this timestamp, in insertion order
//	clkStable   signals are settled; edges are decided and fire, once per
//	            net, and clocked processes execute
//	settle      drives scheduled by clocked processes are applied, and the
//	            combinational fan-out from them settles
//	postTick    observers run; no driver changes are permitted
//
// Glitch propagation is not queued: a put cascades synchronously through its
// listeners inside whichever phase performed it. The phase structure exists
// so that edge-sensitive logic sees exactly one clean transition per tick no
// matter how many glitches occurred while the tick was settling.
//
// InjectAction() is the one legal way for a testbench to change signal
// values and still have edges observed at the same timestamp.
//
// Everything here is single-threaded and cooperative. Handlers must not
// block; a handler that does stalls simulated time for the whole process.
package sim
