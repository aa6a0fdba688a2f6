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

// Package signal implements the wire graph of a circuit. A Logic is a
// mutable net of fixed width; its value at any instant is a
// values.LogicValue and every net starts life floating (all z).
//
// Nets connect in two ways. Drive() records a permanent continuous driver;
// a net accepts at most one. The operator constructors (And, Add, Mux,
// Swizzle and the rest) build a new net whose value follows a function of
// its inputs, recomputed on every input change. Each operator net carries an
// Op descriptor naming its variant and inputs, which is all an external
// netlist emitter needs.
//
// Any change of a net's value is a glitch and is propagated synchronously
// to listeners at the moment of the Put(). Edges are different: a posedge or
// negedge is a validated transition of bit 0, decided once per simulator
// tick during the clkStable phase, however many glitches the tick
// contained. Edge observation therefore only happens under a running
// simulator, and a testbench that wants same-tick edges must change values
// with Inject() rather than Put().
package signal
