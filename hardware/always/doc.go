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

// Package always implements the procedural side of circuit description:
// trees of conditional statements executed inside a Combinational or
// Sequential container, the two kinds of always-block.
//
// A conditional tree is built from NewAssign(), NewIf(), NewIfBlock(),
// NewCase() and NewCaseZ(). A tree belongs to exactly one block; the same
// Conditional value appearing under two blocks is a defect caught at
// construction.
//
// A Combinational re-walks its tree whenever any net it reads changes.
// Assignments apply immediately, in statement order, so later statements
// observe earlier ones. A receiver the walk never reaches is driven all-x:
// an always-block describes logic, not latches. A walk that keeps
// re-triggering itself within one simulator tick is a combinational loop;
// past the loop limit the block gives up, drives its receivers all-x and
// logs a warning.
//
// A Sequential executes on clock edges, during the clkStable phase of a
// tick. It samples the pre-tick value of everything it reads and defers its
// drives to the settle phase, so a chain of clocked processes is never
// transparent within a tick. Receivers the walk does not reach hold their
// value. A reset, synchronous or asynchronous, substitutes the declared
// reset values, and an x or z clock edge drives every receiver all-x.
//
// CombinationalSSA() allows imperative-looking description: each assignment
// to a net through the scope produces a fresh version, reads observe the
// latest version, and branch merges are reconciled automatically.
package always
