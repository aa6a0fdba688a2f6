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

// Package hardware is the base package for circuit construction. Its
// sub-packages contain everything needed to describe a design and hold its
// live state: four-state values, signal nets and their operators, the
// procedural always-blocks, clock generation and the module hierarchy
// scaffold.
//
// The companion sim package executes what is described here. A typical
// program elaborates a design out of these packages, places stimulus on the
// sim timeline and calls sim.Run().
package hardware
