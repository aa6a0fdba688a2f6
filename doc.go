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

// Gossim is a hardware construction and simulation framework: circuits are
// described as Go programs wiring four-state logic nets, simulated on an
// event-driven timeline, and exposed to external tooling for netlist
// emission and inspection.
//
// Start with the hardware/values, hardware/signal and hardware/always
// packages for the description side, and the sim package for execution.
package gossim
