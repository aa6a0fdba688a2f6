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

// Package values implements the LogicValue type, an immutable bit-vector in
// which every bit is one of the four states 0, 1, x (unknown) and z (high
// impedance).
//
// A LogicValue has a fixed width, decided at construction. Widths well beyond
// a machine word are supported; the package switches internal representation
// as needed and the choice is never visible to the caller.
//
// Values are constructed with one of the From* functions, with Filled, or by
// parsing a string:
//
//	v, err := values.FromString("01xz")
//	w, err := values.FromUint(0xff, 8)
//	f := values.Filled(64, values.Z)
//
// Operations come in two flavours. Anything that consumes external data (the
// constructors, FromRadixString, the To* conversions) returns an error in the
// usual way. The operators themselves (And, Add, Shl, Slice, etc) do not
// return errors; mistakes like mismatched widths are defects in the circuit
// description, not runtime conditions, so these functions panic with a
// curated error. The Must* constructors follow the same reasoning.
//
// Invalid bits are not errors. An x or z input flows through every operator
// according to the usual four-state tables: AND with a definite 0 is 0, OR
// with a definite 1 is 1, and otherwise uncertainty poisons the result.
// Arithmetic is unsigned, wraps modulo 2^width, and produces an all-x result
// if any operand bit is invalid.
package values
