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

package values_test

import (
	"testing"

	"github.com/gossim/gossim/hardware/values"
	"github.com/gossim/gossim/test"
)

func TestGet(t *testing.T) {
	v := values.MustFromString("01xz")

	test.ExpectSuccess(t, v.Get(0).Equals(values.Filled(1, values.Z)))
	test.ExpectSuccess(t, v.Get(1).Equals(values.Filled(1, values.X)))
	test.ExpectSuccess(t, v.Get(3).Equals(values.FromBool(false)))

	// negative indices count back from the most significant bit
	test.ExpectSuccess(t, v.Get(-1).Equals(values.FromBool(false)))
	test.ExpectSuccess(t, v.Get(-2).Equals(values.FromBool(true)))

	test.ExpectPanic(t, values.ErrIndex, func() { v.Get(4) })
	test.ExpectPanic(t, values.ErrIndex, func() { v.Get(-5) })
}

func TestRange(t *testing.T) {
	v := values.MustFromUint(0xb4, 8)

	test.ExpectSuccess(t, v.Range(0, 4).Equals(values.MustFromUint(0x4, 4)))
	test.ExpectSuccess(t, v.Range(4, 8).Equals(values.MustFromUint(0xb, 4)))
	test.ExpectSuccess(t, v.Range(0, -4).Equals(values.MustFromUint(0x4, 4)))

	// an empty range gives the zero-width value
	test.ExpectSuccess(t, v.Range(3, 3).Equals(values.Empty()))

	test.ExpectPanic(t, values.ErrIndex, func() { v.Range(5, 3) })
	test.ExpectPanic(t, values.ErrIndex, func() { v.Range(0, 9) })
}

func TestSlice(t *testing.T) {
	v := values.MustFromUint(0xb4, 8)

	// natural subrange: the lower endpoint lands in the least significant
	// position
	test.ExpectSuccess(t, v.Slice(0, 3).Equals(values.MustFromUint(0x4, 4)))

	// reversed subrange: the first endpoint still lands in the least
	// significant position
	test.ExpectSuccess(t, v.Slice(3, 0).Equals(values.MustFromUint(0x2, 4)))

	test.ExpectSuccess(t, v.Slice(5, 5).Equals(values.FromBool(true)))
	test.ExpectPanic(t, values.ErrIndex, func() { v.Slice(0, 8) })
}

func TestReversed(t *testing.T) {
	test.ExpectSuccess(t, values.MustFromString("01xz").Reversed().Equals(values.MustFromString("zx10")))
	test.ExpectSuccess(t, values.Empty().Reversed().Equals(values.Empty()))
}

func TestSwizzle(t *testing.T) {
	a := values.MustFromUint(0xaa, 8)
	b := values.MustFromUint(0x55, 8)

	// the first component takes the most significant end
	cat := values.Swizzle([]values.LogicValue{b, a})
	test.ExpectEquality(t, cat.Width(), 16)
	test.ExpectSuccess(t, cat.Equals(values.MustFromUint(0x55aa, 16)))

	// the low-order three bits belong to a
	test.ExpectSuccess(t, cat.Range(0, 3).Equals(values.MustFromUint(0x2, 3)))

	// zero-width components are the identity
	test.ExpectSuccess(t, values.Swizzle([]values.LogicValue{b, values.Empty(), a}).Equals(cat))

	// RSwizzle is the same catenation from the other end
	test.ExpectSuccess(t, values.RSwizzle([]values.LogicValue{a, b}).Equals(cat))
}
