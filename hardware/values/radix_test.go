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
	"strings"
	"testing"

	"github.com/gossim/gossim/hardware/values"
	"github.com/gossim/gossim/test"
)

func TestRadixStrings(t *testing.T) {
	v := values.MustFromUint(0xff, 8)
	test.ExpectEquality(t, v.ToRadixString(16), "8'hff")
	test.ExpectEquality(t, v.ToRadixString(2), "8'b11111111")
	test.ExpectEquality(t, v.ToRadixString(10), "8'd255")

	v = values.MustFromUint(0x0a, 8)
	test.ExpectEquality(t, v.ToRadixString(16), "8'ha")
	test.ExpectEquality(t, v.ToRadixStringPadded(16), "8'h0a")
	test.ExpectEquality(t, v.ToRadixString(8), "8'o12")

	// uniformly invalid digit groups are uppercase fill digits
	test.ExpectEquality(t, values.Filled(8, values.X).ToRadixString(16), "8'hXX")
	test.ExpectEquality(t, values.Filled(8, values.Z).ToRadixString(2), "8'bZZZZZZZZ")

	// a group mixing valid and invalid bits is expanded inside <> markers
	test.ExpectEquality(t, values.MustFromString("011x1010").ToRadixString(16), "8'h<011x>a")

	// unsupported radix is a defect
	test.ExpectPanic(t, values.ErrNonSupportedType, func() { v.ToRadixString(3) })
}

func TestRadixGrouping(t *testing.T) {
	v := values.MustFromUint(0xdeadbeef, 32)
	test.ExpectEquality(t, v.ToRadixStringGrouped(16), "32'hdead_beef")

	r, err := values.FromRadixString(v.ToRadixStringGrouped(2))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, r.Equals(v))
}

func TestRadixRoundTrip(t *testing.T) {
	samples := []values.LogicValue{
		values.Empty(),
		values.FromBool(true),
		values.MustFromUint(0, 1),
		values.MustFromUint(0xdeadbeef, 48),
		values.MustFromString("01xz1"),
		values.MustFromString("011x1010"),
		values.Filled(13, values.X),
		values.Filled(64, values.Z),
		values.MustFromString(strings.Repeat("01xz10zx", 12)),
		values.MustFromString("1" + strings.Repeat("0", 99)),
	}

	for _, v := range samples {
		for _, radix := range []int{2, 4, 8, 10, 16} {
			s := v.ToRadixString(radix)
			r, err := values.FromRadixString(s)
			if !test.ExpectSuccess(t, err) {
				t.Logf("parsing %q", s)
				continue
			}
			if !test.ExpectSuccess(t, r.Equals(v)) {
				t.Logf("round trip of %q", s)
			}

			s = v.ToRadixStringPadded(radix)
			r, err = values.FromRadixString(s)
			if !test.ExpectSuccess(t, err) {
				t.Logf("parsing %q", s)
				continue
			}
			if !test.ExpectSuccess(t, r.Equals(v)) {
				t.Logf("round trip of %q", s)
			}
		}
	}
}

func TestRadixParseErrors(t *testing.T) {
	_, err := values.FromRadixString("4'b0110")
	test.ExpectSuccess(t, err)

	// separators are ignored
	v, err := values.FromRadixString("8'b0101_1010")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, v.Equals(values.MustFromUint(0x5a, 8)))

	_, err = values.FromRadixString("0110")
	test.ExpectCuratedError(t, err, values.ErrConstruction)

	_, err = values.FromRadixString("4'w0110")
	test.ExpectCuratedError(t, err, values.ErrConstruction)

	_, err = values.FromRadixString("4'b01120")
	test.ExpectCuratedError(t, err, values.ErrConstruction)

	// digits wider than the declared width
	_, err = values.FromRadixString("4'b10110")
	test.ExpectCuratedError(t, err, values.ErrConstruction)

	_, err = values.FromRadixString("4'd16")
	test.ExpectCuratedError(t, err, values.ErrConstruction)

	_, err = values.FromRadixString("4'b<01x>")
	test.ExpectSuccess(t, err)

	_, err = values.FromRadixString("4'b<01x")
	test.ExpectCuratedError(t, err, values.ErrConstruction)
}
