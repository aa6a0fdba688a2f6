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
	"math/big"
	"testing"

	"github.com/gossim/gossim/hardware/values"
	"github.com/gossim/gossim/test"
)

func TestConstruction(t *testing.T) {
	v, err := values.FromUint(0xaa, 8)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Width(), 8)
	test.ExpectSuccess(t, v.IsValid())

	// value does not fit the width
	_, err = values.FromUint(16, 4)
	test.ExpectCuratedError(t, err, values.ErrConstruction)

	// two's complement interpretation of negative values
	v, err = values.FromInt(-8, 4)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, v.Equals(values.MustFromString("1000")))

	v, err = values.FromInt(-1, 4)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, v.Equals(values.MustFromString("1111")))

	_, err = values.FromInt(-9, 4)
	test.ExpectCuratedError(t, err, values.ErrConstruction)

	// string construction. underscores are separators
	v, err = values.FromString("0101_1010")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, v.Equals(values.MustFromUint(0x5a, 8)))

	_, err = values.FromString("0102")
	test.ExpectCuratedError(t, err, values.ErrConstruction)

	// negative widths
	_, err = values.FromUint(0, -1)
	test.ExpectCuratedError(t, err, values.ErrConstruction)
}

func TestConstructionBig(t *testing.T) {
	b := new(big.Int).Lsh(big.NewInt(1), 100)

	v, err := values.FromBigInt(b, 101)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Width(), 101)
	test.ExpectSuccess(t, v.Get(100).Equals(values.FromBool(true)))
	test.ExpectSuccess(t, v.Get(99).Equals(values.FromBool(false)))

	_, err = values.FromBigInt(b, 100)
	test.ExpectCuratedError(t, err, values.ErrConstruction)
}

func TestEquality(t *testing.T) {
	// equality is structural and independent of internal representation
	test.ExpectSuccess(t, values.Filled(4, values.Zero).Equals(values.MustFromUint(0, 4)))
	test.ExpectSuccess(t, values.Filled(4, values.X).Equals(values.MustFromString("xxxx")))
	test.ExpectSuccess(t, values.Empty().Equals(values.Empty()))

	// differing widths are never equal
	test.ExpectFailure(t, values.MustFromUint(0, 4).Equals(values.MustFromUint(0, 5)))

	// x and z are distinct bits
	test.ExpectFailure(t, values.MustFromString("x").Equals(values.MustFromString("z")))
}

func TestFloating(t *testing.T) {
	test.ExpectSuccess(t, values.Filled(8, values.Z).IsFloating())
	test.ExpectFailure(t, values.MustFromString("z0zz").IsFloating())
	test.ExpectFailure(t, values.Empty().IsFloating())
}

func TestInfer(t *testing.T) {
	v, err := values.Infer(5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Width(), 3)

	v, err = values.Infer(uint64(0))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Width(), 1)

	v, err = values.Infer(new(big.Int).Lsh(big.NewInt(1), 99))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Width(), 100)

	_, err = values.Infer(-1)
	test.ExpectCuratedError(t, err, values.ErrConstruction)

	_, err = values.Infer("nonsense")
	test.ExpectCuratedError(t, err, values.ErrNonSupportedType)
}

func TestConversion(t *testing.T) {
	v := values.MustFromUint(200, 8)
	u, err := v.ToUint()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, u, uint64(200))

	// invalid bits have no integer form
	_, err = values.MustFromString("01x0").ToUint()
	test.ExpectCuratedError(t, err, values.ErrInvalidValueOperation)

	// too wide for a machine word, even when the value itself is small
	wide, err := values.FromUint(1, 100)
	test.ExpectSuccess(t, err)
	_, err = wide.ToUint()
	test.ExpectCuratedError(t, err, values.ErrInvalidTruncation)

	b, err := wide.ToBigInt()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Cmp(big.NewInt(1)), 0)
}

func TestIntRoundTrip(t *testing.T) {
	for _, w := range []int{1, 5, 8, 16, 63, 64} {
		for _, i := range []uint64{0, 1, 2, 30} {
			if w < 64 && i>>uint(w) != 0 {
				continue
			}
			v := values.MustFromUint(i, w)
			u, err := v.ToUint()
			test.ExpectSuccess(t, err)
			test.ExpectEquality(t, u, i)
		}
	}
}
