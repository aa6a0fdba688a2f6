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

package values

import (
	"math/big"

	"github.com/gossim/gossim/curated"
)

// ToUint returns the value as an unsigned integer. the value must be fully
// valid and no wider than a machine word.
func (lv LogicValue) ToUint() (uint64, error) {
	if !lv.IsValid() {
		return 0, curated.Errorf(ErrInvalidValueOperation,
			"value with x or z bits has no integer form")
	}
	if lv.width > 64 {
		return 0, curated.Errorf(ErrInvalidTruncation,
			curated.Errorf("%d bits is wider than a machine word", lv.width))
	}
	v, _ := lv.words()
	return v, nil
}

// ToInt returns the value as a signed integer, reinterpreting the bit
// pattern as two's-complement at machine word width. the value must be fully
// valid and no wider than a machine word.
func (lv LogicValue) ToInt() (int64, error) {
	v, err := lv.ToUint()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// ToBigInt returns the value as an arbitrary precision unsigned integer. the
// value must be fully valid.
func (lv LogicValue) ToBigInt() (*big.Int, error) {
	if !lv.IsValid() {
		return nil, curated.Errorf(ErrInvalidValueOperation,
			"value with x or z bits has no integer form")
	}
	bv, _ := lv.bigs()
	return new(big.Int).Set(bv), nil
}
