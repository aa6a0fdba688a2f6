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

package always_test

import (
	"testing"

	"github.com/gossim/gossim/hardware/always"
	"github.com/gossim/gossim/hardware/signal"
	"github.com/gossim/gossim/hardware/values"
	"github.com/gossim/gossim/sim"
	"github.com/gossim/gossim/test"
)

func TestSSAVersioning(t *testing.T) {
	sim.Reset()

	q := signal.NewLogic("q", 8)
	one := signal.NewConstUint(1, 8)

	// imperative accumulation: every read sees the version written by the
	// statement before it
	always.CombinationalSSA(func(s *always.SSA) []always.Conditional {
		c1 := s.Assign(q, signal.NewConstUint(0, 8))
		c2 := s.Assign(q, signal.Add(s.Val(q), one))
		c3 := s.Assign(q, signal.Add(s.Val(q), one))
		return []always.Conditional{c1, c2, c3}
	})

	test.ExpectSuccess(t, q.Value().Equals(values.MustFromUint(2, 8)))
}

func TestSSABranchMerge(t *testing.T) {
	sim.Reset()

	en := signal.NewLogic("en", 1)
	q := signal.NewLogic("q", 8)
	one := signal.NewConstUint(1, 8)

	always.CombinationalSSA(func(s *always.SSA) []always.Conditional {
		c1 := s.Assign(q, signal.NewConstUint(10, 8))
		c2 := s.If(en, func() []always.Conditional {
			return []always.Conditional{
				s.Assign(q, signal.Add(s.Val(q), one)),
			}
		}, nil)
		return []always.Conditional{c1, c2}
	})

	// the untaken path carries the pre-branch version through the merge
	en.PutUint(0)
	test.ExpectSuccess(t, q.Value().Equals(values.MustFromUint(10, 8)))

	en.PutUint(1)
	test.ExpectSuccess(t, q.Value().Equals(values.MustFromUint(11, 8)))
}

func TestSSANestedBranches(t *testing.T) {
	sim.Reset()

	a := signal.NewLogic("a", 1)
	b := signal.NewLogic("b", 1)
	q := signal.NewLogic("q", 4)

	always.CombinationalSSA(func(s *always.SSA) []always.Conditional {
		c1 := s.Assign(q, signal.NewConstUint(0, 4))
		c2 := s.If(a, func() []always.Conditional {
			inner := s.If(b, func() []always.Conditional {
				return []always.Conditional{s.Assign(q, signal.NewConstUint(3, 4))}
			}, func() []always.Conditional {
				return []always.Conditional{s.Assign(q, signal.NewConstUint(2, 4))}
			})
			return []always.Conditional{inner}
		}, func() []always.Conditional {
			return []always.Conditional{s.Assign(q, signal.NewConstUint(1, 4))}
		})
		return []always.Conditional{c1, c2}
	})

	for _, tc := range []struct {
		a, b uint64
		want uint64
	}{
		{0, 0, 1}, {0, 1, 1}, {1, 0, 2}, {1, 1, 3},
	} {
		a.PutUint(tc.a)
		b.PutUint(tc.b)
		test.ExpectSuccess(t, q.Value().Equals(values.MustFromUint(tc.want, 4)))
	}
}

func TestSSAReadBeforeWrite(t *testing.T) {
	sim.Reset()

	q := signal.NewLogic("q", 8)

	test.ExpectPanic(t, always.ErrUninitializedSignal, func() {
		always.CombinationalSSA(func(s *always.SSA) []always.Conditional {
			return []always.Conditional{
				always.NewAssign(q, s.Val(q)),
			}
		})
	})
}
