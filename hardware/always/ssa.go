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

package always

import (
	"fmt"

	"github.com/gossim/gossim/curated"
	"github.com/gossim/gossim/hardware/signal"
)

// SSA is the scope handed to a CombinationalSSA builder. Writing a net
// through the scope produces a fresh version of it; reading returns the
// latest version; the last version of each net drives the real net when the
// block is lowered.
//
// Statement order is the program order of the builder. Branches opened with
// the scope's If() are reconciled at their merge point: every net written
// in either branch gets a fresh merge version, driven on each path by that
// path's final version.
type SSA struct {
	latest map[*signal.Logic]*signal.Logic
	count  map[*signal.Logic]int
	order  []*signal.Logic
}

func newSSA() *SSA {
	return &SSA{
		latest: make(map[*signal.Logic]*signal.Logic),
		count:  make(map[*signal.Logic]int),
	}
}

func (s *SSA) version(real *signal.Logic) *signal.Logic {
	if _, ok := s.count[real]; !ok {
		s.order = append(s.order, real)
	}
	v := signal.NewLogic(fmt.Sprintf("%s~%d", real.Name(), s.count[real]), real.Width())
	s.count[real]++
	return v
}

// Assign writes driver to the net, producing the net's next version.
func (s *SSA) Assign(real *signal.Logic, driver *signal.Logic) Conditional {
	v := s.version(real)
	c := NewAssign(v, driver)
	s.latest[real] = v
	return c
}

// Val reads the latest version of the net. Reading before any write is a
// defect.
func (s *SSA) Val(real *signal.Logic) *signal.Logic {
	v, ok := s.latest[real]
	if !ok {
		fail(ErrUninitializedSignal, curated.Errorf("net %s", real.Name()))
	}
	return v
}

// If opens a branch inside the scope. the branch bodies run as ordinary Go
// functions building their statement lists; the scope snapshots versions
// around each body and reconciles the two paths afterwards. elseFn may be
// nil.
func (s *SSA) If(cond *signal.Logic, thenFn func() []Conditional, elseFn func() []Conditional) Conditional {
	pre := s.snapshot()

	thenConds := thenFn()
	thenLatest := s.snapshot()

	s.restore(pre)
	var elseConds []Conditional
	if elseFn != nil {
		elseConds = elseFn()
	}
	elseLatest := s.snapshot()

	s.restore(pre)

	// reconcile: a net written on either path gets a merge version, driven
	// on each path by that path's final version. a path that never wrote
	// the net drives the pre-branch version through, when one exists; with
	// no pre-branch version the merge is simply unreached on that path
	for _, real := range s.order {
		tv := thenLatest[real]
		ev := elseLatest[real]
		pv := pre[real]
		if tv == pv && ev == pv {
			continue
		}

		vm := s.version(real)
		if tv != nil {
			thenConds = append(thenConds, NewAssign(vm, tv))
		}
		if ev != nil {
			elseConds = append(elseConds, NewAssign(vm, ev))
		}
		s.latest[real] = vm
	}

	return NewIf(cond, thenConds, elseConds)
}

func (s *SSA) snapshot() map[*signal.Logic]*signal.Logic {
	m := make(map[*signal.Logic]*signal.Logic, len(s.latest))
	for k, v := range s.latest {
		m[k] = v
	}
	return m
}

func (s *SSA) restore(m map[*signal.Logic]*signal.Logic) {
	s.latest = make(map[*signal.Logic]*signal.Logic, len(m))
	for k, v := range m {
		s.latest[k] = v
	}
}

// CombinationalSSA builds a combinational block from an imperative
// builder. the builder receives the versioning scope and returns its
// statement list; the lowering appends the drive of each real net from its
// final version.
func CombinationalSSA(build func(s *SSA) []Conditional) *Combinational {
	s := newSSA()
	conds := build(s)

	for _, real := range s.order {
		conds = append(conds, NewAssign(real, s.latest[real]))
	}

	return NewCombinational(conds...)
}
