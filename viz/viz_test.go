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

package viz_test

import (
	"strings"
	"testing"

	"github.com/gossim/gossim/hardware/signal"
	"github.com/gossim/gossim/sim"
	"github.com/gossim/gossim/test"
	"github.com/gossim/gossim/viz"
)

func TestDump(t *testing.T) {
	sim.Reset()

	a := signal.NewLogic("a", 4)
	b := signal.NewLogic("b", 4)
	out := signal.And(a, signal.Not(b))

	tw := &test.Writer{}
	viz.Dump(tw, out)

	s := tw.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "digraph"))
	test.ExpectSuccess(t, strings.Contains(s, "and"))
	test.ExpectSuccess(t, strings.Contains(s, "not"))
}
