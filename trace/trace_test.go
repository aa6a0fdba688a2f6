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

package trace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gossim/gossim/hardware/clocks"
	"github.com/gossim/gossim/hardware/signal"
	"github.com/gossim/gossim/sim"
	"github.com/gossim/gossim/test"
	"github.com/gossim/gossim/trace"
)

func TestSampling(t *testing.T) {
	sim.Reset()

	clk := clocks.NewSimpleClock("clk", 10)

	tr := trace.NewTracer()
	tr.Trace(clk)

	sim.SetMaxSimTime(20)
	sim.Run()

	// ticks at 5, 10, 15 and 20: low-high alternation of the clock
	rec := tr.Samples(clk)
	test.ExpectEquality(t, len(rec), 4)
	test.ExpectEquality(t, rec[0].Time, uint64(5))
	test.ExpectEquality(t, rec[0].Value.String(), "1'b1")
	test.ExpectEquality(t, rec[1].Value.String(), "1'b0")
	test.ExpectEquality(t, rec[2].Value.String(), "1'b1")
	test.ExpectEquality(t, rec[3].Value.String(), "1'b0")
}

func TestWriteWAV(t *testing.T) {
	sim.Reset()

	clk := clocks.NewSimpleClock("clk", 4)

	tr := trace.NewTracer()
	tr.Trace(clk)

	sim.SetMaxSimTime(40)
	sim.Run()

	fn := filepath.Join(t.TempDir(), "clk.wav")
	f, err := os.Create(fn)
	test.ExpectSuccess(t, err)
	defer f.Close()

	test.ExpectSuccess(t, tr.WriteWAV(f, clk, 8000))

	st, err := os.Stat(fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, st.Size() > 44)

	// an empty recording is an error
	idle := signal.NewLogic("idle", 1)
	test.ExpectCuratedError(t, tr.WriteWAV(f, idle, 8000), trace.ErrNoTrace)
}
