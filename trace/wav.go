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

package trace

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/gossim/gossim/curated"
	"github.com/gossim/gossim/hardware/signal"
	"github.com/gossim/gossim/hardware/values"
)

// error patterns for the trace package.
const (
	ErrNoTrace = "trace: nothing recorded: %v"
)

// amplitude of a definite 1 in the rendered PCM. a definite 0 renders as
// the negative and an x or z as silence, which makes unknown stretches easy
// to spot.
const level = 16000

// WriteWAV renders the low-order bit of a net's recording as 16-bit mono
// PCM, one frame per unit of simulated time, holding the last settled value
// between samples.
func (t *Tracer) WriteWAV(w io.WriteSeeker, l *signal.Logic, sampleRate int) error {
	rec := t.samples[l]
	if len(rec) == 0 {
		return curated.Errorf(ErrNoTrace, curated.Errorf("net %s", l.Name()))
	}

	end := rec[len(rec)-1].Time
	data := make([]int, end+1)

	idx := 0
	cur := 0
	for f := uint64(0); f <= end; f++ {
		for idx < len(rec) && rec[idx].Time <= f {
			b := rec[idx].Value.Get(0)
			switch {
			case !b.IsValid():
				cur = 0
			case b.Equals(values.FromBool(true)):
				cur = level
			default:
				cur = -level
			}
			idx++
		}
		data[f] = cur
	}

	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
