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

// Package viz renders the upstream cone of a set of nets as graphviz dot,
// for eyeballing what an elaborated design actually wired together. Pipe
// the output through dot to get an image:
//
//	viz.Dump(f, out)
//	% dot -Tsvg out.dot > out.svg
package viz

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/gossim/gossim/hardware/signal"
)

// Node is the visualisation shadow of one net: enough structure for a
// useful picture, nothing that drags the whole simulator state into it.
type Node struct {
	Name    string
	Width   int
	Value   string
	Variant string
	Inputs  []*Node
}

// build the shadow graph of a net's upstream cone.
func build(l *signal.Logic, seen map[*signal.Logic]*Node) *Node {
	if n, ok := seen[l]; ok {
		return n
	}

	n := &Node{
		Name:  l.Name(),
		Width: l.Width(),
		Value: l.Value().String(),
	}
	seen[l] = n

	if op := l.Op(); op != nil {
		n.Variant = op.Variant
		for _, in := range op.Inputs {
			n.Inputs = append(n.Inputs, build(in, seen))
		}
	}
	return n
}

// Dump writes the upstream cone of the given nets to w as graphviz dot.
func Dump(w io.Writer, roots ...*signal.Logic) {
	seen := make(map[*signal.Logic]*Node)
	shadows := make([]interface{}, 0, len(roots))
	for _, r := range roots {
		shadows = append(shadows, build(r, seen))
	}
	memviz.Map(w, shadows...)
}
