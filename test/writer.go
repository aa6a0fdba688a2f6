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

package test

import "strings"

// Writer is an implementation of io.Writer that accumulates everything
// written to it, for comparison at the end of a test.
type Writer struct {
	b strings.Builder
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.b.Write(p)
}

// Compare the accumulated writes against a string.
func (w *Writer) Compare(s string) bool {
	return w.b.String() == s
}

// String returns the accumulated writes.
func (w *Writer) String() string {
	return w.b.String()
}

// Clear the accumulated writes.
func (w *Writer) Clear() {
	w.b.Reset()
}
