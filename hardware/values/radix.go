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
	"fmt"
	"strings"

	"github.com/gossim/gossim/curated"
)

// radix strings are the serialised form of a LogicValue:
//
//	<width> ' <radix letter> <digits>
//
// the radix letter is b, q, o, d or h for radices 2, 4, 8, 10 and 16. a
// digit group that is uniformly x or z is written as an uppercase X or Z. a
// group that mixes valid and invalid bits, or a decimal value that cannot be
// written as one number, is expanded bit by bit inside <> markers. leading
// zero digits are trimmed unless the padded form is requested. underscores
// in the digit portion are ignored on parsing.
//
// FromRadixString accepts everything either emitter produces, completing the
// round trip.

func radixLetter(radix int) byte {
	switch radix {
	case 2:
		return 'b'
	case 4:
		return 'q'
	case 8:
		return 'o'
	case 10:
		return 'd'
	case 16:
		return 'h'
	}
	fail(ErrNonSupportedType, curated.Errorf("radix %d", radix))
	return 0
}

func radixOfLetter(c byte) (int, bool) {
	switch c {
	case 'b':
		return 2, true
	case 'q':
		return 4, true
	case 'o':
		return 8, true
	case 'd':
		return 10, true
	case 'h':
		return 16, true
	}
	return 0, false
}

// bits per digit for the power-of-two radices.
func radixBits(radix int) int {
	switch radix {
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	case 16:
		return 4
	}
	return 0
}

const hexDigits = "0123456789abcdef"

// ToRadixString returns the value in the given radix with leading zero
// digits trimmed. supported radices are 2, 4, 8, 10 and 16; anything else is
// a defect and causes a panic.
func (lv LogicValue) ToRadixString(radix int) string {
	return lv.radixString(radix, false)
}

// ToRadixStringPadded is ToRadixString without the leading zero trimming:
// every digit position of the width is emitted.
func (lv LogicValue) ToRadixStringPadded(radix int) string {
	return lv.radixString(radix, true)
}

// ToRadixStringGrouped is ToRadixStringPadded with an underscore separator
// every four digits, counted from the low end. FromRadixString ignores the
// separators so the round trip is unaffected.
func (lv LogicValue) ToRadixStringGrouped(radix int) string {
	s := lv.radixString(radix, true)

	// find where the digits start and regroup them. <> markers count as one
	// digit each
	q := strings.IndexByte(s, radixLetter(radix)) + 1
	prefix, digits := s[:q], s[q:]

	var toks []string
	for i := 0; i < len(digits); {
		if digits[i] == '<' {
			end := strings.IndexByte(digits[i:], '>')
			toks = append(toks, digits[i:i+end+1])
			i += end + 1
			continue
		}
		toks = append(toks, digits[i:i+1])
		i++
	}

	var out strings.Builder
	out.WriteString(prefix)
	for i, tok := range toks {
		if i > 0 && (len(toks)-i)%4 == 0 {
			out.WriteByte('_')
		}
		out.WriteString(tok)
	}
	return out.String()
}

func (lv LogicValue) radixString(radix int, padded bool) string {
	prefix := fmt.Sprintf("%d'%c", lv.width, radixLetter(radix))
	if lv.width == 0 {
		return prefix + "0"
	}

	if radix == 10 {
		return prefix + lv.decimalDigits()
	}

	bp := radixBits(radix)
	var digits []string
	for g := 0; g < lv.width; g += bp {
		n := bp
		if g+n > lv.width {
			n = lv.width - g
		}
		digits = append(digits, lv.digitOf(g, n, bp))
	}

	// digits holds LSB first. trim leading (high end) zero digits
	if !padded {
		for len(digits) > 1 && digits[len(digits)-1] == "0" {
			digits = digits[:len(digits)-1]
		}
	}

	var s strings.Builder
	s.WriteString(prefix)
	for i := len(digits) - 1; i >= 0; i-- {
		s.WriteString(digits[i])
	}
	return s.String()
}

// digitOf renders the digit group of n bits starting at bit g. bp is the
// full group size for the radix; the top group of a value may be narrower.
func (lv LogicValue) digitOf(g int, n int, bp int) string {
	allX := true
	allZ := true
	valid := true
	val := 0
	for i := 0; i < n; i++ {
		b := lv.bitAt(g + i)
		allX = allX && b == X
		allZ = allZ && b == Z
		valid = valid && b.IsValid()
		if b == One {
			val |= 1 << uint(i)
		}
	}

	switch {
	case valid:
		return string(hexDigits[val])
	case allX:
		return "X"
	case allZ:
		return "Z"
	}

	// mixed group: expand bit by bit, most significant first
	var s strings.Builder
	s.WriteByte('<')
	for i := n - 1; i >= 0; i-- {
		s.WriteString(lv.bitAt(g + i).String())
	}
	s.WriteByte('>')
	return s.String()
}

func (lv LogicValue) decimalDigits() string {
	switch {
	case lv.IsValid():
		bv, _ := lv.bigs()
		return bv.String()
	case lv.allIs(X):
		return "X"
	case lv.allIs(Z):
		return "Z"
	}

	var s strings.Builder
	s.WriteByte('<')
	for i := lv.width - 1; i >= 0; i-- {
		s.WriteString(lv.bitAt(i).String())
	}
	s.WriteByte('>')
	return s.String()
}

func (lv LogicValue) String() string {
	return lv.ToRadixString(2)
}
