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
	"strconv"
	"strings"

	"github.com/gossim/gossim/curated"
)

type tokenKind byte

const (
	digitToken tokenKind = iota
	fillToken
	markerToken
)

type radixDigit struct {
	kind tokenKind
	val  int
	fill Bit
	bits []Bit // marker contents, least significant bit first
}

func tokenise(digits string, radix int) ([]radixDigit, error) {
	var toks []radixDigit

	i := 0
	for i < len(digits) {
		c := digits[i]
		switch {
		case c == '_':
			i++
		case c == 'X' || c == 'Z' || c == 'x' || c == 'z':
			// x and z are not digits in any supported radix so there is no
			// collision with the hexadecimal digit set
			b := X
			if c == 'Z' || c == 'z' {
				b = Z
			}
			toks = append(toks, radixDigit{kind: fillToken, fill: b})
			i++
		case c == '<':
			end := strings.IndexByte(digits[i:], '>')
			if end < 0 {
				return nil, curated.Errorf(ErrConstruction, "unterminated <> marker")
			}
			inner := digits[i+1 : i+end]
			var bits []Bit
			for _, r := range inner {
				b, ok := bitFromRune(r)
				if !ok {
					return nil, curated.Errorf(ErrConstruction,
						curated.Errorf("unrecognised character %q in <> marker", r))
				}
				bits = append(bits, b)
			}
			if len(bits) == 0 {
				return nil, curated.Errorf(ErrConstruction, "empty <> marker")
			}
			// marker text is MSB first
			for a, b := 0, len(bits)-1; a < b; a, b = a+1, b-1 {
				bits[a], bits[b] = bits[b], bits[a]
			}
			toks = append(toks, radixDigit{kind: markerToken, bits: bits})
			i += end + 1
		default:
			v := strings.IndexByte(hexDigits, lowerDigit(c))
			if v < 0 || (radix != 10 && v >= radix) || (radix == 10 && v > 9) {
				return nil, curated.Errorf(ErrConstruction,
					curated.Errorf("unrecognised digit %q", rune(c)))
			}
			toks = append(toks, radixDigit{kind: digitToken, val: v})
			i++
		}
	}
	return toks, nil
}

func lowerDigit(c byte) byte {
	if c >= 'A' && c <= 'F' {
		return c - 'A' + 'a'
	}
	return c
}

// FromRadixString parses the serialised form produced by ToRadixString and
// ToRadixStringPadded.
func FromRadixString(s string) (LogicValue, error) {
	q := strings.IndexByte(s, '\'')
	if q < 0 {
		return LogicValue{}, curated.Errorf(ErrConstruction, "no width prefix")
	}

	width, err := strconv.Atoi(s[:q])
	if err != nil || width < 0 {
		return LogicValue{}, curated.Errorf(ErrConstruction,
			curated.Errorf("bad width %q", s[:q]))
	}
	if q+1 >= len(s) {
		return LogicValue{}, curated.Errorf(ErrConstruction, "no radix letter")
	}

	radix, ok := radixOfLetter(s[q+1])
	if !ok {
		return LogicValue{}, curated.Errorf(ErrConstruction,
			curated.Errorf("unrecognised radix letter %q", rune(s[q+1])))
	}

	toks, err := tokenise(s[q+2:], radix)
	if err != nil {
		return LogicValue{}, err
	}
	if len(toks) == 0 {
		return LogicValue{}, curated.Errorf(ErrConstruction, "no digits")
	}

	if radix == 10 {
		return fromDecimalDigits(toks, width)
	}

	bp := radixBits(radix)
	out := make([]Bit, width)
	pos := 0

	// the last token is the least significant digit group
	for i := len(toks) - 1; i >= 0; i-- {
		tok := toks[i]
		rem := width - pos

		switch tok.kind {
		case digitToken:
			take := bp
			if take > rem {
				take = rem
			}
			if tok.val>>uint(take) != 0 {
				return LogicValue{}, curated.Errorf(ErrConstruction,
					curated.Errorf("digits wider than %d bits", width))
			}
			for j := 0; j < take; j++ {
				if tok.val&(1<<uint(j)) != 0 {
					out[pos+j] = One
				}
			}
			pos += take
		case fillToken:
			if rem == 0 {
				return LogicValue{}, curated.Errorf(ErrConstruction,
					curated.Errorf("digits wider than %d bits", width))
			}
			take := bp
			if take > rem {
				take = rem
			}
			for j := 0; j < take; j++ {
				out[pos+j] = tok.fill
			}
			pos += take
		case markerToken:
			if len(tok.bits) > rem {
				return LogicValue{}, curated.Errorf(ErrConstruction,
					curated.Errorf("digits wider than %d bits", width))
			}
			copy(out[pos:], tok.bits)
			pos += len(tok.bits)
		}
	}

	// unreached high positions are zero, which is the zero value of Bit
	return FromBits(out)
}

func fromDecimalDigits(toks []radixDigit, width int) (LogicValue, error) {
	if len(toks) == 1 {
		switch toks[0].kind {
		case fillToken:
			return Filled(width, toks[0].fill), nil
		case markerToken:
			if len(toks[0].bits) != width {
				return LogicValue{}, curated.Errorf(ErrConstruction,
					curated.Errorf("<> marker does not hold %d bits", width))
			}
			return FromBits(toks[0].bits)
		}
	}

	v := new(big.Int)
	ten := big.NewInt(10)
	for _, tok := range toks {
		if tok.kind != digitToken {
			return LogicValue{}, curated.Errorf(ErrConstruction,
				"mixed decimal digits")
		}
		v.Mul(v, ten)
		v.Add(v, big.NewInt(int64(tok.val)))
	}
	if v.BitLen() > width {
		return LogicValue{}, curated.Errorf(ErrConstruction,
			curated.Errorf("digits wider than %d bits", width))
	}
	return newBig(width, v, big.NewInt(0)), nil
}
