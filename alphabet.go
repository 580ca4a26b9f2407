// seehuhn.de/go/strokefont - convert plotter stroke fonts to drawing data
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package strokefont

// DiscardedIndex is the glyph index which is never included in the output.
// The label at this position is a second copy of the space character.
const DiscardedIndex = 63

// Alphabet lists the glyph labels, in the order in which glyphs appear
// in a stroke font file.
var Alphabet = makeAlphabet()

func makeAlphabet() []string {
	var res []string
	res = append(res, " ")
	for c := '0'; c <= '9'; c++ {
		res = append(res, string(c))
	}
	for c := 'A'; c <= 'Z'; c++ {
		res = append(res, string(c))
	}
	for c := 'a'; c <= 'z'; c++ {
		res = append(res, string(c))
	}
	res = append(res, " ")
	for c := 'a'; c <= 'z'; c++ {
		res = append(res, string(c)+"*")
	}
	res = append(res, ",", "?", "&", "$", "!", "%")
	return res
}

// Label returns the label of the glyph with the given index.
// The second return value is false, if the index is outside the table.
func Label(idx int) (string, bool) {
	if idx < 0 || idx >= len(Alphabet) {
		return "", false
	}
	return Alphabet[idx], true
}

// IsAlternate reports whether a label denotes an alternate form of a
// letter, like "a*".
func IsAlternate(label string) bool {
	return len(label) == 2 && label[1] == '*'
}
