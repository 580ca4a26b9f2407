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

package literal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/strokefont"
)

var jsQuote = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// WriteJS writes the font as an exported JavaScript object literal.
func WriteJS(w io.Writer, name string, font *strokefont.Font) error {
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "export let %s = {\n", name)
	for _, g := range font.Glyphs {
		fmt.Fprintf(out, "  '%s' : [ ", jsQuote.Replace(g.Label))
		for _, p := range g.Points {
			fmt.Fprintf(out, "[%.3f,%.3f], ", p.X, p.Y)
		}
		out.WriteString(" ],\n")
	}
	out.WriteString("};\n")

	return out.Flush()
}
