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

// Package strokefont converts plotter stroke fonts into point lists.
//
// A stroke font file is a line-oriented text file.  Each non-blank line
// holds a pen state and two coordinates:
//
//	1 0.000 0.000
//	0 0.125 0.410
//	0 0.250 0.180
//
// A pen state of "1" terminates the current glyph, every other value adds a
// point to it.  Glyphs are numbered in the order they appear in the file and
// are labelled using the fixed table [Alphabet].
//
// Use [Extract] to read a complete file:
//
//	font, err := strokefont.Extract(r, strokefont.RaysolSanserif)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range font.Glyphs {
//	    fmt.Println(g.Label, len(g.Points))
//	}
//
// The subpackage literal writes the result as JavaScript or Go source.
package strokefont
