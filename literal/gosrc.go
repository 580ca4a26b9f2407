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
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"

	"seehuhn.de/go/strokefont"
)

// WriteGo writes the font as a Go source file in package pkg.  The file
// declares a variable of type map[string][][2]float64.  The output is
// formatted like gofmt does.
func WriteGo(w io.Writer, pkg, name string, font *strokefont.Font) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("invalid package name %q", pkg)
	}
	if !token.IsIdentifier(name) {
		return fmt.Errorf("invalid variable name %q", name)
	}

	out := &bytes.Buffer{}

	fmt.Fprintln(out, "// Code generated by strokefont-convert; DO NOT EDIT.")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "package %s\n\n", pkg)
	fmt.Fprintf(out, "var %s = map[string][][2]float64{\n", name)
	for _, g := range font.Glyphs {
		fmt.Fprintf(out, "\t%q: {", g.Label)
		for i, p := range g.Points {
			if i > 0 {
				out.WriteString(", ")
			}
			fmt.Fprintf(out, "{%.3f, %.3f}", p.X, p.Y)
		}
		out.WriteString("},\n")
	}
	fmt.Fprintln(out, "}")

	body, err := format.Source(out.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}
