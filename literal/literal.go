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

// Package literal writes converted stroke fonts as source code literals.
//
// The JavaScript form is an exported object literal which maps glyph labels
// to arrays of [x,y] pairs.  The Go form is a generated source file with a
// map from labels to point slices.  Coordinates are written with three
// decimal places in both forms.
package literal

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/strokefont"
)

// A Writer writes a font as a literal with the given name.
type Writer func(w io.Writer, name string, font *strokefont.Font) error

var writers = map[string]Writer{
	"js": WriteJS,
	"go": func(w io.Writer, name string, font *strokefont.Font) error {
		return WriteGo(w, DefaultPackage, name, font)
	},
}

// DefaultPackage is the package name used for generated Go code when
// the output is selected using [Write].
var DefaultPackage = "fonts"

// Formats returns the names of the supported output formats.
func Formats() []string {
	keys := maps.Keys(writers)
	slices.Sort(keys)
	return keys
}

// Write writes the font using the named output format.
func Write(format string, w io.Writer, name string, font *strokefont.Font) error {
	wr, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (supported: %s)",
			format, strings.Join(Formats(), ", "))
	}
	return wr(w, name, font)
}
