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

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Pen is the pen state of a line in a stroke font file.
type Pen uint8

// These are the possible pen states.
const (
	PenContinue Pen = iota
	PenNewGlyph
)

// StrokePoint is one line of a stroke font file.
type StrokePoint struct {
	Pen Pen
	vec.Vec2
}

// Glyph is a labelled sequence of points.
type Glyph struct {
	// Index is the position of the glyph in the input file.
	Index int

	Label  string
	Points []vec.Vec2
}

// BBox returns the smallest rectangle which contains all points of the
// glyph.  The zero rectangle is returned for glyphs without points.
func (g *Glyph) BBox() rect.Rect {
	if len(g.Points) == 0 {
		return rect.Rect{}
	}
	p := g.Points[0]
	bbox := rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	for _, p := range g.Points[1:] {
		bbox.Add(p.X, p.Y)
	}
	return bbox
}

// Font is the result of converting a stroke font file.
type Font struct {
	// Glyphs lists the glyphs, in the order of the input file.
	Glyphs []*Glyph

	// Empty lists the indices of all empty letters, i.e. of glyph
	// markers which were not preceded by any points.
	Empty []int

	// Unterminated is the number of points at the end of the input which
	// were not followed by a glyph marker.  These points are discarded.
	Unterminated int
}

// Lookup returns the glyph with the given label, or nil if the font has
// no such glyph.
func (f *Font) Lookup(label string) *Glyph {
	for _, g := range f.Glyphs {
		if g.Label == label {
			return g
		}
	}
	return nil
}

// Labels returns the glyph labels, in order.
func (f *Font) Labels() []string {
	res := make([]string, len(f.Glyphs))
	for i, g := range f.Glyphs {
		res[i] = g.Label
	}
	return res
}

// NumPoints returns the total number of points in all glyphs.
func (f *Font) NumPoints() int {
	total := 0
	for _, g := range f.Glyphs {
		total += len(g.Points)
	}
	return total
}
