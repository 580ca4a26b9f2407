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
	"bufio"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ParseStrokePoint parses one line of a stroke font file.
// The line must contain at least three whitespace-separated fields.
// Additional fields are ignored.
func ParseStrokePoint(line string) (StrokePoint, error) {
	ff := strings.Fields(line)
	if len(ff) < 3 {
		return StrokePoint{}, &MalformedLineError{Text: line, Err: errFieldCount}
	}

	x, err := strconv.ParseFloat(ff[1], 64)
	if err != nil {
		return StrokePoint{}, &MalformedLineError{Text: line, Err: err}
	}
	y, err := strconv.ParseFloat(ff[2], 64)
	if err != nil {
		return StrokePoint{}, &MalformedLineError{Text: line, Err: err}
	}

	pen := PenContinue
	if ff[0] == "1" {
		pen = PenNewGlyph
	}
	return StrokePoint{Pen: pen, Vec2: vec.Vec2{X: x, Y: y}}, nil
}

// Extractor groups the points of a stroke font file into glyphs.
type Extractor struct {
	// Warn, if not nil, is called for every empty letter.
	Warn func(idx int, label string)

	m     matrix.Matrix
	space float64

	line int
	idx  int
	open bool
	acc  []vec.Vec2

	font *Font
}

// NewExtractor returns an Extractor which rescales points using the
// given configuration.
func NewExtractor(cfg *Config) *Extractor {
	return &Extractor{
		m:     cfg.Matrix(),
		space: cfg.ScaleX * cfg.TrailingSpace,
		font:  &Font{},
	}
}

// AddLine processes the next line of the input file.
// Blank lines are ignored.
func (e *Extractor) AddLine(line string) error {
	e.line++
	if strings.TrimSpace(line) == "" {
		return nil
	}
	p, err := ParseStrokePoint(line)
	if err != nil {
		if mle, ok := err.(*MalformedLineError); ok {
			mle.Line = e.line
		}
		return err
	}
	return e.Add(p)
}

// Add processes the next point of the input file.
//
// A PenNewGlyph point closes the current glyph; its coordinates are not
// used.  The first glyph is opened implicitly, so that a marker at the
// very start of a file does not count as an empty letter.
func (e *Extractor) Add(p StrokePoint) error {
	if p.Pen != PenNewGlyph {
		x, y := e.m.Apply(p.X, p.Y)
		e.acc = append(e.acc, vec.Vec2{X: x, Y: y})
		e.open = true
		return nil
	}

	if !e.open {
		e.open = true
		return nil
	}

	if len(e.acc) == 0 {
		label, _ := Label(e.idx)
		e.font.Empty = append(e.font.Empty, e.idx)
		if e.Warn != nil {
			e.Warn(e.idx, label)
		}
		e.idx++
		return nil
	}

	label, ok := Label(e.idx)
	if !ok {
		return &AlphabetOverflowError{Index: e.idx}
	}
	if e.space != 0 {
		last := e.acc[len(e.acc)-1]
		e.acc = append(e.acc, last.Add(vec.Vec2{X: e.space}))
	}
	if e.idx != DiscardedIndex {
		e.font.Glyphs = append(e.font.Glyphs, &Glyph{
			Index:  e.idx,
			Label:  label,
			Points: e.acc,
		})
	}
	e.idx++
	e.acc = nil
	return nil
}

// Finish returns the glyphs collected so far.  Points which have not been
// terminated by a glyph marker are discarded.
func (e *Extractor) Finish() *Font {
	e.font.Unterminated = len(e.acc)
	return e.font
}

// Read processes all lines from r.
func (e *Extractor) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		err := e.AddLine(scanner.Text())
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Extract reads a stroke font file and returns the glyphs it contains.
func Extract(r io.Reader, cfg *Config) (*Font, error) {
	e := NewExtractor(cfg)
	err := e.Read(r)
	if err != nil {
		return nil, err
	}
	return e.Finish(), nil
}
