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
	"errors"
	"strconv"
)

// MalformedLineError indicates that a line of a stroke font file could not
// be parsed.
type MalformedLineError struct {
	Line int // 1-based line number, or 0 if unknown
	Text string
	Err  error
}

func (err *MalformedLineError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Line > 0 {
		tail = " (line " + strconv.Itoa(err.Line) + ")"
	}
	return "malformed stroke point " + strconv.Quote(err.Text) + middle + tail
}

func (err *MalformedLineError) Unwrap() error {
	return err.Err
}

// AlphabetOverflowError indicates that a stroke font file contains more
// glyphs than there are entries in the alphabet table.
type AlphabetOverflowError struct {
	Index int
}

func (err *AlphabetOverflowError) Error() string {
	return "glyph " + strconv.Itoa(err.Index) + " has no label (alphabet has " +
		strconv.Itoa(len(Alphabet)) + " entries)"
}

var errFieldCount = errors.New("expected three fields")
