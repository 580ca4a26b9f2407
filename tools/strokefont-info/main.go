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

// Strokefont-info shows information about stroke font variants and files.
//
// Without arguments, the registered font variants are listed.  If a stroke
// font file is given, one line per glyph is printed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"unicode/utf8"

	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/strokefont"
	"seehuhn.de/go/strokefont/internal/buildinfo"
)

var fontArg = flag.String("font", strokefont.RaysolSanserif.Key, "font `variant` used to read the file")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "strokefont-info \u2014 show stroke font information\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("strokefont-info"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  strokefont-info [options] [font.txt]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	aligned := term.IsTerminal(int(os.Stdout.Fd()))

	var err error
	if flag.NArg() == 0 {
		err = listVariants(os.Stdout, aligned)
	} else {
		err = showFile(os.Stdout, flag.Arg(0), *fontArg, aligned)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// table writes tab-separated rows.  If aligned is set, the columns are
// padded for display in a terminal.
type table struct {
	w  io.Writer
	tw *tabwriter.Writer
}

func newTable(w io.Writer, aligned bool) *table {
	t := &table{w: w}
	if aligned {
		t.tw = tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		t.w = t.tw
	}
	return t
}

func (t *table) row(cols ...string) {
	for i, c := range cols {
		if i > 0 {
			io.WriteString(t.w, "\t")
		}
		io.WriteString(t.w, c)
	}
	io.WriteString(t.w, "\n")
}

func (t *table) flush() error {
	if t.tw != nil {
		return t.tw.Flush()
	}
	return nil
}

func listVariants(w io.Writer, aligned bool) error {
	t := newTable(w, aligned)
	if aligned {
		t.row("VARIANT", "NAME", "SCALE X", "SCALE Y", "OFFSET Y", "SPACE", "INPUT", "OUTPUT")
	}
	for _, key := range strokefont.Variants() {
		cfg := strokefont.Lookup(key)
		t.row(cfg.Key, cfg.Name,
			num(cfg.ScaleX), num(cfg.ScaleY), num(cfg.OffsetY), num(cfg.TrailingSpace),
			cfg.Input, cfg.Output)
	}
	return t.flush()
}

func showFile(w io.Writer, fname, variant string, aligned bool) error {
	cfg := strokefont.Lookup(variant)
	if cfg == nil {
		return fmt.Errorf("unknown font variant %q", variant)
	}

	r, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer r.Close()

	font, err := strokefont.Extract(r, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	t := newTable(w, aligned)
	if aligned {
		t.row("INDEX", "LABEL", "NAME", "GLYPH", "POINTS", "BBOX")
	}
	for _, g := range font.Glyphs {
		b := g.BBox()
		t.row(strconv.Itoa(g.Index), strconv.Quote(g.Label), describe(g.Label), glyphName(g.Label),
			strconv.Itoa(len(g.Points)),
			fmt.Sprintf("[%.3f %.3f %.3f %.3f]", b.LLx, b.LLy, b.URx, b.URy))
	}
	err = t.flush()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "\n%d glyphs, %d points, %d empty letters, %d unterminated points\n",
		len(font.Glyphs), font.NumPoints(), len(font.Empty), font.Unterminated)
	return err
}

// describe returns the Unicode name of a glyph label.
func describe(label string) string {
	r, _ := utf8.DecodeRuneInString(label)
	name := runenames.Name(r)
	if strokefont.IsAlternate(label) {
		name += " (ALTERNATE)"
	}
	return name
}

// glyphName returns the PostScript glyph name for a label.  Alternate
// letter forms get the suffix ".alt".
func glyphName(label string) string {
	r, _ := utf8.DecodeRuneInString(label)
	name := names.FromUnicode(string(r))
	if strokefont.IsAlternate(label) {
		name += ".alt"
	}
	return name
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}
