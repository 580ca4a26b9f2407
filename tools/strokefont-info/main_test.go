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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDescribe(t *testing.T) {
	cases := map[string]string{
		"A":  "LATIN CAPITAL LETTER A",
		"q*": "LATIN SMALL LETTER Q (ALTERNATE)",
		" ":  "SPACE",
		"%":  "PERCENT SIGN",
	}
	for label, want := range cases {
		if got := describe(label); got != want {
			t.Errorf("describe(%q) = %q, want %q", label, got, want)
		}
	}
}

func TestGlyphName(t *testing.T) {
	cases := map[string]string{
		" ":  "space",
		"7":  "seven",
		"A":  "A",
		"g*": "g.alt",
		",":  "comma",
		"?":  "question",
		"&":  "ampersand",
		"$":  "dollar",
		"!":  "exclam",
		"%":  "percent",
	}
	for label, want := range cases {
		if got := glyphName(label); got != want {
			t.Errorf("glyphName(%q) = %q, want %q", label, got, want)
		}
	}
}

func TestListVariants(t *testing.T) {
	buf := &bytes.Buffer{}
	err := listVariants(buf, false)
	if err != nil {
		t.Fatal(err)
	}

	var keys []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		keys = append(keys, strings.Split(line, "\t")[0])
	}
	want := []string{"cursive10", "raysol_cursive", "raysol_sanserif"}
	if d := cmp.Diff(want, keys); d != "" {
		t.Errorf("variants differ (-want +got):\n%s", d)
	}
}

func TestShowFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "abcd.txt")
	err := os.WriteFile(fname, []byte("1 0 0\n0 1.0 0.2\n0 0.5 0.7\n1 0 0\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	err = showFile(buf, fname, "cursive10", false)
	if err != nil {
		t.Fatal(err)
	}

	want := "0\t\" \"\tSPACE\tspace\t2\t[5.000 0.000 10.000 5.000]\n" +
		"\n1 glyphs, 2 points, 0 empty letters, 0 unterminated points\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("output differs (-want +got):\n%s", d)
	}

	err = showFile(buf, fname, "gothic", false)
	if err == nil {
		t.Error("unknown variant accepted")
	}
}
