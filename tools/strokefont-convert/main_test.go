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
	"seehuhn.de/go/strokefont"
)

const sample = `1 0.0 0.0
0 1.0 0.2
1 0.0 0.0
1 0.0 0.0
0 0.5 0.7
0 0.6 0.8
1 0.0 0.0
0 0.9 0.9
`

func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	err := os.WriteFile(fname, []byte(sample), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, "abcd.txt")
	out := filepath.Join(dir, "out.js")

	warn := &bytes.Buffer{}
	opt := &options{format: "js", warn: warn}
	err := convert(strokefont.Cursive10, in, out, "raysol_cursive", opt)
	if err != nil {
		t.Fatal(err)
	}

	body, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "export let raysol_cursive = {\n" +
		"  ' ' : [ [10.000,0.000],  ],\n" +
		"  '1' : [ [5.000,5.000], [6.000,6.000],  ],\n" +
		"};\n"
	if d := cmp.Diff(want, string(body)); d != "" {
		t.Errorf("output differs (-want +got):\n%s", d)
	}

	msgs := strings.Split(strings.TrimSpace(warn.String()), "\n")
	if len(msgs) != 2 {
		t.Fatalf("unexpected warnings:\n%s", warn.String())
	}
	if !strings.Contains(msgs[0], "empty letter at index 1") {
		t.Errorf("unexpected warning %q", msgs[0])
	}
	if !strings.Contains(msgs[1], "1 points after the last glyph") {
		t.Errorf("unexpected warning %q", msgs[1])
	}

	// refuse to overwrite without -f
	err = convert(strokefont.Cursive10, in, out, "raysol_cursive", opt)
	if err == nil {
		t.Error("existing output file was overwritten")
	}
	opt.force = true
	err = convert(strokefont.Cursive10, in, out, "raysol_cursive", opt)
	if err != nil {
		t.Error(err)
	}
}

func TestConvertMalformed(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.txt")
	err := os.WriteFile(in, []byte("1 0 0\n0 zero 0\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	opt := &options{format: "js", warn: &bytes.Buffer{}}
	err = convert(strokefont.Cursive10, in, filepath.Join(dir, "bad.js"), "x", opt)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestConvertAll(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, strokefont.RaysolCursive.Input)
	writeSample(t, dir, strokefont.RaysolSanserif.Input)

	opt := &options{format: "go", pkg: "fonts", warn: &bytes.Buffer{}}
	err := convertAll(dir, opt)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"raysol_cursive.go", "raysol_sanserif.go"} {
		body, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Error(err)
			continue
		}
		if !strings.HasPrefix(string(body), "// Code generated") {
			t.Errorf("%s: unexpected content\n%s", name, body)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "raysoloman_cursive.go")); err == nil {
		t.Error("converted a variant without input file")
	}
}

func TestConvertAllEmpty(t *testing.T) {
	opt := &options{format: "js", warn: &bytes.Buffer{}}
	err := convertAll(t.TempDir(), opt)
	if err == nil {
		t.Error("expected error for directory without fonts")
	}
}

func TestCheckArgs(t *testing.T) {
	cases := []struct {
		set  []string
		nArg int
		ok   bool
	}{
		{nil, 1, true},
		{[]string{"font", "o", "name", "format"}, 1, true},
		{nil, 0, false},
		{nil, 2, false},
		{[]string{"all"}, 0, true},
		{[]string{"all", "format", "pkg", "f"}, 0, true},
		{[]string{"all"}, 1, false},
		{[]string{"all", "o"}, 0, false},
		{[]string{"all", "name"}, 0, false},
		{[]string{"all", "font"}, 0, false},
	}
	for i, c := range cases {
		set := make(map[string]bool)
		for _, name := range c.set {
			set[name] = true
		}
		err := checkArgs(set, c.nArg)
		if (err == nil) != c.ok {
			t.Errorf("%d: %v %d: unexpected result %v", i, c.set, c.nArg, err)
		}
	}
}
