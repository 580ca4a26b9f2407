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

// Strokefont-convert converts plotter stroke font files into source code
// literals for drawing applications.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/strokefont"
	"seehuhn.de/go/strokefont/internal/buildinfo"
	"seehuhn.de/go/strokefont/internal/profile"
	"seehuhn.de/go/strokefont/literal"
)

var (
	fontArg    = flag.String("font", strokefont.RaysolSanserif.Key, "font `variant`")
	outArg     = flag.String("o", "", "write output to `file` instead of stdout")
	nameArg    = flag.String("name", "", "name of the generated literal (default: from the variant)")
	formatArg  = flag.String("format", "js", "output `format`, one of "+strings.Join(literal.Formats(), ", "))
	pkgArg     = flag.String("pkg", literal.DefaultPackage, "package name for -format go")
	allArg     = flag.String("all", "", "convert the input files of all variants found in `dir`")
	force      = flag.Bool("f", false, "overwrite output files if they exist")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "strokefont-convert \u2014 convert stroke fonts to source literals\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("strokefont-convert"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  strokefont-convert [options] <font.txt>\n")
		fmt.Fprintf(os.Stderr, "  strokefont-convert [options] -all <dir>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nVariants:\n")
		for _, key := range strokefont.Variants() {
			fmt.Fprintf(os.Stderr, "  %s\n", key)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  strokefont-convert -font raysol_cursive -o raysol_cursive.js raysol_cursive.txt\n")
		fmt.Fprintf(os.Stderr, "  strokefont-convert -all fonts/\n")
	}
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if err := checkArgs(set, flag.NArg()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	opt := &options{
		format: *formatArg,
		pkg:    *pkgArg,
		force:  *force,
		warn:   os.Stderr,
	}

	if *allArg != "" {
		return convertAll(*allArg, opt)
	}

	cfg := strokefont.Lookup(*fontArg)
	if cfg == nil {
		return fmt.Errorf("unknown font variant %q", *fontArg)
	}
	name := *nameArg
	if name == "" {
		name = cfg.Name
	}
	return convert(cfg, flag.Arg(0), *outArg, name, opt)
}

// checkArgs verifies that the command line selects either a single input
// file or batch mode.  Batch mode takes file and literal names from the
// variant table, so the flags which set these cannot be combined with it.
func checkArgs(set map[string]bool, nArg int) error {
	if !set["all"] {
		if nArg != 1 {
			return errors.New("exactly one input file is required")
		}
		return nil
	}

	if nArg != 0 {
		return errors.New("-all cannot be combined with an input file")
	}
	for _, name := range []string{"o", "name", "font"} {
		if set[name] {
			return fmt.Errorf("-all cannot be combined with -%s", name)
		}
	}
	return nil
}

type options struct {
	format string
	pkg    string
	force  bool
	warn   io.Writer
}

// convert reads the stroke font inName and writes the literal to outName.
// If outName is empty, the output is written to stdout.
func convert(cfg *strokefont.Config, inName, outName, name string, opt *options) error {
	font, err := load(cfg, inName, opt.warn)
	if err != nil {
		return err
	}

	if outName == "" {
		return write(os.Stdout, name, font, opt)
	}

	if !opt.force {
		if _, err := os.Stat(outName); !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("output file %q already exists", outName)
		}
	}
	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	err = write(out, name, font, opt)
	if err2 := out.Close(); err == nil {
		err = err2
	}
	return err
}

func load(cfg *strokefont.Config, inName string, warn io.Writer) (*strokefont.Font, error) {
	in, err := os.Open(inName)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	e := strokefont.NewExtractor(cfg)
	e.Warn = func(idx int, label string) {
		fmt.Fprintf(warn, "warning: %s: empty letter at index %d (%q)\n", inName, idx, label)
	}
	err = e.Read(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inName, err)
	}
	font := e.Finish()
	if font.Unterminated > 0 {
		fmt.Fprintf(warn, "warning: %s: %d points after the last glyph discarded\n",
			inName, font.Unterminated)
	}
	return font, nil
}

func write(w io.Writer, name string, font *strokefont.Font, opt *options) error {
	if opt.format == "go" {
		return literal.WriteGo(w, opt.pkg, name, font)
	}
	return literal.Write(opt.format, w, name, font)
}

// convertAll converts the input files of all registered variants which
// are present in dir.  Output files are written to the same directory.
func convertAll(dir string, opt *options) error {
	count := 0
	for _, key := range strokefont.Variants() {
		cfg := strokefont.Lookup(key)
		inName := filepath.Join(dir, cfg.Input)
		if _, err := os.Stat(inName); errors.Is(err, os.ErrNotExist) {
			continue
		}

		outName := cfg.Output
		if opt.format != "js" {
			outName = strings.TrimSuffix(outName, filepath.Ext(outName)) + "." + opt.format
		}
		err := convert(cfg, inName, filepath.Join(dir, outName), cfg.Name, opt)
		if err != nil {
			return err
		}
		count++
	}
	if count == 0 {
		return fmt.Errorf("%s: no stroke font files found", dir)
	}
	return nil
}
