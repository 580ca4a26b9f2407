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

// Package buildinfo provides version strings for the strokefont tools.
package buildinfo

import (
	"runtime/debug"
)

// Short returns a one-line version string for a command line tool, e.g.
// "strokefont-convert (seehuhn.de/go/strokefont v0.1.0)".  If no module
// version is available, the VCS revision is used instead.
func Short(tool string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return tool
	}

	version := info.Main.Version
	if version == "" || version == "(devel)" {
		version = revision(info)
	}
	if version == "" {
		return tool
	}
	return tool + " (" + info.Main.Path + " " + version + ")"
}

// revision returns the abbreviated VCS revision recorded in the binary.
func revision(info *debug.BuildInfo) string {
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if rev != "" && dirty {
		rev += "+dirty"
	}
	return rev
}
