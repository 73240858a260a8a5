// This file is part of Emu6502Console.
//
// Emu6502Console is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emu6502Console is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emu6502Console.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/drewwalton19216801/Emu6502Console/version.number=v0.1.0"
//
// Without a version number the revision information from the build is used.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Emu6502Console"

// set by the linker
var number string

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// The version string is "unreleased" if there is no version number but there
// is VCS information, and "local" if there is neither. The revision has the
// suffix "+dirty" if the source was modified after the last commit.
func Version() (string, string, bool) {
	var vcs, modified bool
	revision := "no revision information"

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		return number, revision, true
	case vcs:
		return "unreleased", revision, false
	}
	return "local", revision, false
}
