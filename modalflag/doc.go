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

// Package modalflag wraps the flag package from the standard library and adds
// the idea of program modes. Each mode has its own set of flags and can have
// its own sub-modes.
//
// Arguments are given with NewArgs() and are then consumed by successive calls
// to Parse(). Flags and sub-modes are declared before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cycles := md.AddInt("cycles", 0, "number of cycles to run for")
//		base := md.AddAddress("base", 0x0600, "load address of program")
//		p, err = md.Parse()
//		...
//	}
//
// The first sub-mode in the list is the default and is selected when the first
// argument after the flags is not a sub-mode. Sub-mode comparisons are case
// insensitive and Mode() always returns the upper-case name.
//
// Path() returns the list of modes that have been selected so far, separated
// by a slash. It is used in help messages.
package modalflag
