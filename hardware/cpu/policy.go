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

package cpu

import (
	"strings"

	"github.com/drewwalton19216801/Emu6502Console/curated"
)

// Policy determines how the CPU reacts to an unrecognised opcode.
type Policy int

// List of valid Policy values.
const (
	// Halt stops execution and returns an UnrecognisedOpcode error
	Halt Policy = iota

	// Skip logs the opcode and continues with the next byte
	Skip
)

func (p Policy) String() string {
	switch p {
	case Halt:
		return "HALT"
	case Skip:
		return "SKIP"
	}
	return "unknown policy"
}

// ParsePolicy converts a string to a Policy value. The match is case
// insensitive.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HALT":
		return Halt, nil
	case "SKIP":
		return Skip, nil
	}
	return Halt, curated.Errorf("cpu: unknown opcode policy (%s)", s)
}
