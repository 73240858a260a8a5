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

package debugger

import (
	"strconv"
	"strings"
)

// parseNumber converts a string to a number of bitSize bits. Hexadecimal
// numbers can be prefixed with either '$' or "0x".
func parseNumber(s string, bitSize int) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	return strconv.ParseUint(s, 0, bitSize)
}

func parseAddress(s string) (uint16, error) {
	v, err := parseNumber(s, 16)
	return uint16(v), err
}

func parseByte(s string) (uint8, error) {
	v, err := parseNumber(s, 8)
	return uint8(v), err
}
