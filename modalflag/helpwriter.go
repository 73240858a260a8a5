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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage message written by the flag package so that
// it can be amended with mode information.
type helpWriter struct {
	buffer strings.Builder
}

func (hw *helpWriter) Write(p []byte) (n int, err error) {
	return hw.buffer.Write(p)
}

// help writes the amended usage message to the output.
func (hw *helpWriter) help(output io.Writer, path string, subModes []string, additionalHelp string) {
	usage, flags, _ := strings.Cut(hw.buffer.String(), "\n")

	if flags == "" && len(subModes) == 0 {
		if path != "" {
			fmt.Fprintf(output, "No help available for %s\n", path)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	if path != "" {
		fmt.Fprintf(output, "%s for %s mode\n", usage, path)
	} else {
		fmt.Fprintln(output, usage)
	}

	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
