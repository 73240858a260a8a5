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

//go:build !statsview

package statsview

import (
	"io"

	"github.com/drewwalton19216801/Emu6502Console/curated"
)

// Launch always fails for builds without the statsview tag.
func Launch(output io.Writer, addr string) error {
	return curated.Errorf("statsview: not available in this build")
}

// Available returns true if the statistics server can be launched.
func Available() bool {
	return false
}
