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

//go:build windows

package easyterm

import (
	"fmt"
	"os"
)

// Terminal is not supported on windows. Initialise() always returns an error
// and callers should fall back to line based input.
type Terminal struct{}

// Initialise implements the easyterm.Terminal interface.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return fmt.Errorf("easyterm: not supported on this platform")
}

// CleanUp implements the easyterm.Terminal interface.
func (pt *Terminal) CleanUp() {}

// IsCBreak implements the easyterm.Terminal interface.
func (pt *Terminal) IsCBreak() bool { return false }

// ReadKey implements the easyterm.Terminal interface.
func (pt *Terminal) ReadKey() (byte, error) {
	return 0, fmt.Errorf("easyterm: not supported on this platform")
}
