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

//go:build !windows

package easyterm

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is the main container for posix terminals. usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// whether the terminal is currently in cbreak mode
	cbreak bool

	crit sync.Mutex
}

// Initialise the fields in the Terminal struct. The input file must be a real
// terminal.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}
	if !term.IsTerminal(int(inputFile.Fd())) {
		return fmt.Errorf("easyterm: input is not a terminal")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// CleanUp returns the terminal to canonical mode.
func (pt *Terminal) CleanUp() {
	if pt.input == nil {
		return
	}
	_ = pt.CanonicalMode()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.cbreak = false
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Input is available one key at a
// time and is not echoed.
func (pt *Terminal) CBreakMode() error {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.cbreak = true
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// IsCBreak returns true if the terminal is currently in cbreak mode.
func (pt *Terminal) IsCBreak() bool {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	return pt.cbreak
}

// Flush makes sure the terminal's input buffer is empty.
func (pt *Terminal) Flush() error {
	return termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH)
}

// ReadKey puts the terminal into cbreak mode and returns the next byte of
// input. The terminal is returned to canonical mode before the function
// returns.
func (pt *Terminal) ReadKey() (byte, error) {
	if err := pt.CBreakMode(); err != nil {
		return 0, err
	}
	defer pt.CanonicalMode()

	b := make([]byte, 1)
	if _, err := pt.input.Read(b); err != nil {
		return 0, err
	}
	return b[0], nil
}
