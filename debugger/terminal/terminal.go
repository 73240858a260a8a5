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

package terminal

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a single line of input, without the trailing newline.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive() should return true for implementations that require user
	// interaction. Instances that don't expect user intervention should return
	// false.
	IsInteractive() bool
}

// KeyReader is implemented by terminals that can return a single keypress
// without waiting for the end of the line.
type KeyReader interface {
	// CanReadKey returns false if the terminal is not currently able to read
	// individual keypresses. For example, if input is not a real terminal.
	CanReadKey() bool

	// TermReadKey returns the next keypress.
	TermReadKey(prompt Prompt) (byte, error)
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	// Terminal implementation also implement the Input and Output interfaces.
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible. for example,
	// we could use this to make sure the terminal is returned to canonical
	// mode. not all terminal implementations will need to do anything.
	CleanUp()

	// Silence all input and output except error messages. In other words,
	// TermPrintLine() should display error messages even if silenced is true.
	Silence(silenced bool)
}

// Sentinel error returned by TermRead() or TermReadKey() if the user has
// interrupted input.
const UserInterrupt = "user interrupt"
