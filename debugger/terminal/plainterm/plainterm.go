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

// Package plainterm implements the Terminal interface for the Emu6502Console
// debugger. It keeps the terminal in whatever mode it started, probably
// cooked mode, except when a single keypress is requested. In that case the
// terminal is put into cbreak mode for the duration of the read, if the input
// is a real terminal.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/debugger/terminal"
	"github.com/drewwalton19216801/Emu6502Console/debugger/terminal/easyterm"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It offers only
// rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input  *bufio.Reader
	output io.Writer

	// set if input is a real terminal and cbreak mode is available
	easy     *easyterm.Terminal
	realTerm bool

	silenced bool
}

// NewPlainTerminal creates a PlainTerminal reading and writing from the
// specified streams. If in and out are nil then stdin and stdout are used.
func NewPlainTerminal(in io.Reader, out io.Writer) *PlainTerminal {
	pt := &PlainTerminal{}
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	pt.input = bufio.NewReader(in)
	pt.output = out

	if f, ok := in.(*os.File); ok {
		pt.realTerm = term.IsTerminal(int(f.Fd()))
	}

	return pt
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	if !pt.realTerm {
		return nil
	}

	out, ok := pt.output.(*os.File)
	if !ok {
		out = os.Stdout
	}

	pt.easy = &easyterm.Terminal{}
	if err := pt.easy.Initialise(os.Stdin, out); err != nil {
		// cbreak mode is not available but line input is still fine
		pt.easy = nil
	}

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
	if pt.easy != nil {
		pt.easy.CleanUp()
	}
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if !pt.silenced {
		io.WriteString(pt.output, prompt.String())
	}

	s, err := pt.input.ReadString('\n')
	if err != nil {
		// return a final line without a newline before reporting the error
		if err == io.EOF && len(s) > 0 {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// CanReadKey implements the terminal.KeyReader interface.
func (pt *PlainTerminal) CanReadKey() bool {
	return pt.easy != nil
}

// TermReadKey implements the terminal.KeyReader interface.
func (pt *PlainTerminal) TermReadKey(prompt terminal.Prompt) (byte, error) {
	if pt.easy == nil {
		return 0, fmt.Errorf("plainterm: single key input not available")
	}

	if !pt.silenced {
		io.WriteString(pt.output, prompt.String())
	}

	b, err := pt.easy.ReadKey()
	if err != nil {
		return 0, err
	}

	// the key is not echoed in cbreak mode
	io.WriteString(pt.output, "\n")

	if b == easyterm.KeyInterrupt || b == easyterm.KeyEOT {
		return b, curated.Errorf(terminal.UserInterrupt)
	}

	return b, nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realTerm
}
