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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/drewwalton19216801/Emu6502Console/debugger/terminal"
	"github.com/drewwalton19216801/Emu6502Console/debugger/terminal/plainterm"
	"github.com/drewwalton19216801/Emu6502Console/test"
)

func TestReadAndPrint(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\npeek 10\nquit"), out)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectEquality(t, pt.IsInteractive(), false)
	test.ExpectEquality(t, pt.CanReadKey(), false)

	p := terminal.Prompt{Type: terminal.PromptTypeCPUStep, Content: "0600"}

	s, err := pt.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step")
	s, err = pt.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "peek 10")

	// last line has no newline
	s, err = pt.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead(p)
	test.ExpectEquality(t, err, io.EOF)

	test.ExpectEquality(t, out.String(), strings.Repeat("[ 0600 ] >> ", 4))

	_, err = pt.TermReadKey(p)
	test.ExpectFailure(t, err)
}

func TestStyles(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), out)

	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectEquality(t, out.String(), "feedback\n* error\n")

	// errors are still printed when silenced
	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectEquality(t, out.String(), "* error\n")
}
