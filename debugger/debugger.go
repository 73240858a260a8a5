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
	"fmt"
	"io"
	"strings"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/debugger/terminal"
	"github.com/drewwalton19216801/Emu6502Console/debugger/terminal/easyterm"
	"github.com/drewwalton19216801/Emu6502Console/disassembly"
	"github.com/drewwalton19216801/Emu6502Console/hardware"
	"github.com/drewwalton19216801/Emu6502Console/logger"
)

// DebuggerError is the sentinel pattern for errors returned by the debugger.
const DebuggerError = "debugger: %v"

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	m    *hardware.Machine
	term terminal.Terminal

	// most recent snapshot of the machine, taken with the SNAPSHOT command
	snapshot *hardware.State

	// whether to step on a single keypress. only honoured if the terminal
	// implements terminal.KeyReader
	keyStep bool

	// set to false by the QUIT command
	running bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session.
func NewDebugger(m *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	if m == nil {
		return nil, curated.Errorf(DebuggerError, "no machine")
	}
	if term == nil {
		return nil, curated.Errorf(DebuggerError, "no terminal")
	}
	return &Debugger{
		m:       m,
		term:    term,
		keyStep: true,
	}, nil
}

// Start the main debugger sequence. If filename is the empty string then the
// user is prompted for the path of the program to load.
func (dbg *Debugger) Start(filename string) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	defer dbg.term.CleanUp()

	if filename == "" {
		filename, err = dbg.term.TermRead(terminal.Prompt{
			Type:    terminal.PromptTypeConfirm,
			Content: "Enter the path to the ROM file: ",
		})
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf(DebuggerError, err)
		}
		filename = strings.TrimSpace(filename)
	}

	// a program that fails to load is not fatal. the user can still use the
	// LOAD command or POKE a program into memory
	if filename != "" {
		if err := dbg.load(filename, nil); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	dbg.printMachineStatus()

	return dbg.inputLoop()
}

func (dbg *Debugger) load(filename string, address *uint16) error {
	ld := dbg.m.NewLoader(filename)
	if address != nil {
		ld.BaseAddress = *address
		ld.HeaderAddress = false
	}
	if err := dbg.m.Load(ld); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "loaded %s", dbg.m.Loader)
	return nil
}

func (dbg *Debugger) inputLoop() error {
	dbg.running = true

	for dbg.running {
		if kr, ok := dbg.term.(terminal.KeyReader); ok && dbg.keyStep && kr.CanReadKey() {
			b, err := kr.TermReadKey(dbg.prompt(terminal.PromptTypeKeyStep))
			if err != nil {
				if curated.Is(err, terminal.UserInterrupt) || err == io.EOF {
					return nil
				}
				return curated.Errorf(DebuggerError, err)
			}

			switch b {
			case easyterm.KeySpace, easyterm.KeyLineFeed, easyterm.KeyCarriageReturn:
				dbg.step(1)
			case ':', easyterm.KeyEsc:
				dbg.keyStep = false
			case 'q', 'Q':
				dbg.running = false
			default:
				dbg.printLine(terminal.StyleHelp, "space or return to step. ':' or escape for command line. 'q' to quit")
			}
			continue
		}

		input, err := dbg.term.TermRead(dbg.prompt(terminal.PromptTypeCPUStep))
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) || err == io.EOF {
				return nil
			}
			return curated.Errorf(DebuggerError, err)
		}

		dbg.printLine(terminal.StyleEcho, "%s", input)

		err = dbg.parseInput(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

func (dbg *Debugger) prompt(t terminal.PromptType) terminal.Prompt {
	e, _ := disassembly.Disassemble(dbg.m.Mem, dbg.m.CPU.PC.Address())
	return terminal.Prompt{
		Type:    t,
		Content: e.String(),
	}
}

func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	dbg.term.TermPrintLine(sty, fmt.Sprintf(s, a...))
}

// print a multi-line string, one line at a time.
func (dbg *Debugger) printLines(sty terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		dbg.term.TermPrintLine(sty, l)
	}
}

func (dbg *Debugger) printMachineStatus() {
	dbg.printLines(terminal.StyleCPUStep, dbg.m.Status())
}

// step the CPU forward n instructions. the executed instruction and the
// state of the machine is printed after each step. stepping stops at the
// first error.
func (dbg *Debugger) step(n int) {
	for i := 0; i < n; i++ {
		res, err := dbg.m.Step(nil)

		e := disassembly.FromResult(res)
		dbg.printLine(terminal.StyleDisasm, "%s", strings.TrimSpace(fmt.Sprintf("%s  (%s cycles) %s", e, e.Cycles(), e.Notes())))

		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
			logger.Log(logger.Allow, "debugger", err)
			break
		}
	}
	dbg.printMachineStatus()
}

// termWriter is an io.Writer that sends each line to the terminal.
type termWriter struct {
	term  terminal.Output
	style terminal.Style
}

func (tw termWriter) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tw.term.TermPrintLine(tw.style, l)
	}
	return len(p), nil
}
