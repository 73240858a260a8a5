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
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/debugger/terminal"
	"github.com/drewwalton19216801/Emu6502Console/disassembly"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/execution"
	"github.com/drewwalton19216801/Emu6502Console/logger"
)

// the number of lines printed by DISASM and LOG when no count is given
const defaultListLength = 10

// the maximum number of instructions that can be stepped with one command
const maxStep = 10000

// the maximum count for commands that list memory, instructions or log entries
const maxCount = 0x10000

// parseInput splits the input into tokens and runs the command. an empty
// input is the same as the STEP command.
func (dbg *Debugger) parseInput(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		dbg.step(1)
		return nil
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch cmd {
	case cmdStep:
		n := 1
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 || v > maxStep {
				return curated.Errorf(DebuggerError, fmt.Sprintf("invalid step count (%s)", args[0]))
			}
			n = v
		}
		dbg.step(n)

	case cmdRun:
		if len(args) == 0 {
			return curated.Errorf(DebuggerError, "RUN requires a cycle count")
		}
		cycles, err := strconv.Atoi(args[0])
		if err != nil {
			return curated.Errorf(DebuggerError, fmt.Sprintf("invalid cycle count (%s)", args[0]))
		}
		used, err := dbg.m.Execute(cycles)
		dbg.printLine(terminal.StyleFeedback, "%d cycles used", used)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
		dbg.printMachineStatus()

	case cmdRegs:
		dbg.printMachineStatus()

	case cmdLast:
		if dbg.m.CPU.LastResult.Final {
			e := disassembly.FromResult(dbg.m.CPU.LastResult)
			dbg.printLine(terminal.StyleDisasm, "%s", strings.TrimSpace(fmt.Sprintf("%s  (%s cycles) %s", e, e.Cycles(), e.Notes())))
		} else {
			dbg.printLine(terminal.StyleFeedback, "no instruction has been executed")
		}

	case cmdPeek:
		if len(args) == 0 {
			return curated.Errorf(DebuggerError, "PEEK requires an address")
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return curated.Errorf(DebuggerError, fmt.Sprintf("invalid address (%s)", args[0]))
		}
		n, err := dbg.optionalCount(args, 1, 1)
		if err != nil {
			return err
		}
		if n == 1 {
			dbg.printLine(terminal.StyleFeedback, "%04x -> %02x", address, dbg.m.Mem.Peek(address))
		} else {
			dbg.printLines(terminal.StyleFeedback, dbg.m.Mem.Dump(address, n))
		}

	case cmdPoke:
		if len(args) < 2 {
			return curated.Errorf(DebuggerError, "POKE requires an address and a value")
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return curated.Errorf(DebuggerError, fmt.Sprintf("invalid address (%s)", args[0]))
		}

		// parse all values before poking any of them
		values := make([]uint8, 0, len(args)-1)
		for _, a := range args[1:] {
			v, err := parseByte(a)
			if err != nil {
				return curated.Errorf(DebuggerError, fmt.Sprintf("invalid value (%s)", a))
			}
			values = append(values, v)
		}
		for i, v := range values {
			dbg.m.Mem.Poke(address+uint16(i), v)
		}
		dbg.printLine(terminal.StyleFeedback, "%d bytes written at %04x", len(values), address)

	case cmdReset:
		if err := dbg.reset(args); err != nil {
			return err
		}
		dbg.printMachineStatus()

	case cmdLoad:
		if len(args) == 0 {
			return curated.Errorf(DebuggerError, "LOAD requires a filename")
		}
		var address *uint16
		if len(args) > 1 {
			a, err := parseAddress(args[1])
			if err != nil {
				return curated.Errorf(DebuggerError, fmt.Sprintf("invalid address (%s)", args[1]))
			}
			address = &a
		}
		if err := dbg.load(args[0], address); err != nil {
			return err
		}
		dbg.printMachineStatus()

	case cmdDisasm:
		address := dbg.m.CPU.PC.Address()
		if len(args) > 0 {
			var err error
			address, err = parseAddress(args[0])
			if err != nil {
				return curated.Errorf(DebuggerError, fmt.Sprintf("invalid address (%s)", args[0]))
			}
		}
		n, err := dbg.optionalCount(args, 1, defaultListLength)
		if err != nil {
			return err
		}
		entries := disassembly.Range(dbg.m.Mem, address, n)
		w := termWriter{term: dbg.term, style: terminal.StyleDisasm}
		err = disassembly.Write(w, disassembly.WriteAttr{ByteCode: true, Cycles: true}, entries)
		if err != nil {
			return curated.Errorf(DebuggerError, err)
		}

	case cmdEEPROM:
		if len(args) == 0 {
			return curated.Errorf(DebuggerError, "EEPROM requires an address")
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return curated.Errorf(DebuggerError, fmt.Sprintf("invalid address (%s)", args[0]))
		}
		n, err := dbg.optionalCount(args, 1, 1)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			a := address + uint16(i)
			dbg.printLine(terminal.StyleFeedback, "%04x -> %02x", a, dbg.m.EEPROM.Read(a))
		}

	case cmdSave:
		if err := dbg.m.EEPROM.Save(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "eeprom saved to %s", dbg.m.EEPROM.Filename)

	case cmdSnapshot:
		dbg.snapshot = dbg.m.Snapshot()
		dbg.printLine(terminal.StyleFeedback, "snapshot taken at %04x", dbg.m.CPU.PC.Address())

	case cmdRestore:
		if dbg.snapshot == nil {
			return curated.Errorf(DebuggerError, "no snapshot to restore")
		}
		dbg.m.Plumb(dbg.snapshot)
		dbg.printMachineStatus()

	case cmdPolicy:
		if len(args) > 0 {
			if err := dbg.m.Prefs.UnknownOpcode.Set(args[0]); err != nil {
				return curated.Errorf(DebuggerError, err)
			}
		}
		dbg.printLine(terminal.StyleFeedback, "unrecognised opcode policy: %s", dbg.m.CPU.Policy)

	case cmdPrefs:
		if len(args) > 0 {
			if strings.ToUpper(args[0]) != "SAVE" {
				return curated.Errorf(DebuggerError, fmt.Sprintf("unknown PREFS argument (%s)", args[0]))
			}
			if err := dbg.m.Prefs.Save(); err != nil {
				return curated.Errorf(DebuggerError, err)
			}
			dbg.printLine(terminal.StyleFeedback, "preferences saved")
			return nil
		}
		dbg.printLines(terminal.StyleFeedback, dbg.m.Prefs.String())

	case cmdMemviz:
		if len(args) == 0 {
			return curated.Errorf(DebuggerError, "MEMVIZ requires a filename")
		}
		if err := dbg.memviz(args[0]); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "cpu written to %s", args[0])

	case cmdLog:
		n, err := dbg.optionalCount(args, 0, defaultListLength)
		if err != nil {
			return err
		}
		logger.Tail(termWriter{term: dbg.term, style: terminal.StyleLog}, n)

	case cmdKeys:
		if kr, ok := dbg.term.(terminal.KeyReader); !ok || !kr.CanReadKey() {
			return curated.Errorf(DebuggerError, "key step mode is not available")
		}
		dbg.keyStep = true

	case cmdHelp:
		for _, t := range commandTemplate {
			c := strings.Fields(t)[0]
			dbg.printLine(terminal.StyleHelp, "%-36s %s", t, helps[c])
		}

	case cmdQuit:
		dbg.running = false

	default:
		return curated.Errorf(DebuggerError, fmt.Sprintf("unrecognised command (%s)", tokens[0]))
	}

	return nil
}

// optionalCount returns the positive integer argument at index idx or the
// default value if there is no such argument. counts larger than maxCount
// are an error.
func (dbg *Debugger) optionalCount(args []string, idx int, def int) (int, error) {
	if len(args) <= idx {
		return def, nil
	}
	n, err := strconv.Atoi(args[idx])
	if err != nil || n < 1 || n > maxCount {
		return 0, curated.Errorf(DebuggerError, fmt.Sprintf("invalid count (%s)", args[idx]))
	}
	return n, nil
}

// reset the machine and reload the current program, if there is one. an
// optional argument sets the PC after the program has been reloaded.
func (dbg *Debugger) reset(args []string) error {
	var vector uint16
	var explicit bool
	if len(args) > 0 {
		var err error
		vector, err = parseAddress(args[0])
		if err != nil {
			return curated.Errorf(DebuggerError, fmt.Sprintf("invalid vector (%s)", args[0]))
		}
		explicit = true
	}

	dbg.m.ResetDefault()

	if dbg.m.Loader.HasLoaded() {
		if err := dbg.m.Load(dbg.m.Loader); err != nil {
			return err
		}
	}

	if explicit {
		dbg.m.CPU.LoadPC(vector)
	}

	return nil
}

// memvizView is the part of the CPU written by the MEMVIZ command. the CPU
// type itself reaches every byte of memory.
type memvizView struct {
	State      cpu.State
	LastResult execution.Result
	Policy     cpu.Policy
}

// write a graphviz representation of the CPU to the file.
func (dbg *Debugger) memviz(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(DebuggerError, err)
		}
	}()

	memviz.Map(f, &memvizView{
		State:      dbg.m.CPU.State(),
		LastResult: dbg.m.CPU.LastResult,
		Policy:     dbg.m.CPU.Policy,
	})

	return nil
}
