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

package debugger_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drewwalton19216801/Emu6502Console/debugger"
	"github.com/drewwalton19216801/Emu6502Console/debugger/terminal"
	"github.com/drewwalton19216801/Emu6502Console/debugger/terminal/easyterm"
	"github.com/drewwalton19216801/Emu6502Console/hardware"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu"
	"github.com/drewwalton19216801/Emu6502Console/hardware/preferences"
	"github.com/drewwalton19216801/Emu6502Console/test"
)

// mockTerm feeds a fixed sequence of input lines to the debugger. output is
// grouped by the input that caused it. output before the first input is in
// group zero.
type mockTerm struct {
	inputs  []string
	prompts []terminal.Prompt
	groups  [][]string
}

func newMockTerm(inputs ...string) *mockTerm {
	return &mockTerm{
		inputs: inputs,
		groups: make([][]string, 1),
	}
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) Silence(silenced bool) {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(prompt terminal.Prompt) (string, error) {
	trm.prompts = append(trm.prompts, prompt)
	trm.groups = append(trm.groups, []string{})
	if len(trm.inputs) == 0 {
		return "", io.EOF
	}
	s := trm.inputs[0]
	trm.inputs = trm.inputs[1:]
	return s, nil
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}
	trm.groups[len(trm.groups)-1] = append(trm.groups[len(trm.groups)-1], s)
}

// output returns the output caused by the input at index i.
func (trm *mockTerm) output(i int) []string {
	if i+1 >= len(trm.groups) {
		return nil
	}
	return trm.groups[i+1]
}

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()

	dir := t.TempDir()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.EEPROMFilename.Set(filepath.Join(dir, "EEPROM.bin")))
	test.DemandSuccess(t, p.BaseAddress.Set(0x0600))

	m, err := hardware.NewMachine(p)
	test.DemandSuccess(t, err)
	return m
}

func writeProgram(t *testing.T, data ...uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

const flagsClear = "Status Flags: C: 0 Z: 0 I: 0 D: 0 B: 0 U: 0 V: 0 N: 0"

func TestDebugger(t *testing.T) {
	m := newMachine(t)

	// LDA #$05; STA $10; INX
	fn := writeProgram(t, 0xa9, 0x05, 0x85, 0x10, 0xe8)

	trm := newMockTerm(
		"",
		"step 2",
		"PEEK $10",
		"POKE $20 1 $ff",
		"PEEK 0x20 2",
		"DISASM $0600 2",
		"BOGUS",
		"RESET",
		"PEEK $10",
		"QUIT",
		"REGS",
	)

	dbg, err := debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(fn))

	// start up
	test.DemandEquality(t, len(trm.groups[0]), 3)
	test.ExpectSuccess(t, strings.HasPrefix(trm.groups[0][0], "loaded prog"))
	test.ExpectEquality(t, trm.groups[0][1], "A: 00 X: 00 Y: 00 S: FF PC: 0600 P: 00")
	test.ExpectEquality(t, trm.prompts[0].String(), "[ 0600 LDA #$05 ] >> ")

	// empty input steps
	test.ExpectEquality(t, strings.Join(trm.output(0), "\n"), strings.Join([]string{
		"0600 LDA #$05  (2 cycles)",
		"A: 05 X: 00 Y: 00 S: FF PC: 0602 P: 00",
		flagsClear,
	}, "\n"))

	test.ExpectEquality(t, strings.Join(trm.output(1), "\n"), strings.Join([]string{
		"0602 STA $10  (3 cycles)",
		"0604 INX  (2 cycles)",
		"A: 05 X: 01 Y: 00 S: FF PC: 0605 P: 00",
		flagsClear,
	}, "\n"))

	test.ExpectEquality(t, strings.Join(trm.output(2), "\n"), "0010 -> 05")
	test.ExpectEquality(t, strings.Join(trm.output(3), "\n"), "2 bytes written at 0020")

	test.DemandEquality(t, len(trm.output(4)), 1)
	test.ExpectSuccess(t, strings.HasPrefix(trm.output(4)[0], "0020  01 ff"))

	test.ExpectEquality(t, strings.Join(trm.output(5), "\n"), strings.Join([]string{
		"0600  a9 05  LDA #$05  2",
		"0602  85 10  STA $10   3",
	}, "\n"))

	test.ExpectEquality(t, strings.Join(trm.output(6), "\n"), "debugger: unrecognised command (BOGUS)")

	// reset reloads the program but memory outside the program is cleared
	test.DemandEquality(t, len(trm.output(7)), 2)
	test.ExpectEquality(t, trm.output(7)[0], "A: 00 X: 00 Y: 00 S: FF PC: 0600 P: 00")
	test.ExpectEquality(t, strings.Join(trm.output(8), "\n"), "0010 -> 00")

	// input after QUIT is never read
	test.ExpectEquality(t, len(trm.inputs), 1)
}

func TestUnrecognisedOpcode(t *testing.T) {
	m := newMachine(t)

	// NOP; unrecognised; NOP
	fn := writeProgram(t, 0xea, 0x02, 0xea)

	trm := newMockTerm(
		"STEP 3",
		"POLICY skip",
		"RESET",
		"STEP 3",
		"POLICY bogus",
	)

	dbg, err := debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(fn))

	// stepping stops at the unrecognised opcode
	out := trm.output(0)
	test.DemandEquality(t, len(out), 5)
	test.ExpectEquality(t, out[0], "0600 NOP  (2 cycles)")
	test.ExpectSuccess(t, strings.HasPrefix(out[1], "0601 ???"))
	test.ExpectSuccess(t, strings.HasPrefix(out[2], "cpu: unrecognised opcode"))
	test.ExpectEquality(t, out[3], "A: 00 X: 00 Y: 00 S: FF PC: 0602 P: 00")

	test.ExpectEquality(t, trm.output(1)[0], "unrecognised opcode policy: SKIP")

	// all three instructions are executed with the skip policy
	out = trm.output(3)
	test.DemandEquality(t, len(out), 5)
	test.ExpectEquality(t, out[2], "0602 NOP  (2 cycles)")
	test.ExpectEquality(t, out[3], "A: 00 X: 00 Y: 00 S: FF PC: 0603 P: 00")

	// invalid policy leaves the policy unchanged
	test.DemandEquality(t, len(trm.output(4)), 1)
	test.ExpectEquality(t, m.CPU.Policy, cpu.Skip)
}

func TestPromptForFile(t *testing.T) {
	m := newMachine(t)
	fn := writeProgram(t, 0xe8)

	trm := newMockTerm(fn, "")

	dbg, err := debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))

	test.ExpectEquality(t, trm.prompts[0].String(), "Enter the path to the ROM file: ")
	test.ExpectEquality(t, m.State().X, uint8(1))
}

func TestMissingFile(t *testing.T) {
	m := newMachine(t)

	trm := newMockTerm("REGS")

	dbg, err := debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)

	// a missing file is reported but the debugger continues
	test.DemandSuccess(t, dbg.Start(filepath.Join(t.TempDir(), "missing.bin")))
	test.ExpectSuccess(t, strings.HasPrefix(trm.groups[0][0], "machine: programloader:"))
	test.DemandEquality(t, len(trm.output(0)), 2)
}

func TestSnapshotAndEEPROM(t *testing.T) {
	m := newMachine(t)
	fn := writeProgram(t, 0xe8, 0xe8)
	dot := filepath.Join(t.TempDir(), "cpu.dot")

	trm := newMockTerm(
		"SNAPSHOT",
		"STEP 2",
		"RESTORE",
		"EEPROM 0 2",
		"SAVE",
		"MEMVIZ "+dot,
	)

	m.EEPROM.Write(0x0001, 0xaa)

	dbg, err := debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(fn))

	test.ExpectEquality(t, trm.output(0)[0], "snapshot taken at 0600")
	test.ExpectEquality(t, m.State().X, uint8(0))
	test.ExpectEquality(t, trm.output(2)[0], "A: 00 X: 00 Y: 00 S: FF PC: 0600 P: 00")
	test.ExpectEquality(t, strings.Join(trm.output(3), "\n"), "0000 -> 00\n0001 -> aa")
	test.ExpectSuccess(t, m.EEPROM.IsSaved())
	test.ExpectSuccess(t, strings.HasPrefix(trm.output(5)[0], "cpu written to"))

	// the graph does not include memory
	fi, err := os.Stat(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.Size() > 0)
	test.ExpectSuccess(t, fi.Size() < 0x4000)
}

func TestCountLimits(t *testing.T) {
	m := newMachine(t)
	fn := writeProgram(t, 0xea)

	trm := newMockTerm(
		"DISASM 0 4000000000000000000",
		"PEEK 0 65537",
		"EEPROM 0 99999999999",
		"LOG 70000",
		"DISASM 0 -1",
		"PEEK $fff0 65536",
		"REGS",
	)

	dbg, err := debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(fn))

	test.ExpectEquality(t, strings.Join(trm.output(0), "\n"), "debugger: invalid count (4000000000000000000)")
	test.ExpectEquality(t, strings.Join(trm.output(1), "\n"), "debugger: invalid count (65537)")
	test.ExpectEquality(t, strings.Join(trm.output(2), "\n"), "debugger: invalid count (99999999999)")
	test.ExpectEquality(t, strings.Join(trm.output(3), "\n"), "debugger: invalid count (70000)")
	test.ExpectEquality(t, strings.Join(trm.output(4), "\n"), "debugger: invalid count (-1)")

	// the largest count dumps all of memory
	test.ExpectEquality(t, len(trm.output(5)), 0x1000)
	test.ExpectSuccess(t, strings.HasPrefix(trm.output(5)[0], "fff0"))

	// the session continues
	test.ExpectEquality(t, len(trm.output(6)), 2)
}

type keyTerm struct {
	*mockTerm
	keys []byte
}

func (trm *keyTerm) CanReadKey() bool {
	return true
}

func (trm *keyTerm) TermReadKey(prompt terminal.Prompt) (byte, error) {
	trm.prompts = append(trm.prompts, prompt)
	trm.groups = append(trm.groups, []string{})
	if len(trm.keys) == 0 {
		return 0, io.EOF
	}
	b := trm.keys[0]
	trm.keys = trm.keys[1:]
	return b, nil
}

func TestKeyStep(t *testing.T) {
	m := newMachine(t)
	fn := writeProgram(t, 0xea, 0xea, 0xea, 0xea)

	// space, carriage return and line feed step. escape switches to the
	// command line
	trm := &keyTerm{
		mockTerm: newMockTerm("QUIT"),
		keys:     []byte{' ', '\r', 'x', '\n', easyterm.KeyEsc, ' '},
	}

	dbg, err := debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(fn))

	test.ExpectEquality(t, m.State().PC, uint16(0x0603))
	test.ExpectSuccess(t, strings.HasPrefix(trm.output(2)[0], "space or return to step"))

	// the key after escape is never read
	test.ExpectEquality(t, len(trm.keys), 1)
	test.ExpectEquality(t, len(trm.inputs), 0)
}
