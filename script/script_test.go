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

package script_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/hardware"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu"
	"github.com/drewwalton19216801/Emu6502Console/hardware/preferences"
	"github.com/drewwalton19216801/Emu6502Console/script"
	"github.com/drewwalton19216801/Emu6502Console/test"
	lua "github.com/yuin/gopher-lua"
)

func newScript(t *testing.T) (*script.Script, *hardware.Machine, *test.CompareWriter) {
	t.Helper()

	dir := t.TempDir()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.EEPROMFilename.Set(filepath.Join(dir, "EEPROM.bin")))

	m, err := hardware.NewMachine(p)
	test.DemandSuccess(t, err)

	out := &test.CompareWriter{}
	scr, err := script.NewScript(m, out)
	test.DemandSuccess(t, err)
	t.Cleanup(scr.Close)

	return scr, m, out
}

func TestMemory(t *testing.T) {
	scr, m, out := newScript(t)

	err := scr.Run(`
		poke(0x0200, 0x42)
		poke(0x0201, 255)
		print(peek(0x0200), peek(0x0201), peek(0x0202))
	`)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("66\t255\t0\n"))
	test.ExpectEquality(t, m.Mem.Peek(0x0200), uint8(0x42))

	// out of range values
	test.ExpectFailure(t, scr.Run(`poke(0x0200, 256)`))
	test.ExpectFailure(t, scr.Run(`poke(0x10000, 0)`))
	test.ExpectFailure(t, scr.Run(`peek(-1)`))
}

func TestExecution(t *testing.T) {
	scr, m, out := newScript(t)

	// LDA #$01; ADC #$01; JMP $0602
	err := scr.Run(`
		reset(0x0600)
		poke(0x0600, 0xa9)
		poke(0x0601, 0x01)
		poke(0x0602, 0x69)
		poke(0x0603, 0x01)
		poke(0x0604, 0x4c)
		poke(0x0605, 0x02)
		poke(0x0606, 0x06)
		print(step())
		print(run(10))
		print(reg("a"), reg("PC"))
	`)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("2\n10\n3\t1538\n"))
	test.ExpectEquality(t, m.State().A, uint8(3))
}

func TestRegisters(t *testing.T) {
	scr, m, out := newScript(t)

	err := scr.Run(`
		reg("A", 1)
		reg("x", 2)
		reg("Y", 3)
		reg("SP", 0x80)
		reg("P", 0x01)
		reg("PC", 0xc000)
		print(reg("A"), reg("X"), reg("Y"), reg("SP"), reg("P"), reg("PC"))
	`)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("1\t2\t3\t128\t1\t49152\n"))

	st := m.State()
	test.ExpectEquality(t, st.PC, uint16(0xc000))
	test.ExpectSuccess(t, st.Status.Carry())

	test.ExpectFailure(t, scr.Run(`reg("Q")`))
	test.ExpectFailure(t, scr.Run(`reg("PC", 0x10000)`))
}

func TestMachineError(t *testing.T) {
	scr, m, out := newScript(t)

	// unrecognised opcode raises a lua error
	err := scr.Run(`
		reset(0x0600)
		poke(0x0600, 0x02)
		step()
	`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "unrecognised opcode"))

	// the error can be caught by the script
	err = scr.Run(`
		reg("PC", 0x0600)
		local ok, msg = pcall(step)
		print(ok)
	`)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("false\n"))

	// policy is respected
	m.CPU.Policy = cpu.Skip
	out.Clear()
	err = scr.Run(`
		reg("PC", 0x0600)
		print(step(), reg("PC"))
	`)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("1\t1537\n"))
}

func TestLoad(t *testing.T) {
	scr, m, out := newScript(t)

	dir := t.TempDir()
	prg := filepath.Join(dir, "prog.bin")
	test.DemandSuccess(t, os.WriteFile(prg, []uint8{0xe8, 0xe8}, 0o600))

	fn := filepath.Join(dir, "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`
		local origin = load(arg_prg, 0x0300)
		step()
		step()
		print(origin, reg("X"))
	`), 0o600))

	scr.L.SetGlobal("arg_prg", lua.LString(prg))

	test.DemandSuccess(t, scr.RunFile(fn))
	test.ExpectSuccess(t, out.Compare("768\t2\n"))
	test.ExpectEquality(t, m.Mem.Peek(0x0301), uint8(0xe8))

	// missing program
	err := scr.Run(`load("` + filepath.ToSlash(filepath.Join(dir, "missing.bin")) + `")`)
	test.ExpectFailure(t, err)

	// missing script
	test.ExpectFailure(t, scr.RunFile(filepath.Join(dir, "missing.lua")))
}

func TestStatus(t *testing.T) {
	scr, m, out := newScript(t)

	test.DemandSuccess(t, scr.Run(`print(status())`))
	test.ExpectSuccess(t, out.Compare(m.Status()+"\n"))
}
