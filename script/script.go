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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/hardware"
	"github.com/drewwalton19216801/Emu6502Console/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the sentinel pattern for errors returned by the package.
const ScriptError = "script: %v"

// Script is a Lua environment bound to a Machine.
type Script struct {
	m   *hardware.Machine
	L   *lua.LState
	out io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// The Close() function should be called when the Script is no longer
// required.
func NewScript(m *hardware.Machine, out io.Writer) (*Script, error) {
	if m == nil {
		return nil, curated.Errorf(ScriptError, "no machine")
	}
	if out == nil {
		out = io.Discard
	}

	scr := &Script{
		m:   m,
		L:   lua.NewState(),
		out: out,
	}

	for name, fn := range map[string]lua.LGFunction{
		"step":   scr.step,
		"run":    scr.run,
		"peek":   scr.peek,
		"poke":   scr.poke,
		"reg":    scr.reg,
		"reset":  scr.reset,
		"load":   scr.load,
		"status": scr.status,
		"print":  scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr, nil
}

// Close the Lua environment.
func (scr *Script) Close() {
	scr.L.Close()
}

// Run the Lua source.
func (scr *Script) Run(source string) error {
	err := scr.L.DoString(source)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(logger.Allow, "script", "running %s", filename)
	err := scr.L.DoFile(filename)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// check that the argument at index n is a valid 16bit address.
func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range (%#x)", v))
	}
	return uint16(v)
}

// check that the argument at index n is a valid 8bit value.
func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, fmt.Sprintf("value out of range (%#x)", v))
	}
	return uint8(v)
}

func (scr *Script) step(L *lua.LState) int {
	res, err := scr.m.Step(nil)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(res.Cycles))
	return 1
}

func (scr *Script) run(L *lua.LState) int {
	used, err := scr.m.Execute(L.CheckInt(1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(used))
	return 1
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.Mem.Peek(checkAddress(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	scr.m.Mem.Poke(checkAddress(L, 1), checkByte(L, 2))
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	name := strings.ToUpper(L.CheckString(1))
	cpu := scr.m.CPU

	if L.GetTop() > 1 {
		if name == "PC" {
			cpu.PC.Load(checkAddress(L, 2))
		} else {
			v := checkByte(L, 2)
			switch name {
			case "A":
				cpu.A.Load(v)
			case "X":
				cpu.X.Load(v)
			case "Y":
				cpu.Y.Load(v)
			case "SP":
				cpu.SP.Load(v)
			case "P":
				cpu.Status.Load(v)
			default:
				L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
			}
		}
	}

	st := cpu.State()

	var v int
	switch name {
	case "A":
		v = int(st.A)
	case "X":
		v = int(st.X)
	case "Y":
		v = int(st.Y)
	case "SP":
		v = int(st.SP)
	case "P":
		v = int(st.Status.Value())
	case "PC":
		v = int(st.PC)
	default:
		L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) reset(L *lua.LState) int {
	if L.GetTop() > 0 {
		scr.m.Reset(checkAddress(L, 1))
	} else {
		scr.m.ResetDefault()
	}
	return 0
}

func (scr *Script) load(L *lua.LState) int {
	ld := scr.m.NewLoader(L.CheckString(1))
	if L.GetTop() > 1 {
		ld.BaseAddress = checkAddress(L, 2)
		ld.HeaderAddress = false
	}

	err := scr.m.Load(ld)
	if err != nil {
		L.RaiseError("%v", err)
	}

	L.Push(lua.LNumber(scr.m.CPU.PC.Address()))
	return 1
}

func (scr *Script) status(L *lua.LState) int {
	L.Push(lua.LString(scr.m.Status()))
	return 1
}

// replacement for the standard print function. arguments are separated by
// a tab character.
func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.out, strings.Join(s, "\t"))
	return 0
}
