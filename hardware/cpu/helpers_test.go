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

package cpu_test

import (
	"testing"

	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/execution"
)

type mockMem struct {
	internal [0x10000]uint8
}

func newMockMem() *mockMem {
	return &mockMem{}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %04x)", d, value, address)
	}
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	clear(mem.internal[:])
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

// step executes a single instruction and checks the result is consistent with
// the instruction definition.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}

// the origin used by most tests. clear of the zero page and the stack
const origin = uint16(0x0600)

func reset(mc *cpu.CPU, mem *mockMem) uint16 {
	mem.Clear()
	mc.Reset(origin)
	return origin
}
