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

package memory

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/drewwalton19216801/Emu6502Console/logger"
)

// Size of the addressable memory.
const Size = 0x10000

// Memory is the 64K of memory addressed by the CPU. The array length means
// that any uint16 address is in range.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Memory is zeroed on creation.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Init()
	return mem
}

// Init zeroes every byte of memory. Used for creation and reset.
func (mem *Memory) Init() {
	clear(mem.data[:])
}

// Snapshot creates a copy of memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Peek reads a byte of memory on behalf of the debugger.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Poke writes a byte of memory on behalf of the debugger.
func (mem *Memory) Poke(address uint16, data uint8) {
	logger.Logf(logger.Allow, "memory", "poke %#02x to %#04x", data, address)
	mem.data[address] = data
}

// Slice returns a copy of length bytes starting at address. The copy wraps
// around the end of memory.
func (mem *Memory) Slice(address uint16, length int) []uint8 {
	s := make([]uint8, max(length, 0))
	for i := range s {
		s[i] = mem.data[address]
		address++
	}
	return s
}

// Dump returns a hex dump of length bytes starting at address.
func (mem *Memory) Dump(address uint16, length int) string {
	d := hex.Dump(mem.Slice(address, length))

	// hex.Dump() numbers lines from zero. replace with the real address
	s := strings.Builder{}
	for i, l := range strings.Split(strings.TrimRight(d, "\n"), "\n") {
		if len(l) < 8 {
			continue
		}
		s.WriteString(fmt.Sprintf("%04x%s\n", address+uint16(i*16), l[8:]))
	}
	return s.String()
}

func (mem *Memory) String() string {
	// zero page is the most useful summary of memory
	return mem.Dump(0x0000, 0x100)
}
