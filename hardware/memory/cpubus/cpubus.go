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

// Package cpubus defines the interface the CPU uses to access memory, along
// with the fixed addresses the CPU architecture reserves.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are always taken modulo 64K so there is no error condition
// for either operation.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// NMI is the address where the non-maskable interrupt address is stored.
const NMI = uint16(0xfffa)

// Reset is the address where the reset address is stored
// - used by Machine.Reset() and the disassembly package.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored.
const IRQ = uint16(0xfffe)

// BRK shares its vector with IRQ.
const BRK = IRQ

// StackPage is the base of the fixed 256 byte page used by the stack.
const StackPage = uint16(0x0100)
