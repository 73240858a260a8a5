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

// Package memory implements the flat 64K memory of a 6502 system. There is no
// memory mapping: every address is backed by a single byte of RAM and every
// address computation wraps at 16 bits.
//
// The Memory type implements the cpubus.Memory interface and is the memory
// plumbed into the CPU by the hardware package. Peek() and Poke() are
// provided for the debugger and remote packages and are identical to Read()
// and Write() except that Poke() is logged.
package memory
