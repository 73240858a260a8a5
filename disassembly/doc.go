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

// Package disassembly decodes 6502 instructions from memory without executing
// them. The Disassemble() function decodes a single instruction and the Range()
// function decodes a sequence of instructions, each one following on from the
// previous.
//
// An Entry can also be created from the result of an executed instruction with
// the FromResult() function. Executed entries carry the actual cycle count and
// notes about page faults and branches.
//
// Entries can be written in columns with the Write() function.
package disassembly
