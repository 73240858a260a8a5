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

// Package instructions defines the documented instruction set of the 6502.
//
// GetDefinitions() returns a table of 256 entries indexed by opcode. Opcodes
// that are not part of the documented instruction set have a nil entry. The
// CPU uses a nil entry to detect an unrecognised opcode.
//
// The table is static data. Each Definition records the operator, addressing
// mode, number of bytes and base number of cycles for the opcode, along with
// how the instruction affects memory (the EffectCategory) and whether an
// additional cycle is consumed when an indexed address crosses a page
// boundary (PageSensitive).
package instructions
