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

// Package registers implements the three types of register found in the 6502:
// the 8 bit data registers (A, X and Y), the 16 bit program counter, the
// stack pointer and the status register.
//
// Register arithmetic returns the carry and overflow state of the operation
// rather than updating a status register directly. Updating the status
// register is the job of the CPU. For instance, in the CPU, we might have
// this sequence of function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.SetZero(a.IsZero())
//
// In this case, the zero flag in the status register will be false.
//
// The status register stores the flags as a single byte. The named accessors
// (Carry(), SetCarry(), etc.) and the byte view (Value(), Load()) operate on
// the same storage so a change through one view is always visible through
// the other.
package registers
