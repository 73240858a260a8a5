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

// Package cpu emulates the 6502 microprocessor. The emulation is instruction
// accurate and counts the cycles consumed by each instruction.
//
// Execution of an instruction proceeds as follows:
//
//  1. the opcode is read from the address pointed to by the PC
//  2. the opcode is looked up in the static table of instruction definitions
//  3. the operand (if any) is resolved according to the addressing mode
//  4. the operator is performed by its handler function
//  5. read-modify-write instructions write the result back to memory
//
// Every memory access and every internal operation consumes one cycle. The
// cycle callback supplied to ExecuteInstruction() is called after each cycle.
//
// Execute() runs instructions until a budget of cycles has been consumed. The
// budget may be exceeded by the cycles of the final instruction, the return
// value is the number of cycles actually used.
//
// An opcode with no definition is dealt with according to the Policy field of
// the CPU. The Halt policy returns an UnrecognisedOpcode error. The Skip policy
// logs the opcode and continues with the next byte.
//
// Decimal mode arithmetic is not supported. ADC and SBC instructions
// executed while the decimal flag is set return an UnsupportedDecimal error
// and leave the accumulator and status register unchanged.
package cpu
