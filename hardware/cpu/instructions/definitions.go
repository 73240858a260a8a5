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

package instructions

// the documented instruction set. the number of bytes is implied by the
// addressing mode.
var documented = []struct {
	opcode uint8
	op     Operator
	mode   AddressingMode
	cycles int
	page   bool
	effect EffectCategory
}{
	{0x69, Adc, Immediate, 2, false, Read},
	{0x65, Adc, ZeroPage, 3, false, Read},
	{0x75, Adc, ZeroPageIndexedX, 4, false, Read},
	{0x6d, Adc, Absolute, 4, false, Read},
	{0x7d, Adc, AbsoluteIndexedX, 4, true, Read},
	{0x79, Adc, AbsoluteIndexedY, 4, true, Read},
	{0x61, Adc, IndexedIndirect, 6, false, Read},
	{0x71, Adc, IndirectIndexed, 5, true, Read},

	{0x29, And, Immediate, 2, false, Read},
	{0x25, And, ZeroPage, 3, false, Read},
	{0x35, And, ZeroPageIndexedX, 4, false, Read},
	{0x2d, And, Absolute, 4, false, Read},
	{0x3d, And, AbsoluteIndexedX, 4, true, Read},
	{0x39, And, AbsoluteIndexedY, 4, true, Read},
	{0x21, And, IndexedIndirect, 6, false, Read},
	{0x31, And, IndirectIndexed, 5, true, Read},

	{0x0a, Asl, Accumulator, 2, false, Read},
	{0x06, Asl, ZeroPage, 5, false, RMW},
	{0x16, Asl, ZeroPageIndexedX, 6, false, RMW},
	{0x0e, Asl, Absolute, 6, false, RMW},
	{0x1e, Asl, AbsoluteIndexedX, 7, false, RMW},

	{0x90, Bcc, Relative, 2, false, Flow},
	{0xb0, Bcs, Relative, 2, false, Flow},
	{0xf0, Beq, Relative, 2, false, Flow},
	{0x30, Bmi, Relative, 2, false, Flow},
	{0xd0, Bne, Relative, 2, false, Flow},
	{0x10, Bpl, Relative, 2, false, Flow},
	{0x50, Bvc, Relative, 2, false, Flow},
	{0x70, Bvs, Relative, 2, false, Flow},

	{0x24, Bit, ZeroPage, 3, false, Read},
	{0x2c, Bit, Absolute, 4, false, Read},

	{0x00, Brk, Implied, 7, false, Interrupt},

	{0x18, Clc, Implied, 2, false, Read},
	{0xd8, Cld, Implied, 2, false, Read},
	{0x58, Cli, Implied, 2, false, Read},
	{0xb8, Clv, Implied, 2, false, Read},

	{0xc9, Cmp, Immediate, 2, false, Read},
	{0xc5, Cmp, ZeroPage, 3, false, Read},
	{0xd5, Cmp, ZeroPageIndexedX, 4, false, Read},
	{0xcd, Cmp, Absolute, 4, false, Read},
	{0xdd, Cmp, AbsoluteIndexedX, 4, true, Read},
	{0xd9, Cmp, AbsoluteIndexedY, 4, true, Read},
	{0xc1, Cmp, IndexedIndirect, 6, false, Read},
	{0xd1, Cmp, IndirectIndexed, 5, true, Read},

	{0xe0, Cpx, Immediate, 2, false, Read},
	{0xe4, Cpx, ZeroPage, 3, false, Read},
	{0xec, Cpx, Absolute, 4, false, Read},

	{0xc0, Cpy, Immediate, 2, false, Read},
	{0xc4, Cpy, ZeroPage, 3, false, Read},
	{0xcc, Cpy, Absolute, 4, false, Read},

	{0xc6, Dec, ZeroPage, 5, false, RMW},
	{0xd6, Dec, ZeroPageIndexedX, 6, false, RMW},
	{0xce, Dec, Absolute, 6, false, RMW},
	{0xde, Dec, AbsoluteIndexedX, 7, false, RMW},

	{0xca, Dex, Implied, 2, false, Read},
	{0x88, Dey, Implied, 2, false, Read},

	{0x49, Eor, Immediate, 2, false, Read},
	{0x45, Eor, ZeroPage, 3, false, Read},
	{0x55, Eor, ZeroPageIndexedX, 4, false, Read},
	{0x4d, Eor, Absolute, 4, false, Read},
	{0x5d, Eor, AbsoluteIndexedX, 4, true, Read},
	{0x59, Eor, AbsoluteIndexedY, 4, true, Read},
	{0x41, Eor, IndexedIndirect, 6, false, Read},
	{0x51, Eor, IndirectIndexed, 5, true, Read},

	{0xe6, Inc, ZeroPage, 5, false, RMW},
	{0xf6, Inc, ZeroPageIndexedX, 6, false, RMW},
	{0xee, Inc, Absolute, 6, false, RMW},
	{0xfe, Inc, AbsoluteIndexedX, 7, false, RMW},

	{0xe8, Inx, Implied, 2, false, Read},
	{0xc8, Iny, Implied, 2, false, Read},

	{0x4c, Jmp, Absolute, 3, false, Flow},
	{0x6c, Jmp, Indirect, 5, false, Flow},

	{0x20, Jsr, Absolute, 6, false, Subroutine},

	{0xa9, Lda, Immediate, 2, false, Read},
	{0xa5, Lda, ZeroPage, 3, false, Read},
	{0xb5, Lda, ZeroPageIndexedX, 4, false, Read},
	{0xad, Lda, Absolute, 4, false, Read},
	{0xbd, Lda, AbsoluteIndexedX, 4, true, Read},
	{0xb9, Lda, AbsoluteIndexedY, 4, true, Read},
	{0xa1, Lda, IndexedIndirect, 6, false, Read},
	{0xb1, Lda, IndirectIndexed, 5, true, Read},

	{0xa2, Ldx, Immediate, 2, false, Read},
	{0xa6, Ldx, ZeroPage, 3, false, Read},
	{0xb6, Ldx, ZeroPageIndexedY, 4, false, Read},
	{0xae, Ldx, Absolute, 4, false, Read},
	{0xbe, Ldx, AbsoluteIndexedY, 4, true, Read},

	{0xa0, Ldy, Immediate, 2, false, Read},
	{0xa4, Ldy, ZeroPage, 3, false, Read},
	{0xb4, Ldy, ZeroPageIndexedX, 4, false, Read},
	{0xac, Ldy, Absolute, 4, false, Read},
	{0xbc, Ldy, AbsoluteIndexedX, 4, true, Read},

	{0x4a, Lsr, Accumulator, 2, false, Read},
	{0x46, Lsr, ZeroPage, 5, false, RMW},
	{0x56, Lsr, ZeroPageIndexedX, 6, false, RMW},
	{0x4e, Lsr, Absolute, 6, false, RMW},
	{0x5e, Lsr, AbsoluteIndexedX, 7, false, RMW},

	{0xea, Nop, Implied, 2, false, Read},

	{0x09, Ora, Immediate, 2, false, Read},
	{0x05, Ora, ZeroPage, 3, false, Read},
	{0x15, Ora, ZeroPageIndexedX, 4, false, Read},
	{0x0d, Ora, Absolute, 4, false, Read},
	{0x1d, Ora, AbsoluteIndexedX, 4, true, Read},
	{0x19, Ora, AbsoluteIndexedY, 4, true, Read},
	{0x01, Ora, IndexedIndirect, 6, false, Read},
	{0x11, Ora, IndirectIndexed, 5, true, Read},

	{0x48, Pha, Implied, 3, false, Write},
	{0x08, Php, Implied, 3, false, Write},
	{0x68, Pla, Implied, 4, false, Read},
	{0x28, Plp, Implied, 4, false, Read},

	{0x2a, Rol, Accumulator, 2, false, Read},
	{0x26, Rol, ZeroPage, 5, false, RMW},
	{0x36, Rol, ZeroPageIndexedX, 6, false, RMW},
	{0x2e, Rol, Absolute, 6, false, RMW},
	{0x3e, Rol, AbsoluteIndexedX, 7, false, RMW},

	{0x6a, Ror, Accumulator, 2, false, Read},
	{0x66, Ror, ZeroPage, 5, false, RMW},
	{0x76, Ror, ZeroPageIndexedX, 6, false, RMW},
	{0x6e, Ror, Absolute, 6, false, RMW},
	{0x7e, Ror, AbsoluteIndexedX, 7, false, RMW},

	{0x40, Rti, Implied, 6, false, Interrupt},
	{0x60, Rts, Implied, 6, false, Subroutine},

	{0xe9, Sbc, Immediate, 2, false, Read},
	{0xe5, Sbc, ZeroPage, 3, false, Read},
	{0xf5, Sbc, ZeroPageIndexedX, 4, false, Read},
	{0xed, Sbc, Absolute, 4, false, Read},
	{0xfd, Sbc, AbsoluteIndexedX, 4, true, Read},
	{0xf9, Sbc, AbsoluteIndexedY, 4, true, Read},
	{0xe1, Sbc, IndexedIndirect, 6, false, Read},
	{0xf1, Sbc, IndirectIndexed, 5, true, Read},

	{0x38, Sec, Implied, 2, false, Read},
	{0xf8, Sed, Implied, 2, false, Read},
	{0x78, Sei, Implied, 2, false, Read},

	{0x85, Sta, ZeroPage, 3, false, Write},
	{0x95, Sta, ZeroPageIndexedX, 4, false, Write},
	{0x8d, Sta, Absolute, 4, false, Write},
	{0x9d, Sta, AbsoluteIndexedX, 5, false, Write},
	{0x99, Sta, AbsoluteIndexedY, 5, false, Write},
	{0x81, Sta, IndexedIndirect, 6, false, Write},
	{0x91, Sta, IndirectIndexed, 6, false, Write},

	{0x86, Stx, ZeroPage, 3, false, Write},
	{0x96, Stx, ZeroPageIndexedY, 4, false, Write},
	{0x8e, Stx, Absolute, 4, false, Write},

	{0x84, Sty, ZeroPage, 3, false, Write},
	{0x94, Sty, ZeroPageIndexedX, 4, false, Write},
	{0x8c, Sty, Absolute, 4, false, Write},

	{0xaa, Tax, Implied, 2, false, Read},
	{0xa8, Tay, Implied, 2, false, Read},
	{0xba, Tsx, Implied, 2, false, Read},
	{0x8a, Txa, Implied, 2, false, Read},
	{0x9a, Txs, Implied, 2, false, Read},
	{0x98, Tya, Implied, 2, false, Read},
}

var definitions [256]*Definition

func init() {
	for _, d := range documented {
		definitions[d.opcode] = &Definition{
			OpCode:         d.opcode,
			Operator:       d.op,
			Bytes:          d.mode.Bytes(),
			Cycles:         d.cycles,
			AddressingMode: d.mode,
			PageSensitive:  d.page,
			Effect:         d.effect,
		}
	}
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. Entries for opcodes outside the documented instruction set are nil.
//
// The returned array is a copy but the Definitions it points to are shared
// and should not be modified.
func GetDefinitions() [256]*Definition {
	return definitions
}

// Lookup returns the definition for a single opcode. Returns nil if the opcode
// is not recognised.
func Lookup(opcode uint8) *Definition {
	return definitions[opcode]
}
