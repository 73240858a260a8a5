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

package cpu

import (
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/execution"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/instructions"
	"github.com/drewwalton19216801/Emu6502Console/logger"
)

// operand is the result of addressing mode resolution. it is passed to the
// operator handler.
type operand struct {
	defn *instructions.Definition

	// the effective address. not used for implied, accumulator or immediate
	// addressing
	address uint16

	// the value to operate on. for RMW instructions the handler leaves the
	// modified value here so that it can be written back to memory
	value uint8
}

// fromMemory returns true if the operand value must be read from the
// effective address.
func (op operand) fromMemory() bool {
	switch op.defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
		return false
	}
	return true
}

// pageCrossed compares the high bytes of the two addresses.
func pageCrossed(a, b uint16) bool {
	return (a^b)>>8 != 0
}

// resolve the operand according to the addressing mode of the instruction.
func (mc *CPU) resolve(op *operand) error {
	var err error

	switch op.defn.AddressingMode {
	case instructions.Implied:
		// BRK reads and discards the byte after the opcode. all other implied
		// instructions spend a cycle reading the next byte without advancing
		// the PC
		if op.defn.Operator == instructions.Brk {
			// +1 cycle
			_, err = mc.read8BitPC()

			// the padding byte is not part of the instruction
			mc.LastResult.ByteCount--
		} else {
			// +1 cycle
			_, err = mc.read8Bit(mc.PC.Address())
		}

	case instructions.Accumulator:
		// +1 cycle
		_, err = mc.read8Bit(mc.PC.Address())
		op.value = mc.A.Value()

	case instructions.Immediate:
		// +1 cycle
		op.value, err = mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(op.value)

	case instructions.Relative:
		// the offset is always read whether or not the branch is taken
		// +1 cycle
		op.value, err = mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(op.value)

	case instructions.Absolute:
		// JSR reads its address in stages so that it can push the PC in the
		// middle of reading the address
		if op.defn.Effect != instructions.Subroutine {
			op.address, err = mc.absolute()
		}

	case instructions.ZeroPage:
		op.address, err = mc.zeroPage()

	case instructions.ZeroPageIndexedX:
		op.address, err = mc.zeroPageIndexed(mc.X.Value())

	case instructions.ZeroPageIndexedY:
		op.address, err = mc.zeroPageIndexed(mc.Y.Value())

	case instructions.AbsoluteIndexedX:
		op.address, err = mc.absoluteIndexed(mc.X.Value(), !op.defn.PageSensitive)

	case instructions.AbsoluteIndexedY:
		op.address, err = mc.absoluteIndexed(mc.Y.Value(), !op.defn.PageSensitive)

	case instructions.IndexedIndirect:
		op.address, err = mc.indexedIndirect()

	case instructions.IndirectIndexed:
		op.address, err = mc.indirectIndexed(!op.defn.PageSensitive)

	case instructions.Indirect:
		op.address, err = mc.indirect()
	}

	return err
}

// zeroPage addressing. the operand is the address
//
// +1 cycle
func (mc *CPU) zeroPage() (uint16, error) {
	v, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	mc.LastResult.InstructionData = uint16(v)
	return uint16(v), nil
}

// zeroPageIndexed addressing. the index is added to the operand and the result
// wraps within page zero
//
// +2 cycles
func (mc *CPU) zeroPageIndexed(index uint8) (uint16, error) {
	v, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	mc.LastResult.InstructionData = uint16(v)

	// read from base address while the index is added
	// +1 cycle
	_, err = mc.read8Bit(uint16(v))
	if err != nil {
		return 0, err
	}

	return uint16(v + index), nil
}

// absolute addressing. the two byte operand is the address
//
// +2 cycles
func (mc *CPU) absolute() (uint16, error) {
	return mc.read16BitPC()
}

// absoluteIndexed addressing. the index is added to the two byte operand. an
// extra cycle is consumed if the addition crosses a page boundary or if fixed
// is true
//
// +2 or +3 cycles
func (mc *CPU) absoluteIndexed(index uint8, fixed bool) (uint16, error) {
	base, err := mc.read16BitPC()
	if err != nil {
		return 0, err
	}
	return mc.indexed(base, index, fixed)
}

// indexedIndirect addressing (ind,X). the X register is added to the zero page
// operand and the two bytes at the result form the address. the pointer
// wraps within page zero
//
// +4 cycles
func (mc *CPU) indexedIndirect() (uint16, error) {
	v, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	mc.LastResult.InstructionData = uint16(v)

	// read from unindexed pointer while the index is added
	// +1 cycle
	_, err = mc.read8Bit(uint16(v))
	if err != nil {
		return 0, err
	}

	return mc.zeroPagePointer(v + mc.X.Value())
}

// indirectIndexed addressing (ind),Y. the two bytes at the zero page operand
// form a base address to which the Y register is added. an extra cycle is
// consumed if the addition crosses a page boundary or if fixed is true
//
// +3 or +4 cycles
func (mc *CPU) indirectIndexed(fixed bool) (uint16, error) {
	v, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	mc.LastResult.InstructionData = uint16(v)

	base, err := mc.zeroPagePointer(v)
	if err != nil {
		return 0, err
	}

	return mc.indexed(base, mc.Y.Value(), fixed)
}

// indirect addressing is used only by JMP. the two bytes at the operand
// address form the address. on the NMOS 6502 the high byte of a pointer at
// the end of a page is read from the start of the same page
//
// +4 cycles
func (mc *CPU) indirect() (uint16, error) {
	ptr, err := mc.read16BitPC()
	if err != nil {
		return 0, err
	}

	// +1 cycle
	lo, err := mc.read8Bit(ptr)
	if err != nil {
		return 0, err
	}

	hiPtr := (ptr & 0xff00) | ((ptr + 1) & 0x00ff)
	if ptr&0x00ff == 0x00ff {
		mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		logger.Logf(logger.Allow, "cpu", "%s at (%#04x)", execution.JmpIndirectAddressingBug, mc.LastResult.Address)
	}

	// +1 cycle
	hi, err := mc.read8Bit(hiPtr)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// zeroPagePointer reads a little-endian address from page zero. the high byte
// of a pointer at 0xff is read from 0x00
//
// +2 cycles
func (mc *CPU) zeroPagePointer(ptr uint8) (uint16, error) {
	lo, err := mc.read8Bit(uint16(ptr))
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8Bit(uint16(ptr + 1))
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// indexed adds the index to the base address and consumes the extra cycle
// when required.
//
// +0 or +1 cycles
func (mc *CPU) indexed(base uint16, index uint8, fixed bool) (uint16, error) {
	address := base + uint16(index)
	crossed := pageCrossed(base, address)

	if crossed || fixed {
		// read from the address before the high byte is fixed
		// +1 cycle
		_, err := mc.read8Bit((base & 0xff00) | (address & 0x00ff))
		if err != nil {
			return 0, err
		}
	}

	// only page sensitive instructions record the page fault. instructions
	// with a fixed cost always pay for it
	mc.LastResult.PageFault = crossed && !fixed

	return address, nil
}
