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
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/registers"
)

// push writes the value to the stack and decrements the stack pointer
//
// +1 cycle
func (mc *CPU) push(value uint8) error {
	err := mc.write8Bit(mc.SP.Address(), value)
	mc.SP.Decrement()
	return err
}

// pull increments the stack pointer and reads the value from the stack
//
// +1 cycle
func (mc *CPU) pull() (uint8, error) {
	mc.SP.Increment()
	return mc.read8Bit(mc.SP.Address())
}

// pushWord pushes the high byte and then the low byte
//
// +2 cycles
func (mc *CPU) pushWord(value uint16) error {
	err := mc.push(uint8(value >> 8))
	if err != nil {
		return err
	}
	return mc.push(uint8(value))
}

// pullWord pulls the low byte and then the high byte
//
// +2 cycles
func (mc *CPU) pullWord() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// pushStatus pushes the status register with the break and unused bits set.
// the live status register is not changed
//
// +1 cycle
func (mc *CPU) pushStatus() error {
	return mc.push(mc.Status.Value() | uint8(registers.Break) | uint8(registers.Unused))
}

// pullStatus pulls the status register. the break and unused bits are cleared
// because they are not part of the processor state
//
// +1 cycle
func (mc *CPU) pullStatus() error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	mc.Status.Load(v &^ (uint8(registers.Break) | uint8(registers.Unused)))
	return nil
}
