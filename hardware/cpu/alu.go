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
	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/registers"
	"github.com/drewwalton19216801/Emu6502Console/logger"
)

// adc adds the value and the carry flag to the accumulator.
func (mc *CPU) adc(value uint8) error {
	if mc.Status.DecimalMode() {
		return mc.refuseDecimal()
	}
	carry, overflow := mc.A.Add(value, mc.Status.Carry())
	mc.Status.SetCarry(carry)
	mc.Status.SetOverflow(overflow)
	mc.Status.SetZN(mc.A.Value())
	return nil
}

// sbc subtracts the value and the inverse of the carry flag from the
// accumulator. this is the same as adding the complement of the value.
func (mc *CPU) sbc(value uint8) error {
	if mc.Status.DecimalMode() {
		return mc.refuseDecimal()
	}
	return mc.adc(^value)
}

// refuseDecimal returns an UnsupportedDecimal error. the accumulator and status
// register are not changed.
func (mc *CPU) refuseDecimal() error {
	err := curated.Errorf(UnsupportedDecimal, mc.LastResult.Defn.Operator, mc.LastResult.Address)
	logger.Log(logger.Allow, "cpu", err)
	return err
}

// compare the register with the value. the carry flag is set if there is no
// borrow. decimal mode has no effect on comparisons.
func (mc *CPU) compare(r registers.Register, value uint8) {
	carry, _ := r.Subtract(value, true)
	mc.Status.SetCarry(carry)
	mc.Status.SetZN(r.Value())
}

// bit tests the value against the accumulator. bits 7 and 6 of the value are
// copied to the sign and overflow flags.
func (mc *CPU) bit(value uint8) {
	r := registers.NewRegister(value, "")
	mc.Status.SetSign(r.IsNegative())
	mc.Status.SetOverflow(r.IsBitV())
	r.AND(mc.A.Value())
	mc.Status.SetZero(r.IsZero())
}

// shift applies one of the shift/rotate functions to either the accumulator
// or the operand value, depending on the addressing mode. the carry flag
// receives the bit shifted out.
func (mc *CPU) shift(op *operand, f func(r *registers.Register) bool) {
	r := registers.NewRegister(op.value, "")
	mc.Status.SetCarry(f(&r))
	mc.Status.SetZN(r.Value())
	op.value = r.Value()
	if !op.fromMemory() {
		mc.A.Load(op.value)
	}
}

// increment (or decrement) the operand value.
func (mc *CPU) increment(op *operand, delta uint8) {
	op.value += delta
	mc.Status.SetZN(op.value)
}
