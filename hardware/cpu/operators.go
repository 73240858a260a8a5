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
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/instructions"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/registers"
	"github.com/drewwalton19216801/Emu6502Console/hardware/memory/cpubus"
)

// handler performs the operation of an instruction. the operand has been
// resolved by the time the handler is called.
type handler func(mc *CPU, op *operand) error

// handlers is indexed by instructions.Operator. every operator has exactly one
// entry.
var handlers [instructions.NumOperators]handler

func init() {
	handlers = [instructions.NumOperators]handler{
		instructions.Nop: func(mc *CPU, op *operand) error { return nil },

		// flags
		instructions.Clc: flagHandler(registers.Carry, false),
		instructions.Sec: flagHandler(registers.Carry, true),
		instructions.Cli: flagHandler(registers.InterruptDisable, false),
		instructions.Sei: flagHandler(registers.InterruptDisable, true),
		instructions.Cld: flagHandler(registers.DecimalMode, false),
		instructions.Sed: flagHandler(registers.DecimalMode, true),
		instructions.Clv: flagHandler(registers.Overflow, false),

		// loads
		instructions.Lda: func(mc *CPU, op *operand) error { return mc.load(&mc.A, op.value) },
		instructions.Ldx: func(mc *CPU, op *operand) error { return mc.load(&mc.X, op.value) },
		instructions.Ldy: func(mc *CPU, op *operand) error { return mc.load(&mc.Y, op.value) },

		// stores
		instructions.Sta: func(mc *CPU, op *operand) error { return mc.write8Bit(op.address, mc.A.Value()) },
		instructions.Stx: func(mc *CPU, op *operand) error { return mc.write8Bit(op.address, mc.X.Value()) },
		instructions.Sty: func(mc *CPU, op *operand) error { return mc.write8Bit(op.address, mc.Y.Value()) },

		// transfers
		instructions.Tax: func(mc *CPU, op *operand) error { return mc.load(&mc.X, mc.A.Value()) },
		instructions.Tay: func(mc *CPU, op *operand) error { return mc.load(&mc.Y, mc.A.Value()) },
		instructions.Txa: func(mc *CPU, op *operand) error { return mc.load(&mc.A, mc.X.Value()) },
		instructions.Tya: func(mc *CPU, op *operand) error { return mc.load(&mc.A, mc.Y.Value()) },
		instructions.Tsx: func(mc *CPU, op *operand) error { return mc.load(&mc.X, mc.SP.Value()) },
		instructions.Txs: func(mc *CPU, op *operand) error {
			// does not affect status register
			mc.SP.Load(mc.X.Value())
			return nil
		},

		// logic
		instructions.And: func(mc *CPU, op *operand) error {
			mc.A.AND(op.value)
			mc.Status.SetZN(mc.A.Value())
			return nil
		},
		instructions.Ora: func(mc *CPU, op *operand) error {
			mc.A.ORA(op.value)
			mc.Status.SetZN(mc.A.Value())
			return nil
		},
		instructions.Eor: func(mc *CPU, op *operand) error {
			mc.A.EOR(op.value)
			mc.Status.SetZN(mc.A.Value())
			return nil
		},
		instructions.Bit: func(mc *CPU, op *operand) error {
			mc.bit(op.value)
			return nil
		},

		// arithmetic
		instructions.Adc: func(mc *CPU, op *operand) error { return mc.adc(op.value) },
		instructions.Sbc: func(mc *CPU, op *operand) error { return mc.sbc(op.value) },
		instructions.Cmp: func(mc *CPU, op *operand) error {
			mc.compare(mc.A, op.value)
			return nil
		},
		instructions.Cpx: func(mc *CPU, op *operand) error {
			mc.compare(mc.X, op.value)
			return nil
		},
		instructions.Cpy: func(mc *CPU, op *operand) error {
			mc.compare(mc.Y, op.value)
			return nil
		},

		// increment and decrement
		instructions.Inc: func(mc *CPU, op *operand) error {
			mc.increment(op, 1)
			return nil
		},
		instructions.Dec: func(mc *CPU, op *operand) error {
			mc.increment(op, 0xff)
			return nil
		},
		instructions.Inx: func(mc *CPU, op *operand) error { return mc.load(&mc.X, mc.X.Value()+1) },
		instructions.Iny: func(mc *CPU, op *operand) error { return mc.load(&mc.Y, mc.Y.Value()+1) },
		instructions.Dex: func(mc *CPU, op *operand) error { return mc.load(&mc.X, mc.X.Value()-1) },
		instructions.Dey: func(mc *CPU, op *operand) error { return mc.load(&mc.Y, mc.Y.Value()-1) },

		// shifts and rotates
		instructions.Asl: func(mc *CPU, op *operand) error {
			mc.shift(op, (*registers.Register).ASL)
			return nil
		},
		instructions.Lsr: func(mc *CPU, op *operand) error {
			mc.shift(op, (*registers.Register).LSR)
			return nil
		},
		instructions.Rol: func(mc *CPU, op *operand) error {
			carry := mc.Status.Carry()
			mc.shift(op, func(r *registers.Register) bool { return r.ROL(carry) })
			return nil
		},
		instructions.Ror: func(mc *CPU, op *operand) error {
			carry := mc.Status.Carry()
			mc.shift(op, func(r *registers.Register) bool { return r.ROR(carry) })
			return nil
		},

		// branches
		instructions.Bcc: func(mc *CPU, op *operand) error { return mc.branch(!mc.Status.Carry(), op.value) },
		instructions.Bcs: func(mc *CPU, op *operand) error { return mc.branch(mc.Status.Carry(), op.value) },
		instructions.Beq: func(mc *CPU, op *operand) error { return mc.branch(mc.Status.Zero(), op.value) },
		instructions.Bne: func(mc *CPU, op *operand) error { return mc.branch(!mc.Status.Zero(), op.value) },
		instructions.Bmi: func(mc *CPU, op *operand) error { return mc.branch(mc.Status.Sign(), op.value) },
		instructions.Bpl: func(mc *CPU, op *operand) error { return mc.branch(!mc.Status.Sign(), op.value) },
		instructions.Bvs: func(mc *CPU, op *operand) error { return mc.branch(mc.Status.Overflow(), op.value) },
		instructions.Bvc: func(mc *CPU, op *operand) error { return mc.branch(!mc.Status.Overflow(), op.value) },

		// jumps and subroutines
		instructions.Jmp: func(mc *CPU, op *operand) error {
			mc.PC.Load(op.address)
			return nil
		},
		instructions.Jsr: jsr,
		instructions.Rts: rts,
		instructions.Brk: brk,
		instructions.Rti: rti,

		// stack
		instructions.Pha: func(mc *CPU, op *operand) error { return mc.push(mc.A.Value()) },
		instructions.Php: func(mc *CPU, op *operand) error { return mc.pushStatus() },
		instructions.Pla: func(mc *CPU, op *operand) error {
			// +1 cycle
			err := mc.cycle()
			if err != nil {
				return err
			}
			v, err := mc.pull()
			if err != nil {
				return err
			}
			return mc.load(&mc.A, v)
		},
		instructions.Plp: func(mc *CPU, op *operand) error {
			// +1 cycle
			err := mc.cycle()
			if err != nil {
				return err
			}
			return mc.pullStatus()
		},
	}
}

// flagHandler returns a handler that sets the flag to v.
func flagHandler(f registers.Flag, v bool) handler {
	return func(mc *CPU, _ *operand) error {
		mc.Status.Set(f, v)
		return nil
	}
}

// load the value into the register and set the zero and sign flags.
func (mc *CPU) load(r *registers.Register, value uint8) error {
	r.Load(value)
	mc.Status.SetZN(value)
	return nil
}

// jsr pushes the address of the last byte of the JSR instruction and jumps to
// the subroutine
//
// +5 cycles
func jsr(mc *CPU, op *operand) error {
	// +1 cycle
	lo, err := mc.read8BitPC()
	if err != nil {
		return err
	}
	mc.LastResult.InstructionData = uint16(lo)

	// the PC now points to the high byte of the address. this is the value
	// pushed to the stack. RTS adds one to the pulled address
	// +1 cycle
	err = mc.cycle()
	if err != nil {
		return err
	}

	// +2 cycles
	err = mc.pushWord(mc.PC.Address())
	if err != nil {
		return err
	}

	// +1 cycle
	hi, err := mc.read8BitPC()
	if err != nil {
		return err
	}
	mc.LastResult.InstructionData = (uint16(hi) << 8) | uint16(lo)
	op.address = mc.LastResult.InstructionData

	mc.PC.Load(op.address)

	return nil
}

// rts pulls the return address from the stack and adds one
//
// +4 cycles
func rts(mc *CPU, op *operand) error {
	// +1 cycle
	err := mc.cycle()
	if err != nil {
		return err
	}

	// +2 cycles
	address, err := mc.pullWord()
	if err != nil {
		return err
	}

	mc.PC.Load(address)
	mc.PC.Add(1)

	// +1 cycle
	return mc.cycle()
}

// brk pushes the address of the byte after the padding byte and the status
// register, sets the interrupt disable flag and jumps through the BRK vector
//
// +5 cycles
func brk(mc *CPU, op *operand) error {
	// +2 cycles
	err := mc.pushWord(mc.PC.Address())
	if err != nil {
		return err
	}

	// +1 cycle
	err = mc.pushStatus()
	if err != nil {
		return err
	}

	mc.Status.SetInterruptDisable(true)

	// +1 cycle
	lo, err := mc.read8Bit(cpubus.BRK)
	if err != nil {
		return err
	}

	// +1 cycle
	hi, err := mc.read8Bit(cpubus.BRK + 1)
	if err != nil {
		return err
	}

	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	return nil
}

// rti pulls the status register and then the PC from the stack. unlike RTS
// the pulled address is not adjusted
//
// +4 cycles
func rti(mc *CPU, op *operand) error {
	// +1 cycle
	err := mc.cycle()
	if err != nil {
		return err
	}

	// +1 cycle
	err = mc.pullStatus()
	if err != nil {
		return err
	}

	// +2 cycles
	address, err := mc.pullWord()
	if err != nil {
		return err
	}

	mc.PC.Load(address)

	return nil
}
