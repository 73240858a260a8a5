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

package registers

import (
	"strings"
)

// Flag is a single bit in the status register.
type Flag uint8

// List of valid Flag values. The bit positions are fixed by the CPU.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	DecimalMode      Flag = 0x08
	Break            Flag = 0x10
	Unused           Flag = 0x20
	Overflow         Flag = 0x40
	Sign             Flag = 0x80
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU. All flags are stored in a single byte.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// flag characters in order of bit position, from bit 7 to bit 0.
const flagChars = "NVUBDIZC"

func (sr StatusRegister) String() string {
	s := strings.Builder{}
	for i := 0; i < 8; i++ {
		c := rune(flagChars[i])
		if sr.value&(0x80>>i) == 0 {
			c = c - 'A' + 'a'
		}
		s.WriteRune(c)
	}
	return s.String()
}

// Reset status flags to initial state. All flags are cleared.
func (sr *StatusRegister) Reset() {
	sr.value = 0
}

// Value returns the status register as a byte.
func (sr StatusRegister) Value() uint8 {
	return sr.value
}

// Load the status register from a byte.
func (sr *StatusRegister) Load(v uint8) {
	sr.value = v
}

// Is returns the state of the flag.
func (sr StatusRegister) Is(f Flag) bool {
	return sr.value&uint8(f) == uint8(f)
}

// Set the state of the flag.
func (sr *StatusRegister) Set(f Flag, v bool) {
	if v {
		sr.value |= uint8(f)
	} else {
		sr.value &^= uint8(f)
	}
}

// Carry returns the state of the carry flag.
func (sr StatusRegister) Carry() bool { return sr.Is(Carry) }

// Zero returns the state of the zero flag.
func (sr StatusRegister) Zero() bool { return sr.Is(Zero) }

// InterruptDisable returns the state of the interrupt disable flag.
func (sr StatusRegister) InterruptDisable() bool { return sr.Is(InterruptDisable) }

// DecimalMode returns the state of the decimal flag.
func (sr StatusRegister) DecimalMode() bool { return sr.Is(DecimalMode) }

// Break returns the state of the break flag.
func (sr StatusRegister) Break() bool { return sr.Is(Break) }

// Unused returns the state of the unused flag.
func (sr StatusRegister) Unused() bool { return sr.Is(Unused) }

// Overflow returns the state of the overflow flag.
func (sr StatusRegister) Overflow() bool { return sr.Is(Overflow) }

// Sign returns the state of the sign (negative) flag.
func (sr StatusRegister) Sign() bool { return sr.Is(Sign) }

// SetCarry sets the state of the carry flag.
func (sr *StatusRegister) SetCarry(v bool) { sr.Set(Carry, v) }

// SetZero sets the state of the zero flag.
func (sr *StatusRegister) SetZero(v bool) { sr.Set(Zero, v) }

// SetInterruptDisable sets the state of the interrupt disable flag.
func (sr *StatusRegister) SetInterruptDisable(v bool) { sr.Set(InterruptDisable, v) }

// SetDecimalMode sets the state of the decimal flag.
func (sr *StatusRegister) SetDecimalMode(v bool) { sr.Set(DecimalMode, v) }

// SetBreak sets the state of the break flag.
func (sr *StatusRegister) SetBreak(v bool) { sr.Set(Break, v) }

// SetUnused sets the state of the unused flag.
func (sr *StatusRegister) SetUnused(v bool) { sr.Set(Unused, v) }

// SetOverflow sets the state of the overflow flag.
func (sr *StatusRegister) SetOverflow(v bool) { sr.Set(Overflow, v) }

// SetSign sets the state of the sign (negative) flag.
func (sr *StatusRegister) SetSign(v bool) { sr.Set(Sign, v) }

// SetZN sets the zero and sign flags according to the value.
func (sr *StatusRegister) SetZN(v uint8) {
	sr.Set(Zero, v == 0)
	sr.Set(Sign, v&0x80 == 0x80)
}
