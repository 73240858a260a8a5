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

package registers_test

import (
	"testing"

	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/registers"
	"github.com/drewwalton19216801/Emu6502Console/test"
)

func TestStatusViews(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), uint8(0x00))
	test.ExpectEquality(t, sr.String(), "nvubdizc")

	// named accessors are visible in the byte view
	sr.SetCarry(true)
	test.ExpectEquality(t, sr.Value(), uint8(0x01))
	sr.SetSign(true)
	test.ExpectEquality(t, sr.Value(), uint8(0x81))
	sr.SetOverflow(true)
	sr.SetUnused(true)
	sr.SetBreak(true)
	sr.SetDecimalMode(true)
	sr.SetInterruptDisable(true)
	sr.SetZero(true)
	test.ExpectEquality(t, sr.Value(), uint8(0xff))
	test.ExpectEquality(t, sr.String(), "NVUBDIZC")

	sr.SetCarry(false)
	test.ExpectEquality(t, sr.Value(), uint8(0xfe))

	// byte view is visible through the named accessors
	sr.Load(0x42)
	test.ExpectEquality(t, sr.Overflow(), true)
	test.ExpectEquality(t, sr.Zero(), true)
	test.ExpectEquality(t, sr.Carry(), false)
	test.ExpectEquality(t, sr.Sign(), false)
	test.ExpectEquality(t, sr.Break(), false)
	test.ExpectEquality(t, sr.Unused(), false)
	test.ExpectEquality(t, sr.DecimalMode(), false)
	test.ExpectEquality(t, sr.InterruptDisable(), false)

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), uint8(0x00))
}

func TestStatusBits(t *testing.T) {
	flags := []registers.Flag{
		registers.Carry, registers.Zero, registers.InterruptDisable, registers.DecimalMode,
		registers.Break, registers.Unused, registers.Overflow, registers.Sign,
	}

	// every flag maps to the bit of the same index and to no other bit
	for i, f := range flags {
		var sr registers.StatusRegister
		sr.Set(f, true)
		test.ExpectEquality(t, sr.Value(), uint8(1<<i), i)
		sr.Load(^uint8(1 << i))
		test.ExpectEquality(t, sr.Is(f), false, i)
	}
}

func TestSetZN(t *testing.T) {
	for v := 0; v <= 0xff; v++ {
		// other flags are untouched
		for _, other := range []uint8{0x00, 0x7d} {
			var sr registers.StatusRegister
			sr.Load(other)
			sr.SetZN(uint8(v))
			test.ExpectEquality(t, sr.Zero(), v == 0, v)
			test.ExpectEquality(t, sr.Sign(), v&0x80 == 0x80, v)
			test.ExpectEquality(t, sr.Value()&0x7d, other, v)
		}
	}
}
