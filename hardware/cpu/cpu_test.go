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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu"
	"github.com/drewwalton19216801/Emu6502Console/test"
)

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	pc = mem.putInstructions(pc, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nvubdizC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nvubdizc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nvubdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nvubdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nvubDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nvubdIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nvubdIzc")

	// PHP; PLP
	mem.putInstructions(pc, 0x08, 0x28)
	r := step(t, mc) // PHP
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.Status.String(), "nvubdIzc")
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfe))

	// break and unused bits are set in the pushed value only
	mem.assert(t, 0x01ff, 0x34)

	// mangle status register
	mc.Status.SetSign(true)
	mc.Status.SetOverflow(true)

	// restore status register
	r = step(t, mc) // PLP
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.String(), "nvubdIzc")
}

func testImmediateLoads(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	// LDA #$00; LDA #$80; LDX #$00; LDY #$ff
	mem.putInstructions(pc, 0xa9, 0x00, 0xa9, 0x80, 0xa2, 0x00, 0xa0, 0xff)

	r := step(t, mc) // LDA #$00
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Status.Zero(), true)
	test.ExpectEquality(t, mc.Status.Sign(), false)

	step(t, mc) // LDA #$80
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.Status.Zero(), false)
	test.ExpectEquality(t, mc.Status.Sign(), true)

	step(t, mc) // LDX #$00
	test.ExpectEquality(t, mc.X.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Status.Zero(), true)

	step(t, mc) // LDY #$ff
	test.ExpectEquality(t, mc.Y.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.Sign(), true)
	test.ExpectEquality(t, mc.PC.Address(), origin+8)
}

func testArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	// LDA immediate; ADC immediate
	pc = mem.putInstructions(pc, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	test.ExpectEquality(t, mc.A.Value(), uint8(11))

	// SEC; SBC immediate
	pc = mem.putInstructions(pc, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.ExpectEquality(t, mc.A.Value(), uint8(3))
	test.ExpectEquality(t, mc.Status.Carry(), true)

	// signed overflow. CLC; LDA #$7f; ADC #$01
	pc = mem.putInstructions(pc, 0x18, 0xa9, 0x7f, 0x69, 0x01)
	step(t, mc) // CLC
	step(t, mc) // LDA #$7f
	step(t, mc) // ADC #$01
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.Status.Carry(), false)
	test.ExpectEquality(t, mc.Status.Overflow(), true)
	test.ExpectEquality(t, mc.Status.Sign(), true)
	test.ExpectEquality(t, mc.Status.Zero(), false)

	// borrow. SEC; LDA #$05; SBC #$10
	mem.putInstructions(pc, 0x38, 0xa9, 0x05, 0xe9, 0x10)
	step(t, mc) // SEC
	step(t, mc) // LDA #$05
	step(t, mc) // SBC #$10
	test.ExpectEquality(t, mc.A.Value(), uint8(0xf5))
	test.ExpectEquality(t, mc.Status.Carry(), false)
	test.ExpectEquality(t, mc.Status.Sign(), true)
	test.ExpectEquality(t, mc.Status.Overflow(), false)
}

func testCompare(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	// LDA #$10; CMP #$10
	pc = mem.putInstructions(pc, 0xa9, 0x10, 0xc9, 0x10)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Zero(), true)
	test.ExpectEquality(t, mc.Status.Carry(), true)
	test.ExpectEquality(t, mc.Status.Sign(), false)

	// compare does not change the register
	test.ExpectEquality(t, mc.A.Value(), uint8(0x10))

	// LDX #$05; CPX #$10
	pc = mem.putInstructions(pc, 0xa2, 0x05, 0xe0, 0x10)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Zero(), false)
	test.ExpectEquality(t, mc.Status.Carry(), false)
	test.ExpectEquality(t, mc.Status.Sign(), true)

	// LDY #$20; CPY $80 (zero page)
	mem.Write(0x0080, 0x10)
	mem.putInstructions(pc, 0xa0, 0x20, 0xc4, 0x80)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.Status.Zero(), false)
	test.ExpectEquality(t, mc.Status.Carry(), true)
	test.ExpectEquality(t, mc.Status.Sign(), false)
}

func testBitwise(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	// ORA immediate; EOR immediate; AND immediate
	pc = mem.putInstructions(pc, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	step(t, mc) // ORA #$FF
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.Sign(), true)
	step(t, mc) // EOR #$F0
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0f))
	step(t, mc) // AND #$01
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))

	// ASL implied; LSR implied; LSR implied
	pc = mem.putInstructions(pc, 0x0a, 0x4a, 0x4a)
	step(t, mc) // ASL
	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
	test.ExpectEquality(t, mc.Status.Carry(), false)
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Status.Carry(), true)
	test.ExpectEquality(t, mc.Status.Zero(), true)

	// ROL implied; ROR implied; ROR implied
	pc = mem.putInstructions(pc, 0x2a, 0x6a, 0x6a)
	step(t, mc) // ROL
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
	test.ExpectEquality(t, mc.Status.Carry(), false)
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Status.Carry(), true)
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.Status.Carry(), false)
	test.ExpectEquality(t, mc.Status.Sign(), true)

	// BIT zero page
	mem.Write(0x0080, 0xc0)
	mem.putInstructions(pc, 0x24, 0x80)
	r := step(t, mc) // BIT $80
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.Status.Sign(), true)
	test.ExpectEquality(t, mc.Status.Overflow(), true)
	test.ExpectEquality(t, mc.Status.Zero(), false)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
}

func testLoadStore(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	mem.Write(0x0080, 0x11)
	mem.Write(0x1234, 0x22)

	// LDA zero page; LDA absolute
	pc = mem.putInstructions(pc, 0xa5, 0x80, 0xad, 0x34, 0x12)
	r := step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x11))
	test.ExpectEquality(t, r.Cycles, 3)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x22))
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, r.InstructionData, uint16(0x1234))

	// LDX #$05; LDA $7b,X
	pc = mem.putInstructions(pc, 0xa2, 0x05, 0xb5, 0x7b)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x11))
	test.ExpectEquality(t, r.Cycles, 4)

	// zero page indexing wraps within page zero. LDX #$ff; LDA $81,X
	pc = mem.putInstructions(pc, 0xa2, 0xff, 0xb5, 0x81)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x11))

	// STA absolute; STX zero page
	pc = mem.putInstructions(pc, 0x8d, 0x00, 0x02, 0x86, 0x90)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	mem.assert(t, 0x0200, 0x11)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	mem.assert(t, 0x0090, 0xff)

	// LDY #$03; STY absolute
	pc = mem.putInstructions(pc, 0xa0, 0x03, 0x8c, 0x00, 0x03)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0300, 0x03)

	// indexed indirect. LDX #$04; LDA ($3c,X)
	mem.Write(0x0040, 0x34)
	mem.Write(0x0041, 0x12)
	pc = mem.putInstructions(pc, 0xa2, 0x04, 0xa1, 0x3c)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x22))
	test.ExpectEquality(t, r.Cycles, 6)

	// indirect indexed. LDY #$04; LDA ($50),Y
	mem.Write(0x0050, 0x30)
	mem.Write(0x0051, 0x12)
	pc = mem.putInstructions(pc, 0xa0, 0x04, 0xb1, 0x50)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x22))
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, r.PageFault, false)

	// indirect indexed crossing a page. LDY #$01; LDA ($60),Y
	mem.Write(0x0060, 0xff)
	mem.Write(0x0061, 0x12)
	mem.Write(0x1300, 0x33)
	pc = mem.putInstructions(pc, 0xa0, 0x01, 0xb1, 0x60)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x33))
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, r.PageFault, true)

	// stores always pay for indexing. LDA #$44; STA ($60),Y
	pc = mem.putInstructions(pc, 0xa9, 0x44, 0x91, 0x60)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, r.PageFault, false)
	mem.assert(t, 0x1300, 0x44)

	// absolute indexed crossing a page. LDA $12ff,Y
	pc = mem.putInstructions(pc, 0xb9, 0xff, 0x12)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x44))
	test.ExpectEquality(t, r.Cycles, 5)

	// STA $1200,X
	pc = mem.putInstructions(pc, 0xa2, 0x04, 0x9d, 0x00, 0x12)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	mem.assert(t, 0x1204, 0x44)

	// zero page indexed by Y. LDY #$02; LDX $7e,Y; STX $10,Y
	mem.putInstructions(pc, 0xa0, 0x02, 0xb6, 0x7e, 0x96, 0x10)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), uint8(0x11))
	test.ExpectEquality(t, r.Cycles, 4)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	mem.assert(t, 0x0012, 0x11)
}

func testIncDec(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	// INX; INY; DEX; DEX
	pc = mem.putInstructions(pc, 0xe8, 0xc8, 0xca, 0xca)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), uint8(1))
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), uint8(1))
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), uint8(0))
	test.ExpectEquality(t, mc.Status.Zero(), true)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.Sign(), true)

	// INC zero page; DEC absolute; INC absolute,X
	mem.Write(0x0080, 0xff)
	mem.putInstructions(pc, 0xe6, 0x80, 0xce, 0x00, 0x02, 0xfe, 0x00, 0x12)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	mem.assert(t, 0x0080, 0x00)
	test.ExpectEquality(t, mc.Status.Zero(), true)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x0200, 0xff)
	test.ExpectEquality(t, mc.Status.Sign(), true)

	// X is 0xff. 0x1200 + 0xff does not cross a page but INC pays anyway
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	mem.assert(t, 0x12ff, 0x01)
}

func testReadModifyWrite(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	mem.Write(0x0080, 0x81)
	mem.Write(0x0200, 0x01)

	// ASL zero page; LSR absolute
	pc = mem.putInstructions(pc, 0x06, 0x80, 0x4e, 0x00, 0x02)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	mem.assert(t, 0x0080, 0x02)
	test.ExpectEquality(t, mc.Status.Carry(), true)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x0200, 0x00)
	test.ExpectEquality(t, mc.Status.Carry(), true)
	test.ExpectEquality(t, mc.Status.Zero(), true)

	// ROL zero page,X with carry set. LDX #$01; ROL $7f,X
	mem.putInstructions(pc, 0xa2, 0x01, 0x36, 0x7f)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x0080, 0x05)
	test.ExpectEquality(t, mc.Status.Carry(), false)

	// accumulator is untouched by memory shifts
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
}

func testStack(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	// LDA #$42; PHA; LDA #$00; PLA
	pc = mem.putInstructions(pc, 0xa9, 0x42, 0x48, 0xa9, 0x00, 0x68)
	step(t, mc)
	r := step(t, mc) // PHA
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfe))
	mem.assert(t, 0x01ff, 0x42)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Zero(), true)
	r = step(t, mc) // PLA
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.Zero(), false)

	// TSX; LDX #$10; TXS
	mem.putInstructions(pc, 0xba, 0xa2, 0x10, 0x9a)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.Sign(), true)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0x10))
}

func testBranching(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	// LDA #$01; BEQ $10 (not taken)
	pc = mem.putInstructions(pc, 0xa9, 0x01, 0xf0, 0x10)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, r.BranchSuccess, false)
	test.ExpectEquality(t, mc.PC.Address(), pc)

	// BNE $10 (taken, same page)
	mem.putInstructions(pc, 0xd0, 0x10)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, r.BranchSuccess, true)
	test.ExpectEquality(t, mc.PC.Address(), pc+2+0x10)

	// BNE $20 (taken, crossing a page)
	mc.LoadPC(0x06f0)
	mem.putInstructions(0x06f0, 0xd0, 0x20)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0712))

	// BNE $f0 (taken backwards, crossing a page)
	mc.LoadPC(0x0700)
	mem.putInstructions(0x0700, 0xd0, 0xf0)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x06f2))

	// the remaining branch instructions with flags that cause them to be taken
	mc.Status.Load(0x00)
	for _, opcode := range []uint8{0x90, 0x10, 0x50, 0xd0} {
		mc.LoadPC(0x0800)
		mem.putInstructions(0x0800, opcode, 0x02)
		r = step(t, mc)
		test.ExpectEquality(t, r.BranchSuccess, true, opcode)
		test.ExpectEquality(t, mc.PC.Address(), uint16(0x0804), opcode)
	}
	mc.Status.Load(0xff)
	for _, opcode := range []uint8{0xb0, 0x30, 0x70, 0xf0} {
		mc.LoadPC(0x0800)
		mem.putInstructions(0x0800, opcode, 0x02)
		r = step(t, mc)
		test.ExpectEquality(t, r.BranchSuccess, true, opcode)
		test.ExpectEquality(t, mc.PC.Address(), uint16(0x0804), opcode)
	}
}

func testJumps(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	// JMP absolute
	mem.putInstructions(pc, 0x4c, 0x34, 0x12)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))

	// JMP indirect
	mem.Write(0x0300, 0x00)
	mem.Write(0x0301, 0x07)
	mem.putInstructions(0x1234, 0x6c, 0x00, 0x03)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0700))

	// JMP indirect with pointer at the end of a page. the high byte is read
	// from the start of the same page
	mem.Write(0x04ff, 0x80)
	mem.Write(0x0400, 0x08)
	mem.Write(0x0500, 0x09)
	mem.putInstructions(0x0700, 0x6c, 0xff, 0x04)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectInequality(t, r.CPUBug, "")
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0880))
}

func testSubroutine(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	// JSR $0700
	mem.putInstructions(pc, 0x20, 0x00, 0x07)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, r.ByteCount, 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0700))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))

	// the address of the last byte of the JSR instruction is on the stack
	mem.assert(t, 0x01ff, 0x06)
	mem.assert(t, 0x01fe, 0x02)

	// RTS
	mem.putInstructions(0x0700, 0x60)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0603))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
}

func testInterrupt(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	pc := reset(mc, mem)

	// BRK vector
	mem.Write(0xfffe, 0x00)
	mem.Write(0xffff, 0x08)

	// SEC; BRK
	mem.putInstructions(pc, 0x38, 0x00)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, r.ByteCount, 1)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0800))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfc))
	test.ExpectEquality(t, mc.Status.InterruptDisable(), true)
	test.ExpectEquality(t, mc.Status.Break(), false)

	// return address skips the padding byte. status is pushed with break and
	// unused bits
	mem.assert(t, 0x01ff, 0x06)
	mem.assert(t, 0x01fe, 0x03)
	mem.assert(t, 0x01fd, 0x31)

	// RTI
	mem.putInstructions(0x0800, 0x40)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0603))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.String(), "nvubdizC")
}

func TestCPU(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	testStatusInstructions(t, mc, mem)
	testImmediateLoads(t, mc, mem)
	testArithmetic(t, mc, mem)
	testCompare(t, mc, mem)
	testBitwise(t, mc, mem)
	testLoadStore(t, mc, mem)
	testIncDec(t, mc, mem)
	testReadModifyWrite(t, mc, mem)
	testStack(t, mc, mem)
	testBranching(t, mc, mem)
	testJumps(t, mc, mem)
	testSubroutine(t, mc, mem)
	testInterrupt(t, mc, mem)
}

func TestReset(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mc.A.Load(0x01)
	mc.X.Load(0x02)
	mc.Y.Load(0x03)
	mc.SP.Load(0x04)
	mc.Status.Load(0xff)
	mc.PC.Load(0x0005)

	mc.Reset(0x1234)
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.X.Value(), uint8(0))
	test.ExpectEquality(t, mc.Y.Value(), uint8(0))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.Value(), uint8(0))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))

	// reset vector stored in memory
	mem.Write(0xfffc, 0x00)
	mem.Write(0xfffd, 0xc0)
	mc.LoadPCIndirect(0xfffc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xc000))
}

func TestExecuteBudget(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	pc := reset(mc, mem)

	// NOP; NOP; NOP; LDA $1234
	mem.putInstructions(pc, 0xea, 0xea, 0xea, 0xad, 0x34, 0x12)

	// a budget of zero changes nothing
	before := mc.State()
	used, err := mc.Execute(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, used, 0)
	test.ExpectEquality(t, mc.State(), before)

	used, err = mc.Execute(-10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, used, 0)
	test.ExpectEquality(t, mc.State(), before)

	// the final instruction always completes
	used, err = mc.Execute(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, used, 2)
	test.ExpectEquality(t, mc.PC.Address(), origin+1)

	used, err = mc.Execute(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, used, 4)
	test.ExpectEquality(t, mc.PC.Address(), origin+3)

	used, err = mc.Execute(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, used, 4)
	test.ExpectEquality(t, mc.PC.Address(), origin+6)
}

func TestUnrecognisedHalt(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	pc := reset(mc, mem)
	mc.Policy = cpu.Halt

	// undefined opcode; LDA #$01
	mem.putInstructions(pc, 0x02, 0xa9, 0x01)

	used, err := mc.Execute(10)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnrecognisedOpcode))
	test.ExpectEquality(t, used, 1)
	test.ExpectEquality(t, mc.PC.Address(), origin+1)
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.LastResult.Final, true)
	test.ExpectEquality(t, mc.LastResult.ByteCount, 1)
	test.ExpectSuccess(t, mc.LastResult.Defn == nil)

	// the error is not sticky. execution continues from the following byte
	used, err = mc.Execute(2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, used, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
}

func TestUnrecognisedSkip(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	pc := reset(mc, mem)
	mc.Policy = cpu.Skip

	// undefined opcode; LDA #$01
	mem.putInstructions(pc, 0x02, 0xa9, 0x01)

	used, err := mc.Execute(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, used, 3)
	test.ExpectEquality(t, mc.PC.Address(), origin+3)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
}

func TestPolicyParse(t *testing.T) {
	p, err := cpu.ParsePolicy("skip")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, cpu.Skip)

	p, err = cpu.ParsePolicy(" HALT ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, cpu.Halt)

	_, err = cpu.ParsePolicy("nop")
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, cpu.Skip.String(), "SKIP")
}

func TestDecimalRefused(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	pc := reset(mc, mem)

	// CLC; LDA #$09; SED; ADC #$01; SBC #$01
	mem.putInstructions(pc, 0x18, 0xa9, 0x09, 0xf8, 0x69, 0x01, 0xe9, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)

	before := mc.State()

	err := mc.ExecuteInstruction(nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnsupportedDecimal))
	test.ExpectEquality(t, mc.A.Value(), before.A)
	test.ExpectEquality(t, mc.Status, before.Status)
	test.ExpectEquality(t, mc.PC.Address(), origin+6)

	// the instruction ran to completion in every other respect
	test.ExpectSuccess(t, mc.LastResult.IsValid())

	err = mc.ExecuteInstruction(nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnsupportedDecimal))
	test.ExpectEquality(t, mc.A.Value(), before.A)
	test.ExpectEquality(t, mc.Status, before.Status)
}

func TestCycleCallback(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	pc := reset(mc, mem)

	// LDA $1234; LDA $1234
	mem.putInstructions(pc, 0xad, 0x34, 0x12, 0xad, 0x34, 0x12)

	var count int
	err := mc.ExecuteInstruction(func() error {
		count++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, mc.LastResult.Cycles)
	test.ExpectEquality(t, count, 4)

	// errors from the callback are returned
	stop := errors.New("stop")
	err = mc.ExecuteInstruction(func() error {
		return stop
	})
	test.ExpectSuccess(t, errors.Is(err, stop))
}

func TestProgram(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	pc := reset(mc, mem)

	// multiply 5 by 3 and store the result in zero page
	//
	//	0600 LDA #$00
	//	0602 LDX #$03
	//	0604 CLC
	//	0605 ADC #$05
	//	0607 DEX
	//	0608 BNE $0604
	//	060a STA $10
	//	060c JMP $060c
	mem.putInstructions(pc,
		0xa9, 0x00,
		0xa2, 0x03,
		0x18,
		0x69, 0x05,
		0xca,
		0xd0, 0xfa,
		0x85, 0x10,
		0x4c, 0x0c, 0x06,
	)

	used, err := mc.Execute(33)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, used, 33)
	mem.assert(t, 0x0010, 15)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x060c))

	used, err = mc.Execute(6)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, used, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x060c))
}
