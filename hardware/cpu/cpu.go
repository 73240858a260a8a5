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
	"fmt"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/execution"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/instructions"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/registers"
	"github.com/drewwalton19216801/Emu6502Console/hardware/memory/cpubus"
	"github.com/drewwalton19216801/Emu6502Console/logger"
)

// CPU implements the 6502. Register logic is implemented by the types in the
// registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem          cpubus.Memory
	instructions [256]*instructions.Definition

	// cycleCallback is called after every cycle of an instruction
	cycleCallback func() error

	// result of the most recent call to ExecuteInstruction()
	LastResult execution.Result

	// how to react to an opcode with no definition
	Policy Policy
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is returned in its reset state with the PC set to zero.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:          mem,
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		instructions: instructions.GetDefinitions(),
	}
	mc.Reset(0)
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory of the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return mc.State().String()
}

// Reset reinitialises all registers and loads the PC with the vector. Note
// that the vector is the value the PC takes, it is not the address of a
// vector. Use LoadPCIndirect() to start execution from a vector stored in
// memory.
func (mc *CPU) Reset(vector uint16) {
	mc.LastResult.Reset()
	mc.PC.Load(vector)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.cycleCallback = nil
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	lo := mc.mem.Read(indirectAddress)
	hi := mc.mem.Read(indirectAddress + 1)
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// cycle consumes a single cycle and calls the cycle callback.
func (mc *CPU) cycle() error {
	mc.LastResult.Cycles++
	if mc.cycleCallback == nil {
		return nil
	}
	return mc.cycleCallback()
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	val := mc.mem.Read(address)

	// +1 cycle
	return val, mc.cycle()
}

// write8Bit writes 8 bits to the specified address
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	mc.mem.Write(address, value)

	// +1 cycle
	return mc.cycle()
}

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - calls cycleCallback at end of function
func (mc *CPU) read8BitPC() (uint8, error) {
	v := mc.mem.Read(mc.PC.Address())

	// program counter wraps at the top of memory
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	// +1 cycle
	return v, mc.cycle()
}

// read16BitPC reads 16 bits from the memory location pointed to by PC. the
// value is little-endian
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData
//   - calls cycleCallback after each 8 bit read
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	mc.LastResult.InstructionData = uint16(lo)

	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	mc.LastResult.InstructionData = (uint16(hi) << 8) | uint16(lo)

	return mc.LastResult.InstructionData, nil
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// After each cycle, the cycleCallback() function is run. The cycleCallback
// argument can be nil.
//
// The LastResult field is updated even if an error is returned.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	mc.cycleCallback = cycleCallback

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// the instruction is final however it ends
	defer func() {
		mc.LastResult.Final = true
	}()

	// +1 cycle
	opcode, err := mc.read8BitPC()
	if err != nil {
		return err
	}

	defn := mc.instructions[opcode]
	if defn == nil {
		return mc.unrecognised(opcode)
	}
	mc.LastResult.Defn = defn

	op := operand{defn: defn}

	err = mc.resolve(&op)
	if err != nil {
		return err
	}

	// read value from memory for instructions that operate on a memory address
	if op.fromMemory() {
		switch defn.Effect {
		case instructions.Read:
			// +1 cycle
			op.value, err = mc.read8Bit(op.address)
			if err != nil {
				return err
			}

		case instructions.RMW:
			// +1 cycle
			op.value, err = mc.read8Bit(op.address)
			if err != nil {
				return err
			}

			// the unmodified value is written back before the modified value
			// +1 cycle
			err = mc.write8Bit(op.address, op.value)
			if err != nil {
				return err
			}
		}
	}

	// perform operation. each operator has exactly one handler
	err = handlers[defn.Operator](mc, &op)
	if err != nil {
		return err
	}

	// write modified value for read-modify-write instructions
	if defn.Effect == instructions.RMW {
		// +1 cycle
		err = mc.write8Bit(op.address, op.value)
		if err != nil {
			return err
		}
	}

	return nil
}

// unrecognised deals with an opcode that has no definition. in all cases the
// cycle used to fetch the opcode has been consumed and the PC points to the
// following byte.
func (mc *CPU) unrecognised(opcode uint8) error {
	// an unrecognised opcode is a single byte
	mc.LastResult.ByteCount = 1

	switch mc.Policy {
	case Skip:
		logger.Logf(logger.Allow, "cpu", "skipping unrecognised opcode (%#02x) at (%#04x)", opcode, mc.LastResult.Address)
		return nil
	default:
		return curated.Errorf(UnrecognisedOpcode, opcode, mc.LastResult.Address)
	}
}

// Execute runs instructions until at least the requested number of cycles
// have been consumed. Returns the number of cycles used, which may be greater
// than the number requested because the final instruction is always run to
// completion.
//
// A request of zero cycles (or fewer) returns immediately without changing
// the state of the CPU. Execution stops at the first error.
func (mc *CPU) Execute(cycles int) (int, error) {
	remaining := cycles
	for remaining > 0 {
		err := mc.ExecuteInstruction(nil)
		remaining -= mc.LastResult.Cycles
		if err != nil {
			return cycles - remaining, err
		}
	}
	return cycles - remaining, nil
}

// State is a read-only copy of the CPU registers.
type State struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status registers.StatusRegister
}

// State returns a copy of the current register values.
func (mc *CPU) State() State {
	return State{
		PC:     mc.PC.Address(),
		A:      mc.A.Value(),
		X:      mc.X.Value(),
		Y:      mc.Y.Value(),
		SP:     mc.SP.Value(),
		Status: mc.Status,
	}
}

func (s State) String() string {
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x SR=%s", s.PC, s.A, s.X, s.Y, s.SP, s.Status)
}
