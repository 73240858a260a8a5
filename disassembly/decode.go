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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/execution"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/instructions"
	"github.com/drewwalton19216801/Emu6502Console/hardware/memory/cpubus"
)

var definitions = instructions.GetDefinitions()

// Disassemble decodes the instruction at the address. Memory is read but the
// state of the CPU is not touched. Returns the address of the following
// instruction.
//
// An unrecognised opcode is decoded as a single byte instruction.
func Disassemble(mem cpubus.Memory, address uint16) (Entry, uint16) {
	opcode := mem.Read(address)
	defn := definitions[opcode]

	e := Entry{
		Level: EntryLevelDecoded,
		Result: execution.Result{
			Address:   address,
			Defn:      defn,
			ByteCount: 1,
		},
	}

	if defn != nil {
		e.Result.ByteCount = defn.Bytes
		switch defn.Bytes {
		case 2:
			e.Result.InstructionData = uint16(mem.Read(address + 1))
		case 3:
			e.Result.InstructionData = uint16(mem.Read(address+1)) | uint16(mem.Read(address+2))<<8
		}
	}

	e.format()
	if defn == nil {
		e.Bytecode = fmt.Sprintf("%02x", opcode)
	}

	return e, address + uint16(e.Result.ByteCount)
}

// FromResult creates an Entry from the result of an executed instruction.
func FromResult(result execution.Result) Entry {
	e := Entry{
		Level:  EntryLevelExecuted,
		Result: result,
	}
	e.format()
	return e
}

// Range decodes count instructions starting at the address. Each instruction
// follows on from the previous one. Addresses wrap around at the end of
// memory.
func Range(mem cpubus.Memory, from uint16, count int) []Entry {
	entries := make([]Entry, 0, max(count, 0))
	address := from
	for i := 0; i < count; i++ {
		var e Entry
		e, address = Disassemble(mem, address)
		entries = append(entries, e)
	}
	return entries
}

// populate the string fields of the entry from the execution result.
func (e *Entry) format() {
	r := e.Result

	e.Address = fmt.Sprintf("%04x", r.Address)

	if r.Defn == nil {
		e.Operator = unknownOperator
		e.Operand = ""
		e.Bytecode = ""
		return
	}

	e.Operator = r.Defn.Operator.String()

	// bytecode is only complete if the instruction has been fully decoded
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%02x", r.Defn.OpCode))
	switch r.Defn.Bytes {
	case 2:
		b.WriteString(fmt.Sprintf(" %02x", uint8(r.InstructionData)))
	case 3:
		b.WriteString(fmt.Sprintf(" %02x %02x", uint8(r.InstructionData), uint8(r.InstructionData>>8)))
	}
	e.Bytecode = b.String()

	var operand string
	switch r.Defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
	case instructions.Relative:
		operand = fmt.Sprintf("$%04x", branchTarget(r.Address, uint8(r.InstructionData)))
	default:
		if r.Defn.Bytes == 2 {
			operand = fmt.Sprintf("$%02x", uint8(r.InstructionData))
		} else {
			operand = fmt.Sprintf("$%04x", r.InstructionData)
		}
	}

	e.Operand = decorateOperand(operand, r.Defn.AddressingMode)
}
