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
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded from memory as though the address is the
// start of a valid instruction. Executed entries have been created from the
// result of the CPU actually executing the instruction.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelExecuted
)

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// copy of the CPU execution. for decoded entries the Cycles and Final
	// fields are not meaningful
	Result execution.Result

	// string representations of information in execution.Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

// unknownOperator is used in place of the operator for unrecognised opcodes.
const unknownOperator = "???"

func (e Entry) String() string {
	return strings.TrimSpace(strings.Join([]string{e.Address, e.Operator, e.Operand}, " "))
}

// Cycles returns the number of cycles for the entry. For executed entries
// this is the actual number of cycles used.
//
// Decoded branch instructions show the cycles for the failed and successful
// cases. Decoded instructions that take an extra cycle on a page fault are
// marked with an asterisk.
func (e Entry) Cycles() string {
	defn := e.Result.Defn

	switch {
	case e.Level == EntryLevelExecuted && (defn == nil || e.Result.Final):
		return fmt.Sprint(e.Result.Cycles)
	case e.Level == EntryLevelExecuted:
		return fmt.Sprintf("%d of %d", e.Result.Cycles, defn.Cycles)
	case defn == nil:
		return "?"
	case defn.IsBranch():
		return fmt.Sprintf("%d/%d", defn.Cycles, defn.Cycles+1)
	case defn.PageSensitive:
		return fmt.Sprintf("%d*", defn.Cycles)
	}

	return fmt.Sprint(defn.Cycles)
}

// Notes describes anything unusual about an executed instruction: the outcome
// of a branch, a page fault or a CPU bug. Decoded entries have no notes.
func (e Entry) Notes() string {
	if e.Level != EntryLevelExecuted || !e.Result.Final {
		return ""
	}

	var notes []string

	if e.Result.Defn != nil && e.Result.Defn.IsBranch() {
		if e.Result.BranchSuccess {
			notes = append(notes, "branch succeeded")
		} else {
			notes = append(notes, "branch failed")
		}
		if e.Result.PageFault {
			notes = append(notes, "with page-fault")
		}
	} else if e.Result.PageFault {
		notes = append(notes, "page-fault")
	}

	if e.Result.CPUBug != execution.NoBug {
		notes = append(notes, string(e.Result.CPUBug))
	}

	return strings.Join(notes, " ")
}

// operandFormat decorates the operand according to the addressing mode.
// modes not in the table use the operand as it is.
var operandFormat = map[instructions.AddressingMode]string{
	instructions.Immediate:        "#%s",
	instructions.Indirect:         "(%s)",
	instructions.IndexedIndirect:  "(%s,X)",
	instructions.IndirectIndexed:  "(%s),Y",
	instructions.AbsoluteIndexedX: "%s,X",
	instructions.AbsoluteIndexedY: "%s,Y",
	instructions.ZeroPageIndexedX: "%s,X",
	instructions.ZeroPageIndexedY: "%s,Y",
}

func decorateOperand(operand string, mode instructions.AddressingMode) string {
	if mode == instructions.Accumulator {
		return "A"
	}
	if f, ok := operandFormat[mode]; ok {
		return fmt.Sprintf(f, operand)
	}
	return operand
}

// branchTarget returns the address of a successful branch. the branch offset
// is relative to the address of the instruction following the branch.
func branchTarget(address uint16, offset uint8) uint16 {
	return address + 2 + uint16(int16(int8(offset)))
}
