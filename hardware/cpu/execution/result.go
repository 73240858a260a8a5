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

package execution

import (
	"fmt"

	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/instructions"
)

// Result records the state/result of the last CPU instruction.
type Result struct {
	// address of the instruction. this is the value of the PC at the start of
	// the instruction
	Address uint16

	// the definition of the instruction. nil if the opcode was not recognised
	Defn *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand of the instruction. only the lower byte is valid for
	// instructions with a single byte operand
	InstructionData uint16

	// the number of cycles consumed by the instruction
	Cycles int

	// whether an extra cycle was required because an indexed address crossed
	// a page boundary. also set for branches that crossed a page boundary
	PageFault bool

	// whether the branch was taken
	BranchSuccess bool

	// a known bug was triggered by the instruction
	CPUBug Bug

	// whether the instruction has run to completion. an instruction that
	// stops with an error will still be Final
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x ??? (%d cycles)", r.Address, r.Cycles)
	}
	return fmt.Sprintf("%04x %s (%d cycles)", r.Address, r.Defn.Operator, r.Cycles)
}
