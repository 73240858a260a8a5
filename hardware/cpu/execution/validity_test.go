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

package execution_test

import (
	"testing"

	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/execution"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/instructions"
	"github.com/drewwalton19216801/Emu6502Console/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result

	// not final
	test.ExpectFailure(t, r.IsValid())

	// LDA abs,X
	r.Defn = instructions.Lookup(0xbd)
	r.Final = true
	r.ByteCount = 3
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())

	// page fault requires one more cycle
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 5
	test.ExpectSuccess(t, r.IsValid())

	// wrong byte count
	r.ByteCount = 2
	test.ExpectFailure(t, r.IsValid())

	// page fault on instruction that isn't page sensitive (STA abs,X)
	r.Reset()
	r.Defn = instructions.Lookup(0x9d)
	r.Final = true
	r.ByteCount = 3
	r.Cycles = 5
	test.ExpectSuccess(t, r.IsValid())
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
}

func TestBranchValidity(t *testing.T) {
	var r execution.Result

	// BNE
	r.Defn = instructions.Lookup(0xd0)
	r.Final = true
	r.ByteCount = 2
	r.Cycles = 2
	test.ExpectSuccess(t, r.IsValid())

	r.BranchSuccess = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 3
	test.ExpectSuccess(t, r.IsValid())

	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())

	// a bug suppresses the cycle check
	r.Cycles = 10
	r.CPUBug = execution.JmpIndirectAddressingBug
	test.ExpectSuccess(t, r.IsValid())
}
