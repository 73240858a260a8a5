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
	"github.com/drewwalton19216801/Emu6502Console/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution has no instruction definition")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && !r.Defn.IsBranch() && r.PageFault {
		return curated.Errorf("cpu: unexpected page fault")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	// if a bug has been triggered, don't perform the number of cycles check
	if r.CPUBug != NoBug {
		return nil
	}

	expected := r.Defn.Cycles

	if r.Defn.IsBranch() {
		if r.BranchSuccess {
			expected++
			if r.PageFault {
				expected++
			}
		} else if r.PageFault {
			return curated.Errorf("cpu: page fault on untaken branch")
		}
	} else if r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Operator,
			r.Cycles,
			expected)
	}

	return nil
}
