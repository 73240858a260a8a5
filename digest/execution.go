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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/drewwalton19216801/Emu6502Console/hardware"
)

// Execution is a chained digest of every instruction executed by a machine.
// Update() should be called after every instruction.
//
// The hash includes the register values after every instruction and the
// address and cycle count of the instruction. The contents of memory are
// included when Hash() is called.
type Execution struct {
	m      *hardware.Machine
	digest [sha1.Size]byte

	// the previous digest followed by the state of the most recent
	// instruction
	buffer []byte
}

const executionEntry = 11

// NewExecution is the preferred method of initialisation for the Execution
// type.
func NewExecution(m *hardware.Machine) *Execution {
	return &Execution{
		m:      m,
		buffer: make([]byte, sha1.Size+executionEntry),
	}
}

// Hash implements the digest.Digest interface.
func (dig *Execution) Hash() string {
	h := sha1.New()
	h.Write(dig.digest[:])
	h.Write(dig.m.Mem.Slice(0, 0x10000))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// ResetDigest implements the digest.Digest interface.
func (dig *Execution) ResetDigest() {
	clear(dig.digest[:])
}

// Update the digest with the most recent instruction.
func (dig *Execution) Update() {
	st := dig.m.State()
	res := dig.m.CPU.LastResult

	// chain fingerprints by copying the previous digest to the head of the
	// buffer
	n := copy(dig.buffer, dig.digest[:])

	b := dig.buffer[n:]
	binary.LittleEndian.PutUint16(b[0:], st.PC)
	b[2] = st.A
	b[3] = st.X
	b[4] = st.Y
	b[5] = st.SP
	b[6] = st.Status.Value()
	binary.LittleEndian.PutUint16(b[7:], res.Address)
	binary.LittleEndian.PutUint16(b[9:], uint16(res.Cycles))

	dig.digest = sha1.Sum(dig.buffer)
}
