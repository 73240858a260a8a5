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

package hardware

import (
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu"
	"github.com/drewwalton19216801/Emu6502Console/hardware/eeprom"
	"github.com/drewwalton19216801/Emu6502Console/hardware/memory"
)

// State stores the Machine sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	EEPROM *eeprom.EEPROM
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	return &State{
		CPU:    s.CPU.Snapshot(),
		Mem:    s.Mem.Snapshot(),
		EEPROM: s.EEPROM.Snapshot(),
	}
}

// Snapshot the state of the Machine sub-systems.
func (m *Machine) Snapshot() *State {
	return &State{
		CPU:    m.CPU.Snapshot(),
		Mem:    m.Mem.Snapshot(),
		EEPROM: m.EEPROM.Snapshot(),
	}
}

// Plumb a previously snapshotted State into the Machine. The State is copied
// so it can be plumbed more than once.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change what we have stored
	s := state.Snapshot()

	// the CPU policy is a preference and not part of the state
	policy := m.CPU.Policy

	m.CPU = s.CPU
	m.Mem = s.Mem
	m.EEPROM = s.EEPROM
	m.CPU.Plumb(m.Mem)
	m.CPU.Policy = policy
}
