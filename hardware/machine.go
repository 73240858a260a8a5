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
	"fmt"
	"strings"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu"
	"github.com/drewwalton19216801/Emu6502Console/hardware/eeprom"
	"github.com/drewwalton19216801/Emu6502Console/hardware/memory"
	"github.com/drewwalton19216801/Emu6502Console/hardware/preferences"
	"github.com/drewwalton19216801/Emu6502Console/logger"
	"github.com/drewwalton19216801/Emu6502Console/prefs"
	"github.com/drewwalton19216801/Emu6502Console/programloader"
)

// MachineError is the sentinel pattern for errors returned by the Machine.
const MachineError = "machine: %v"

// Machine is the root of the emulated hardware.
type Machine struct {
	Prefs *preferences.Preferences

	CPU    *cpu.CPU
	Mem    *memory.Memory
	EEPROM *eeprom.EEPROM

	// the most recently loaded program
	Loader programloader.Loader
}

// NewMachine creates a new Machine and everything associated with the
// hardware. If the preferences argument is nil then the preferences are
// loaded from the default preferences file.
//
// The machine is returned in the state produced by ResetDefault().
func NewMachine(p *preferences.Preferences) (*Machine, error) {
	var err error

	if p == nil {
		p, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf(MachineError, err)
		}
	}

	m := &Machine{
		Prefs:  p,
		Mem:    memory.NewMemory(),
		EEPROM: eeprom.NewEEPROM(p.EEPROMFilename.String()),
	}
	m.CPU = cpu.NewCPU(m.Mem)
	m.CPU.Policy = p.Policy()

	// changes to the preferences are reflected immediately
	p.UnknownOpcode.SetHookPost(func(prefs.Value) error {
		m.CPU.Policy = m.Prefs.Policy()
		return nil
	})
	p.EEPROMFilename.SetHookPost(func(v prefs.Value) error {
		m.EEPROM.Filename = v.(string)
		return nil
	})

	m.ResetDefault()

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Reset clears memory and reinitialises the CPU registers, with the PC
// loaded with the vector. The EEPROM is not affected.
func (m *Machine) Reset(vector uint16) {
	m.Mem.Init()
	m.CPU.Reset(vector)
}

// ResetDefault is the same as Reset() but with the vector taken from the
// preferences.
func (m *Machine) ResetDefault() {
	m.Reset(uint16(m.Prefs.ResetVector.Get().(int)))
}

// NewLoader creates a programloader.Loader configured by the preferences.
func (m *Machine) NewLoader(filename string) programloader.Loader {
	ld := programloader.NewLoader(filename, uint16(m.Prefs.BaseAddress.Get().(int)))
	if m.Prefs.HeaderAddress.Get().(bool) {
		ld.HeaderAddress = true
	}
	return ld
}

// Load the program into memory and point the PC at the first byte of the
// program. Other registers and memory outside of the program are not
// changed. Memory is not touched if an error is returned.
func (m *Machine) Load(ld programloader.Loader) error {
	err := ld.Load()
	if err != nil {
		return curated.Errorf(MachineError, err)
	}

	origin, err := ld.Write(m.Mem)
	if err != nil {
		return curated.Errorf(MachineError, err)
	}

	m.CPU.LoadPC(origin)
	m.Loader = ld

	return nil
}

// LoadEEPROM writes the program into the EEPROM rather than into memory. The
// program must fit inside the EEPROM without wrapping.
func (m *Machine) LoadEEPROM(ld programloader.Loader) error {
	err := ld.Load()
	if err != nil {
		return curated.Errorf(MachineError, err)
	}

	origin, prg := ld.Origin()
	if int(origin)+len(prg) > eeprom.Size {
		return curated.Errorf(MachineError, fmt.Sprintf("program of %d bytes does not fit in eeprom at %#04x", len(prg), origin))
	}

	_, err = ld.Write(m.EEPROM)
	if err != nil {
		return curated.Errorf(MachineError, err)
	}

	m.Loader = ld

	return nil
}

// LoadEEPROMFile loads the EEPROM contents from the file named in the
// preferences. A missing or unreadable file is logged but is not fatal.
func (m *Machine) LoadEEPROMFile() {
	err := m.EEPROM.Load()
	if err != nil {
		logger.Log(logger.Allow, "machine", err)
	}
}

// State returns a copy of the current CPU registers.
func (m *Machine) State() cpu.State {
	return m.CPU.State()
}

// Status returns a multi-line description of the CPU registers and flags,
// similar to the output of a hardware monitor.
func (m *Machine) Status() string {
	s := m.CPU.State()
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("A: %02X X: %02X Y: %02X S: %02X PC: %04X P: %02X\n",
		s.A, s.X, s.Y, s.SP, s.PC, s.Status.Value()))
	b.WriteString("Status Flags:")
	for _, f := range []struct {
		label string
		set   bool
	}{
		{"C", s.Status.Carry()},
		{"Z", s.Status.Zero()},
		{"I", s.Status.InterruptDisable()},
		{"D", s.Status.DecimalMode()},
		{"B", s.Status.Break()},
		{"U", s.Status.Unused()},
		{"V", s.Status.Overflow()},
		{"N", s.Status.Sign()},
	} {
		v := 0
		if f.set {
			v = 1
		}
		b.WriteString(fmt.Sprintf(" %s: %d", f.label, v))
	}
	return b.String()
}
