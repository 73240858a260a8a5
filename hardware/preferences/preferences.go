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

package preferences

import (
	"fmt"

	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu"
	"github.com/drewwalton19216801/Emu6502Console/hardware/eeprom"
	"github.com/drewwalton19216801/Emu6502Console/hardware/memory/cpubus"
	"github.com/drewwalton19216801/Emu6502Console/prefs"
	"github.com/drewwalton19216801/Emu6502Console/resources"
)

// DefaultPrefsFile is the name of the preferences file in the resources
// directory.
const DefaultPrefsFile = "preferences"

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// how the CPU reacts to an unrecognised opcode. one of "HALT" or "SKIP"
	UnknownOpcode prefs.String

	// the value loaded into the PC on reset
	ResetVector prefs.Int

	// the address a program image is loaded to
	BaseAddress prefs.Int

	// program images carry a two byte load address
	HeaderAddress prefs.Bool

	// filename of the EEPROM image
	EEPROMFilename prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// location of the preferences file is specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.UnknownOpcode.SetOptions(cpu.Halt.String(), cpu.Skip.String())
	p.ResetVector.SetHookPre(isAddress)
	p.BaseAddress.SetHookPre(isAddress)
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.unknownOpcode", &p.UnknownOpcode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.resetVector", &p.ResetVector)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("loader.baseAddress", &p.BaseAddress)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("loader.headerAddress", &p.HeaderAddress)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("eeprom.filename", &p.EEPROMFilename)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func isAddress(v prefs.Value) error {
	if a := v.(int); a < 0 || a > 0xffff {
		return fmt.Errorf("address out of range (%#x)", a)
	}
	return nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.UnknownOpcode.Set(cpu.Halt.String())
	p.ResetVector.Set(int(cpubus.Reset))
	p.BaseAddress.Set(0)
	p.HeaderAddress.Set(false)
	p.EEPROMFilename.Set(eeprom.DefaultFilename)
}

// Policy returns the UnknownOpcode preference as a cpu.Policy.
func (p *Preferences) Policy() cpu.Policy {
	policy, _ := cpu.ParsePolicy(p.UnknownOpcode.String())
	return policy
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
