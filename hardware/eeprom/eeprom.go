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

package eeprom

import (
	"io"
	"os"
	"slices"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/logger"
)

// StoreError is the sentinel pattern for errors from the Load() and Save()
// functions.
const StoreError = "eeprom: %v"

const (
	Size     = 0x8000
	PageSize = 0x40
	NumPages = Size / PageSize
)

// DefaultFilename is the name of the store file if no other is specified.
const DefaultFilename = "EEPROM.bin"

// EEPROM represents the auxiliary non-volatile memory.
type EEPROM struct {
	// the file the store is loaded from and saved to
	Filename string

	// amend Data only through Write()
	Data []uint8

	// the data as it is on disk. data is mutable and we need a way of
	// comparing what's on disk with what's in memory.
	DiskData []uint8

	// whether a page has been written to since the last load or save
	PageAccess []bool
}

// NewEEPROM is the preferred method of initialisation for the EEPROM type. The
// store is initialised to zero. Data is not loaded from disk until Load() is
// called.
func NewEEPROM(filename string) *EEPROM {
	if filename == "" {
		filename = DefaultFilename
	}
	return &EEPROM{
		Filename:   filename,
		Data:       make([]uint8, Size),
		DiskData:   make([]uint8, Size),
		PageAccess: make([]bool, NumPages),
	}
}

// Snapshot creates a copy of the EEPROM in its current state.
func (ee *EEPROM) Snapshot() *EEPROM {
	cp := *ee
	cp.Data = slices.Clone(ee.Data)
	cp.DiskData = slices.Clone(ee.DiskData)
	cp.PageAccess = slices.Clone(ee.PageAccess)
	return &cp
}

// Load EEPROM data from disk. At most Size bytes are read. A shorter file
// fills the start of the store and leaves the remainder untouched.
func (ee *EEPROM) Load() error {
	f, err := os.Open(ee.Filename)
	if err != nil {
		logger.Logf(logger.Allow, "eeprom", "could not load eeprom file: %v", err)
		return curated.Errorf(StoreError, err)
	}
	defer f.Close()

	n, err := io.ReadFull(f, ee.Data)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		logger.Logf(logger.Allow, "eeprom", "could not load eeprom file: %v", err)
		return curated.Errorf(StoreError, err)
	}
	if n != Size {
		logger.Logf(logger.Allow, "eeprom", "eeprom file is of incorrect length. %d should be %d", n, Size)
	}

	// copy of data read from disk
	copy(ee.DiskData, ee.Data)
	clear(ee.PageAccess)

	logger.Logf(logger.Allow, "eeprom", "eeprom file loaded from %s", ee.Filename)

	return nil
}

// Save EEPROM data to disk. The entire store is written.
func (ee *EEPROM) Save() (rerr error) {
	f, err := os.Create(ee.Filename)
	if err != nil {
		logger.Logf(logger.Allow, "eeprom", "could not write eeprom file: %v", err)
		return curated.Errorf(StoreError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			logger.Logf(logger.Allow, "eeprom", "could not close eeprom file: %v", err)
			if rerr == nil {
				rerr = curated.Errorf(StoreError, err)
			}
		}
	}()

	n, err := f.Write(ee.Data)
	if err != nil {
		logger.Logf(logger.Allow, "eeprom", "could not write eeprom file: %v", err)
		return curated.Errorf(StoreError, err)
	}

	if n != len(ee.Data) {
		logger.Logf(logger.Allow, "eeprom", "eeprom file has not been truncated during write. %d should be %d", n, Size)
		return curated.Errorf(StoreError, io.ErrShortWrite)
	}

	logger.Logf(logger.Allow, "eeprom", "eeprom file saved to %s", ee.Filename)

	// copy of data that's just been written to disk
	copy(ee.DiskData, ee.Data)
	clear(ee.PageAccess)

	return nil
}

// IsSaved returns true if the data in memory is the same as the data on disk.
func (ee *EEPROM) IsSaved() bool {
	return slices.Compare(ee.Data, ee.DiskData) == 0
}

// Read a value from the EEPROM. The address wraps at the size of the store.
func (ee *EEPROM) Read(address uint16) uint8 {
	return ee.Data[address%Size]
}

// Write a value to the EEPROM. The address wraps at the size of the store.
func (ee *EEPROM) Write(address uint16, data uint8) {
	address %= Size
	ee.PageAccess[address/PageSize] = true
	ee.Data[address] = data
}

// Clear zeroes the store. The file on disk is not changed.
func (ee *EEPROM) Clear() {
	clear(ee.Data)
}
