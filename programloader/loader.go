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

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/hardware/memory/cpubus"
	"github.com/drewwalton19216801/Emu6502Console/logger"
)

// LoadError is the sentinel pattern for all errors returned by the package.
const LoadError = "programloader: %v"

// the size of the address space the data is written into.
const addressSpace = 0x10000

// Loader is used to specify the program image to load into memory.
type Loader struct {
	// filename or URL of the program image
	Filename string

	// address the first byte of the image is written to. ignored if
	// HeaderAddress is true
	BaseAddress uint16

	// the first two bytes of the image are a little-endian load address. the
	// header is not written to memory
	HeaderAddress bool

	// expected hash of the loaded image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The HeaderAddress field is set according to the file extension. File
// extensions are case insensitive.
func NewLoader(filename string, baseAddress uint16) Loader {
	ld := Loader{
		Filename:    filename,
		BaseAddress: baseAddress,
	}

	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range headerExtensions {
		if ext == e {
			ld.HeaderAddress = true
		}
	}

	return ld
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

func (ld Loader) String() string {
	if ld.HeaderAddress {
		return fmt.Sprintf("%s (header address)", ld.ShortName())
	}
	return fmt.Sprintf("%s (at %#04x)", ld.ShortName(), ld.BaseAddress)
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, fmt.Sprintf("http status (%s)", resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) == 0 {
		return curated.Errorf(LoadError, "empty program image")
	}

	if ld.HeaderAddress && len(data) < 2 {
		return curated.Errorf(LoadError, "program image too short for header address")
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(LoadError, "unexpected hash value")
	}

	ld.Hash = hash
	ld.Data = data

	logger.Logf(logger.Allow, "programloader", "loaded %d bytes from %s (%s)", len(data), ld.Filename, hash)

	return nil
}

// Origin returns the address the first byte of the program is written to and
// the program bytes. If HeaderAddress is true the address is taken from the
// data and the returned program does not include the header.
func (ld Loader) Origin() (uint16, []byte) {
	if ld.HeaderAddress && len(ld.Data) >= 2 {
		return uint16(ld.Data[0]) | uint16(ld.Data[1])<<8, ld.Data[2:]
	}
	return ld.BaseAddress, ld.Data
}

// Write the loaded data to memory, one byte at a time at sequential addresses.
// The data must fit in the address space without wrapping. Memory is not
// touched if an error is returned.
//
// Returns the address of the first byte written.
func (ld Loader) Write(mem cpubus.Memory) (uint16, error) {
	if !ld.HasLoaded() {
		return 0, curated.Errorf(LoadError, "nothing loaded")
	}

	origin, prg := ld.Origin()

	if int(origin)+len(prg) > addressSpace {
		return 0, curated.Errorf(LoadError, fmt.Sprintf("program of %d bytes does not fit at %#04x", len(prg), origin))
	}

	address := origin
	for _, b := range prg {
		mem.Write(address, b)
		address++
	}

	logger.Logf(logger.Allow, "programloader", "%d bytes written at %#04x", len(prg), origin)

	return origin, nil
}
