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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/logger"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key and value of an entry in the preferences file.
const KeySep = " :: "

// DiskError is the sentinel pattern for errors returned by the Disk type.
const DiskError = "prefs: %v"

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// values taken from the command line stack when the entry was added
	cmdline map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file at the path is not touched until Load() or Save() is called.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		cmdline: make(map[string]Value),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.sortedKeys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. If the key
// has a value in the current command line group then that value is set
// immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, KeySep) || strings.TrimSpace(key) != key || key == "" {
		return curated.Errorf(DiskError, fmt.Sprintf("illegal key (%q)", key))
	}

	dsk.entries[key] = p

	if v, ok := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
		dsk.cmdline[key] = v
	}

	return nil
}

// Get returns the value of the preference registered under the key.
func (dsk *Disk) Get(key string) (Value, bool) {
	p, ok := dsk.entries[key]
	if !ok {
		return nil, false
	}
	return p.Get(), true
}

// Set the preference registered under the key.
func (dsk *Disk) Set(key string, v Value) error {
	p, ok := dsk.entries[key]
	if !ok {
		return curated.Errorf(DiskError, fmt.Sprintf("unknown key (%s)", key))
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf(DiskError, err)
	}
	return nil
}

// Reset all preference values to their reset value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// read the file at path and return a map of key/value strings. a file that
// does not exist is not an error. the map will be empty in that case.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// boilerplate line
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), KeySep, 2)
		if len(kv) != 2 {
			continue
		}
		data[kv[0]] = kv[1]
	}

	return data, scanner.Err()
}

// Save current preference values to disk. Entries already in the file that
// have not been added to this Disk instance are preserved. Values that came
// from the command line do not replace a value already in the file.
func (dsk *Disk) Save() (rerr error) {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	for k, p := range dsk.entries {
		if _, ok := dsk.cmdline[k]; ok {
			if _, ok := data[k]; ok {
				continue
			}
		}
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(DiskError, err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, data[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. Entries in the file for which no
// preference has been added are ignored. Values in the current command line
// group take priority over values on disk.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	for k, v := range data {
		p, ok := dsk.entries[k]
		if !ok {
			continue
		}
		if err := p.Set(v); err != nil {
			logger.Logf(logger.Allow, "prefs", "%s: %v", k, err)
		}
	}

	for k, v := range dsk.cmdline {
		if err := dsk.entries[k].Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	return nil
}
