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
	"fmt"
	"sort"
	"strings"
	"sync"
)

// CommandLineSep separates entries in a command line preferences string.
// The key and value of each entry are separated by "::". For example:
//
//	cpu.unknownOpcode::SKIP; loader.baseAddress::$0600
const CommandLineSep = ";"

// the command line is a stack of groups. only the group at the top of the
// stack is consulted by Disk.Add()
var commandLine struct {
	crit  sync.Mutex
	stack []map[string]Value
}

// PushCommandLineStack parses a command line preferences string and adds it
// as a new group. Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	grp := make(map[string]Value)
	for _, entry := range strings.Split(prefs, CommandLineSep) {
		key, value, ok := strings.Cut(entry, "::")
		if !ok || strings.Contains(value, "::") {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		grp[key] = strings.TrimSpace(value)
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, grp)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the entries of the group that were never
// used, in the same format as accepted by PushCommandLineStack() and sorted
// by key.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	top := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	unused := make([]string, 0, len(top))
	for key, value := range top {
		unused = append(unused, fmt.Sprintf("%s::%v", key, value))
	}
	sort.Strings(unused)

	return strings.Join(unused, CommandLineSep+" ")
}

// GetCommandLinePref returns the value for the key in the current group. A
// value can only be returned once.
func GetCommandLinePref(key string) (Value, bool) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return nil, false
	}

	top := commandLine.stack[len(commandLine.stack)-1]
	v, ok := top[key]
	if ok {
		delete(top, key)
	}
	return v, ok
}
