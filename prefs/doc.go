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

// Package prefs facilitates the storage of preferential values in the
// Emu6502Console system. Preferences are typed values that can be saved to and
// loaded from a plain text file on disk.
//
// Preference values are declared with the types in this package and
// registered with a Disk instance under a key:
//
//	var policy prefs.String
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("cpu.unknownOpcode", &policy)
//
// The preferences file is a list of key/value pairs, one per line, separated
// by the KeySep string. The first line of the file is the WarningBoilerPlate.
// Entries in the file that have not been added to the Disk instance are
// preserved when the Disk is saved.
//
// Values can also be specified on the command line with the
// PushCommandLineStack() function. A command line value for a key takes
// priority over the value on disk.
package prefs
