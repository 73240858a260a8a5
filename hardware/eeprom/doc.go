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

// Package eeprom implements the auxiliary byte store of the machine. The store
// is a fixed 32K of non-volatile memory that is loaded from and saved to a
// single file. The file is a flat copy of the store with no header.
//
// The store is not mapped into the address space of the CPU. It is accessed
// through the Read() and Write() functions by the debugger, the remote
// control server and the script runner.
package eeprom
