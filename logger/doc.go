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

// Package logger is the central logging facility for the emulator. Log entries
// are made up of a tag and a detail string. Repeated entries (same tag and
// detail as the previous entry) are collapsed into a single entry with a
// repeat count.
//
// Package level functions Log() and Logf() add entries to the central logger.
// Separate Logger instances can be created with NewLogger(), which is mostly
// useful for testing.
//
// Every request to log requires a Permission. The Allow value can be used
// when an entry should always be made. Other implementations of the
// Permission interface can be used to silence logging in contexts where it
// would be inappropriate (for example, a disassembler running the CPU
// speculatively).
package logger
