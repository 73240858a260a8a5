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

// Package hardware is the base package for the 6502 machine emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can either be
// started to run continuously (with optional callback to check for continuation)
// or it can be stepped one instruction at a time.
//
// The machine is made up of the CPU, a flat 64K memory and the EEPROM
// auxiliary store. Program images are written to memory (or to the EEPROM)
// with the programloader package.
package hardware
