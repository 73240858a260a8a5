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

// Package script runs Lua scripts against a Machine. Scripts have access to
// the following global functions:
//
//	step()               execute one instruction and return the cycles used
//	run(cycles)          execute instructions for at least the number of
//	                     cycles and return the number of cycles used
//	peek(addr)           return the value in memory at the address
//	poke(addr, value)    write the value to memory at the address
//	reg(name [, value])  return the value of the named register. if a value
//	                     is given the register is set first
//	reset([vector])      reset the machine. the PC is set to the vector or to
//	                     the preferred reset vector
//	load(path [, base])  load a program image and return its origin
//	status()             return a description of the CPU registers
//
// Register names are A, X, Y, SP, P and PC. The name is case insensitive.
//
// An error from the machine, for example an unrecognised opcode, raises a Lua
// error. The script can catch the error with pcall() but otherwise the
// script stops and the error is returned by Run() or RunFile().
//
// The standard Lua print() function writes to the io.Writer given to
// NewScript().
package script
