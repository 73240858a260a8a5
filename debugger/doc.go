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

// Package debugger implements the interactive console for the emulated
// machine. The console loads a program, steps through it one instruction at
// a time and prints the state of the CPU after every step.
//
// When the terminal supports it, the debugger starts in "key step" mode, in
// which every press of the space or return key steps the CPU by one
// instruction. Pressing ':' or escape switches to the command line, where the commands
// listed by the HELP command are available. The KEYS command returns to key
// step mode.
//
// When input is not a real terminal, commands are read one line at a time. An
// empty line is the same as the STEP command.
package debugger
